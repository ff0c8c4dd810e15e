package figure

// Point is one rendered data point, read back out of a figure.
type Point struct {
	Trace int
	X     string
	Y     float64
	Lon   float64
	Lat   float64
	Text  string
}

// Points flattens every trace into its points in trace order.
func (f *Figure) Points() []Point {
	var pts []Point
	for ti, t := range f.Data {
		switch t.Type {
		case TypeScatterGeo:
			for i := range t.Lon {
				p := Point{Trace: ti, Lon: t.Lon[i]}
				if i < len(t.Lat) {
					p.Lat = t.Lat[i]
				}
				if i < len(t.Text) {
					p.Text = t.Text[i]
				}
				pts = append(pts, p)
			}
		default:
			for i := range t.X {
				p := Point{Trace: ti, X: t.X[i]}
				if i < len(t.Y) {
					p.Y = t.Y[i]
				}
				if i < len(t.Text) {
					p.Text = t.Text[i]
				}
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// PointCount returns the number of points across all traces.
func (f *Figure) PointCount() int {
	n := 0
	for _, t := range f.Data {
		if t.Type == TypeScatterGeo {
			n += len(t.Lon)
		} else {
			n += len(t.X)
		}
	}
	return n
}
