package dataset

// Label rows used to keep neighbouring timeline annotations apart.
const (
	StaggerHigh = 1.0
	StaggerLow  = 0.75
)

// StaggerFor returns the vertical row for the milestone at position i in
// declaration order. Rows alternate so adjacent labels never share a line.
func StaggerFor(i int) float64 {
	if i%2 == 0 {
		return StaggerHigh
	}
	return StaggerLow
}
