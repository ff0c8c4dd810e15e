// Package figure models the subset of the Plotly.js figure format the
// dashboard emits. A Figure marshals to the {data, layout} object that
// Plotly.newPlot accepts.
package figure

import (
	"encoding/json"
	"fmt"
)

// TraceType names a Plotly trace type.
type TraceType string

const (
	TypeScatter    TraceType = "scatter"
	TypeScatterGeo TraceType = "scattergeo"
)

// Figure is one chart: its traces and layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a scatter or scattergeo trace. Cartesian traces use X/Y,
// geographic traces use Lon/Lat.
type Trace struct {
	Type         TraceType `json:"type"`
	Name         string    `json:"name,omitempty"`
	X            []string  `json:"x,omitempty"`
	Y            []float64 `json:"y,omitempty"`
	Lon          []float64 `json:"lon,omitempty"`
	Lat          []float64 `json:"lat,omitempty"`
	Mode         string    `json:"mode,omitempty"`
	Text         []string  `json:"text,omitempty"`
	HoverText    []string  `json:"hovertext,omitempty"`
	HoverInfo    string    `json:"hoverinfo,omitempty"`
	TextPosition string    `json:"textposition,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
}

// Marker styles trace points.
type Marker struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
	Line  *Line  `json:"line,omitempty"`
}

// Line is a marker outline.
type Line struct {
	Width int    `json:"width"`
	Color string `json:"color"`
}

// Font sets text size and color.
type Font struct {
	Size   int    `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
	Family string `json:"family,omitempty"`
}

// Title is a chart or axis title.
type Title struct {
	Text string `json:"text"`
}

// Layout holds figure-wide settings.
type Layout struct {
	Title        *Title `json:"title,omitempty"`
	Height       int    `json:"height,omitempty"`
	ShowLegend   *bool  `json:"showlegend,omitempty"`
	PaperBGColor string `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string `json:"plot_bgcolor,omitempty"`
	Font         *Font  `json:"font,omitempty"`
	XAxis        *Axis  `json:"xaxis,omitempty"`
	YAxis        *Axis  `json:"yaxis,omitempty"`
	Geo          *Geo   `json:"geo,omitempty"`
}

// Axis configures a cartesian axis.
type Axis struct {
	Title     *Title   `json:"title,omitempty"`
	Type      string   `json:"type,omitempty"`
	TickVals  []string `json:"tickvals,omitempty"`
	TickFont  *Font    `json:"tickfont,omitempty"`
	Visible   *bool    `json:"visible,omitempty"`
	GridColor string   `json:"gridcolor,omitempty"`
	ZeroLine  *bool    `json:"zeroline,omitempty"`
}

// Geo configures the map subplot of scattergeo traces.
type Geo struct {
	Projection Projection `json:"projection"`
	ShowLand   bool       `json:"showland"`
	LandColor  string     `json:"landcolor,omitempty"`
	ShowOcean  bool       `json:"showocean"`
	OceanColor string     `json:"oceancolor,omitempty"`
	BGColor    string     `json:"bgcolor,omitempty"`
}

// Projection selects the map projection.
type Projection struct {
	Type string `json:"type"`
}

// Bool returns a pointer to b for optional layout flags.
func Bool(b bool) *bool { return &b }

// JSON marshals the figure. Marshalled output escapes <, > and & so it is
// safe to inline in a script element.
func (f *Figure) JSON() ([]byte, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshalling figure: %w", err)
	}
	return b, nil
}
