package chart

import (
	"fmt"
	"html"

	"github.com/alexanderramin/neuroguard/internal/domain"
	"github.com/alexanderramin/neuroguard/internal/figure"
)

// GlobeOptions controls the collaborator map.
type GlobeOptions struct {
	Title      string
	Height     int
	MarkerSize int
	Projection string
	Palette    domain.Palette
}

// DefaultGlobeOptions returns the dashboard's map settings.
func DefaultGlobeOptions() GlobeOptions {
	return GlobeOptions{
		Title:      "NeuroGuard Global Network of Innovation",
		Height:     600,
		MarkerSize: 12,
		Projection: "orthographic",
		Palette:    domain.DarkPalette(),
	}
}

// Globe builds the collaborator map: a single scattergeo trace with one
// labeled point per institution at exactly its (longitude, latitude).
// Out-of-range coordinates are rejected before anything is built.
func Globe(institutions []domain.Institution, opts GlobeOptions) (*figure.Figure, error) {
	if len(institutions) == 0 {
		return nil, fmt.Errorf("globe: %w", ErrNoRecords)
	}

	lon := make([]float64, 0, len(institutions))
	lat := make([]float64, 0, len(institutions))
	names := make([]string, 0, len(institutions))
	for i := range institutions {
		inst := &institutions[i]
		if err := inst.Validate(); err != nil {
			return nil, fmt.Errorf("globe: institutions[%d].%w", i, err)
		}
		lon = append(lon, inst.Longitude)
		lat = append(lat, inst.Latitude)
		names = append(names, html.EscapeString(inst.Name))
	}

	p := opts.Palette
	fig := &figure.Figure{
		Data: []figure.Trace{{
			Type:         figure.TypeScatterGeo,
			Lon:          lon,
			Lat:          lat,
			Text:         names,
			Mode:         "markers+text",
			TextPosition: "top center",
			Marker: &figure.Marker{
				Size:  opts.MarkerSize,
				Color: p.MapDot,
				Line:  &figure.Line{Width: 1, Color: p.MapDotOutline},
			},
		}},
		Layout: figure.Layout{
			Title:  &figure.Title{Text: opts.Title},
			Height: opts.Height,
			Geo: &figure.Geo{
				Projection: figure.Projection{Type: opts.Projection},
				ShowLand:   true,
				LandColor:  p.Land,
				ShowOcean:  true,
				OceanColor: p.Ocean,
				BGColor:    p.Background,
			},
		},
	}

	figure.ApplyDarkTheme(&fig.Layout, p)
	return fig, nil
}
