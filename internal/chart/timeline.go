package chart

import (
	"fmt"
	"html"

	"github.com/alexanderramin/neuroguard/internal/domain"
	"github.com/alexanderramin/neuroguard/internal/figure"
)

// TimelineOptions controls the milestone chart.
type TimelineOptions struct {
	Title      string
	AxisTitle  string
	Height     int
	MarkerSize int
	// Years is the allowed, ordered year axis. Empty means any label is
	// accepted.
	Years   []string
	Palette domain.Palette
}

// DefaultTimelineOptions returns the dashboard's timeline settings.
func DefaultTimelineOptions(years []string) TimelineOptions {
	return TimelineOptions{
		Title:      "Strategic Milestones Toward Implementation",
		AxisTitle:  "Milestone Year",
		Height:     550,
		MarkerSize: 24,
		Years:      years,
		Palette:    domain.DarkPalette(),
	}
}

// Timeline builds the milestone chart: one point per milestone at
// (year, stagger) on a categorical year axis whose ticks follow the
// declaration order. The vertical axis is hidden.
func Timeline(milestones []domain.Milestone, opts TimelineOptions) (*figure.Figure, error) {
	if len(milestones) == 0 {
		return nil, fmt.Errorf("timeline: %w", ErrNoRecords)
	}

	ticks := make([]string, 0, len(milestones))
	seen := make(map[string]bool, len(milestones))
	for i := range milestones {
		m := &milestones[i]
		if len(opts.Years) > 0 {
			if err := m.Validate(opts.Years); err != nil {
				return nil, fmt.Errorf("timeline: milestones[%d].%w", i, err)
			}
		}
		if seen[m.Year] {
			return nil, fmt.Errorf("timeline: milestones[%d].year %q: %w", i, m.Year, domain.ErrDuplicateYear)
		}
		seen[m.Year] = true
		ticks = append(ticks, m.Year)
	}

	fig := &figure.Figure{
		Data: make([]figure.Trace, 0, len(milestones)),
		Layout: figure.Layout{
			Title:      &figure.Title{Text: opts.Title},
			Height:     opts.Height,
			ShowLegend: figure.Bool(false),
			XAxis: &figure.Axis{
				Title:    &figure.Title{Text: opts.AxisTitle},
				Type:     "category",
				TickVals: ticks,
				TickFont: &figure.Font{Size: 14},
			},
			YAxis: &figure.Axis{Visible: figure.Bool(false)},
		},
	}

	for _, m := range milestones {
		label := milestoneLabel(m)
		fig.Data = append(fig.Data, figure.Trace{
			Type:         figure.TypeScatter,
			Name:         m.Phase,
			X:            []string{m.Year},
			Y:            []float64{m.Stagger},
			Mode:         "markers+text",
			Text:         []string{label},
			HoverText:    []string{label},
			HoverInfo:    "text",
			TextPosition: "bottom center",
			Marker:       &figure.Marker{Size: opts.MarkerSize, Color: opts.Palette.TimelineDot},
		})
	}

	figure.ApplyDarkTheme(&fig.Layout, opts.Palette)
	return fig, nil
}

// milestoneLabel renders the bold phase over the italic details using the
// HTML subset Plotly understands. Record text is escaped.
func milestoneLabel(m domain.Milestone) string {
	return fmt.Sprintf("<b>%s</b><br><span style='font-size:12px'><i>%s</i></span>",
		html.EscapeString(m.Phase), html.EscapeString(m.Details))
}
