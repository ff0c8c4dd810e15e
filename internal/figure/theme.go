package figure

import "github.com/alexanderramin/neuroguard/internal/domain"

// ApplyDarkTheme sets the dark background and text colors on a layout.
// Plotly.js has no named template registry, so the dark look is spelled
// out here instead.
func ApplyDarkTheme(l *Layout, p domain.Palette) {
	l.PaperBGColor = p.Background
	l.PlotBGColor = p.Background
	l.Font = &Font{Color: p.Text}
	if l.XAxis != nil && l.XAxis.GridColor == "" {
		l.XAxis.GridColor = gridColor
	}
	if l.YAxis != nil && l.YAxis.GridColor == "" {
		l.YAxis.GridColor = gridColor
	}
}

const gridColor = "#283442"
