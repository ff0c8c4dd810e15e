package domain

// Palette is the fixed dark color set shared by the page and both charts.
type Palette struct {
	Background    string
	Text          string
	Heading       string
	TimelineDot   string
	MapDot        string
	MapDotOutline string
	Land          string
	Ocean         string
}

// DarkPalette returns the dashboard's only palette.
func DarkPalette() Palette {
	return Palette{
		Background:    "#0d1117",
		Text:          "#e6edf3",
		Heading:       "#58a6ff",
		TimelineDot:   "#1f77b4",
		MapDot:        "cyan",
		MapDotOutline: "black",
		Land:          "rgb(10,10,10)",
		Ocean:         "rgb(30,30,50)",
	}
}
