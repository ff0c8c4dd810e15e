package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// GitHub-dark palette, matching the dashboard page.
var (
	ColorGreen  = lipgloss.Color("#3fb950")
	ColorYellow = lipgloss.Color("#d29922")
	ColorRed    = lipgloss.Color("#f85149")
	ColorBlue   = lipgloss.Color("#58a6ff")
	ColorCyan   = lipgloss.Color("#39c5cf")
	ColorDim    = lipgloss.Color("#8b949e")
	ColorFg     = lipgloss.Color("#e6edf3")
)

// Predefined lipgloss styles. SetColor swaps them for plain styles.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StyleCyan   lipgloss.Style
	StyleDim    lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

func init() {
	SetColor(true)
}

// SetColor enables or disables ANSI styling for all formatter output.
func SetColor(enabled bool) {
	if !enabled {
		plain := lipgloss.NewStyle()
		StyleGreen, StyleYellow, StyleRed, StyleBlue = plain, plain, plain, plain
		StyleCyan, StyleDim, StyleHeader, StyleBold = plain, plain, plain, plain
		return
	}
	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleCyan = lipgloss.NewStyle().Foreground(ColorCyan)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// ColorEnabled reports whether w is a terminal and NO_COLOR is unset.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold.
func Bold(text string) string {
	return StyleBold.Render(text)
}
