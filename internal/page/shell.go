// Package page renders the dashboard shell: page metadata, the dark
// palette, the centered title and one section per chart.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/alexanderramin/neuroguard/internal/contract"
	"github.com/alexanderramin/neuroguard/internal/domain"
)

// DefaultPlotlyURL is the charting library loaded by the page.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

//go:embed templates/page.html.tmpl
var templateFS embed.FS

// Options configures the shell.
type Options struct {
	PlotlyURL string
	Palette   domain.Palette
}

// DefaultOptions returns the CDN-backed shell with the dark palette.
func DefaultOptions() Options {
	return Options{PlotlyURL: DefaultPlotlyURL, Palette: domain.DarkPalette()}
}

// Renderer writes dashboard pages. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	opts Options
}

// NewRenderer parses the embedded page template.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.PlotlyURL == "" {
		opts.PlotlyURL = DefaultPlotlyURL
	}
	tmpl, err := template.ParseFS(templateFS, "templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{tmpl: tmpl, opts: opts}, nil
}

type colors struct {
	Background template.CSS
	Text       template.CSS
	Heading    template.CSS
}

type sectionData struct {
	ID      string
	DivID   string
	Heading string
	Figure  template.JS
	Notice  *contract.Notice
}

type pageData struct {
	Title     string
	Heading   string
	PlotlyURL string
	Colors    colors
	Notice    *contract.Notice
	Sections  []sectionData
}

// Render writes the whole page for view. Output is buffered so a failure
// never leaves a half-written page behind.
func (r *Renderer) Render(w io.Writer, view *contract.DashboardView) error {
	data := pageData{
		Title:     view.Title,
		Heading:   view.Heading,
		PlotlyURL: r.opts.PlotlyURL,
		Colors: colors{
			Background: template.CSS(r.opts.Palette.Background),
			Text:       template.CSS(r.opts.Palette.Text),
			Heading:    template.CSS(r.opts.Palette.Heading),
		},
		Notice: view.Notice,
	}

	for _, sec := range view.Sections() {
		sd := sectionData{
			ID:      sec.ID,
			DivID:   "chart-" + sec.ID,
			Heading: sec.Heading,
			Notice:  sec.Notice,
		}
		if sec.Figure != nil {
			raw, err := sec.Figure.JSON()
			if err != nil {
				sd.Notice = &contract.Notice{
					Kind:    contract.NoticeError,
					Message: "This chart could not be drawn.",
					Details: []string{err.Error()},
				}
			} else {
				// json.Marshal escapes <, > and &, so the figure is safe
				// inside a script element.
				sd.Figure = template.JS(raw)
			}
		}
		data.Sections = append(data.Sections, sd)
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.html.tmpl", data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	return nil
}
