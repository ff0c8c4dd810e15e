package contract

import "github.com/alexanderramin/neuroguard/internal/figure"

// NoticeKind classifies an inline section message.
type NoticeKind string

const (
	NoticeEmpty   NoticeKind = "empty"
	NoticeInvalid NoticeKind = "invalid"
	NoticeError   NoticeKind = "error"
)

// Notice replaces a chart when the section cannot be drawn.
type Notice struct {
	Kind    NoticeKind
	Message string
	Details []string
}

// Section is one headed block of the page. Exactly one of Figure and
// Notice is set.
type Section struct {
	ID      string
	Heading string
	Figure  *figure.Figure
	Notice  *Notice
}

// Rendered reports whether the section carries a chart.
func (s Section) Rendered() bool { return s.Figure != nil }

// DashboardView is everything the page shell needs for one render.
type DashboardView struct {
	Title    string
	Heading  string
	Dataset  string
	Timeline Section
	Map      Section
	// Notice is set when the dataset itself could not be loaded.
	Notice *Notice
}

// Sections returns the page sections in display order.
func (v *DashboardView) Sections() []Section {
	return []Section{v.Timeline, v.Map}
}
