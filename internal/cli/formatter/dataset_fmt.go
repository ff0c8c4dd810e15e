package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/neuroguard/internal/domain"
)

// FormatDataset renders the milestone and institution tables of d.
func FormatDataset(d *domain.Dataset) string {
	var b strings.Builder

	b.WriteString(Header("Dataset " + d.Name))
	b.WriteString("\n")
	b.WriteString(Dim("years: " + strings.Join(d.Years, ", ")))
	b.WriteString("\n\n")

	b.WriteString(Header("Milestones"))
	b.WriteString("\n")
	if len(d.Milestones) == 0 {
		b.WriteString(Dim("no milestones") + "\n")
	} else {
		rows := make([][]string, 0, len(d.Milestones))
		for _, m := range d.Milestones {
			rows = append(rows, []string{
				StyleBlue.Render(m.Year),
				Bold(m.Phase),
				strconv.FormatFloat(m.Stagger, 'f', 2, 64),
				Truncate(m.Details, 60),
			})
		}
		b.WriteString(RenderTable([]string{"YEAR", "PHASE", "STAGGER", "DETAILS"}, rows))
	}
	b.WriteString("\n")

	b.WriteString(Header("Institutions"))
	b.WriteString("\n")
	if len(d.Institutions) == 0 {
		b.WriteString(Dim("no institutions") + "\n")
	} else {
		rows := make([][]string, 0, len(d.Institutions))
		for _, inst := range d.Institutions {
			rows = append(rows, []string{
				StyleCyan.Render(inst.Name),
				strconv.FormatFloat(inst.Latitude, 'f', 4, 64),
				strconv.FormatFloat(inst.Longitude, 'f', 4, 64),
			})
		}
		b.WriteString(RenderTable([]string{"NAME", "LAT", "LON"}, rows))
	}

	return b.String()
}

// FormatProblems renders validation results. An empty slice renders a
// success line.
func FormatProblems(name string, errs []error) string {
	if len(errs) == 0 {
		return StyleGreen.Render("✔ ") + fmt.Sprintf("dataset %s is valid\n", Bold(name))
	}

	var b strings.Builder
	b.WriteString(StyleRed.Render("✘ ") + fmt.Sprintf("dataset %s has %d problem(s)\n", Bold(name), len(errs)))
	for _, err := range errs {
		b.WriteString("  " + StyleYellow.Render("•") + " " + err.Error() + "\n")
	}
	return b.String()
}

// FormatDatasetList renders stored dataset summaries.
func FormatDatasetList(summaries []domain.DatasetSummary) string {
	if len(summaries) == 0 {
		return Dim("no datasets stored") + "\n"
	}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			Bold(s.Name),
			strconv.Itoa(s.MilestoneCount),
			strconv.Itoa(s.InstitutionCount),
			Dim(s.UpdatedAt.Local().Format(time.DateTime)),
		})
	}
	return RenderTable([]string{"NAME", "MILESTONES", "INSTITUTIONS", "UPDATED"}, rows)
}

// Truncate shortens s to at most n runes, ending with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 1 {
		return s
	}
	return string(r[:n-1]) + "…"
}
