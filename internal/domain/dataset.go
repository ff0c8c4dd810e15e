package domain

import (
	"fmt"
	"time"
)

// Dataset is the full input of one dashboard render: the ordered year
// axis, the milestones placed on it and the institutions on the globe.
type Dataset struct {
	Name         string
	Years        []string
	Milestones   []Milestone
	Institutions []Institution
}

// DatasetSummary describes a stored dataset.
type DatasetSummary struct {
	Name             string
	MilestoneCount   int
	InstitutionCount int
	UpdatedAt        time.Time
}

// Validate collects every problem in the dataset. Errors carry a field
// path prefix and wrap the domain sentinel errors.
func (d *Dataset) Validate() []error {
	var errs []error

	seenAllowed := make(map[string]bool, len(d.Years))
	for i, y := range d.Years {
		if y == "" {
			errs = append(errs, fmt.Errorf("years[%d]: %w", i, ErrEmptyField))
			continue
		}
		if seenAllowed[y] {
			errs = append(errs, fmt.Errorf("years[%d]: %q: %w", i, y, ErrDuplicateYear))
		}
		seenAllowed[y] = true
	}

	errs = append(errs, d.ValidateMilestones()...)
	errs = append(errs, d.ValidateInstitutions()...)
	return errs
}

// ValidateMilestones checks milestones only, so a bad timeline never
// blocks the globe from rendering.
func (d *Dataset) ValidateMilestones() []error {
	var errs []error
	seen := make(map[string]int, len(d.Milestones))
	for i := range d.Milestones {
		m := &d.Milestones[i]
		if err := m.Validate(d.Years); err != nil {
			errs = append(errs, fmt.Errorf("milestones[%d].%w", i, err))
			continue
		}
		if prev, ok := seen[m.Year]; ok {
			errs = append(errs, fmt.Errorf("milestones[%d].year %q: %w (first used by milestones[%d])", i, m.Year, ErrDuplicateYear, prev))
			continue
		}
		seen[m.Year] = i
	}
	return errs
}

// ValidateInstitutions checks institutions only.
func (d *Dataset) ValidateInstitutions() []error {
	var errs []error
	for i := range d.Institutions {
		if err := d.Institutions[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("institutions[%d].%w", i, err))
		}
	}
	return errs
}
