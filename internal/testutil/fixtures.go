package testutil

import (
	"context"
	"errors"

	"github.com/alexanderramin/neuroguard/internal/domain"
)

// Dataset options
type DatasetOption func(*domain.Dataset)

func WithYears(years ...string) DatasetOption {
	return func(d *domain.Dataset) {
		d.Years = years
	}
}

func WithMilestones(ms ...domain.Milestone) DatasetOption {
	return func(d *domain.Dataset) {
		d.Milestones = ms
	}
}

func WithInstitutions(insts ...domain.Institution) DatasetOption {
	return func(d *domain.Dataset) {
		d.Institutions = insts
	}
}

// NewTestDataset returns a small valid dataset: two milestones on a
// three-year axis and two institutions.
func NewTestDataset(name string, opts ...DatasetOption) *domain.Dataset {
	d := &domain.Dataset{
		Name:  name,
		Years: []string{"2024", "2026", "2028"},
		Milestones: []domain.Milestone{
			NewTestMilestone("2024", "Kickoff", 1.0),
			NewTestMilestone("2026", "Pilot", 0.75),
		},
		Institutions: []domain.Institution{
			{Name: "ETH Zurich", Latitude: 47.3763, Longitude: 8.5477},
			{Name: "Tokyo Tech", Latitude: 35.6050, Longitude: 139.6836},
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func NewTestMilestone(year, phase string, stagger float64) domain.Milestone {
	return domain.Milestone{
		Year:    year,
		Phase:   phase,
		Details: phase + " details",
		Stagger: stagger,
	}
}

// StubSource is a dataset source returning a fixed dataset or error and
// counting loads.
type StubSource struct {
	Dataset *domain.Dataset
	Err     error
	Loads   int
}

func (s *StubSource) Load(ctx context.Context) (*domain.Dataset, error) {
	s.Loads++
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Dataset == nil {
		return nil, errors.New("stub source has no dataset")
	}
	cp := *s.Dataset
	cp.Years = append([]string(nil), s.Dataset.Years...)
	cp.Milestones = append([]domain.Milestone(nil), s.Dataset.Milestones...)
	cp.Institutions = append([]domain.Institution(nil), s.Dataset.Institutions...)
	return &cp, nil
}
