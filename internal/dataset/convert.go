package dataset

import (
	"strings"

	"github.com/alexanderramin/neuroguard/internal/domain"
)

// Convert turns a dataset file into domain records, preserving the
// declaration order of every list. A missing name falls back to
// DefaultName and a missing year axis to DefaultYears. Call
// ValidateSchema first; Convert does not reject bad values.
func Convert(s *Schema) *domain.Dataset {
	d := &domain.Dataset{
		Name:  strings.TrimSpace(s.Name),
		Years: append([]string(nil), s.Years...),
	}
	if d.Name == "" {
		d.Name = DefaultName
	}
	if len(d.Years) == 0 {
		d.Years = DefaultYears()
	}

	d.Milestones = make([]domain.Milestone, 0, len(s.Milestones))
	for i, m := range s.Milestones {
		stagger := StaggerFor(i)
		if m.Stagger != nil {
			stagger = *m.Stagger
		}
		d.Milestones = append(d.Milestones, domain.Milestone{
			Year:    strings.TrimSpace(m.Year),
			Phase:   m.Phase,
			Details: m.Details,
			Stagger: stagger,
		})
	}

	d.Institutions = make([]domain.Institution, 0, len(s.Institutions))
	for _, inst := range s.Institutions {
		var lat, lon float64
		if inst.Lat != nil {
			lat = *inst.Lat
		}
		if inst.Lon != nil {
			lon = *inst.Lon
		}
		d.Institutions = append(d.Institutions, domain.Institution{
			Name:      inst.Name,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return d
}
