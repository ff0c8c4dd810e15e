package dataset

import (
	"fmt"
	"math"
)

// ValidateSchema checks a parsed dataset file and returns every problem
// found. Structural problems (missing coordinates, non-finite stagger)
// are reported first; range and year-label checks come from the domain
// rules applied to the converted dataset.
func ValidateSchema(s *Schema) []error {
	errs := structuralErrors(s)
	errs = append(errs, Convert(s).Validate()...)
	return errs
}

// structuralErrors reports problems that make Convert lossy.
func structuralErrors(s *Schema) []error {
	var errs []error

	for i, m := range s.Milestones {
		if m.Stagger != nil && (math.IsNaN(*m.Stagger) || math.IsInf(*m.Stagger, 0)) {
			errs = append(errs, fmt.Errorf("milestones[%d].stagger must be a finite number", i))
		}
	}

	for i, inst := range s.Institutions {
		prefix := fmt.Sprintf("institutions[%d]", i)
		if inst.Lat == nil {
			errs = append(errs, fmt.Errorf("%s.lat is required", prefix))
		}
		if inst.Lon == nil {
			errs = append(errs, fmt.Errorf("%s.lon is required", prefix))
		}
	}

	return errs
}
