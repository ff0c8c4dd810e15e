package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Milestone is a single roadmap entry placed on the timeline.
// Stagger is a vertical offset that only keeps neighbouring labels apart;
// it carries no meaning of its own.
type Milestone struct {
	Year    string
	Phase   string
	Details string
	Stagger float64
}

// Validate checks the milestone against the allowed, ordered year labels.
func (m *Milestone) Validate(allowed []string) error {
	if strings.TrimSpace(m.Phase) == "" {
		return fmt.Errorf("phase: %w", ErrEmptyField)
	}
	if strings.TrimSpace(m.Year) == "" {
		return fmt.Errorf("year: %w", ErrEmptyField)
	}
	if !slices.Contains(allowed, m.Year) {
		return fmt.Errorf("year %q: %w (allowed: %s)", m.Year, ErrUnknownYear, strings.Join(allowed, ", "))
	}
	return nil
}
