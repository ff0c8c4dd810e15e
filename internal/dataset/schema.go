package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/neuroguard/internal/domain"
	"gopkg.in/yaml.v3"
)

// Schema is the on-disk form of a dataset. YAML and JSON share the same
// field names.
type Schema struct {
	Name         string              `json:"name" yaml:"name"`
	Years        []string            `json:"years" yaml:"years"`
	Milestones   []MilestoneImport   `json:"milestones" yaml:"milestones"`
	Institutions []InstitutionImport `json:"institutions" yaml:"institutions"`
}

// MilestoneImport is one timeline entry in a dataset file. Stagger is
// optional; missing values are filled by StaggerFor.
type MilestoneImport struct {
	Year    string   `json:"year" yaml:"year"`
	Phase   string   `json:"phase" yaml:"phase"`
	Details string   `json:"details" yaml:"details"`
	Stagger *float64 `json:"stagger,omitempty" yaml:"stagger,omitempty"`
}

// InstitutionImport is one globe point in a dataset file.
type InstitutionImport struct {
	Name string   `json:"name" yaml:"name"`
	Lat  *float64 `json:"lat" yaml:"lat"`
	Lon  *float64 `json:"lon" yaml:"lon"`
}

// LoadFile reads a dataset file. The format is picked from the extension:
// .json is JSON, .yaml and .yml are YAML.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported dataset file extension %q (expected .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// ParseJSON decodes a JSON dataset. Unknown fields are rejected.
func ParseJSON(data []byte) (*Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var s Schema
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing JSON dataset: %w", err)
	}
	return &s, nil
}

// ParseYAML decodes a YAML dataset. Unknown fields are rejected.
func ParseYAML(data []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Schema
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing YAML dataset: %w", err)
	}
	return &s, nil
}

// FromDataset converts a domain dataset back into its file form, e.g. to
// export the built-in data as a starting point.
func FromDataset(d *domain.Dataset) *Schema {
	s := &Schema{
		Name:  d.Name,
		Years: append([]string(nil), d.Years...),
	}
	for _, m := range d.Milestones {
		stagger := m.Stagger
		s.Milestones = append(s.Milestones, MilestoneImport{
			Year:    m.Year,
			Phase:   m.Phase,
			Details: m.Details,
			Stagger: &stagger,
		})
	}
	for _, inst := range d.Institutions {
		lat, lon := inst.Latitude, inst.Longitude
		s.Institutions = append(s.Institutions, InstitutionImport{
			Name: inst.Name,
			Lat:  &lat,
			Lon:  &lon,
		})
	}
	return s
}

// WriteYAML encodes s as a YAML document.
func WriteYAML(w io.Writer, s *Schema) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding YAML dataset: %w", err)
	}
	return enc.Close()
}

// WriteJSON encodes s as indented JSON.
func WriteJSON(w io.Writer, s *Schema) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding JSON dataset: %w", err)
	}
	return nil
}
