package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/neuroguard/internal/domain"
)

// Source supplies the dataset for one render. Implementations must return
// a value the caller owns; nothing is shared between renders.
type Source interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (*domain.Dataset, error)

func (f SourceFunc) Load(ctx context.Context) (*domain.Dataset, error) { return f(ctx) }

// StaticSource serves the built-in dataset.
type StaticSource struct{}

func (StaticSource) Load(context.Context) (*domain.Dataset, error) {
	return Default(), nil
}

// FileSource reads a YAML or JSON dataset file on every load, so edits
// show up on the next page refresh.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load parses and converts the file. Structural problems that prevent a
// meaningful conversion (missing coordinates, bad stagger) fail the load;
// value-range problems are left for the renderers to report inline.
func (s *FileSource) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	schema, err := LoadFile(s.Path)
	if err != nil {
		return nil, err
	}
	if errs := structuralErrors(schema); len(errs) > 0 {
		return nil, fmt.Errorf("dataset %s: %w", s.Path, errors.Join(errs...))
	}
	return Convert(schema), nil
}
