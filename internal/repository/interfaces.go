package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/neuroguard/internal/domain"
)

// ErrNotFound is returned when a named dataset does not exist.
var ErrNotFound = errors.New("dataset not found")

// DatasetRepo stores whole datasets. Record order is preserved.
type DatasetRepo interface {
	Save(ctx context.Context, d *domain.Dataset) error
	Get(ctx context.Context, name string) (*domain.Dataset, error)
	List(ctx context.Context) ([]domain.DatasetSummary, error)
	Delete(ctx context.Context, name string) error
}
