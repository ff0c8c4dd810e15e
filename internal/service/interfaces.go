package service

import (
	"context"

	"github.com/alexanderramin/neuroguard/internal/contract"
	"github.com/alexanderramin/neuroguard/internal/domain"
)

// DashboardService assembles one page render. Implementations hold no
// per-render state; every call loads fresh records.
type DashboardService interface {
	Build(ctx context.Context) (*contract.DashboardView, error)
	Dataset(ctx context.Context) (*domain.Dataset, error)
}

// DatasetService manages datasets kept in the SQLite store.
type DatasetService interface {
	Seed(ctx context.Context, d *domain.Dataset) error
	List(ctx context.Context) ([]domain.DatasetSummary, error)
	Delete(ctx context.Context, name string) error
}
