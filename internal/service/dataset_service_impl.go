package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/neuroguard/internal/domain"
	"github.com/alexanderramin/neuroguard/internal/repository"
)

type datasetService struct {
	repo     repository.DatasetRepo
	observer UseCaseObserver
}

// NewDatasetService creates the SQLite dataset management use cases.
func NewDatasetService(repo repository.DatasetRepo, observers ...UseCaseObserver) DatasetService {
	return &datasetService{
		repo:     repo,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Seed validates d and stores it, replacing any dataset with the same name.
func (s *datasetService) Seed(ctx context.Context, d *domain.Dataset) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "seed-dataset",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"dataset":      d.Name,
				"milestones":   len(d.Milestones),
				"institutions": len(d.Institutions),
			},
		})
	}()

	if errs := d.Validate(); len(errs) > 0 {
		return fmt.Errorf("dataset %q is invalid: %w", d.Name, errors.Join(errs...))
	}
	return s.repo.Save(ctx, d)
}

func (s *datasetService) List(ctx context.Context) ([]domain.DatasetSummary, error) {
	return s.repo.List(ctx)
}

func (s *datasetService) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}
