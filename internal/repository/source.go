package repository

import (
	"context"

	"github.com/alexanderramin/neuroguard/internal/domain"
)

// SQLiteSource serves a stored dataset to the dashboard on every load.
type SQLiteSource struct {
	repo DatasetRepo
	name string
}

// NewSQLiteSource creates a dashboard source for the dataset called name.
func NewSQLiteSource(repo DatasetRepo, name string) *SQLiteSource {
	return &SQLiteSource{repo: repo, name: name}
}

func (s *SQLiteSource) Load(ctx context.Context) (*domain.Dataset, error) {
	return s.repo.Get(ctx, s.name)
}
