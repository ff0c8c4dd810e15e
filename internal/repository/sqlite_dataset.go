package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/neuroguard/internal/db"
	"github.com/alexanderramin/neuroguard/internal/domain"
	"github.com/google/uuid"
)

// SQLiteDatasetRepo implements DatasetRepo using a SQLite database.
type SQLiteDatasetRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteDatasetRepo creates a repo over database. Writes run in a
// single transaction.
func NewSQLiteDatasetRepo(database *sql.DB) *SQLiteDatasetRepo {
	return &SQLiteDatasetRepo{db: database, uow: db.NewSQLiteUnitOfWork(database)}
}

// Save replaces the dataset named d.Name with d.
func (r *SQLiteDatasetRepo) Save(ctx context.Context, d *domain.Dataset) error {
	years, err := encodeYears(d.Years)
	if err != nil {
		return err
	}

	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		now := nowUTC()
		_, err := tx.ExecContext(ctx, `INSERT INTO datasets (name, years, created_at, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET years = excluded.years, updated_at = excluded.updated_at`,
			d.Name, years, now, now)
		if err != nil {
			return fmt.Errorf("upserting dataset: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM milestones WHERE dataset = ?`, d.Name); err != nil {
			return fmt.Errorf("clearing milestones: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM institutions WHERE dataset = ?`, d.Name); err != nil {
			return fmt.Errorf("clearing institutions: %w", err)
		}

		for i, m := range d.Milestones {
			_, err := tx.ExecContext(ctx, `INSERT INTO milestones (id, dataset, position, year, phase, details, stagger)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				uuid.New().String(), d.Name, i, m.Year, m.Phase, m.Details, m.Stagger)
			if err != nil {
				return fmt.Errorf("inserting milestone %d: %w", i, err)
			}
		}

		for i, inst := range d.Institutions {
			_, err := tx.ExecContext(ctx, `INSERT INTO institutions (id, dataset, position, name, latitude, longitude)
				VALUES (?, ?, ?, ?, ?, ?)`,
				uuid.New().String(), d.Name, i, inst.Name, inst.Latitude, inst.Longitude)
			if err != nil {
				return fmt.Errorf("inserting institution %d: %w", i, err)
			}
		}
		return nil
	})
}

// Get loads a dataset with its records in stored order.
func (r *SQLiteDatasetRepo) Get(ctx context.Context, name string) (*domain.Dataset, error) {
	var yearsJSON string
	err := r.db.QueryRowContext(ctx, `SELECT years FROM datasets WHERE name = ?`, name).Scan(&yearsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("scanning dataset: %w", err)
	}

	d := &domain.Dataset{Name: name}
	if d.Years, err = decodeYears(yearsJSON); err != nil {
		return nil, err
	}
	if d.Milestones, err = r.listMilestones(ctx, name); err != nil {
		return nil, err
	}
	if d.Institutions, err = r.listInstitutions(ctx, name); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *SQLiteDatasetRepo) listMilestones(ctx context.Context, name string) ([]domain.Milestone, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT year, phase, details, stagger
		FROM milestones WHERE dataset = ? ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	milestones := []domain.Milestone{}
	for rows.Next() {
		var m domain.Milestone
		if err := rows.Scan(&m.Year, &m.Phase, &m.Details, &m.Stagger); err != nil {
			return nil, fmt.Errorf("scanning milestone row: %w", err)
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestones: %w", err)
	}
	return milestones, nil
}

func (r *SQLiteDatasetRepo) listInstitutions(ctx context.Context, name string) ([]domain.Institution, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, latitude, longitude
		FROM institutions WHERE dataset = ? ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("listing institutions: %w", err)
	}
	defer rows.Close()

	institutions := []domain.Institution{}
	for rows.Next() {
		var inst domain.Institution
		if err := rows.Scan(&inst.Name, &inst.Latitude, &inst.Longitude); err != nil {
			return nil, fmt.Errorf("scanning institution row: %w", err)
		}
		institutions = append(institutions, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating institutions: %w", err)
	}
	return institutions, nil
}

// List summarizes every stored dataset, ordered by name.
func (r *SQLiteDatasetRepo) List(ctx context.Context) ([]domain.DatasetSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT d.name, d.updated_at,
			(SELECT COUNT(*) FROM milestones m WHERE m.dataset = d.name),
			(SELECT COUNT(*) FROM institutions i WHERE i.dataset = d.name)
		FROM datasets d ORDER BY d.name`)
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}
	defer rows.Close()

	var summaries []domain.DatasetSummary
	for rows.Next() {
		var s domain.DatasetSummary
		var updatedAt string
		if err := rows.Scan(&s.Name, &updatedAt, &s.MilestoneCount, &s.InstitutionCount); err != nil {
			return nil, fmt.Errorf("scanning dataset row: %w", err)
		}
		if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating datasets: %w", err)
	}
	return summaries, nil
}

// Delete removes a dataset and its records.
func (r *SQLiteDatasetRepo) Delete(ctx context.Context, name string) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		// Cascades only fire on connections with foreign keys enabled, so
		// child rows are removed explicitly.
		for _, stmt := range []string{
			`DELETE FROM milestones WHERE dataset = ?`,
			`DELETE FROM institutions WHERE dataset = ?`,
		} {
			if _, err := tx.ExecContext(ctx, stmt, name); err != nil {
				return fmt.Errorf("deleting dataset records: %w", err)
			}
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE name = ?`, name)
		if err != nil {
			return fmt.Errorf("deleting dataset: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting dataset: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil
	})
}
