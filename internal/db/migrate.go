package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS datasets (
		name       TEXT PRIMARY KEY,
		years      TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id       TEXT PRIMARY KEY,
		dataset  TEXT NOT NULL REFERENCES datasets(name) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		year     TEXT NOT NULL,
		phase    TEXT NOT NULL,
		details  TEXT NOT NULL DEFAULT '',
		stagger  REAL NOT NULL,
		UNIQUE(dataset, year),
		UNIQUE(dataset, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_milestones_dataset ON milestones(dataset, position)`,

	`CREATE TABLE IF NOT EXISTS institutions (
		id        TEXT PRIMARY KEY,
		dataset   TEXT NOT NULL REFERENCES datasets(name) ON DELETE CASCADE,
		position  INTEGER NOT NULL,
		name      TEXT NOT NULL,
		latitude  REAL NOT NULL CHECK(latitude BETWEEN -90 AND 90),
		longitude REAL NOT NULL CHECK(longitude BETWEEN -180 AND 180),
		UNIQUE(dataset, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_institutions_dataset ON institutions(dataset, position)`,
}
