package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const createCalculationsSqlite = `
CREATE TABLE IF NOT EXISTS calculations (
	id TEXT PRIMARY KEY,
	city TEXT NOT NULL,
	local_time TEXT NOT NULL,
	utc_time TEXT NOT NULL,
	julian_day REAL NOT NULL,
	sun_longitude REAL NOT NULL,
	created_at TEXT NOT NULL
);
`

const createCalculationsPostgres = `
CREATE TABLE IF NOT EXISTS calculations (
	id UUID PRIMARY KEY,
	city TEXT NOT NULL,
	local_time TIMESTAMPTZ NOT NULL,
	utc_time TIMESTAMPTZ NOT NULL,
	julian_day DOUBLE PRECISION NOT NULL,
	sun_longitude DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`

const createCalculationsIndex = `
CREATE INDEX IF NOT EXISTS idx_calculations_created_at
ON calculations(created_at);
`

// Initialize the SQLite database schema.
func InitSqliteSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, createCalculationsSqlite, createCalculationsIndex)
}

// Initialize the Postgres database schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, createCalculationsPostgres, createCalculationsIndex)
}

func initSchema(ctx context.Context, db *sql.DB, statements ...string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
