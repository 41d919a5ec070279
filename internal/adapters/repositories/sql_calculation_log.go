package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"planet-positions-service/internal/platform/obs"
	"planet-positions-service/internal/ports"
)

// Postgres-backed implementation of the CalculationLog port (pgx stdlib driver).
type SQLCalculationLog struct{ DB *sql.DB }

func NewSQLCalculationLog(db *sql.DB) *SQLCalculationLog {
	return &SQLCalculationLog{DB: db}
}

func (s *SQLCalculationLog) Record(ctx context.Context, e ports.CalculationEntry) (err error) {
	defer obs.Time(ctx, "calculations.sql.Record")(&err)

	if s.DB == nil {
		return errors.New("sql calculation log: DB is nil")
	}
	if e.ID == "" {
		return errors.New("record calculation: id must not be empty")
	}

	query := `
	INSERT INTO calculations (
		id, city, local_time, utc_time, julian_day, sun_longitude, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO NOTHING;
	`
	_, err = s.DB.ExecContext(ctx, query,
		e.ID, e.City, e.LocalTime, e.UTCTime, e.JulianDay, e.SunLongitude, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record calculation id=%s: %w", e.ID, err)
	}
	return nil
}

func (s *SQLCalculationLog) Recent(ctx context.Context, limit int) (_ []ports.CalculationEntry, err error) {
	defer obs.Time(ctx, "calculations.sql.Recent")(&err)

	if s.DB == nil {
		return nil, errors.New("sql calculation log: DB is nil")
	}
	if limit <= 0 {
		return []ports.CalculationEntry{}, nil
	}

	query := `
	SELECT id::text, city, local_time, utc_time, julian_day, sun_longitude, created_at
	FROM calculations
	ORDER BY created_at DESC, id
	LIMIT $1;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent calculations: query calculations table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.CalculationEntry, 0, limit)
	for rows.Next() {
		var e ports.CalculationEntry
		if err := rows.Scan(&e.ID, &e.City, &e.LocalTime, &e.UTCTime, &e.JulianDay, &e.SunLongitude, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("recent calculations: scan row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent calculations: row iteration: %w", err)
	}

	return out, nil
}
