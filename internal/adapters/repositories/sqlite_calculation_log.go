package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"planet-positions-service/internal/platform/obs"
	"planet-positions-service/internal/ports"
	"time"
)

// Fixed-width RFC 3339 text, so UTC values sort chronologically as strings.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite-backed implementation of the CalculationLog port.
type SqliteCalculationLog struct{ DB *sql.DB }

func NewSqliteCalculationLog(db *sql.DB) *SqliteCalculationLog {
	return &SqliteCalculationLog{DB: db}
}

func (s *SqliteCalculationLog) Record(ctx context.Context, e ports.CalculationEntry) (err error) {
	defer obs.Time(ctx, "calculations.sqlite.Record")(&err)

	if s.DB == nil {
		return errors.New("sqlite calculation log: DB is nil")
	}
	if e.ID == "" {
		return errors.New("record calculation: id must not be empty")
	}

	query := `
	INSERT INTO calculations (
		id, city, local_time, utc_time, julian_day, sun_longitude, created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		e.ID,
		e.City,
		e.LocalTime.Format(sqliteTimeLayout),
		e.UTCTime.UTC().Format(sqliteTimeLayout),
		e.JulianDay,
		e.SunLongitude,
		e.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("record calculation id=%s: %w", e.ID, err)
	}
	return nil
}

func (s *SqliteCalculationLog) Recent(ctx context.Context, limit int) (_ []ports.CalculationEntry, err error) {
	defer obs.Time(ctx, "calculations.sqlite.Recent")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite calculation log: DB is nil")
	}
	if limit <= 0 {
		return []ports.CalculationEntry{}, nil
	}

	query := `
	SELECT id, city, local_time, utc_time, julian_day, sun_longitude, created_at
	FROM calculations
	ORDER BY created_at DESC, id
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent calculations: query calculations table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.CalculationEntry, 0, limit)
	for rows.Next() {
		var e ports.CalculationEntry
		var local, utc, created string
		if err := rows.Scan(&e.ID, &e.City, &local, &utc, &e.JulianDay, &e.SunLongitude, &created); err != nil {
			return nil, fmt.Errorf("recent calculations: scan row: %w", err)
		}
		if e.LocalTime, err = time.Parse(sqliteTimeLayout, local); err != nil {
			return nil, fmt.Errorf("recent calculations: parse local_time %q: %w", local, err)
		}
		if e.UTCTime, err = time.Parse(sqliteTimeLayout, utc); err != nil {
			return nil, fmt.Errorf("recent calculations: parse utc_time %q: %w", utc, err)
		}
		if e.CreatedAt, err = time.Parse(sqliteTimeLayout, created); err != nil {
			return nil, fmt.Errorf("recent calculations: parse created_at %q: %w", created, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent calculations: row iteration: %w", err)
	}

	return out, nil
}
