package ports

import (
	"context"
	"time"
)

// One recorded calculation request.
type CalculationEntry struct {
	ID           string
	City         string
	LocalTime    time.Time
	UTCTime      time.Time
	JulianDay    float64
	SunLongitude float64
	CreatedAt    time.Time
}

// Port: append-only log of served calculations.
type CalculationLog interface {
	Record(ctx context.Context, e CalculationEntry) error
	// Return up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]CalculationEntry, error)
}
