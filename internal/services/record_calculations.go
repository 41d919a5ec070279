package services

import (
	"context"
	"fmt"
	"planet-positions-service/internal/domain"
	"planet-positions-service/internal/ports"
	"time"

	"github.com/google/uuid"
)

// RecordCalculations appends one log entry per city result.
// It stops at the first failing write.
func RecordCalculations(ctx context.Context, log ports.CalculationLog, results []*domain.CityResult, now time.Time) error {
	if log == nil {
		return nil
	}

	for _, r := range results {
		var sun float64
		if pr, ok := r.Planet(domain.Sun); ok {
			sun = pr.Longitude
		}

		e := ports.CalculationEntry{
			ID:           uuid.NewString(),
			City:         r.City.Key,
			LocalTime:    r.LocalTime,
			UTCTime:      r.UTCTime,
			JulianDay:    r.JulianDay,
			SunLongitude: sun,
			CreatedAt:    now.UTC(),
		}
		if err := log.Record(ctx, e); err != nil {
			return fmt.Errorf("record calculations: city %q: %w", r.City.Key, err)
		}
	}

	return nil
}
