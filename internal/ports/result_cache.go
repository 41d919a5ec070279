package ports

import (
	"context"
	"planet-positions-service/internal/domain"
	"time"
)

// Port: cache of computed city results keyed by city and UTC instant.
// Results are pure in their key, so entries never go stale; TTL only bounds size.
type ResultCache interface {
	// Return the cached result and true, or nil and false on a miss.
	Get(ctx context.Context, city string, utc time.Time) (*domain.CityResult, bool, error)
	Put(ctx context.Context, r *domain.CityResult) error
}
