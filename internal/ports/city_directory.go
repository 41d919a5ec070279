package ports

import "planet-positions-service/internal/domain"

// Port: read-only access to the configured city table.
type CityDirectory interface {
	// Return all cities in table order.
	ListCities() []domain.CityProfile
	// Return the city with the given key, or an error wrapping domain.ErrUnknownCity.
	LookupCity(key string) (domain.CityProfile, error)
}
