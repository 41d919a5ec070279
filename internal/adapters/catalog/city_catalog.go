package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"planet-positions-service/internal/domain"
	"strings"
)

//go:embed cities.json
var defaultCities []byte

// In-memory, read-only city table implementing ports.CityDirectory.
type CityCatalog struct {
	cities []domain.CityProfile
	byKey  map[string]int
}

type CitySeed struct {
	Key            string  `json:"key"`
	UTCOffsetHours int     `json:"utc_offset_hours"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
}

// Load reads the city table from jsonPath, or from the embedded default
// when jsonPath is empty.
func Load(jsonPath string) (*CityCatalog, error) {
	data := defaultCities
	if strings.TrimSpace(jsonPath) != "" {
		b, err := os.ReadFile(jsonPath)
		if err != nil {
			return nil, fmt.Errorf("load cities: read %q: %w", jsonPath, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates a JSON city table. Order is preserved.
func Parse(data []byte) (*CityCatalog, error) {
	var seeds []CitySeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("load cities: parse json: %w", err)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("load cities: table is empty")
	}

	c := &CityCatalog{
		cities: make([]domain.CityProfile, 0, len(seeds)),
		byKey:  make(map[string]int, len(seeds)),
	}
	for i, s := range seeds {
		key := strings.ToLower(strings.TrimSpace(s.Key))
		if key == "" {
			return nil, fmt.Errorf("load cities: item at index %d: key cannot be empty", i+1)
		}
		if key == domain.AllCities {
			return nil, fmt.Errorf("load cities: item at index %d: key %q is reserved", i+1, key)
		}
		if _, dup := c.byKey[key]; dup {
			return nil, fmt.Errorf("load cities: item at index %d: duplicate key %q", i+1, key)
		}
		if s.UTCOffsetHours < -12 || s.UTCOffsetHours > 14 {
			return nil, fmt.Errorf("load cities: city %q: utc offset %d out of range", key, s.UTCOffsetHours)
		}

		loc := domain.Coordinates{Lon: s.Lon, Lat: s.Lat}
		if !loc.Valid() {
			return nil, fmt.Errorf("load cities: city %q: invalid coordinates lat=%v lon=%v", key, s.Lat, s.Lon)
		}

		c.byKey[key] = len(c.cities)
		c.cities = append(c.cities, domain.CityProfile{
			Key:            key,
			UTCOffsetHours: s.UTCOffsetHours,
			Location:       loc,
		})
	}

	return c, nil
}

// Return all cities in table order. The slice is a copy.
func (c *CityCatalog) ListCities() []domain.CityProfile {
	out := make([]domain.CityProfile, len(c.cities))
	copy(out, c.cities)
	return out
}

func (c *CityCatalog) LookupCity(key string) (domain.CityProfile, error) {
	i, ok := c.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return domain.CityProfile{}, fmt.Errorf("lookup city %q: %w", key, domain.ErrUnknownCity)
	}
	return c.cities[i], nil
}
