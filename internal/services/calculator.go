package services

import (
	"context"
	"errors"
	"fmt"
	"planet-positions-service/internal/domain"
	"planet-positions-service/internal/platform/obs"
	"planet-positions-service/internal/ports"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Calculator turns a local wall-clock moment and a city into a CityResult.
// It holds only read-only tables and is safe for concurrent use.
type Calculator struct {
	cities ports.CityDirectory
	cache  ports.ResultCache
	log    *zap.Logger
}

type Option func(*Calculator)

// WithCache makes CalculateBatch consult and fill cache. Cache failures are
// logged and never fail a calculation.
func WithCache(cache ports.ResultCache) Option {
	return func(c *Calculator) { c.cache = cache }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCalculator validates the static tables and the city directory.
// Any returned error wraps domain.ErrEngineUnavailable.
func NewCalculator(cities ports.CityDirectory, opts ...Option) (*Calculator, error) {
	if cities == nil {
		return nil, fmt.Errorf("new calculator: city directory is nil: %w", domain.ErrEngineUnavailable)
	}
	if err := ValidateTables(); err != nil {
		return nil, fmt.Errorf("new calculator: %w: %w", domain.ErrEngineUnavailable, err)
	}
	if len(cities.ListCities()) == 0 {
		return nil, fmt.Errorf("new calculator: city table is empty: %w", domain.ErrEngineUnavailable)
	}

	c := &Calculator{cities: cities, log: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// ListCities returns the configured cities in table order.
func (c *Calculator) ListCities() []domain.CityProfile {
	return c.cities.ListCities()
}

// CalculateForCity computes all planet reports for one city.
//
// local carries wall-clock fields in the city's own offset; its location is
// ignored. An unknown city is rejected before any computation.
func (c *Calculator) CalculateForCity(local time.Time, cityKey string) (*domain.CityResult, error) {
	city, err := c.cities.LookupCity(cityKey)
	if err != nil {
		return nil, fmt.Errorf("calculate for city: %w", err)
	}
	return calculate(local, city), nil
}

// CalculateBatch resolves selector (a city key or domain.AllCities) and
// computes each city independently. Results keep table order.
func (c *Calculator) CalculateBatch(ctx context.Context, local time.Time, selector string) (_ []*domain.CityResult, err error) {
	defer obs.Time(ctx, "calculator.CalculateBatch")(&err)

	targets, err := c.targets(selector)
	if err != nil {
		return nil, fmt.Errorf("calculate batch: %w", err)
	}

	results := make([]*domain.CityResult, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, city := range targets {
		i, city := i, city
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.cachedCalculate(gctx, local, city)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("calculate batch: %w", err)
	}

	return results, nil
}

func (c *Calculator) targets(selector string) ([]domain.CityProfile, error) {
	if selector == domain.AllCities {
		return c.cities.ListCities(), nil
	}
	city, err := c.cities.LookupCity(selector)
	if err != nil {
		return nil, err
	}
	return []domain.CityProfile{city}, nil
}

func (c *Calculator) cachedCalculate(ctx context.Context, local time.Time, city domain.CityProfile) *domain.CityResult {
	if c.cache == nil {
		return calculate(local, city)
	}

	utc := city.ToUTC(local)
	if r, ok, err := c.cache.Get(ctx, city.Key, utc); err != nil {
		c.log.Warn("result cache get failed", zap.String("city", city.Key), zap.Error(err))
	} else if ok {
		return r
	}

	r := calculate(local, city)
	if err := c.cache.Put(ctx, r); err != nil && !errors.Is(err, context.Canceled) {
		c.log.Warn("result cache put failed", zap.String("city", city.Key), zap.Error(err))
	}
	return r
}

func calculate(local time.Time, city domain.CityProfile) *domain.CityResult {
	utc := city.ToUTC(local)
	jd := ToJulianDay(utc)
	positions := PlanetPositions(jd)

	reports := make([]domain.PlanetReport, 0, len(positions))
	for _, pos := range positions {
		reports = append(reports, domain.PlanetReport{
			Planet:    pos.Planet,
			Symbol:    pos.Planet.Symbol(),
			Placement: DegreesToZodiac(pos.Longitude),
			Longitude: pos.Longitude,
			Speed:     pos.Speed,
		})
	}

	localTime := utc.In(city.Zone())
	rise, set := sunrise.SunriseSunset(
		city.Location.Lat, city.Location.Lon,
		localTime.Year(), localTime.Month(), localTime.Day(),
	)

	return &domain.CityResult{
		City:      city,
		LocalTime: localTime,
		UTCTime:   utc,
		JulianDay: jd,
		Sunrise:   rise,
		Sunset:    set,
		Planets:   reports,
	}
}
