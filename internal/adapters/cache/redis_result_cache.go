package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"planet-positions-service/internal/domain"
	"planet-positions-service/internal/platform/metrics"
	"planet-positions-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "positions"

// Redis-backed cache of city results keyed by city and UTC second.
type RedisResultCache struct {
	Client  redis.UniversalClient
	TTL     time.Duration
	Metrics *metrics.Collector
}

func NewRedisResultCache(client redis.UniversalClient, ttl time.Duration, m *metrics.Collector) *RedisResultCache {
	return &RedisResultCache{Client: client, TTL: ttl, Metrics: m}
}

func cacheKey(city string, utc time.Time) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, city, utc.UTC().Unix())
}

func (c *RedisResultCache) Get(ctx context.Context, city string, utc time.Time) (_ *domain.CityResult, _ bool, err error) {
	defer obs.Time(ctx, "result.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("result cache: client is nil")
	}
	if strings.TrimSpace(city) == "" {
		return nil, false, errors.New("get result cache: city must not be empty")
	}

	b, err := c.Client.Get(ctx, cacheKey(city, utc)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.miss()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get result cache: %w", err)
	}

	var r domain.CityResult
	if err := json.Unmarshal(b, &r); err != nil {
		// Treat undecodable entries as misses; the next Put overwrites them.
		c.miss()
		return nil, false, nil
	}

	c.hit()
	return &r, true, nil
}

func (c *RedisResultCache) Put(ctx context.Context, r *domain.CityResult) (err error) {
	defer obs.Time(ctx, "result.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("result cache: client is nil")
	}
	if r == nil || strings.TrimSpace(r.City.Key) == "" {
		return errors.New("put result cache: result must have a city")
	}

	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("put result cache: encode: %w", err)
	}

	if err := c.Client.Set(ctx, cacheKey(r.City.Key, r.UTCTime), b, c.TTL).Err(); err != nil {
		return fmt.Errorf("put result cache city=%q: %w", r.City.Key, err)
	}
	return nil
}

func (c *RedisResultCache) hit() {
	if c.Metrics != nil {
		c.Metrics.CacheHits.Inc()
	}
}

func (c *RedisResultCache) miss() {
	if c.Metrics != nil {
		c.Metrics.CacheMisses.Inc()
	}
}
