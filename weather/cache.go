package weather

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/kinhub/kinhub/metrics"
)

// ForecastCache stores month forecasts for a TTL. A cache miss or a cache
// error both report "not found"; callers fall through to the source chain.
type ForecastCache interface {
	Get(ctx context.Context, key string) ([]DayForecast, bool)
	Set(ctx context.Context, key string, forecast []DayForecast)
}

// CachedSource serves forecasts from a cache, fetching from the wrapped
// source only on a miss. Fetch errors are never cached.
type CachedSource struct {
	source Source
	cache  ForecastCache
}

func NewCachedSource(source Source, cache ForecastCache) *CachedSource {
	return &CachedSource{source: source, cache: cache}
}

func (c *CachedSource) Name() string { return c.source.Name() }

func (c *CachedSource) MonthForecast(ctx context.Context) ([]DayForecast, error) {
	if forecast, ok := c.cache.Get(ctx, c.source.Name()); ok {
		metrics.ForecastCacheHits.Inc()
		return forecast, nil
	}
	metrics.ForecastCacheMisses.Inc()

	forecast, err := c.source.MonthForecast(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(ctx, c.source.Name(), forecast)
	return forecast, nil
}

// MemoryCache is the default single-process forecast cache.
type MemoryCache struct {
	store *expirable.LRU[string, []DayForecast]
}

func NewMemoryCache(maxEntries int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		store: expirable.NewLRU[string, []DayForecast](maxEntries, nil, ttl),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]DayForecast, bool) {
	return c.store.Get(key)
}

func (c *MemoryCache) Set(_ context.Context, key string, forecast []DayForecast) {
	c.store.Add(key, forecast)
}
