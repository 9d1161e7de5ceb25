package routing

import (
	"context"

	"moverz/internal/cache"
)

// Stats receives cache and fallback events; the server plugs prometheus
// counters in here.
type Stats interface {
	CacheHit()
	CacheMiss()
	Fallback()
}

type noopStats struct{}

func (noopStats) CacheHit()  {}
func (noopStats) CacheMiss() {}
func (noopStats) Fallback()  {}

// CachedResolver wraps a Resolver with a coordinate-rounded cache and a
// fallback estimator. It degrades, it never blocks: when the primary
// resolver fails, the caller gets a fallback-sourced distance, which can
// feed an indicative price but never confirms the distance line.
type CachedResolver struct {
	primary   Resolver
	fallback  Resolver
	cache     cache.Cache
	precision int
	stats     Stats
}

// NewCachedResolver assembles the production resolver chain.
func NewCachedResolver(primary Resolver, c cache.Cache, precision int, stats Stats) *CachedResolver {
	if stats == nil {
		stats = noopStats{}
	}
	return &CachedResolver{
		primary:   primary,
		fallback:  NewFallbackResolver(),
		cache:     c,
		precision: precision,
		stats:     stats,
	}
}

// ResolveDistance resolves with cache-first, then the primary resolver,
// then the haversine fallback. Only primary results are written back to
// the cache: a fallback answer must stay re-tryable.
func (r *CachedResolver) ResolveDistance(ctx context.Context, origin, destination Coordinate) (Resolved, error) {
	key := CacheKey(origin, destination, r.precision)
	if cached, ok := r.cache.Get(key); ok {
		if resolved, ok := decodeResolved(cached); ok {
			r.stats.CacheHit()
			return resolved, nil
		}
	}
	r.stats.CacheMiss()

	resolved, err := r.primary.ResolveDistance(ctx, origin, destination)
	if err == nil {
		_ = r.cache.Set(key, encodeResolved(resolved))
		return resolved, nil
	}

	r.stats.Fallback()
	return r.fallback.ResolveDistance(ctx, origin, destination)
}
