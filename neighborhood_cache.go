package kspace

import (
	"context"
	"log/slog"

	"github.com/gogpu/kspace/internal/cache"
)

// NeighborhoodCache memoizes CellND neighborhoods.
//
// A neighborhood of distance d is built from the one of distance d-1 with a
// quadratic deduplication, so wide stencils are worth computing once.
// Cached sets are immutable and shared between callers.
//
// NeighborhoodCache is safe for concurrent use. Two goroutines missing the
// same key may both build it; the results are equal.
type NeighborhoodCache struct {
	store *cache.Cache[neighborhoodKey, CellsND]
}

type neighborhoodKey struct {
	cell     CellND
	distance int
	proper   bool
}

// CacheStats is a snapshot of NeighborhoodCache counters.
type CacheStats struct {
	Len       int
	Limit     int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewNeighborhoodCache creates an empty cache.
func NewNeighborhoodCache(opts ...CacheOption) *NeighborhoodCache {
	o := defaultCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &NeighborhoodCache{store: cache.New[neighborhoodKey, CellsND](o.limit)}
}

// ProperNeighborhood returns c.ProperNeighborhood(distance), reusing cached
// results for this distance and the smaller ones it is built from.
func (nc *NeighborhoodCache) ProperNeighborhood(c CellND, distance int) CellsND {
	if distance <= 1 {
		return c.ProperNeighborhood(distance)
	}
	key := neighborhoodKey{cell: c, distance: distance, proper: true}
	if s, ok := nc.store.Get(key); ok {
		return s
	}
	s := nc.ProperNeighborhood(c, distance-1).Neighborhood(1).Unique().Without(c)
	nc.set(key, s)
	return s
}

// Neighborhood returns c.Neighborhood(distance).
func (nc *NeighborhoodCache) Neighborhood(c CellND, distance int) CellsND {
	if distance <= 1 {
		return c.Neighborhood(distance)
	}
	key := neighborhoodKey{cell: c, distance: distance}
	if s, ok := nc.store.Get(key); ok {
		return s
	}
	s := nc.ProperNeighborhood(c, distance).with(c)
	nc.set(key, s)
	return s
}

func (nc *NeighborhoodCache) set(key neighborhoodKey, s CellsND) {
	evicted := nc.store.Set(key, s)
	log := Logger()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	log.Debug("kspace: neighborhood cached",
		slog.String("cell", key.cell.String()),
		slog.Int("distance", key.distance),
		slog.Bool("proper", key.proper),
		slog.Int("size", s.Size()))
	if evicted > 0 {
		log.Debug("kspace: neighborhood cache eviction", slog.Int("evicted", evicted))
	}
}

// Len returns the number of cached stencils.
func (nc *NeighborhoodCache) Len() int {
	return nc.store.Len()
}

// Clear drops every cached stencil.
func (nc *NeighborhoodCache) Clear() {
	nc.store.Clear()
}

// Stats returns a snapshot of the cache counters.
func (nc *NeighborhoodCache) Stats() CacheStats {
	s := nc.store.Stats()
	return CacheStats{
		Len:       s.Len,
		Limit:     s.Limit,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}
