// Package cache provides the memoization store behind kspace.NeighborhoodCache.
//
// # Cache[K, V]
//
// A mutex-protected LRU map with a soft limit. When an insertion exceeds
// the limit, the least recently used quarter of the entries is evicted.
//
//	c := cache.New[key, stencil](256)
//	s, ok := c.Get(k)
//	if !ok {
//		s = build(k) // no lock held while building
//		c.Set(k, s)
//	}
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
