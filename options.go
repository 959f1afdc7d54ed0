package kspace

import "runtime"

// ParallelOption configures ParallelShiftFuncEachND.
//
// Example:
//
//	vals, err := kspace.ParallelShiftFuncEachND(ctx, stencil, fetch, level, []int{i, j},
//	    kspace.WithWorkers(4))
type ParallelOption func(*parallelOptions)

// parallelOptions holds the settings of one parallel broadcast.
type parallelOptions struct {
	workers int
}

// defaultParallelOptions runs one worker per available CPU.
func defaultParallelOptions() parallelOptions {
	return parallelOptions{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers limits the number of callbacks running at the same time.
// Values below 1 are ignored.
func WithWorkers(n int) ParallelOption {
	return func(o *parallelOptions) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// CacheOption configures a NeighborhoodCache.
type CacheOption func(*cacheOptions)

// cacheOptions holds the settings of a NeighborhoodCache.
type cacheOptions struct {
	limit int
}

// DefaultCacheLimit is the default number of stencils kept by a
// NeighborhoodCache.
const DefaultCacheLimit = 256

func defaultCacheOptions() cacheOptions {
	return cacheOptions{limit: DefaultCacheLimit}
}

// WithCacheLimit sets the number of stencils a NeighborhoodCache keeps
// before evicting the least recently used ones. 0 means unlimited;
// negative values are ignored.
func WithCacheLimit(n int) CacheOption {
	return func(o *cacheOptions) {
		if n >= 0 {
			o.limit = n
		}
	}
}
