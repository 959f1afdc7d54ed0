package kspace

import (
	"runtime"
	"testing"
)

func TestParallelOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []ParallelOption
		want int
	}{
		{"default", nil, runtime.GOMAXPROCS(0)},
		{"explicit", []ParallelOption{WithWorkers(3)}, 3},
		{"last wins", []ParallelOption{WithWorkers(3), WithWorkers(1)}, 1},
		{"zero ignored", []ParallelOption{WithWorkers(0)}, runtime.GOMAXPROCS(0)},
		{"negative ignored", []ParallelOption{WithWorkers(2), WithWorkers(-1)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultParallelOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			if o.workers != tt.want {
				t.Errorf("workers = %d, want %d", o.workers, tt.want)
			}
		})
	}
}

func TestCacheOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []CacheOption
		want int
	}{
		{"default", nil, DefaultCacheLimit},
		{"explicit", []CacheOption{WithCacheLimit(10)}, 10},
		{"unlimited", []CacheOption{WithCacheLimit(0)}, 0},
		{"negative ignored", []CacheOption{WithCacheLimit(-5)}, DefaultCacheLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultCacheOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			if o.limit != tt.want {
				t.Errorf("limit = %d, want %d", o.limit, tt.want)
			}
		})
	}

	nc := NewNeighborhoodCache(WithCacheLimit(7))
	if got := nc.Stats().Limit; got != 7 {
		t.Errorf("NeighborhoodCache limit = %d, want 7", got)
	}
}
