package kspace

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighborhoodCache_MatchesDirect(t *testing.T) {
	nc := NewNeighborhoodCache()

	for _, c := range []CellND{MustMake(2, 3), MustMake(2, 1).Next(0, 5), MustMake(3, 0b110)} {
		for d := 0; d <= 4; d++ {
			assert.True(t, nc.ProperNeighborhood(c, d).Equal(c.ProperNeighborhood(d)), "%v d=%d", c, d)
			assert.True(t, nc.Neighborhood(c, d).Equal(c.Neighborhood(d)), "%v d=%d", c, d)
		}
	}
}

func TestNeighborhoodCache_Reuse(t *testing.T) {
	nc := NewNeighborhoodCache()
	face := MustMake(2, 3)

	first := nc.ProperNeighborhood(face, 3)
	// Distances 2 and 3 are stored.
	assert.Equal(t, 2, nc.Len())

	before := nc.Stats()
	second := nc.ProperNeighborhood(face, 3)
	after := nc.Stats()

	assert.True(t, first.Equal(second))
	assert.Equal(t, before.Hits+1, after.Hits)
	assert.Equal(t, before.Misses, after.Misses)

	// Distance 4 reuses distance 3.
	nc.ProperNeighborhood(face, 4)
	assert.Equal(t, 3, nc.Len())

	nc.Clear()
	assert.Zero(t, nc.Len())
}

func TestNeighborhoodCache_Limit(t *testing.T) {
	nc := NewNeighborhoodCache(WithCacheLimit(4))

	for i := range 10 {
		nc.ProperNeighborhood(MustMake(2, 3).Next(0, i), 2)
	}
	s := nc.Stats()
	assert.LessOrEqual(t, s.Len, 4)
	assert.Positive(t, s.Evictions)
}

func TestNeighborhoodCache_Concurrent(t *testing.T) {
	nc := NewNeighborhoodCache(WithCacheLimit(8))
	want := MustMake(3, 7).ProperNeighborhood(3)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := nc.ProperNeighborhood(MustMake(3, 7), 3)
			if !got.Equal(want) {
				t.Errorf("goroutine %d: neighborhood differs", i)
			}
			nc.ProperNeighborhood(MustMake(2, 3).Next(1, i), 2)
		}()
	}
	wg.Wait()
}
