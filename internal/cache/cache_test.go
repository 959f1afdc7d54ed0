package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](0)

	_, ok := c.Get("a")
	assert.False(t, ok)

	assert.Zero(t, c.Set("a", 1))
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Set("a", 2)
	v, _ = c.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())

	s := c.Stats()
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](4)

	for i := range 4 {
		c.Set(i, i)
	}
	// Touch 0 and 1 so that 2 and 3 are the oldest.
	c.Get(0)
	c.Get(1)

	evicted := c.Set(4, 4)
	assert.Equal(t, 2, evicted, "evicts down to three quarters of the limit")
	assert.Equal(t, 3, c.Len())

	for _, k := range []int{0, 1, 4} {
		_, ok := c.Get(k)
		assert.True(t, ok, "key %d", k)
	}
	for _, k := range []int{2, 3} {
		_, ok := c.Get(k)
		assert.False(t, ok, "key %d", k)
	}
	assert.Equal(t, uint64(2), c.Stats().Evictions)
}

func TestCache_Clear(t *testing.T) {
	c := New[int, int](10)
	c.Set(1, 1)
	c.Get(1)

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Equal(t, uint64(1), c.Stats().Hits, "counters survive Clear")
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int, int](16)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				k := (g*100 + i) % 32
				if v, ok := c.Get(k); !ok {
					c.Set(k, k*k)
				} else if v != k*k {
					t.Errorf("key %d = %d, want %d", k, v, k*k)
				}
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 16)
}

func BenchmarkCache_Get(b *testing.B) {
	c := New[int, int](256)
	for i := range 256 {
		c.Set(i, i)
	}
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		c.Get(i & 255)
		i++
	}
}
