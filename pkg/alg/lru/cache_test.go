package lru_test

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/weburl/pkg/alg/lru"
)

func newCache(t *testing.T, opts ...lru.Option[string, string]) *lru.Cache[string, string] {
	t.Helper()

	c, err := lru.New(opts...)
	require.NoError(t, err)

	return c
}

func TestNew_RequiresLimit(t *testing.T) {
	t.Parallel()

	_, err := lru.New[string, int]()
	require.ErrorIs(t, err, lru.ErrNoCapacity)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := newCache(t, lru.WithMaxEntries[string, string](2))

	c.Put("a", "1")
	c.Put("b", "2")

	_, ok := c.Get("a")
	require.True(t, ok)

	c.Put("c", "3")

	_, ok = c.Get("b")
	assert.False(t, ok, "b was least recently used")

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, 2, c.Len())

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Evictions)
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.InDelta(t, 2.0/3.0, stats.HitRate(), 1e-9)
}

func TestCache_UpdateMovesToFront(t *testing.T) {
	t.Parallel()

	c := newCache(t, lru.WithMaxEntries[string, string](2))

	c.Put("a", "1")
	c.Put("b", "2")
	c.Put("a", "10")
	c.Put("c", "3")

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "10", v)

	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestCache_MaxBytes(t *testing.T) {
	t.Parallel()

	size := func(v string) int64 { return int64(len(v)) }
	c := newCache(t, lru.WithMaxBytes[string, string](10, size))

	c.Put("a", "aaaa")
	c.Put("b", "bbbb")
	c.Put("c", "cccc")

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, int64(8), c.Stats().CurrentSize)

	c.Put("huge", "0123456789a")
	_, ok := c.Get("huge")
	assert.False(t, ok)

	c.Put("c", "cccccccccc")
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(10), c.Stats().CurrentSize)
}

func TestCache_CloneFunc(t *testing.T) {
	t.Parallel()

	c, err := lru.New(
		lru.WithMaxEntries[string, []string](4),
		lru.WithCloneFunc[string, []string](func(v []string) []string { return append([]string(nil), v...) }),
	)
	require.NoError(t, err)

	stored := []string{"a", "b"}
	c.Put("k", stored)
	stored[0] = "mutated"

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	got[1] = "mutated"

	again, _ := c.Get("k")
	assert.Equal(t, []string{"a", "b"}, again)
}

func TestCache_GetOrLoad(t *testing.T) {
	t.Parallel()

	c := newCache(t, lru.WithMaxEntries[string, string](4))
	calls := 0

	load := func() (string, error) {
		calls++

		return "v", nil
	}

	v, hit, err := c.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "v", v)

	v, hit, err = c.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "v", v)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	_, _, err = c.GetOrLoad("bad", func() (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, c.Len())
}

func TestCache_RemoveAndClear(t *testing.T) {
	t.Parallel()

	c := newCache(t, lru.WithMaxEntries[string, string](4))
	c.Put("a", "1")
	c.Put("b", "2")

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())

	c.Put("c", "3")
	v, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := newCache(t, lru.WithMaxEntries[string, string](16))

	var wg sync.WaitGroup

	for g := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range 200 {
				key := strconv.Itoa((g*31 + i) % 40)
				c.Put(key, key)

				if v, ok := c.Get(key); ok {
					assert.Equal(t, key, v)
				}
			}
		}()
	}

	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
