// Package lru provides a generic thread-safe LRU cache bounded by entry
// count, total value size, or both.
package lru

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNoCapacity is returned by New when no limit is configured.
var ErrNoCapacity = errors.New("lru: WithMaxEntries or WithMaxBytes is required")

// node is an element of the recency ring. The ring's sentinel sits between
// the most and the least recently used entries.
type node[K comparable, V any] struct {
	key        K
	value      V
	size       int64
	prev, next *node[K, V]
}

// Cache is a thread-safe LRU cache.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*node[K, V]
	ring    node[K, V]

	maxEntries int
	maxSize    int64
	curSize    int64

	sizeFunc  func(V) int64
	cloneFunc func(V) V

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// Option configures a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithMaxEntries bounds the number of entries.
func WithMaxEntries[K comparable, V any](n int) Option[K, V] {
	return func(c *Cache[K, V]) { c.maxEntries = n }
}

// WithMaxBytes bounds the summed sizeFunc of all values.
func WithMaxBytes[K comparable, V any](maxBytes int64, sizeFunc func(V) int64) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.maxSize = maxBytes
		c.sizeFunc = sizeFunc
	}
}

// WithCloneFunc copies values on the way in and out, so callers may mutate
// what they store or get back.
func WithCloneFunc[K comparable, V any](clone func(V) V) Option[K, V] {
	return func(c *Cache[K, V]) { c.cloneFunc = clone }
}

// New creates a cache. At least one limit must be set.
func New[K comparable, V any](opts ...Option[K, V]) (*Cache[K, V], error) {
	c := &Cache[K, V]{entries: make(map[K]*node[K, V])}
	c.ring.prev = &c.ring
	c.ring.next = &c.ring

	for _, opt := range opts {
		opt(c)
	}

	if c.maxEntries <= 0 && c.maxSize <= 0 {
		return nil, ErrNoCapacity
	}

	return c, nil
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()

	n, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)

		var zero V

		return zero, false
	}

	c.unlink(n)
	c.pushFront(n)
	value := n.value
	c.mu.Unlock()

	c.hits.Add(1)

	return c.clone(value), true
}

// Put stores value under key, evicting least recently used entries as
// needed. A value larger than the whole byte budget is not stored.
func (c *Cache[K, V]) Put(key K, value V) {
	size := c.valueSize(value)
	if c.maxSize > 0 && size > c.maxSize {
		return
	}

	value = c.clone(value)

	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.curSize += size - n.size
		n.value = value
		n.size = size
		c.unlink(n)
		c.pushFront(n)
		c.evict(n)

		return
	}

	n := &node[K, V]{key: key, value: value, size: size}
	c.entries[key] = n
	c.curSize += size
	c.pushFront(n)
	c.evict(n)
}

// GetOrLoad returns the cached value for key, or calls load and caches its
// result when it succeeds. The hit flag reports whether load was skipped.
// Concurrent misses on one key may each call load.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, bool, error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}

	v, err := load()
	if err != nil {
		return v, false, err
	}

	c.Put(key, v)

	return v, false, nil
}

// Remove deletes key and reports whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if ok {
		c.drop(n)
	}

	return ok
}

// Clear removes every entry. Counters are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	c.ring.prev = &c.ring
	c.ring.next = &c.ring
	c.curSize = 0
}

// evict drops entries from the cold end, never keep, until both limits hold.
func (c *Cache[K, V]) evict(keep *node[K, V]) {
	for {
		overCount := c.maxEntries > 0 && len(c.entries) > c.maxEntries
		overSize := c.maxSize > 0 && c.curSize > c.maxSize

		if !overCount && !overSize {
			return
		}

		victim := c.ring.prev
		if victim == keep || victim == &c.ring {
			return
		}

		c.drop(victim)
		c.evictions.Add(1)
	}
}

func (c *Cache[K, V]) drop(n *node[K, V]) {
	c.unlink(n)
	delete(c.entries, n.key)
	c.curSize -= n.size
}

func (c *Cache[K, V]) pushFront(n *node[K, V]) {
	n.prev = &c.ring
	n.next = c.ring.next
	c.ring.next.prev = n
	c.ring.next = n
}

func (c *Cache[K, V]) unlink(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
}

func (c *Cache[K, V]) valueSize(v V) int64 {
	if c.sizeFunc != nil {
		return c.sizeFunc(v)
	}

	return 1
}

func (c *Cache[K, V]) clone(v V) V {
	if c.cloneFunc != nil {
		return c.cloneFunc(v)
	}

	return v
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	Entries     int
	CurrentSize int64
	MaxEntries  int
	MaxSize     int64
}

// HitRate returns hits over lookups, or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// Stats returns the current counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Evictions:   c.evictions.Load(),
		Entries:     len(c.entries),
		CurrentSize: c.curSize,
		MaxEntries:  c.maxEntries,
		MaxSize:     c.maxSize,
	}
}
