// Package memo provides a concurrency-safe, write-once memoization
// cache for derived projections. Values are computed at most once per
// key, with concurrent callers for the same key sharing one
// computation.
package memo

import (
	"sync"
	"sync/atomic"
)

// Cache memoizes the results of a pure function of its key. A computed
// value, or the error the computation returned, sticks: derivations
// here are deterministic, so retrying cannot change the outcome.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	hits    atomic.Int64
	misses  atomic.Int64
}

type entry[V any] struct {
	once sync.Once
	val  V
	err  error
}

// New creates an empty cache.
func New[K comparable, V any](opts ...Option) *Cache[K, V] {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Cache[K, V]{
		entries: make(map[K]*entry[V], cfg.sizeHint),
	}
}

// GetOrCompute returns the memoized value for key, running fn exactly
// once per key across all goroutines.
func (c *Cache[K, V]) GetOrCompute(key K, fn func() (V, error)) (V, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry[V]{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}

	e.once.Do(func() {
		e.val, e.err = fn()
	})
	return e.val, e.err
}

// Len returns the number of memoized keys.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts since creation or the last
// Reset.
func (c *Cache[K, V]) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Reset drops all memoized values and zeroes the counters.
func (c *Cache[K, V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*entry[V])
	c.hits.Store(0)
	c.misses.Store(0)
}

// Option applies a configuration option to a new cache.
type Option func(*config)

type config struct {
	sizeHint int
}

// WithSizeHint pre-sizes the cache for the expected number of keys.
func WithSizeHint(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.sizeHint = n
		}
	}
}
