// Package backend carries plumbing shared by the BLAS backend
// implementations: the context-to-handle cache and native-call metrics.
package backend

import "sync"

// Cache is a create-once association from a native context key to a
// backend handle. A second Get for the same key returns the cached handle
// instead of allocating another one; the create-if-absent path is guarded
// by a mutex so concurrent operations targeting the same context race
// safely.
type Cache[K comparable, H any] struct {
	mu      sync.Mutex
	entries map[K]H
	create  func(K) (H, error)
}

// NewCache builds a cache that materializes missing handles with create.
func NewCache[K comparable, H any](create func(K) (H, error)) *Cache[K, H] {
	return &Cache[K, H]{
		entries: make(map[K]H),
		create:  create,
	}
}

// Get returns the handle for key, creating it on first use. Creation
// happens at most once per key; a failed creation is not cached.
func (c *Cache[K, H]) Get(key K) (H, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if h, ok := c.entries[key]; ok {
		cacheHits.Inc()
		return h, nil
	}
	cacheMisses.Inc()
	h, err := c.create(key)
	if err != nil {
		var zero H
		return zero, err
	}
	c.entries[key] = h
	return h, nil
}

// Len returns the number of cached handles.
func (c *Cache[K, H]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Drain removes every entry, invoking destroy on each. Used at backend
// teardown.
func (c *Cache[K, H]) Drain(destroy func(H)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, h := range c.entries {
		if destroy != nil {
			destroy(h)
		}
		delete(c.entries, k)
	}
}
