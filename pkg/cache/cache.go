package cache

import (
	"sync"
)

// Cache is a concurrency safe map. Clear drops every entry and advances the
// generation so values computed before an invalidation can be rejected with
// SetIfGeneration.
type Cache[K comparable, V any] struct {
	entries    map[K]V
	generation uint64
	mu         sync.RWMutex
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
	}
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// SetIfGeneration stores value only if no Clear happened since gen was read.
func (c *Cache[K, V]) SetIfGeneration(key K, value V, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return false
	}
	c.entries[key] = value
	return true
}

func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

// GetOrCreate returns the cached value for key, storing the result of create
// when the key is absent.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries[key]; ok {
		return v
	}
	v := create()
	c.entries[key] = v
	return v
}

// Clear invalidates every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]V)
	c.generation++
}

func (c *Cache[K, V]) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

func (c *Cache[K, V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]K, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}
