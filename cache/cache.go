package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a size-bounded cache with a default expiry for every entry.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	ttl  time.Duration
}

// New creates a cache whose entries expire after ttl. Cost reports the size
// of a value in bytes.
func New[T any](name string, ttl time.Duration, cost func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e4,     // number of keys to track frequency of
		MaxCost:     1 << 23, // 8MB
		BufferItems: 64,
		Metrics:     true,
		Cost:        cost,
	})
	if err != nil {
		return nil, err
	}
	return &Cache[T]{impl: impl, name: name, ttl: ttl}, nil
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores value with the cache's default expiry. A cost of 0 lets the
// cost function decide.
func (c *Cache[T]) Set(key string, value T) bool {
	return c.impl.SetWithTTL(key, value, 0, c.ttl)
}

func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes are applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats returns counters for the admin log line.
func (c *Cache[T]) Stats() map[string]any {
	m := c.impl.Metrics
	hitRate := 0.0
	if total := m.Hits() + m.Misses(); total > 0 {
		hitRate = float64(m.Hits()) / float64(total) * 100
	}
	return map[string]any{
		"cache":        c.name,
		"hits":         m.Hits(),
		"misses":       m.Misses(),
		"hit_rate":     hitRate,
		"keys_added":   m.KeysAdded(),
		"keys_evicted": m.KeysEvicted(),
		"cost_added":   m.CostAdded(),
	}
}
