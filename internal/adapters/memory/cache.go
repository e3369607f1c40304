package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Allirose140/SmartStackPro/internal/core/port"
)

type cacheItem struct {
	data      []byte
	expiresAt time.Time
}

// Cache is an in-process CachePort for the demo binary and tests. Values
// round-trip through JSON like the redis adapter, so callers never share
// memory with the cache.
type Cache[T any] struct {
	mu    sync.Mutex
	items map[string]cacheItem
	clock port.Clock
}

func NewCache[T any](clock port.Clock) port.CachePort[T] {
	return &Cache[T]{items: make(map[string]cacheItem), clock: clock}
}

func (c *Cache[T]) get(key string) ([]byte, bool) {
	item, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if !item.expiresAt.IsZero() && !c.clock.Now().Before(item.expiresAt) {
		delete(c.items, key)
		return nil, false
	}
	return item.data, true
}

func (c *Cache[T]) put(key string, value *T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	item := cacheItem{data: data}
	if ttl > 0 {
		item.expiresAt = c.clock.Now().Add(ttl)
	}
	c.items[key] = item
	return nil
}

func (c *Cache[T]) Get(_ context.Context, key string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.get(key)
	if !ok {
		return nil, nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return &value, nil
}

func (c *Cache[T]) Set(_ context.Context, key string, value *T, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.put(key, value, ttl)
}

func (c *Cache[T]) SetNX(_ context.Context, key string, value *T, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.get(key); ok {
		return false, nil
	}
	if err := c.put(key, value, ttl); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache[T]) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}
