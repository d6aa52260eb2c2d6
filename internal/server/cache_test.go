package server

import (
	"context"
	"sync"
	"time"

	"github.com/eugener/forecast/internal/cache"
)

var _ Cache = (*cache.Memory)(nil)

// mapCache is a synchronous Cache for deterministic handler tests; the
// otter-backed cache applies writes asynchronously.
type mapCache struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{m: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *mapCache) Set(_ context.Context, key string, val []byte, _ time.Duration) {
	c.mu.Lock()
	c.m[key] = val
	c.mu.Unlock()
}

func (c *mapCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	delete(c.m, key)
	c.mu.Unlock()
}

func (c *mapCache) Purge(context.Context) {
	c.mu.Lock()
	clear(c.m)
	c.mu.Unlock()
}
