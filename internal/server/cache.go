package server

import (
	"context"
	"time"

	"github.com/eugener/forecast/internal/cache"
)

// Cache is the interface for rendered-body caching used by the server.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Purge(ctx context.Context)
}

// cachedBody returns the body rendered earlier for resource at token.
// A hit skips the slow load entirely.
func (s *server) cachedBody(ctx context.Context, resource, token string) ([]byte, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}
	body, ok := s.deps.Cache.Get(ctx, cache.Key(resource, token))
	if m := s.deps.Metrics; m != nil {
		if ok {
			m.CacheHits.Inc()
		} else {
			m.CacheMisses.Inc()
		}
	}
	return body, ok
}

func (s *server) storeBody(ctx context.Context, resource, token string, body []byte) {
	if s.deps.Cache == nil {
		return
	}
	s.deps.Cache.Set(ctx, cache.Key(resource, token), body, s.deps.CacheTTL)
}
