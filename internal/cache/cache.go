// Package cache holds rendered response bodies keyed by resource and
// freshness token.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for rendered-body caching.
type Cache interface {
	// Get retrieves a cached body by key.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores a body with the given TTL.
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
	// Delete removes a cached body.
	Delete(ctx context.Context, key string)
	// Purge removes all cached bodies.
	Purge(ctx context.Context)
}

// Key builds a cache key from a resource path and its freshness token.
// A touched resource gets a new token, so stale entries are never hit
// again and simply age out.
func Key(resource, token string) string {
	return resource + "@" + token
}
