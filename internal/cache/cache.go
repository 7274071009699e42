// Package cache provides the byte-oriented TTL cache shared by the history store and
// the HTTP response cache.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque values under string keys with a per-entry TTL.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
}
