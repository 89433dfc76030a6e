// Package cache keeps read-mostly catalog lookups out of the database.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Versioner is implemented by caches that keep named counters visible to every
// instance sharing the cache. Version reports 0 for a counter never bumped.
type Versioner interface {
	Version(ctx context.Context, name string) (uint64, error)
	BumpVersion(ctx context.Context, name string) (uint64, error)
}
