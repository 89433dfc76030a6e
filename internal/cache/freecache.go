package cache

import (
	"context"
	"errors"
	"time"

	"github.com/coocood/freecache"
)

const megabyte = 1024 * 1024

// FreeCache is an in-process Cache backed by freecache.
type FreeCache struct {
	cache *freecache.Cache
}

// NewFreeCache allocates a cache of sizeMegabytes.
func NewFreeCache(sizeMegabytes int) *FreeCache {
	return &FreeCache{cache: freecache.NewCache(sizeMegabytes * megabyte)}
}

func (c *FreeCache) Get(_ context.Context, key string) ([]byte, error) {
	value, err := c.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, ErrMiss
	}
	return value, err
}

// Set stores value; freecache expiry has one second granularity and a ttl
// below one second means no expiry.
func (c *FreeCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	return c.cache.Set([]byte(key), value, int(ttl.Seconds()))
}

// EntryCount returns the number of live entries.
func (c *FreeCache) EntryCount() int64 {
	return c.cache.EntryCount()
}
