package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache is a Cache shared between service instances. Its versions live
// in redis as well, so a bump on one instance is seen by all of them.
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisCache namespaces every key with keyPrefix.
func NewRedisCache(client *redis.Client, keyPrefix string) *RedisCache {
	return &RedisCache{client: client, keyPrefix: keyPrefix}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return value, err
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err()
}

func (c *RedisCache) Version(ctx context.Context, name string) (uint64, error) {
	version, err := c.client.Get(ctx, c.keyPrefix+name).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

func (c *RedisCache) BumpVersion(ctx context.Context, name string) (uint64, error) {
	return c.client.Incr(ctx, c.keyPrefix+name).Uint64()
}

var _ Versioner = (*RedisCache)(nil)
