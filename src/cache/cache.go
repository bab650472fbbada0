// src/cache/cache.go
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/username/fincalc/src/logger"
)

// Cache is a TTL key/value store for serialized calculation results. Both
// implementations are safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

type memoryCache struct {
	c   *gocache.Cache
	ttl time.Duration
}

// NewMemoryCache returns an in-process cache. This is the default; results
// are cheap to recompute, so losing the cache on restart costs nothing.
func NewMemoryCache(ttl, cleanupInterval time.Duration) Cache {
	return &memoryCache{c: gocache.New(ttl, cleanupInterval), ttl: ttl}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, bool) {
	v, found := m.c.Get(key)
	if !found {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (m *memoryCache) Set(_ context.Context, key, value string) {
	m.c.Set(key, value, m.ttl)
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache returns a Redis-backed cache for deployments that run more
// than one instance behind a load balancer.
func NewRedisCache(addr string, ttl time.Duration) Cache {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &redisCache{client: client, ttl: ttl}
}

func (r *redisCache) Get(ctx context.Context, key string) (string, bool) {
	v, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.FromContext(ctx).Warn("Redis cache read failed", "key", key, "error", err)
		}
		return "", false
	}
	return v, true
}

func (r *redisCache) Set(ctx context.Context, key, value string) {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		logger.FromContext(ctx).Warn("Redis cache write failed", "key", key, "error", err)
	}
}
