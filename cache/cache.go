// Package cache provides a typed cache used by the steam storefront proxy,
// backed by either an in-memory store or redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	go_store "github.com/eko/gocache/store/go_cache/v4"
	redis_store "github.com/eko/gocache/store/redis/v4"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/cother/cother/config"
)

// PrefixedCache wraps a cache.Cache and adds a prefix to all keys.
type PrefixedCache[T any] struct {
	cache  *cache.Cache[[]byte]
	prefix string
	ttl    time.Duration
}

// NewPrefixedCache creates a new prefixed cache with the backend selected by
// the configuration. Entries expire after the configured TTL.
func NewPrefixedCache[T any](cfg *config.CacheConfig, prefix string) *PrefixedCache[T] {
	return &PrefixedCache[T]{
		cache:  newCacheByType(cfg),
		prefix: prefix,
		ttl:    time.Duration(cfg.TTL) * time.Second,
	}
}

// Get retrieves a value from the cache with the prefixed key.
func (p *PrefixedCache[T]) Get(ctx context.Context, key string) (T, error) {
	data, err := p.cache.Get(ctx, p.prefix+key)
	if err != nil {
		return *new(T), err
	}
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return *new(T), fmt.Errorf("failed to decode cached value: %w", err)
	}
	return result, nil
}

// Set stores a value in the cache with the prefixed key.
func (p *PrefixedCache[T]) Set(ctx context.Context, key string, object T) error {
	data, err := json.Marshal(object)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	return p.cache.Set(ctx, p.prefix+key, data, store.WithExpiration(p.ttl))
}

// Delete removes a value from the cache with the prefixed key.
func (p *PrefixedCache[T]) Delete(ctx context.Context, key string) error {
	return p.cache.Delete(ctx, p.prefix+key)
}

// Clear removes all values from the cache.
func (p *PrefixedCache[T]) Clear(ctx context.Context) error {
	return p.cache.Clear(ctx)
}

func newCacheByType(cfg *config.CacheConfig) *cache.Cache[[]byte] {
	if cfg != nil && cfg.Type == config.CacheTypeRedis {
		return newRedisCache(cfg)
	}
	return newMemoryCache()
}

func newMemoryCache() *cache.Cache[[]byte] {
	gocacheClient := gocache.New(gocache.DefaultExpiration, 10*time.Minute)
	gocacheStore := go_store.NewGoCache(gocacheClient)
	return cache.New[[]byte](gocacheStore)
}

func newRedisCache(cfg *config.CacheConfig) *cache.Cache[[]byte] {
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})
	redisStore := redis_store.NewRedis(redisClient)
	return cache.New[[]byte](redisStore)
}
