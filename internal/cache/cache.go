package cache

import (
	"context"
	"fmt"
	"time"

	"spansim/internal/shared/configs"
)

// Cache is a byte-value cache with per-entry TTL. Get returns nil, nil on a
// miss so callers can distinguish "not cached" from a transport failure.
//
//go:generate mockgen -source=cache.go -destination=./mocks/cache_mock.go -package=mocks
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New creates a cache based on configuration. The memory type keeps an
// in-process LRU; the redis type shares entries across instances.
func New(cfg configs.CacheConfig) (Cache, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryCache(cfg.MaxEntries), nil
	case "redis":
		return NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}
