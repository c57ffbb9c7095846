package cache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sigue-client/pkg/config"
)

// Store is a JSON value cache keyed by string.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
	Close() error
}

// Open builds the store selected by cfg. When Redis cannot be reached the
// client falls back to memory so screens keep working.
func Open(cfg *config.Config, logger *zap.Logger) Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Cache.Backend == config.CacheBackendRedis {
		client, err := NewRedis(cfg.Redis)
		if err == nil {
			return NewRedisStore(client, logger)
		}
		logger.Warn("redis unavailable, using in-memory cache", zap.Error(err))
	}
	return NewMemoryStore(cfg.Cache.TTL)
}
