// Package lookup loads the support data forms offer as choices and keeps
// per-screen caches of it.
package lookup

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sigue-client/internal/gateway"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
	"github.com/noah-isme/sigue-client/pkg/middleware/requestid"
)

// Store is the cache backend a Scope writes through.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// Scope is a cache owned by one screen. Keys are namespaced by a random scope
// id so screens sharing a backend never see each other's entries, and
// Invalidate drops everything the screen cached.
type Scope struct {
	store   Store
	prefix  string
	ttl     time.Duration
	metrics *gateway.Metrics
	logger  *zap.Logger
}

// NewScope opens a cache scope on store.
func NewScope(store Store, ttl time.Duration, metrics *gateway.Metrics, logger *zap.Logger) *Scope {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scope{
		store:   store,
		prefix:  "sigue:" + requestid.New() + ":",
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// Remember returns the cached value of key or stores the result of fetch.
// Cache failures never fail the lookup.
func Remember[T any](ctx context.Context, s *Scope, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	if s == nil || s.store == nil {
		return fetch(ctx)
	}

	full := s.prefix + key
	err := s.store.Get(ctx, full, &cached)
	if err == nil {
		s.metrics.CacheHit()
		return cached, nil
	}
	if !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("lookup cache read failed", zap.String("key", full), zap.Error(err))
	}
	s.metrics.CacheMiss()

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}
	if err := s.store.Set(ctx, full, value, s.ttl); err != nil {
		s.logger.Warn("lookup cache write failed", zap.String("key", full), zap.Error(err))
	}
	return value, nil
}

// Invalidate drops every entry of the scope.
func (s *Scope) Invalidate(ctx context.Context) error {
	if s == nil || s.store == nil {
		return nil
	}
	return s.store.DeleteByPattern(ctx, s.prefix+"*")
}
