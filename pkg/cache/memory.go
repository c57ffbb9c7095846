package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"

	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

// MemoryStore keeps lookup lists in process memory. Values are stored as JSON
// so callers never share slices with the cache.
type MemoryStore struct {
	items *gocache.Cache
}

// NewMemoryStore creates an in-process store. A zero defaultTTL keeps
// entries until they are deleted.
func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	if defaultTTL <= 0 {
		defaultTTL = gocache.NoExpiration
	}
	return &MemoryStore{items: gocache.New(defaultTTL, 10*time.Minute)}
}

// Get retrieves and unmarshals the cached value into the provided destination.
func (m *MemoryStore) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.items.Get(key)
	if !ok {
		return appErrors.ErrCacheMiss
	}
	payload, ok := raw.([]byte)
	if !ok {
		return appErrors.ErrCacheMiss
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

// Set marshals the provided value and stores it with the given TTL. A zero
// TTL falls back to the store default.
func (m *MemoryStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.items.Set(key, payload, ttl)
	return nil
}

// DeleteByPattern removes entries whose key matches the glob pattern.
func (m *MemoryStore) DeleteByPattern(_ context.Context, pattern string) error {
	for key := range m.items.Items() {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return fmt.Errorf("match pattern %s: %w", pattern, err)
		}
		if matched {
			m.items.Delete(key)
		}
	}
	return nil
}

// Len returns the number of live entries.
func (m *MemoryStore) Len() int {
	return m.items.ItemCount()
}

// Close drops every entry.
func (m *MemoryStore) Close() error {
	m.items.Flush()
	return nil
}
