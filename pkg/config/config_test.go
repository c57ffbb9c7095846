package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "http://localhost:8080", cfg.Gateway.BaseURL)
	assert.Equal(t, "/auth/login", cfg.Gateway.LoginPath)
	assert.Equal(t, 10*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, 3, cfg.Gateway.RetryAttempts)
	assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
	assert.Equal(t, "./exports", cfg.Export.Dir)
	assert.Equal(t, "admin", cfg.Stub.AdminUsername)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("API_BASE_URL", "http://140.84.169.148:25630/")
	v.Set("API_TIMEOUT", "3s")
	v.Set("CACHE_BACKEND", "REDIS")
	v.Set("API_RETRY_BACKOFF", "not-a-duration")
	v.Set("STUB_CORS_ORIGINS", "http://localhost:3000, ,https://sigue.edu")

	cfg := fromViper(v)
	assert.Equal(t, "http://140.84.169.148:25630", cfg.Gateway.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, 200*time.Millisecond, cfg.Gateway.RetryBackoff)
	assert.Equal(t, []string{"http://localhost:3000", "https://sigue.edu"}, cfg.Stub.CORSOrigins)
}

func TestFromViperUnknownCacheBackendFallsBackToMemory(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("CACHE_BACKEND", "memcached")

	assert.Equal(t, CacheBackendMemory, fromViper(v).Cache.Backend)
}
