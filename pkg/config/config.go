package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	Env string

	Gateway GatewayConfig
	Cache   CacheConfig
	Redis   RedisConfig
	Log     LogConfig
	Export  ExportConfig
	Stub    StubConfig
}

// GatewayConfig describes how the client reaches the remote API.
type GatewayConfig struct {
	BaseURL         string
	LoginPath       string
	Timeout         time.Duration
	RetryAttempts   int
	RetryBackoff    time.Duration
	RetryMaxBackoff time.Duration
}

// CacheConfig selects the backend for screen-scoped lookup caches.
type CacheConfig struct {
	Backend string
	TTL     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

// ExportConfig locates exported list files. Relative export paths resolve
// under Dir.
type ExportConfig struct {
	Dir string
}

// StubConfig configures the in-memory development gateway.
type StubConfig struct {
	Port          int
	JWTSecret     string
	JWTExpiration time.Duration
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	CORSOrigins   []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Gateway = GatewayConfig{
		BaseURL:         strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		LoginPath:       v.GetString("API_LOGIN_PATH"),
		Timeout:         parseDuration(v.GetString("API_TIMEOUT"), 10*time.Second),
		RetryAttempts:   v.GetInt("API_RETRY_ATTEMPTS"),
		RetryBackoff:    parseDuration(v.GetString("API_RETRY_BACKOFF"), 200*time.Millisecond),
		RetryMaxBackoff: parseDuration(v.GetString("API_RETRY_MAX_BACKOFF"), 2*time.Second),
	}

	backend := strings.ToLower(strings.TrimSpace(v.GetString("CACHE_BACKEND")))
	if backend != CacheBackendRedis {
		backend = CacheBackendMemory
	}
	cfg.Cache = CacheConfig{
		Backend: backend,
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 10*time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Export = ExportConfig{Dir: v.GetString("EXPORT_DIR")}

	cfg.Stub = StubConfig{
		Port:          v.GetInt("STUB_PORT"),
		JWTSecret:     v.GetString("STUB_JWT_SECRET"),
		JWTExpiration: parseDuration(v.GetString("STUB_JWT_EXPIRATION"), 8*time.Hour),
		AdminUsername: v.GetString("STUB_ADMIN_USERNAME"),
		AdminPassword: v.GetString("STUB_ADMIN_PASSWORD"),
		AdminEmail:    v.GetString("STUB_ADMIN_EMAIL"),
		CORSOrigins:   splitList(v.GetString("STUB_CORS_ORIGINS")),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("API_LOGIN_PATH", "/auth/login")
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("API_RETRY_ATTEMPTS", 3)
	v.SetDefault("API_RETRY_BACKOFF", "200ms")
	v.SetDefault("API_RETRY_MAX_BACKOFF", "2s")

	v.SetDefault("CACHE_BACKEND", CacheBackendMemory)
	v.SetDefault("CACHE_TTL", "10m")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("EXPORT_DIR", "./exports")

	v.SetDefault("STUB_PORT", 8080)
	v.SetDefault("STUB_JWT_SECRET", "dev_secret")
	v.SetDefault("STUB_JWT_EXPIRATION", "8h")
	v.SetDefault("STUB_ADMIN_USERNAME", "admin")
	v.SetDefault("STUB_ADMIN_PASSWORD", "Admin123")
	v.SetDefault("STUB_ADMIN_EMAIL", "admin@sigue.edu")
	v.SetDefault("STUB_CORS_ORIGINS", "")
}

// isMissingFile covers viper returning the raw fs error when SetConfigFile points at an absent .env.
func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
