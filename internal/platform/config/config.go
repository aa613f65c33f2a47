package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr        string
	Environment string
	LogLevel    string
	Version     string

	Cache     CacheConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig

	// SimulateLatency selects the random portal latency strategy; false answers instantly.
	SimulateLatency bool
}

// CacheConfig controls the response cache shared by the source adapters and the unified endpoint.
type CacheConfig struct {
	SourceTTL     time.Duration
	UnifiedTTL    time.Duration
	Capacity      int
	SweepInterval time.Duration
}

// RateLimitConfig controls the limiter housekeeping. Per-source thresholds live
// in the source registry.
type RateLimitConfig struct {
	SweepInterval time.Duration
}

// RedisConfig configures the optional Redis cache backend. An empty URL keeps
// the cache in process.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:        envString("PROPLINK_ADDR", ":8080"),
		Environment: envString("ENVIRONMENT", "local"),
		LogLevel:    envString("LOG_LEVEL", "info"),
		Version:     envString("APP_VERSION", "1.0.0"),
		Cache: CacheConfig{
			SourceTTL:     envDuration("SOURCE_CACHE_TTL", 5*time.Minute),
			UnifiedTTL:    envDuration("UNIFIED_CACHE_TTL", 10*time.Minute),
			Capacity:      envInt("CACHE_CAPACITY", 10000),
			SweepInterval: envDuration("CACHE_SWEEP_INTERVAL", 5*time.Minute),
		},
		RateLimit: RateLimitConfig{
			SweepInterval: envDuration("RATE_LIMIT_SWEEP_INTERVAL", time.Minute),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		SimulateLatency: envBool("SIMULATE_LATENCY", true),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}
