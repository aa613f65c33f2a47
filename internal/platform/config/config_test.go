package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PROPLINK_ADDR", "SOURCE_CACHE_TTL", "UNIFIED_CACHE_TTL", "CACHE_CAPACITY", "SIMULATE_LATENCY", "REDIS_URL"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Cache.SourceTTL)
	assert.Equal(t, 10*time.Minute, cfg.Cache.UnifiedTTL)
	assert.Equal(t, 10000, cfg.Cache.Capacity)
	assert.Equal(t, time.Minute, cfg.RateLimit.SweepInterval)
	assert.True(t, cfg.SimulateLatency)
	assert.Empty(t, cfg.Redis.URL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PROPLINK_ADDR", ":9090")
	t.Setenv("UNIFIED_CACHE_TTL", "30s")
	t.Setenv("CACHE_CAPACITY", "64")
	t.Setenv("SIMULATE_LATENCY", "false")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.Cache.UnifiedTTL)
	assert.Equal(t, 64, cfg.Cache.Capacity)
	assert.False(t, cfg.SimulateLatency)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
}

func TestFromEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SOURCE_CACHE_TTL", "five minutes")
	t.Setenv("CACHE_CAPACITY", "-3")

	cfg := FromEnv()

	assert.Equal(t, 5*time.Minute, cfg.Cache.SourceTTL)
	assert.Equal(t, 10000, cfg.Cache.Capacity)
}
