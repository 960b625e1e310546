package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLive, cfg.Environment)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 3, cfg.Worker.Concurrency)
	assert.Equal(t, time.Second, cfg.Worker.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.Worker.HeartbeatInterval)
	assert.Equal(t, 30*time.Second, cfg.Worker.ShutdownTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Worker.StaleThreshold)
	assert.Equal(t, "https://api.openai.com/v1", cfg.ChatModel.URL)
	assert.Empty(t, cfg.RateLimit.RedisURL, "limiter is fail-open by default")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENGINE_ENV", "test")
	t.Setenv("WORKER_CONCURRENCY", "7")
	t.Setenv("WORKER_POLL_INTERVAL_MS", "250")
	t.Setenv("WORKER_HEARTBEAT_INTERVAL_MS", "5000")
	t.Setenv("WORKER_SHUTDOWN_TIMEOUT_MS", "10000")
	t.Setenv("RATE_LIMIT_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CHAT_PROVIDER_MODEL", "gpt-4.1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvTest, cfg.Environment)
	assert.Equal(t, 7, cfg.Worker.Concurrency)
	assert.Equal(t, 250*time.Millisecond, cfg.Worker.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.Worker.HeartbeatInterval)
	assert.Equal(t, 10*time.Second, cfg.Worker.ShutdownTimeout)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RateLimit.RedisURL)
	assert.Equal(t, "gpt-4.1", cfg.DefaultModel)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad environment", func(t *testing.T) {
		t.Setenv("ENGINE_ENV", "staging")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-numeric concurrency", func(t *testing.T) {
		t.Setenv("WORKER_CONCURRENCY", "lots")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero concurrency", func(t *testing.T) {
		t.Setenv("WORKER_CONCURRENCY", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
