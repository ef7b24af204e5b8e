package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "memory", cfg.StorageType)
	assert.Equal(t, 24*time.Hour, cfg.GameTTL)
	assert.Equal(t, 10, cfg.TokenCost)
	assert.Equal(t, time.Hour, cfg.FinishedGameTTL)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("IOTA_HOST", "127.0.0.1")
	t.Setenv("IOTA_PORT", "9090")
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GAME_TTL", "2h")
	t.Setenv("TOKEN_COST", "4")
	t.Setenv("FINISHED_GAME_TTL", "15m")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "redis", cfg.StorageType)
	assert.Equal(t, "redis://cache:6379", cfg.RedisURL)
	assert.Equal(t, 2*time.Hour, cfg.GameTTL)
	assert.Equal(t, 4, cfg.TokenCost)
	assert.Equal(t, 15*time.Minute, cfg.FinishedGameTTL)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoadRedisRequiresURL(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("IOTA_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Server{LogLevel: "WARN"}.Level())
	assert.Equal(t, slog.LevelError, Server{LogLevel: "error"}.Level())
	assert.Equal(t, slog.LevelInfo, Server{LogLevel: "verbose"}.Level())
}
