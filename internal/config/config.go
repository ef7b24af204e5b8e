package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server holds the server's environment configuration
type Server struct {
	Host        string        `env:"IOTA_HOST"`
	Port        int           `env:"IOTA_PORT" envDefault:"8080"`
	StorageType string        `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string        `env:"REDIS_URL"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	GameTTL     time.Duration `env:"GAME_TTL" envDefault:"24h"`
	TokenCost   int           `env:"TOKEN_COST" envDefault:"10"`

	FinishedGameTTL time.Duration `env:"FINISHED_GAME_TTL" envDefault:"1h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load parses server configuration from environment variables
func Load() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		return Server{}, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
	}
	return cfg, nil
}

// Level maps LOG_LEVEL to a slog level, defaulting to info
func (s Server) Level() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
