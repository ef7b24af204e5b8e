package redis

import "time"

// Config holds Redis connection and retention settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	PoolSize     int
	MinIdleConns int

	// GameTTL applies while a game is in progress; FinishedGameTTL once it
	// is complete or abandoned
	GameTTL         time.Duration
	FinishedGameTTL time.Duration

	// RecentLimit caps the recent games index
	RecentLimit int
}

// DefaultConfig returns the settings used when only a URL is supplied
func DefaultConfig() Config {
	return Config{
		URL:             "redis://localhost:6379",
		PoolSize:        10,
		MinIdleConns:    2,
		GameTTL:         24 * time.Hour,
		FinishedGameTTL: time.Hour,
		RecentLimit:     100,
	}
}
