package redis

import (
	"fmt"

	"github.com/mcoot/iotagame/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "iota"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// recentGamesKey returns the sorted set of game IDs scored by creation time
func recentGamesKey() string {
	return keyPrefix + ":games:recent"
}
