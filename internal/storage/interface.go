package storage

import (
	"context"

	"github.com/mcoot/iotagame/internal/model"
)

// Storage defines the interface for game session persistence
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// RecentGames returns up to limit stored games, newest first
	RecentGames(ctx context.Context, limit int) ([]*model.Game, error)
}
