package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/iotagame/internal/model"
	"github.com/mcoot/iotagame/internal/storage"
)

// Storage keeps games in process. Games are copied in and out so callers
// never share state with the store.
type Storage struct {
	mu    sync.RWMutex
	games map[model.GameID]*model.Game
}

// New creates an empty in-memory store
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.Game),
	}
}

var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(_ context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game.Clone()
	return nil
}

func (s *Storage) GetGame(_ context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game.Clone(), nil
}

func (s *Storage) DeleteGame(_ context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// RecentGames orders by creation time, breaking ties by ID
func (s *Storage) RecentGames(_ context.Context, limit int) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]*model.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, g)
	}
	slices.SortFunc(games, func(a, b *model.Game) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return 1
		}
		if a.ID > b.ID {
			return -1
		}
		return 0
	})

	if limit > 0 && len(games) > limit {
		games = games[:limit]
	}
	result := make([]*model.Game, len(games))
	for i, g := range games {
		result[i] = g.Clone()
	}
	return result, nil
}
