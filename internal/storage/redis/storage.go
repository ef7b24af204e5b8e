package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/iotagame/internal/model"
	"github.com/mcoot/iotagame/internal/storage"
)

// Storage keeps each game as a JSON document with a TTL, plus a sorted set
// indexing game IDs by creation time
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New connects to Redis and verifies the connection
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

var _ storage.Storage = (*Storage)(nil)

// ttlFor returns how long a game is kept; ended games expire sooner
func (s *Storage) ttlFor(game *model.Game) time.Duration {
	if game.IsActive() {
		return s.cfg.GameTTL
	}
	return s.cfg.FinishedGameTTL
}

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", game.ID, err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.ID), data, s.ttlFor(game))
		pipe.ZAdd(ctx, recentGamesKey(), redis.Z{
			Score:  float64(game.CreatedAt.UnixMilli()),
			Member: string(game.ID),
		})
		if s.cfg.RecentLimit > 0 {
			pipe.ZRemRangeByRank(ctx, recentGamesKey(), 0, int64(-s.cfg.RecentLimit-1))
		}
		return nil
	})
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("decode game %s: %w", id, err)
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, gameKey(id))
	pipe.ZRem(ctx, recentGamesKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}

// RecentGames reads the index newest first. IDs whose game has expired are
// pruned from the index as they are found, and reading carries on past them
// until limit live games are collected or the index runs out.
func (s *Storage) RecentGames(ctx context.Context, limit int) ([]*model.Game, error) {
	games := []*model.Game{}
	var stale []any

	for start := int64(0); ; {
		stop := int64(-1)
		if limit > 0 {
			stop = start + int64(limit-len(games)) - 1
		}
		ids, err := s.client.ZRevRange(ctx, recentGamesKey(), start, stop).Result()
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			break
		}

		page, expired, err := s.loadGames(ctx, ids)
		if err != nil {
			return nil, err
		}
		games = append(games, page...)
		stale = append(stale, expired...)

		if limit <= 0 || len(games) >= limit || int64(len(ids)) < stop-start+1 {
			break
		}
		start += int64(len(ids))
	}

	if len(stale) > 0 {
		if err := s.client.ZRem(ctx, recentGamesKey(), stale...).Err(); err != nil {
			return nil, err
		}
	}
	return games, nil
}

// loadGames fetches games by ID in one round trip, returning the IDs that
// no longer have a stored game separately
func (s *Storage) loadGames(ctx context.Context, ids []string) ([]*model.Game, []any, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = gameKey(model.GameID(id))
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, nil, err
	}

	games := make([]*model.Game, 0, len(values))
	var stale []any
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var game model.Game
		if err := json.Unmarshal([]byte(raw), &game); err != nil {
			return nil, nil, fmt.Errorf("decode game %s: %w", ids[i], err)
		}
		games = append(games, &game)
	}
	return games, stale, nil
}
