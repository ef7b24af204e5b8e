package auth

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/iotagame/internal/dependencies/random"
	"github.com/mcoot/iotagame/internal/model"
	"github.com/mcoot/iotagame/internal/storage"
)

// tokenPrefix marks game access tokens
const tokenPrefix = "gt_"

// Service issues and checks per-game access tokens. Only a bcrypt hash of
// each token is kept, on the game record itself.
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger
	cost    int
}

// Config holds configuration for the auth service
type Config struct {
	// Cost is the bcrypt cost used when hashing new tokens
	Cost int
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		Cost: bcrypt.DefaultCost,
	}
}

// New creates a new AuthService
func New(storage storage.Storage, random random.Random, logger *slog.Logger, cfg Config) *Service {
	if cfg.Cost == 0 {
		cfg.Cost = DefaultConfig().Cost
	}
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
		cost:    cfg.Cost,
	}
}

// IssueToken generates a new access token and returns it with its hash
func (s *Service) IssueToken() (token string, hash string, err error) {
	b := make([]byte, 24)
	if err := s.random.Read(b); err != nil {
		return "", "", fmt.Errorf("generate token: %w", err)
	}
	token = tokenPrefix + base64.RawURLEncoding.EncodeToString(b)

	hashed, err := bcrypt.GenerateFromPassword([]byte(token), s.cost)
	if err != nil {
		return "", "", fmt.Errorf("hash token: %w", err)
	}
	return token, string(hashed), nil
}

// VerifyToken checks a token against a stored hash
func (s *Service) VerifyToken(hash, token string) error {
	if hash == "" || token == "" {
		return model.ErrInvalidToken
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)); err != nil {
		return model.ErrInvalidToken
	}
	return nil
}

// Authorize checks that token grants access to a game
func (s *Service) Authorize(ctx context.Context, gameID model.GameID, token string) error {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if err := s.VerifyToken(game.TokenHash, token); err != nil {
		s.logger.Warn("game token rejected", slog.String("game_id", string(gameID)))
		return err
	}
	return nil
}
