package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/iotagame/internal/dependencies/clock"
	"github.com/mcoot/iotagame/internal/dependencies/random"
	"github.com/mcoot/iotagame/internal/model"
	"github.com/mcoot/iotagame/internal/services/auth"
	"github.com/mcoot/iotagame/internal/services/deck"
	"github.com/mcoot/iotagame/internal/services/rules"
	"github.com/mcoot/iotagame/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Bounds for RecentGames
const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

// Controller manages the game state machine and turn flow
type Controller struct {
	storage     storage.Storage
	deckService *deck.Service
	authService *auth.Service
	clock       clock.Clock
	random      random.Random
	logger      *slog.Logger

	// mu serializes read-modify-write cycles on stored games
	mu sync.Mutex
}

// Hints describes the open moves for the current turn
type Hints struct {
	ValidPlacements   []model.Position
	ImpossibleSquares []model.Position
	PendingScore      int
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	deckService *deck.Service,
	authService *auth.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:     storage,
		deckService: deckService,
		authService: authService,
		clock:       clock,
		random:      random,
		logger:      logger,
	}
}

// CreateGame deals a new game and returns it with its access token. The
// hand is dealt first and the next card is laid at the origin.
func (c *Controller) CreateGame(ctx context.Context, cfg model.GameConfig) (*model.Game, string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	cards, err := c.deckService.NewShuffled(cfg)
	if err != nil {
		return nil, "", err
	}

	token, hash, err := c.authService.IssueToken()
	if err != nil {
		return nil, "", err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.String(12, gameIDAlphabet)),
		State:     model.GameStateInProgress,
		Config:    cfg,
		TokenHash: hash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	handSize := min(cfg.HandSize, len(cards))
	game.Hand = cards[:handSize]
	cards = cards[handSize:]
	if len(cards) > 0 {
		game.Board = []model.Placement{{Card: cards[0], Position: model.Origin}}
		cards = cards[1:]
	}
	game.Deck = cards

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, "", err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("deck_size", len(game.Deck)),
		slog.Int("wild_cards", cfg.WildCards),
	)

	return game, token, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// RecentGames lists stored games newest first. Limits outside 1..MaxRecentLimit
// fall back to DefaultRecentLimit or are capped.
func (c *Controller) RecentGames(ctx context.Context, limit int) ([]*model.Game, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}
	return c.storage.RecentGames(ctx, limit)
}

// PlaceCard moves a card from the hand to a pending placement
func (c *Controller) PlaceCard(ctx context.Context, gameID model.GameID, cardID model.CardID, pos model.Position) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	idx := game.HandIndex(cardID)
	if idx < 0 {
		return nil, model.ErrCardNotInHand
	}
	if len(game.Pending) >= game.Config.MaxPlacementsPerTurn {
		return nil, model.ErrTurnLimitReached
	}

	engine, board, err := c.snapshot(game)
	if err != nil {
		return nil, err
	}

	card := game.Hand[idx]
	if err := engine.ExplainPending(card, pos, board, game.Pending).Err(); err != nil {
		c.logger.Debug("placement rejected",
			slog.String("game_id", string(gameID)),
			slog.String("card", card.String()),
			slog.String("position", pos.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	game.Hand = append(game.Hand[:idx], game.Hand[idx+1:]...)
	game.Pending = append(game.Pending, model.Placement{Card: card, Position: pos})
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// UndoPlacement returns the most recent pending card to the hand
func (c *Controller) UndoPlacement(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(game.Pending) == 0 {
		return nil, model.ErrNoPendingPlacements
	}

	last := game.Pending[len(game.Pending)-1]
	game.Pending = game.Pending[:len(game.Pending)-1]
	game.Hand = append(game.Hand, last.Card)
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// CompleteTurn scores and commits the pending placements, then refills the
// hand from the deck. The game is complete once the hand is empty.
func (c *Controller) CompleteTurn(ctx context.Context, gameID model.GameID) (*model.TurnResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if len(game.Pending) == 0 {
		return nil, model.ErrNoPendingPlacements
	}

	engine, board, err := c.snapshot(game)
	if err != nil {
		return nil, err
	}
	points, err := engine.CalculateScore(game.Pending, board)
	if err != nil {
		return nil, err
	}

	committed := game.Pending
	game.Board = append(game.Board, committed...)
	game.Pending = nil

	drawn := min(game.Config.HandSize-len(game.Hand), len(game.Deck))
	game.Hand = append(game.Hand, game.Deck[:drawn]...)
	game.Deck = game.Deck[drawn:]

	game.Score += points
	game.LastTurnScore = &points
	game.TurnNumber++
	if len(game.Hand) == 0 {
		game.State = model.GameStateComplete
	}
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("turn completed",
		slog.String("game_id", string(gameID)),
		slog.Int("turn", game.TurnNumber),
		slog.Int("placements", len(committed)),
		slog.Int("score", points),
	)
	if game.State == model.GameStateComplete {
		c.logger.Info("game completed",
			slog.String("game_id", string(gameID)),
			slog.Int("final_score", game.Score),
			slog.Int("total_turns", game.TurnNumber),
			slog.Duration("duration", c.clock.Since(game.CreatedAt)),
		)
	}

	return &model.TurnResult{
		Turn:       game.TurnNumber,
		Placements: committed,
		Score:      points,
		TotalScore: game.Score,
		CardsDrawn: drawn,
		State:      game.State,
	}, nil
}

// AbandonGame ends a game prematurely
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if !game.IsActive() {
		return nil // Already finished
	}

	game.State = model.GameStateAbandoned
	game.UpdatedAt = c.clock.Now()

	c.logger.Info("game abandoned",
		slog.String("game_id", string(gameID)),
		slog.Int("turn", game.TurnNumber),
	)

	return c.storage.SaveGame(ctx, game)
}

// Hints lists where a card could go this turn, which bordering squares are
// dead, and what the pending placements would score
func (c *Controller) Hints(ctx context.Context, gameID model.GameID) (*Hints, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	engine, board, err := c.snapshot(game)
	if err != nil {
		return nil, err
	}

	valid, err := rules.ValidPlacements(board, game.Pending)
	if err != nil {
		return nil, err
	}

	combined, err := board.With(game.Pending...)
	if err != nil {
		return nil, err
	}

	hints := &Hints{
		ValidPlacements:   valid,
		ImpossibleSquares: engine.ImpossibleSquares(combined),
	}
	if len(game.Pending) > 0 {
		hints.PendingScore, err = engine.CalculateScore(game.Pending, board)
		if err != nil {
			return nil, err
		}
	}
	return hints, nil
}

// CheckPlacement reports whether a card in hand could be placed at pos now,
// without changing the game
func (c *Controller) CheckPlacement(ctx context.Context, gameID model.GameID, cardID model.CardID, pos model.Position) (rules.Verdict, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return rules.Verdict{}, err
	}

	idx := game.HandIndex(cardID)
	if idx < 0 {
		return rules.Verdict{}, model.ErrCardNotInHand
	}

	engine, board, err := c.snapshot(game)
	if err != nil {
		return rules.Verdict{}, err
	}
	return engine.ExplainPending(game.Hand[idx], pos, board, game.Pending), nil
}

// activeGame loads a game that can still be played
func (c *Controller) activeGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	switch game.State {
	case model.GameStateComplete:
		return nil, model.ErrGameComplete
	case model.GameStateAbandoned:
		return nil, model.ErrGameAbandoned
	}
	return game, nil
}

// snapshot builds the rules engine and committed board for a game
func (c *Controller) snapshot(game *model.Game) (*rules.Service, *model.Board, error) {
	alphabet, err := game.Config.Alphabet()
	if err != nil {
		return nil, nil, err
	}
	board, err := game.BoardSnapshot()
	if err != nil {
		return nil, nil, err
	}
	return rules.New(alphabet, rules.WithWildCards(game.Config.WildCards > 0)), board, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, cfg model.GameConfig) (*model.Game, string, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	RecentGames(ctx context.Context, limit int) ([]*model.Game, error)
	PlaceCard(ctx context.Context, gameID model.GameID, cardID model.CardID, pos model.Position) (*model.Game, error)
	UndoPlacement(ctx context.Context, gameID model.GameID) (*model.Game, error)
	CompleteTurn(ctx context.Context, gameID model.GameID) (*model.TurnResult, error)
	AbandonGame(ctx context.Context, gameID model.GameID) error
	Hints(ctx context.Context, gameID model.GameID) (*Hints, error)
	CheckPlacement(ctx context.Context, gameID model.GameID, cardID model.CardID, pos model.Position) (rules.Verdict, error)
}

var _ ControllerInterface = (*Controller)(nil)
