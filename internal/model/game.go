package model

import (
	"fmt"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress" // Player is taking turns
	GameStateComplete   GameState = "complete"    // Hand ran out after drawing
	GameStateAbandoned  GameState = "abandoned"   // Game was cancelled
)

// GameConfig holds the settings resolved once when a game is created
type GameConfig struct {
	Shapes               int // Size of the shape domain
	Colors               int // Size of the color domain
	Numbers              int // Size of the number domain
	HandSize             int // Cards held between turns
	MaxPlacementsPerTurn int
	Duplicates           int // Extra copies of the first card in the deck
	WildCards            int
}

// DefaultGameConfig returns the standard solo game settings
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Shapes:               4,
		Colors:               4,
		Numbers:              4,
		HandSize:             4,
		MaxPlacementsPerTurn: 4,
		Duplicates:           2,
		WildCards:            0,
	}
}

// Alphabet resolves the attribute domains for this configuration
func (c GameConfig) Alphabet() (Alphabet, error) {
	return NewAlphabet(c.Shapes, c.Colors, c.Numbers)
}

// Validate checks the configuration is playable
func (c GameConfig) Validate() error {
	if _, err := c.Alphabet(); err != nil {
		return err
	}
	if c.HandSize < 1 {
		return fmt.Errorf("%w: hand size must be positive", ErrInvalidGameConfig)
	}
	if c.MaxPlacementsPerTurn < 1 || c.MaxPlacementsPerTurn > c.HandSize {
		return fmt.Errorf("%w: placements per turn must be between 1 and the hand size", ErrInvalidGameConfig)
	}
	if c.Duplicates < 0 || c.WildCards < 0 {
		return fmt.Errorf("%w: card counts cannot be negative", ErrInvalidGameConfig)
	}
	return nil
}

// Game is a single solo session: a deck, a hand, the committed board and
// the current turn's pending placements
type Game struct {
	ID     GameID
	State  GameState
	Config GameConfig

	Deck    []Card      // Draw pile, top card first
	Hand    []Card      // Cards available to place
	Board   []Placement // Committed cards
	Pending []Placement // This turn's placements, in placement order

	Score         int
	LastTurnScore *int // nil before the first completed turn
	TurnNumber    int  // Completed turns

	TokenHash string // bcrypt hash of the game's access token

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BoardSnapshot returns the committed board
func (g *Game) BoardSnapshot() (*Board, error) {
	return NewBoard(g.Board...)
}

// IsActive returns true while turns can still be played
func (g *Game) IsActive() bool {
	return g.State == GameStateInProgress
}

// HandIndex returns the index of a card in the hand, or -1
func (g *Game) HandIndex(id CardID) int {
	for i, c := range g.Hand {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	c := *g
	c.Deck = append([]Card(nil), g.Deck...)
	c.Hand = append([]Card(nil), g.Hand...)
	c.Board = append([]Placement(nil), g.Board...)
	c.Pending = append([]Placement(nil), g.Pending...)
	if g.LastTurnScore != nil {
		score := *g.LastTurnScore
		c.LastTurnScore = &score
	}
	return &c
}

// TurnResult summarizes a completed turn
type TurnResult struct {
	Turn       int         // Number of the turn just completed, from 1
	Placements []Placement // Cards committed this turn
	Score      int         // Points scored this turn
	TotalScore int
	CardsDrawn int
	State      GameState // Game state after the turn
}
