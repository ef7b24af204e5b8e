package deck

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/iotagame/internal/dependencies/random"
	"github.com/mcoot/iotagame/internal/model"
)

// Service builds and shuffles decks
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new deck service
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// Build returns an unshuffled deck: one card per value combination, then
// the configured duplicates of the first combination, then wild cards.
// Every card gets a distinct ID.
func Build(alphabet model.Alphabet, cfg model.GameConfig) []model.Card {
	combos := alphabet.Cards()
	cards := make([]model.Card, 0, len(combos)+cfg.Duplicates+cfg.WildCards)

	next := func(c model.Card) {
		c.ID = model.CardID(fmt.Sprintf("card-%d", len(cards)))
		cards = append(cards, c)
	}

	for _, c := range combos {
		next(c)
	}
	for i := 0; i < cfg.Duplicates && len(combos) > 0; i++ {
		next(combos[0])
	}
	for i := 0; i < cfg.WildCards; i++ {
		next(model.Card{Wild: true})
	}
	return cards
}

// Shuffle returns a shuffled copy of cards
func (s *Service) Shuffle(cards []model.Card) []model.Card {
	shuffled := make([]model.Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// NewShuffled builds a deck for the configuration and shuffles it
func (s *Service) NewShuffled(cfg model.GameConfig) ([]model.Card, error) {
	alphabet, err := cfg.Alphabet()
	if err != nil {
		return nil, err
	}
	cards := s.Shuffle(Build(alphabet, cfg))
	s.logger.Debug("deck shuffled",
		"cards", len(cards),
		"duplicates", cfg.Duplicates,
		"wild_cards", cfg.WildCards,
	)
	return cards, nil
}
