package deck

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/iotagame/internal/dependencies/mocks"
	"github.com/mcoot/iotagame/internal/model"
	"github.com/mcoot/iotagame/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random, testutil.NopLogger())
}

// Build tests

func (s *ServiceSuite) TestBuildDefaultDeck() {
	cards := Build(model.DefaultAlphabet(), model.DefaultGameConfig())

	s.Len(cards, 66)
	s.Equal(cards[0].Shape, cards[64].Shape)
	s.Equal(cards[0].Color, cards[65].Color)
	s.Equal(cards[0].Number, cards[65].Number)
}

func (s *ServiceSuite) TestBuildUniqueIDs() {
	cfg := model.DefaultGameConfig()
	cfg.WildCards = 2
	cards := Build(model.DefaultAlphabet(), cfg)

	seen := make(map[model.CardID]bool)
	for _, c := range cards {
		s.False(seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
	s.Len(cards, 68)
	s.True(cards[66].Wild)
	s.True(cards[67].Wild)
}

func (s *ServiceSuite) TestBuildCoversEveryCombination() {
	alphabet, err := model.NewAlphabet(3, 5, 6)
	s.Require().NoError(err)
	cfg := model.DefaultGameConfig()
	cfg.Duplicates = 0

	cards := Build(alphabet, cfg)

	s.Len(cards, 3*5*6)
	combos := make(map[string]bool)
	for _, c := range cards {
		combos[c.String()] = true
	}
	s.Len(combos, 3*5*6)
}

// Shuffle tests

func (s *ServiceSuite) TestShuffleDoesNotMutateInput() {
	cards := Build(model.DefaultAlphabet(), model.DefaultGameConfig())
	original := make([]model.Card, len(cards))
	copy(original, cards)

	s.random.QueueIntn(3, 1, 0)
	_ = s.service.Shuffle(cards)

	s.Equal(original, cards)
}

func (s *ServiceSuite) TestShuffleUsesRandomSwaps() {
	cards := []model.Card{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	// i=2 swaps with 0, i=1 swaps with 1.
	s.random.QueueIntn(0, 1)
	shuffled := s.service.Shuffle(cards)

	s.Equal([]model.CardID{"c", "b", "a"}, ids(shuffled))
}

func (s *ServiceSuite) TestNewShuffledRejectsBadConfig() {
	cfg := model.DefaultGameConfig()
	cfg.Shapes = 9

	_, err := s.service.NewShuffled(cfg)
	s.ErrorIs(err, model.ErrInvalidAlphabet)
}

func (s *ServiceSuite) TestNewShuffledKeepsEveryCard() {
	cards, err := s.service.NewShuffled(model.DefaultGameConfig())
	s.Require().NoError(err)
	s.Len(cards, 66)
}

func ids(cards []model.Card) []model.CardID {
	result := make([]model.CardID, len(cards))
	for i, c := range cards {
		result[i] = c.ID
	}
	return result
}
