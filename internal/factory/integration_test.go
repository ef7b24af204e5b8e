package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/iotagame/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

// newGame deals a game without duplicates. The rotated deck gives a hand of
// 1-red-square, 1-red-circle, 1-red-cross, 1-green-triangle and a
// 1-green-square starter.
func (s *IntegrationSuite) newGame() (*model.Game, string) {
	s.app.MockRandom.QueueString("GAME01")
	cfg := model.DefaultGameConfig()
	cfg.Duplicates = 0

	game, token, err := s.app.GameController.CreateGame(s.ctx, cfg)
	s.Require().NoError(err)
	return game, token
}

func (s *IntegrationSuite) TestDealIsDeterministic() {
	game, _ := s.newGame()

	s.Equal(model.GameID("GAME01"), game.ID)
	s.Equal([]model.CardID{"card-1", "card-2", "card-3", "card-4"}, []model.CardID{
		game.Hand[0].ID, game.Hand[1].ID, game.Hand[2].ID, game.Hand[3].ID,
	})
	s.Equal("1-green-square", game.Board[0].Card.String())
	s.Equal(model.CardID("card-6"), game.Deck[0].ID)
	s.Equal(model.CardID("card-0"), game.Deck[len(game.Deck)-1].ID)
}

// Test: two turns from deal to scoring, with a rejected move in between
func (s *IntegrationSuite) TestPlayTwoTurns() {
	game, token := s.newGame()
	s.Require().NoError(s.app.AuthService.Authorize(s.ctx, game.ID, token))

	// Turn 1: red square beside the green square starter
	_, err := s.app.GameController.PlaceCard(s.ctx, game.ID, "card-1", pos(0, 1))
	s.Require().NoError(err)

	// A red circle would break the run of squares
	_, err = s.app.GameController.PlaceCard(s.ctx, game.ID, "card-2", pos(0, 2))
	var placementErr *model.PlacementError
	s.Require().ErrorAs(err, &placementErr)
	s.Equal(model.ReasonConflictWithFixedValue, placementErr.Reason)

	result, err := s.app.GameController.CompleteTurn(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(2, result.Score)
	s.Equal(1, result.CardsDrawn)

	// Turn 2: the drawn green circle above the starter
	game, err = s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.CardID("card-6"), game.Hand[len(game.Hand)-1].ID)

	_, err = s.app.GameController.PlaceCard(s.ctx, game.ID, "card-6", pos(-1, 0))
	s.Require().NoError(err)

	result, err = s.app.GameController.CompleteTurn(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(2, result.Score)
	s.Equal(4, result.TotalScore)
	s.Equal(2, result.Turn)

	game, err = s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Len(game.Board, 3)
	s.Len(game.Hand, 4)
	s.Equal(model.GameStateInProgress, game.State)
}

func (s *IntegrationSuite) TestHintsAfterDeal() {
	game, _ := s.newGame()

	hints, err := s.app.GameController.Hints(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal([]model.Position{pos(-1, 0), pos(0, -1), pos(0, 1), pos(1, 0)}, hints.ValidPlacements)
	s.Empty(hints.ImpossibleSquares)
}

func (s *IntegrationSuite) TestNewRejectsUnknownStorage() {
	_, err := New(Config{StorageType: "postgres"})
	s.Error(err)

	_, err = New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewDefaultsToMemory() {
	app, err := New(Config{})
	s.Require().NoError(err)
	s.NotNil(app.GameController)
}
