package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/iotagame/internal/api"
	"github.com/mcoot/iotagame/internal/api/apierr"
	"github.com/mcoot/iotagame/internal/api/response"
	"github.com/mcoot/iotagame/internal/factory"
	"github.com/mcoot/iotagame/internal/services/auth"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{AuthConfig: auth.Config{Cost: bcrypt.MinCost}})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		GameController: app.GameController,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func (ts *testServer) createGame(t *testing.T, body any) response.CreateGameResponse {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/games", body, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[response.CreateGameResponse](t, rr)
}

func placeBody(cardID string, row, col int) map[string]any {
	return map[string]any{"card_id": cardID, "row": row, "col": col}
}

func assertError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) apierr.APIError {
	t.Helper()
	assert.Equal(t, status, rr.Code, rr.Body.String())
	resp := decodeBody[apierr.ErrorResponse](t, rr)
	assert.Equal(t, code, resp.Error.Code)
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGameDealsDefaultGame(t *testing.T) {
	ts := newTestServer(t)

	created := ts.createGame(t, nil)

	assert.NotEmpty(t, created.Token)
	assert.Equal(t, "in_progress", created.Game.State)
	assert.Len(t, created.Game.Hand, 4)
	require.Len(t, created.Game.Board, 1)
	assert.Equal(t, 0, created.Game.Board[0].Row)
	assert.Equal(t, 0, created.Game.Board[0].Col)
	assert.Empty(t, created.Game.Pending)
	assert.Equal(t, 66-5, created.Game.CardsLeft)
	assert.Nil(t, created.Game.LastTurnScore)
}

func TestCreateGameSetsLocation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", nil, "")
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decodeBody[response.CreateGameResponse](t, rr)
	assert.Equal(t, "/api/v1/games/"+created.Game.ID, rr.Header().Get("Location"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}

func TestCreateGameWithConfig(t *testing.T) {
	ts := newTestServer(t)

	created := ts.createGame(t, map[string]any{"shapes": 3, "colors": 3, "numbers": 3, "duplicates": 0, "hand_size": 3, "max_placements_per_turn": 3})

	assert.Len(t, created.Game.Hand, 3)
	assert.Equal(t, 27-4, created.Game.CardsLeft)
	assert.Equal(t, 3, created.Game.Config.Shapes)
}

func TestCreateGameInvalidConfig(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{"shapes": 9}, "")
	assertError(t, rr, http.StatusBadRequest, apierr.CodeInvalidConfig)
}

func TestGetGame(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+created.Game.ID, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	g := decodeBody[response.Game](t, rr)
	assert.Equal(t, created.Game.ID, g.ID)
	assert.Equal(t, created.Game.Hand, g.Hand)
}

func TestListRecentGames(t *testing.T) {
	ts := newTestServer(t)
	first := ts.createGame(t, nil)
	second := ts.createGame(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decodeBody[response.GameList](t, rr)
	require.Len(t, list.Games, 2)
	ids := []string{list.Games[0].ID, list.Games[1].ID}
	assert.ElementsMatch(t, []string{first.Game.ID, second.Game.ID}, ids)
	assert.Equal(t, "in_progress", list.Games[0].State)
	assert.Equal(t, 61, list.Games[0].CardsLeft)

	rr = ts.request(http.MethodGet, "/api/v1/games?limit=1", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[response.GameList](t, rr).Games, 1)
}

func TestListRecentGamesInvalidLimit(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games?limit=zero", nil, "")
	assertError(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestGetUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/missing", nil, "")
	assertError(t, rr, http.StatusNotFound, apierr.CodeGameNotFound)
}

func TestPlaceRequiresToken(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t, nil)
	path := "/api/v1/games/" + created.Game.ID + "/placements"
	body := placeBody(created.Game.Hand[0].ID, 0, 1)

	rr := ts.request(http.MethodPost, path, body, "")
	assertError(t, rr, http.StatusUnauthorized, apierr.CodeUnauthorized)

	rr = ts.request(http.MethodPost, path, body, "gt_wrong")
	assertError(t, rr, http.StatusUnauthorized, apierr.CodeInvalidToken)
}

func TestTokenOnlyGrantsItsOwnGame(t *testing.T) {
	ts := newTestServer(t)
	first := ts.createGame(t, nil)
	second := ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+second.Game.ID+"/placements",
		placeBody(second.Game.Hand[0].ID, 0, 1), first.Token)
	assertError(t, rr, http.StatusUnauthorized, apierr.CodeInvalidToken)
}

func TestPlaceAndCompleteTurn(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t, nil)
	base := "/api/v1/games/" + created.Game.ID
	card := created.Game.Hand[0]
	starter := created.Game.Board[0].Card

	// Any two cards form a legal line
	rr := ts.request(http.MethodPost, base+"/placements", placeBody(card.ID, 0, 1), created.Token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	g := decodeBody[response.Game](t, rr)
	assert.Len(t, g.Hand, 3)
	require.Len(t, g.Pending, 1)
	assert.Equal(t, card, g.Pending[0].Card)

	rr = ts.request(http.MethodGet, base+"/hints", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	hints := decodeBody[response.Hints](t, rr)
	assert.Equal(t, starter.Number+card.Number, hints.PendingScore)
	assert.Contains(t, hints.ValidPlacements, response.Position{Row: 0, Col: 2})
	assert.NotContains(t, hints.ValidPlacements, response.Position{Row: 1, Col: 0})

	rr = ts.request(http.MethodPost, base+"/turns", nil, created.Token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	result := decodeBody[response.TurnResult](t, rr)
	assert.Equal(t, 1, result.Turn)
	assert.Equal(t, starter.Number+card.Number, result.Score)
	assert.Equal(t, result.Score, result.TotalScore)
	assert.Equal(t, 1, result.CardsDrawn)
	assert.Equal(t, "in_progress", result.State)

	rr = ts.request(http.MethodGet, base, nil, "")
	g = decodeBody[response.Game](t, rr)
	assert.Len(t, g.Hand, 4)
	assert.Len(t, g.Board, 2)
	assert.Empty(t, g.Pending)
	assert.Equal(t, 1, g.TurnNumber)
	require.NotNil(t, g.LastTurnScore)
	assert.Equal(t, result.Score, *g.LastTurnScore)
}

func TestCompleteTurnWithoutPlacements(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.Game.ID+"/turns", nil, created.Token)
	assertError(t, rr, http.StatusConflict, apierr.CodeNoPendingPlacements)
}

func TestPlaceNotAdjacent(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.Game.ID+"/placements",
		placeBody(created.Game.Hand[0].ID, 5, 5), created.Token)
	apiErr := assertError(t, rr, http.StatusUnprocessableEntity, apierr.CodeIllegalPlacement)
	assert.Equal(t, "not_adjacent", apiErr.Reason)
	assert.Equal(t, "Card must be placed adjacent to existing cards", apiErr.Message)
}

func TestPlaceCardNotInHand(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.Game.ID+"/placements",
		placeBody("card-999", 0, 1), created.Token)
	assertError(t, rr, http.StatusBadRequest, apierr.CodeCardNotInHand)
}

func TestPlaceMissingCardID(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t, nil)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+created.Game.ID+"/placements",
		map[string]any{"row": 0, "col": 1}, created.Token)
	assertError(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestUndoPlacement(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t, nil)
	base := "/api/v1/games/" + created.Game.ID

	rr := ts.request(http.MethodDelete, base+"/placements/last", nil, created.Token)
	assertError(t, rr, http.StatusConflict, apierr.CodeNoPendingPlacements)

	rr = ts.request(http.MethodPost, base+"/placements", placeBody(created.Game.Hand[0].ID, 1, 0), created.Token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodDelete, base+"/placements/last", nil, created.Token)
	require.Equal(t, http.StatusOK, rr.Code)
	g := decodeBody[response.Game](t, rr)
	assert.Empty(t, g.Pending)
	assert.ElementsMatch(t, created.Game.Hand, g.Hand)
}

func TestHintsAfterDeal(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t, nil)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+created.Game.ID+"/hints", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	hints := decodeBody[response.Hints](t, rr)

	assert.Equal(t, []response.Position{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}, {Row: 1, Col: 0}}, hints.ValidPlacements)
	assert.Empty(t, hints.ImpossibleSquares)
	assert.NotNil(t, hints.ImpossibleSquares)
	assert.Equal(t, 0, hints.PendingScore)
}

func TestCheckPlacement(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t, nil)
	path := "/api/v1/games/" + created.Game.ID + "/check"

	rr := ts.request(http.MethodPost, path, placeBody(created.Game.Hand[0].ID, 0, 1), "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeBody[response.Verdict](t, rr).Valid)

	rr = ts.request(http.MethodPost, path, placeBody(created.Game.Hand[0].ID, 0, 0), "")
	require.Equal(t, http.StatusOK, rr.Code)
	verdict := decodeBody[response.Verdict](t, rr)
	assert.False(t, verdict.Valid)
	assert.Equal(t, "position_occupied", verdict.Reason)
}

func TestAbandonGame(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createGame(t, nil)
	base := "/api/v1/games/" + created.Game.ID

	rr := ts.request(http.MethodDelete, base, nil, "")
	assertError(t, rr, http.StatusUnauthorized, apierr.CodeUnauthorized)

	rr = ts.request(http.MethodDelete, base, nil, created.Token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodPost, base+"/placements", placeBody(created.Game.Hand[0].ID, 0, 1), created.Token)
	assertError(t, rr, http.StatusConflict, apierr.CodeGameAbandoned)

	rr = ts.request(http.MethodGet, base, nil, "")
	assert.Equal(t, "abandoned", decodeBody[response.Game](t, rr).State)
}

// Rules endpoints

func card(number int, color, shape string) map[string]any {
	return map[string]any{"number": number, "color": color, "shape": shape}
}

func cell(c map[string]any, row, col int) map[string]any {
	return map[string]any{"card": c, "row": row, "col": col}
}

func TestRulesValidateFixedShapeConflict(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rules/validate", map[string]any{
		"board": []any{cell(card(1, "red", "triangle"), 0, 0), cell(card(2, "red", "triangle"), 0, 1)},
		"card":  card(1, "blue", "square"),
		"row":   0,
		"col":   2,
	}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	verdict := decodeBody[response.Verdict](t, rr)

	assert.False(t, verdict.Valid)
	assert.Equal(t, "attribute_conflict_with_fixed_value", verdict.Reason)
	assert.Equal(t, "shape", verdict.Attribute)
	assert.Equal(t, "Horizontal line requires all shapes to be triangle, but you're trying to place square", verdict.Message)
}

func TestRulesValidateTurnAxis(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rules/validate", map[string]any{
		"board":   []any{cell(card(1, "red", "triangle"), 0, 0)},
		"pending": []any{cell(card(2, "red", "triangle"), 0, 1), cell(card(3, "red", "triangle"), 0, 2)},
		"card":    card(2, "green", "triangle"),
		"row":     1,
		"col":     2,
	}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "turn_axis_violation", decodeBody[response.Verdict](t, rr).Reason)
}

func TestRulesValidateRejectsCardOutsideAlphabet(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rules/validate", map[string]any{
		"card": card(6, "red", "triangle"),
		"row":  0,
		"col":  0,
	}, "")
	assertError(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestRulesScore(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rules/score", map[string]any{
		"board":      []any{cell(card(1, "red", "triangle"), 0, 0)},
		"placements": []any{cell(card(2, "red", "triangle"), 0, 1)},
	}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	score := decodeBody[response.Score](t, rr)

	assert.Equal(t, 3, score.Score)
	require.Len(t, score.Lines, 1)
	assert.Equal(t, 3, score.Lines[0].Points)
	assert.Empty(t, score.Isolated)
}

func TestRulesImpossible(t *testing.T) {
	ts := newTestServer(t)
	board := []any{
		cell(card(1, "red", "triangle"), 0, 0),
		cell(card(2, "red", "triangle"), 0, 1),
		cell(card(1, "red", "square"), -2, 2),
		cell(card(1, "green", "square"), -1, 2),
	}

	rr := ts.request(http.MethodPost, "/api/v1/rules/impossible", map[string]any{"board": board}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, []response.Position{{Row: 0, Col: 2}}, decodeBody[response.Positions](t, rr).Positions)

	rr = ts.request(http.MethodPost, "/api/v1/rules/impossible", map[string]any{"board": board, "row": 0, "col": 2}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.True(t, decodeBody[response.Impossible](t, rr).Impossible)

	rr = ts.request(http.MethodPost, "/api/v1/rules/impossible", map[string]any{"board": board, "wild_cards": true}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Empty(t, decodeBody[response.Positions](t, rr).Positions)

	rr = ts.request(http.MethodPost, "/api/v1/rules/impossible", map[string]any{"board": board, "row": 0}, "")
	assertError(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestRulesPlacements(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rules/placements", map[string]any{}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, []response.Position{{Row: 0, Col: 0}}, decodeBody[response.Positions](t, rr).Positions)
}

func TestRulesInvalidAlphabet(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rules/placements", map[string]any{"alphabet": map[string]any{"shapes": 2}}, "")
	assertError(t, rr, http.StatusBadRequest, apierr.CodeInvalidConfig)
}
