package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/iotagame/internal/api/request"
	"github.com/mcoot/iotagame/internal/api/response"
	"github.com/mcoot/iotagame/internal/model"
	"github.com/mcoot/iotagame/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, NewInvalidRequestError("invalid request body"))
			return
		}
	}

	g, token, err := h.gameController.CreateGame(r.Context(), req.ToConfig())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, "/api/v1/games/"+string(g.ID), response.CreateGameResponse{
		Game:  response.GameFromModel(g),
		Token: token,
	})
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = n
	}

	games, err := h.gameController.RecentGames(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameListFromModel(games))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Abandon handles DELETE /api/v1/games/{id}
func (h *GameHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.AbandonGame(r.Context(), gameID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Place handles POST /api/v1/games/{id}/placements
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePlaceRequest(w, r)
	if !ok {
		return
	}

	g, err := h.gameController.PlaceCard(r.Context(), gameID(r), model.CardID(req.CardID), req.Position())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Undo handles DELETE /api/v1/games/{id}/placements/last
func (h *GameHandler) Undo(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.UndoPlacement(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// CompleteTurn handles POST /api/v1/games/{id}/turns
func (h *GameHandler) CompleteTurn(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.CompleteTurn(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TurnResultFromModel(result))
}

// Hints handles GET /api/v1/games/{id}/hints
func (h *GameHandler) Hints(w http.ResponseWriter, r *http.Request) {
	hints, err := h.gameController.Hints(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.HintsFromService(hints))
}

// Check handles POST /api/v1/games/{id}/check
func (h *GameHandler) Check(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePlaceRequest(w, r)
	if !ok {
		return
	}

	verdict, err := h.gameController.CheckPlacement(r.Context(), gameID(r), model.CardID(req.CardID), req.Position())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.VerdictFromRules(verdict))
}

func decodePlaceRequest(w http.ResponseWriter, r *http.Request) (request.PlaceRequest, bool) {
	var req request.PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return req, false
	}
	if req.CardID == "" {
		WriteError(w, NewInvalidRequestError("card_id is required"))
		return req, false
	}
	return req, true
}
