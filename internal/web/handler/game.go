package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/mcoot/iotagame/internal/model"
	"github.com/mcoot/iotagame/internal/services/game"
	"github.com/mcoot/iotagame/internal/web/templates/components"
	"github.com/mcoot/iotagame/internal/web/templates/pages"
)

// GameHandler renders read-only game views
type GameHandler struct {
	gameController game.ControllerInterface
	logger         *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameController game.ControllerInterface, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		logger:         logger,
	}
}

// View renders the game page. HTMX requests get only the board.
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	data, err := h.load(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		render(w, r, http.StatusOK, components.Board(data.BoardData()))
		return
	}
	render(w, r, http.StatusOK, pages.Game(*data))
}

// Board renders just the board grid
func (h *GameHandler) Board(w http.ResponseWriter, r *http.Request) {
	data, err := h.load(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render(w, r, http.StatusOK, components.Board(data.BoardData()))
}

func (h *GameHandler) load(r *http.Request) (*pages.GameData, error) {
	gameID := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), gameID)
	if err != nil {
		return nil, err
	}

	hints, err := h.gameController.Hints(r.Context(), gameID)
	if err != nil {
		return nil, err
	}

	data := &pages.GameData{
		Game:         g,
		Impossible:   hints.ImpossibleSquares,
		PendingScore: hints.PendingScore,
	}
	if g.IsActive() {
		data.Valid = hints.ValidPlacements
	}
	return data, nil
}

func (h *GameHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, model.ErrGameNotFound) {
		render(w, r, http.StatusNotFound, pages.Error("Game not found", "No game exists with that ID."))
		return
	}
	h.logger.Error("failed to load game", slog.String("error", err.Error()))
	render(w, r, http.StatusInternalServerError, pages.Error("Something went wrong", "The game could not be loaded."))
}

// render writes a component as an HTML response
func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}
