package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/mcoot/iotagame/internal/services/game"
	"github.com/mcoot/iotagame/internal/web/templates/pages"
)

// recentOnHome is how many games the home page lists
const recentOnHome = 10

// HomeHandler handles the home page
type HomeHandler struct {
	gameController game.ControllerInterface
	logger         *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(gameController game.ControllerInterface, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		gameController: gameController,
		logger:         logger,
	}
}

// Home renders the home page. A failed listing still renders the page.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	recent, err := h.gameController.RecentGames(r.Context(), recentOnHome)
	if err != nil {
		h.logger.Warn("failed to list recent games", slog.String("error", err.Error()))
		recent = nil
	}
	render(w, r, http.StatusOK, pages.Home(recent))
}

// Find redirects the home page's lookup form to the game page
func (h *HomeHandler) Find(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/games/"+url.PathEscape(id), http.StatusSeeOther)
}
