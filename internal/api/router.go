package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/iotagame/internal/api/handler"
	"github.com/mcoot/iotagame/internal/api/middleware"
	"github.com/mcoot/iotagame/internal/api/response"
	"github.com/mcoot/iotagame/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    middleware.Authorizer
	GameController game.ControllerInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController)
	rulesHandler := handler.NewRulesHandler()

	// Create middleware
	tokenMiddleware := middleware.GameToken(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game routes; reads are open, changes need the game's token
	games := api.PathPrefix("/games").Subrouter()
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("", gameHandler.List).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}/hints", gameHandler.Hints).Methods(http.MethodGet)
	games.HandleFunc("/{id}/check", gameHandler.Check).Methods(http.MethodPost)

	games.Handle("/{id}", tokenMiddleware(http.HandlerFunc(gameHandler.Abandon))).Methods(http.MethodDelete)
	games.Handle("/{id}/placements", tokenMiddleware(http.HandlerFunc(gameHandler.Place))).Methods(http.MethodPost)
	games.Handle("/{id}/placements/last", tokenMiddleware(http.HandlerFunc(gameHandler.Undo))).Methods(http.MethodDelete)
	games.Handle("/{id}/turns", tokenMiddleware(http.HandlerFunc(gameHandler.CompleteTurn))).Methods(http.MethodPost)

	// Stateless rule evaluation
	rulesRoutes := api.PathPrefix("/rules").Subrouter()
	rulesRoutes.HandleFunc("/validate", rulesHandler.Validate).Methods(http.MethodPost)
	rulesRoutes.HandleFunc("/score", rulesHandler.Score).Methods(http.MethodPost)
	rulesRoutes.HandleFunc("/impossible", rulesHandler.Impossible).Methods(http.MethodPost)
	rulesRoutes.HandleFunc("/placements", rulesHandler.Placements).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
