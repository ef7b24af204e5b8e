package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/iotagame/internal/middleware"
)

// Logging logs viewer requests tagged with surface=web
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("surface", "web")))
}
