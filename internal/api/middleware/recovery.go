package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/iotagame/internal/api/apierr"
	"github.com/mcoot/iotagame/internal/middleware"
)

// Recovery answers a panicking API handler with an INTERNAL_ERROR body
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger.With(slog.String("surface", "api")), func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
