package middleware

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/iotagame/internal/middleware"
	"github.com/mcoot/iotagame/internal/web/templates/pages"
)

// Recovery creates panic recovery middleware for the web viewer.
// A panic renders the error page with a 500.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	page := pages.Error("Something went wrong", "The game viewer hit an unexpected error. Please try again.")
	templ.Handler(page, templ.WithStatus(http.StatusInternalServerError)).ServeHTTP(w, r)
}
