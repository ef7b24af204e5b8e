package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/iotagame/internal/web/templates/layout"
)

// Error renders an error page
func Error(title, message string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1 class="error-title">%s</h1>
<p class="error-message">%s</p>
<p><a href="/">Return to home</a></p>
`, templ.EscapeString(title), templ.EscapeString(message))
		return err
	})
	return layout.Base(layout.PageData{Title: title}, body)
}
