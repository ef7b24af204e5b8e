package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/iotagame/internal/model"
)

// Card renders a single card
func Card(card model.Card) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if card.Wild {
			_, err := fmt.Fprintf(w, `<span class="card wild" data-card="%s">wild</span>`,
				templ.EscapeString(string(card.ID)))
			return err
		}
		_, err := fmt.Fprintf(w,
			`<span class="card color-%s" data-card="%s"><span class="number">%d</span> <span class="color">%s</span> <span class="shape">%s</span></span>`,
			templ.EscapeString(string(card.Color)),
			templ.EscapeString(string(card.ID)),
			card.Number,
			templ.EscapeString(string(card.Color)),
			templ.EscapeString(string(card.Shape)),
		)
		return err
	})
}
