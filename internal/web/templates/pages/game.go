package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/iotagame/internal/model"
	"github.com/mcoot/iotagame/internal/web/templates/components"
	"github.com/mcoot/iotagame/internal/web/templates/layout"
)

// GameData holds the data for the game page
type GameData struct {
	Game         *model.Game
	Valid        []model.Position
	Impossible   []model.Position
	PendingScore int
}

// BoardData returns the board component's view of the game
func (d GameData) BoardData() components.BoardData {
	return components.BoardData{
		Board:      d.Game.Board,
		Pending:    d.Game.Pending,
		Valid:      d.Valid,
		Impossible: d.Impossible,
	}
}

// Game renders a read-only view of a game
func Game(data GameData) templ.Component {
	g := data.Game
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lastTurn := "-"
		if g.LastTurnScore != nil {
			lastTurn = fmt.Sprint(*g.LastTurnScore)
		}
		if _, err := fmt.Fprintf(w, `<h1>Game <span id="game-id">%s</span></h1>
<dl id="status">
<dt>State</dt><dd id="state">%s</dd>
<dt>Turn</dt><dd id="turn">%d</dd>
<dt>Score</dt><dd id="score">%d</dd>
<dt>Last turn</dt><dd id="last-turn">%s</dd>
<dt>Pending</dt><dd id="pending-score">%d</dd>
<dt>Cards left</dt><dd id="cards-left">%d</dd>
</dl>
`,
			templ.EscapeString(string(g.ID)),
			templ.EscapeString(string(g.State)),
			g.TurnNumber+1,
			g.Score,
			lastTurn,
			data.PendingScore,
			len(g.Deck),
		); err != nil {
			return err
		}

		if err := components.Board(data.BoardData()).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, "<h2>Hand</h2>\n<ul class=\"hand\" id=\"hand\">"); err != nil {
			return err
		}
		for _, c := range g.Hand {
			if _, err := io.WriteString(w, "<li>"); err != nil {
				return err
			}
			if err := components.Card(c).Render(ctx, w); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, ` <code>%s</code></li>`, templ.EscapeString(string(c.ID))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>\n")
		return err
	})
	return layout.Base(layout.PageData{Title: "Game " + string(g.ID)}, body)
}
