package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/iotagame/internal/model"
	"github.com/mcoot/iotagame/internal/web/templates/layout"
)

// Home renders the landing page with the most recent games
func Home(recent []*model.Game) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>iota</h1>
<p>Lay cards in lines where every shape, color and number is either all the same or all different.</p>
<form method="get" action="/games" id="find-game">
<label for="game-id">Game ID</label>
<input type="text" id="game-id" name="id" required>
<button type="submit">View game</button>
</form>
<p>Start a game with <code>iota game new</code>.</p>
`); err != nil {
			return err
		}
		return recentGames(w, recent)
	})
	return layout.Base(layout.PageData{Title: "Home"}, body)
}

func recentGames(w io.Writer, games []*model.Game) error {
	if len(games) == 0 {
		_, err := io.WriteString(w, `<p id="no-games">No games yet.</p>`+"\n")
		return err
	}
	if _, err := io.WriteString(w, `<h2>Recent games</h2>
<table id="recent-games">
<thead><tr><th>Game</th><th>State</th><th>Score</th><th>Turn</th></tr></thead>
<tbody>
`); err != nil {
		return err
	}
	for _, g := range games {
		id := templ.EscapeString(string(g.ID))
		if _, err := fmt.Fprintf(w, `<tr class="%s"><td><a href="/games/%s">%s</a></td><td>%s</td><td>%d</td><td>%d</td></tr>
`, templ.EscapeString(string(g.State)), id, id, templ.EscapeString(string(g.State)), g.Score, g.TurnNumber+1); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</tbody>\n</table>\n")
	return err
}
