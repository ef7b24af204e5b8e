package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/iotagame/internal/model"
)

// BoardData is what the board grid needs to render
type BoardData struct {
	Board      []model.Placement
	Pending    []model.Placement
	Valid      []model.Position
	Impossible []model.Position
}

// bounds returns the smallest rectangle covering every position, grown by
// one so the open squares around the cards show
func (d BoardData) bounds() (minRow, maxRow, minCol, maxCol int) {
	var all []model.Position
	for _, p := range d.Board {
		all = append(all, p.Position)
	}
	for _, p := range d.Pending {
		all = append(all, p.Position)
	}
	all = append(all, d.Valid...)
	all = append(all, d.Impossible...)
	if len(all) == 0 {
		return -1, 1, -1, 1
	}

	minRow, maxRow, minCol, maxCol = all[0].Row, all[0].Row, all[0].Col, all[0].Col
	for _, p := range all {
		minRow, maxRow = min(minRow, p.Row), max(maxRow, p.Row)
		minCol, maxCol = min(minCol, p.Col), max(maxCol, p.Col)
	}
	return minRow - 1, maxRow + 1, minCol - 1, maxCol + 1
}

// Board renders the grid with committed, pending, valid and impossible
// squares marked
func Board(data BoardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cards := make(map[model.Position]model.Card)
		classes := make(map[model.Position]string)
		for _, p := range data.Valid {
			classes[p] = "valid"
		}
		for _, p := range data.Impossible {
			classes[p] = "impossible"
		}
		for _, p := range data.Board {
			cards[p.Position] = p.Card
			classes[p.Position] = "committed"
		}
		for _, p := range data.Pending {
			cards[p.Position] = p.Card
			classes[p.Position] = "pending"
		}

		minRow, maxRow, minCol, maxCol := data.bounds()
		if _, err := io.WriteString(w, `<table class="board" id="board">`); err != nil {
			return err
		}
		for row := minRow; row <= maxRow; row++ {
			if _, err := io.WriteString(w, "<tr>"); err != nil {
				return err
			}
			for col := minCol; col <= maxCol; col++ {
				pos := model.Position{Row: row, Col: col}
				class := classes[pos]
				if class == "" {
					class = "empty"
				}
				if _, err := fmt.Fprintf(w, `<td class="cell %s" data-row="%d" data-col="%d">`, class, row, col); err != nil {
					return err
				}
				if card, ok := cards[pos]; ok {
					if err := Card(card).Render(ctx, w); err != nil {
						return err
					}
				}
				if _, err := io.WriteString(w, "</td>"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</tr>"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>\n")
		return err
	})
}
