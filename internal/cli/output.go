package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/iotagame/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.CreateGameResponse:
		o.printGame(v.Game)
		fmt.Fprintf(o.w, "Token: %s\n", v.Token)
	case response.Game:
		o.printGame(v)
	case response.GameList:
		o.printGameList(v)
	case response.TurnResult:
		o.printTurnResult(v)
	case response.Hints:
		o.printHints(v)
	case response.Verdict:
		o.printVerdict(v)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGame(g response.Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "State: %s\n", g.State)
	fmt.Fprintf(o.w, "Turn: %d\n", g.TurnNumber+1)
	if g.LastTurnScore != nil {
		fmt.Fprintf(o.w, "Score: %d (last turn %d)\n", g.Score, *g.LastTurnScore)
	} else {
		fmt.Fprintf(o.w, "Score: %d\n", g.Score)
	}
	fmt.Fprintf(o.w, "Cards left: %d\n", g.CardsLeft)

	fmt.Fprintln(o.w)
	renderBoard(o.w, g.Board, g.Pending)

	fmt.Fprintln(o.w, "\nHand:")
	for _, c := range g.Hand {
		fmt.Fprintf(o.w, "  %-8s %s\n", c.ID, cardLabel(c))
	}
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	fmt.Fprintf(o.w, "%-14s %-12s %6s %5s %5s\n", "ID", "STATE", "SCORE", "TURN", "LEFT")
	for _, g := range l.Games {
		fmt.Fprintf(o.w, "%-14s %-12s %6d %5d %5d\n", g.ID, g.State, g.Score, g.TurnNumber+1, g.CardsLeft)
	}
}

func (o *Output) printTurnResult(r response.TurnResult) {
	fmt.Fprintf(o.w, "Turn %d scored %d (total %d)\n", r.Turn, r.Score, r.TotalScore)
	fmt.Fprintf(o.w, "Drew %d card(s)\n", r.CardsDrawn)
	if r.State == "complete" {
		fmt.Fprintf(o.w, "Game complete! Final score: %d\n", r.TotalScore)
	}
}

func (o *Output) printHints(h response.Hints) {
	fmt.Fprintf(o.w, "Valid placements: %s\n", formatPositions(h.ValidPlacements))
	fmt.Fprintf(o.w, "Impossible squares: %s\n", formatPositions(h.ImpossibleSquares))
	fmt.Fprintf(o.w, "Pending score: %d\n", h.PendingScore)
}

func (o *Output) printVerdict(v response.Verdict) {
	if v.Valid {
		fmt.Fprintln(o.w, "Placement is valid")
		return
	}
	fmt.Fprintf(o.w, "Invalid: %s (%s)\n", v.Message, v.Reason)
}

func formatPositions(ps []response.Position) string {
	if len(ps) == 0 {
		return "none"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return strings.Join(parts, " ")
}

var (
	colorCodes = map[string]string{"red": "R", "green": "G", "blue": "B", "yellow": "Y", "purple": "P", "orange": "O"}
	shapeCodes = map[string]string{"triangle": "^", "square": "#", "circle": "o", "cross": "+", "star": "*", "hexagon": "H"}
)

// cardLabel renders a card in three characters: number, color, shape
func cardLabel(c response.Card) string {
	if c.Wild {
		return "*W*"
	}
	return fmt.Sprintf("%d%s%s", c.Number, code(colorCodes, c.Color), code(shapeCodes, c.Shape))
}

func code(codes map[string]string, value string) string {
	if c, ok := codes[value]; ok {
		return c
	}
	if value == "" {
		return "?"
	}
	return strings.ToUpper(value[:1])
}

// renderBoard draws the occupied region of the grid. Pending cards are
// shown in brackets.
func renderBoard(w io.Writer, board, pending []response.Placement) {
	cells := make(map[response.Position]string)
	var all []response.Placement
	all = append(all, board...)
	all = append(all, pending...)
	if len(all) == 0 {
		fmt.Fprintln(w, "(empty board)")
		return
	}

	minRow, maxRow := all[0].Row, all[0].Row
	minCol, maxCol := all[0].Col, all[0].Col
	for _, p := range all {
		minRow, maxRow = min(minRow, p.Row), max(maxRow, p.Row)
		minCol, maxCol = min(minCol, p.Col), max(maxCol, p.Col)
	}
	for _, p := range board {
		cells[response.Position{Row: p.Row, Col: p.Col}] = " " + cardLabel(p.Card) + " "
	}
	for _, p := range pending {
		cells[response.Position{Row: p.Row, Col: p.Col}] = "[" + cardLabel(p.Card) + "]"
	}

	var line strings.Builder
	line.WriteString("     ")
	for col := minCol; col <= maxCol; col++ {
		fmt.Fprintf(&line, "%4d ", col)
	}
	fmt.Fprintln(w, strings.TrimRight(line.String(), " "))

	for row := minRow; row <= maxRow; row++ {
		line.Reset()
		fmt.Fprintf(&line, "%4d ", row)
		for col := minCol; col <= maxCol; col++ {
			cell, ok := cells[response.Position{Row: row, Col: col}]
			if !ok {
				cell = "  .  "
			}
			line.WriteString(cell)
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}
