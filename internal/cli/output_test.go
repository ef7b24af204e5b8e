package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/iotagame/internal/api/response"
)

func placed(number int, color, shape string, row, col int) response.Placement {
	return response.Placement{
		Card: response.Card{Number: number, Color: color, Shape: shape},
		Row:  row,
		Col:  col,
	}
}

func TestCardLabel(t *testing.T) {
	assert.Equal(t, "1R^", cardLabel(response.Card{Number: 1, Color: "red", Shape: "triangle"}))
	assert.Equal(t, "4Bo", cardLabel(response.Card{Number: 4, Color: "blue", Shape: "circle"}))
	assert.Equal(t, "2P+", cardLabel(response.Card{Number: 2, Color: "purple", Shape: "cross"}))
	assert.Equal(t, "*W*", cardLabel(response.Card{Wild: true}))
}

func TestRenderBoardMarksPending(t *testing.T) {
	var buf bytes.Buffer

	renderBoard(&buf,
		[]response.Placement{placed(1, "red", "triangle", 0, 0)},
		[]response.Placement{placed(2, "red", "triangle", 0, 1)},
	)

	assert.Equal(t, "        0    1\n   0  1R^ [2R^]\n", buf.String())
}

func TestRenderBoardCoversNegativeCoordinates(t *testing.T) {
	var buf bytes.Buffer

	renderBoard(&buf, []response.Placement{
		placed(1, "red", "triangle", 0, 0),
		placed(2, "green", "square", -1, -1),
	}, nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "  -1  2G#   .", lines[1])
	assert.Equal(t, "   0   .   1R^", lines[2])
}

func TestRenderEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	renderBoard(&buf, nil, nil)
	assert.Equal(t, "(empty board)\n", buf.String())
}

func TestPrintVerdict(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.Print(response.Verdict{Reason: "not_adjacent", Message: "Card must be placed adjacent to existing cards"})
	out.Print(response.Verdict{Valid: true})

	assert.Equal(t, "Invalid: Card must be placed adjacent to existing cards (not_adjacent)\nPlacement is valid\n", buf.String())
}

func TestPrintHints(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.Print(response.Hints{
		ValidPlacements: []response.Position{{Row: 0, Col: 1}, {Row: -1, Col: 0}},
		PendingScore:    3,
	})

	assert.Equal(t, "Valid placements: (0,1) (-1,0)\nImpossible squares: none\nPending score: 3\n", buf.String())
}

func TestPrintMessageJSON(t *testing.T) {
	var buf bytes.Buffer
	NewOutput("json", &buf).PrintMessage("Game abandoned")
	assert.JSONEq(t, `{"message":"Game abandoned"}`, buf.String())
}

func TestPrintGameList(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.Print(response.GameList{Games: []response.GameSummary{
		{ID: "ABC123", State: "complete", Score: 42, TurnNumber: 9, CardsLeft: 0},
	}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID "))
	assert.Equal(t, "ABC123         complete         42    10     0", lines[1])
}

func TestPrintEmptyGameList(t *testing.T) {
	var buf bytes.Buffer
	NewOutput("text", &buf).Print(response.GameList{Games: []response.GameSummary{}})
	assert.Equal(t, "No games\n", buf.String())
}
