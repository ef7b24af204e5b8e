package response

import (
	"time"

	"github.com/mcoot/iotagame/internal/model"
	"github.com/mcoot/iotagame/internal/services/game"
	"github.com/mcoot/iotagame/internal/services/rules"
)

// Card represents a card in API responses
type Card struct {
	ID     string `json:"id"`
	Shape  string `json:"shape,omitempty"`
	Color  string `json:"color,omitempty"`
	Number int    `json:"number,omitempty"`
	Wild   bool   `json:"wild,omitempty"`
}

// CardFromModel converts a model.Card
func CardFromModel(c model.Card) Card {
	return Card{
		ID:     string(c.ID),
		Shape:  string(c.Shape),
		Color:  string(c.Color),
		Number: int(c.Number),
		Wild:   c.Wild,
	}
}

// Position represents a grid position
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionsFromModel converts positions, never returning nil
func PositionsFromModel(ps []model.Position) []Position {
	result := make([]Position, 0, len(ps))
	for _, p := range ps {
		result = append(result, Position{Row: p.Row, Col: p.Col})
	}
	return result
}

// Placement represents a card on the grid
type Placement struct {
	Card Card `json:"card"`
	Row  int  `json:"row"`
	Col  int  `json:"col"`
}

// PlacementsFromModel converts placements, never returning nil
func PlacementsFromModel(ps []model.Placement) []Placement {
	result := make([]Placement, 0, len(ps))
	for _, p := range ps {
		result = append(result, Placement{Card: CardFromModel(p.Card), Row: p.Position.Row, Col: p.Position.Col})
	}
	return result
}

// GameConfig represents a game's settings
type GameConfig struct {
	Shapes               int `json:"shapes"`
	Colors               int `json:"colors"`
	Numbers              int `json:"numbers"`
	HandSize             int `json:"hand_size"`
	MaxPlacementsPerTurn int `json:"max_placements_per_turn"`
	Duplicates           int `json:"duplicates"`
	WildCards            int `json:"wild_cards"`
}

// Game represents a game session. The draw pile is reported by size only.
type Game struct {
	ID            string      `json:"id"`
	State         string      `json:"state"`
	Config        GameConfig  `json:"config"`
	Hand          []Card      `json:"hand"`
	Board         []Placement `json:"board"`
	Pending       []Placement `json:"pending"`
	CardsLeft     int         `json:"cards_left"`
	Score         int         `json:"score"`
	LastTurnScore *int        `json:"last_turn_score"`
	TurnNumber    int         `json:"turn_number"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// GameFromModel converts a model.Game
func GameFromModel(g *model.Game) Game {
	hand := make([]Card, 0, len(g.Hand))
	for _, c := range g.Hand {
		hand = append(hand, CardFromModel(c))
	}
	return Game{
		ID:    string(g.ID),
		State: string(g.State),
		Config: GameConfig{
			Shapes:               g.Config.Shapes,
			Colors:               g.Config.Colors,
			Numbers:              g.Config.Numbers,
			HandSize:             g.Config.HandSize,
			MaxPlacementsPerTurn: g.Config.MaxPlacementsPerTurn,
			Duplicates:           g.Config.Duplicates,
			WildCards:            g.Config.WildCards,
		},
		Hand:          hand,
		Board:         PlacementsFromModel(g.Board),
		Pending:       PlacementsFromModel(g.Pending),
		CardsLeft:     len(g.Deck),
		Score:         g.Score,
		LastTurnScore: g.LastTurnScore,
		TurnNumber:    g.TurnNumber,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// GameSummary is a game listed without its cards
type GameSummary struct {
	ID         string    `json:"id"`
	State      string    `json:"state"`
	Score      int       `json:"score"`
	TurnNumber int       `json:"turn_number"`
	CardsLeft  int       `json:"cards_left"`
	CreatedAt  time.Time `json:"created_at"`
}

// GameList is returned by the recent games listing
type GameList struct {
	Games []GameSummary `json:"games"`
}

// GameListFromModel summarizes games, never returning a nil list
func GameListFromModel(games []*model.Game) GameList {
	list := GameList{Games: make([]GameSummary, 0, len(games))}
	for _, g := range games {
		list.Games = append(list.Games, GameSummary{
			ID:         string(g.ID),
			State:      string(g.State),
			Score:      g.Score,
			TurnNumber: g.TurnNumber,
			CardsLeft:  len(g.Deck),
			CreatedAt:  g.CreatedAt,
		})
	}
	return list
}

// CreateGameResponse is returned when a game is created. The token is only
// ever shown here.
type CreateGameResponse struct {
	Game  Game   `json:"game"`
	Token string `json:"token"`
}

// TurnResult represents a completed turn
type TurnResult struct {
	Turn       int         `json:"turn"`
	Placements []Placement `json:"placements"`
	Score      int         `json:"score"`
	TotalScore int         `json:"total_score"`
	CardsDrawn int         `json:"cards_drawn"`
	State      string      `json:"state"`
}

// TurnResultFromModel converts a model.TurnResult
func TurnResultFromModel(r *model.TurnResult) TurnResult {
	return TurnResult{
		Turn:       r.Turn,
		Placements: PlacementsFromModel(r.Placements),
		Score:      r.Score,
		TotalScore: r.TotalScore,
		CardsDrawn: r.CardsDrawn,
		State:      string(r.State),
	}
}

// Hints represents the open moves for the current turn
type Hints struct {
	ValidPlacements   []Position `json:"valid_placements"`
	ImpossibleSquares []Position `json:"impossible_squares"`
	PendingScore      int        `json:"pending_score"`
}

// HintsFromService converts game.Hints
func HintsFromService(h *game.Hints) Hints {
	return Hints{
		ValidPlacements:   PositionsFromModel(h.ValidPlacements),
		ImpossibleSquares: PositionsFromModel(h.ImpossibleSquares),
		PendingScore:      h.PendingScore,
	}
}

// Verdict represents the outcome of a placement check
type Verdict struct {
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
	Axis      string `json:"axis,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	Message   string `json:"message,omitempty"`
}

// VerdictFromRules converts a rules.Verdict
func VerdictFromRules(v rules.Verdict) Verdict {
	if v.Valid {
		return Verdict{Valid: true}
	}
	resp := Verdict{Reason: string(v.Reason), Message: v.Message}
	switch v.Reason {
	case model.ReasonLineTooLong:
		resp.Axis = v.Axis.String()
	case model.ReasonAxisMixedAttribute, model.ReasonConflictWithFixedValue, model.ReasonDuplicateInDifferentRun:
		resp.Axis = v.Axis.String()
		resp.Attribute = v.Attribute.String()
	}
	return resp
}

// ScoredLine represents one line counted in a score
type ScoredLine struct {
	Axis   string     `json:"axis"`
	Cells  []Position `json:"cells"`
	Points int        `json:"points"`
}

// Score represents a score breakdown
type Score struct {
	Score    int          `json:"score"`
	Lines    []ScoredLine `json:"lines"`
	Isolated []Position   `json:"isolated"`
}

// ScoreFromRules converts a rules.ScoreBreakdown
func ScoreFromRules(b rules.ScoreBreakdown) Score {
	resp := Score{
		Score:    b.Total,
		Lines:    make([]ScoredLine, 0, len(b.Lines)),
		Isolated: make([]Position, 0, len(b.Isolated)),
	}
	for _, l := range b.Lines {
		cells := make([]model.Position, 0, l.Line.Len())
		for _, c := range l.Line.Cells {
			cells = append(cells, c.Position)
		}
		resp.Lines = append(resp.Lines, ScoredLine{
			Axis:   l.Line.Axis.String(),
			Cells:  PositionsFromModel(cells),
			Points: l.Points,
		})
	}
	for _, p := range b.Isolated {
		resp.Isolated = append(resp.Isolated, Position{Row: p.Position.Row, Col: p.Position.Col})
	}
	return resp
}

// Positions wraps a list of positions
type Positions struct {
	Positions []Position `json:"positions"`
}

// Impossible reports whether a single square is impossible
type Impossible struct {
	Row        int  `json:"row"`
	Col        int  `json:"col"`
	Impossible bool `json:"impossible"`
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}
