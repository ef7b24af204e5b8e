package request

import (
	"fmt"

	"github.com/mcoot/iotagame/internal/model"
)

// CreateGameRequest is the request body for creating a game. Zero values
// keep the defaults.
type CreateGameRequest struct {
	Shapes               int  `json:"shapes,omitempty"`
	Colors               int  `json:"colors,omitempty"`
	Numbers              int  `json:"numbers,omitempty"`
	HandSize             int  `json:"hand_size,omitempty"`
	MaxPlacementsPerTurn int  `json:"max_placements_per_turn,omitempty"`
	Duplicates           *int `json:"duplicates,omitempty"`
	WildCards            *int `json:"wild_cards,omitempty"`
}

// ToConfig merges the request over the default game configuration
func (r CreateGameRequest) ToConfig() model.GameConfig {
	cfg := model.DefaultGameConfig()
	if r.Shapes != 0 {
		cfg.Shapes = r.Shapes
	}
	if r.Colors != 0 {
		cfg.Colors = r.Colors
	}
	if r.Numbers != 0 {
		cfg.Numbers = r.Numbers
	}
	if r.HandSize != 0 {
		cfg.HandSize = r.HandSize
	}
	if r.MaxPlacementsPerTurn != 0 {
		cfg.MaxPlacementsPerTurn = r.MaxPlacementsPerTurn
	}
	if r.Duplicates != nil {
		cfg.Duplicates = *r.Duplicates
	}
	if r.WildCards != nil {
		cfg.WildCards = *r.WildCards
	}
	return cfg
}

// PlaceRequest is the request body for placing or checking a card in hand
type PlaceRequest struct {
	CardID string `json:"card_id"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// Position returns the requested grid position
func (r PlaceRequest) Position() model.Position {
	return model.Position{Row: r.Row, Col: r.Col}
}

// Alphabet selects the attribute domain sizes for stateless rule checks.
// Zero values use the default of four.
type Alphabet struct {
	Shapes  int `json:"shapes,omitempty"`
	Colors  int `json:"colors,omitempty"`
	Numbers int `json:"numbers,omitempty"`
}

// ToModel resolves the alphabet
func (a Alphabet) ToModel() (model.Alphabet, error) {
	def := model.DefaultGameConfig()
	return model.NewAlphabet(orDefault(a.Shapes, def.Shapes), orDefault(a.Colors, def.Colors), orDefault(a.Numbers, def.Numbers))
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// Card is a card supplied by the client
type Card struct {
	ID     string `json:"id"`
	Shape  string `json:"shape"`
	Color  string `json:"color"`
	Number int    `json:"number"`
	Wild   bool   `json:"wild,omitempty"`
}

// ToModel converts the card, rejecting values outside the alphabet
func (c Card) ToModel(alphabet model.Alphabet) (model.Card, error) {
	card := model.Card{
		ID:     model.CardID(c.ID),
		Shape:  model.Shape(c.Shape),
		Color:  model.Color(c.Color),
		Number: model.Number(c.Number),
		Wild:   c.Wild,
	}
	if !alphabet.Contains(card) {
		return model.Card{}, fmt.Errorf("card %s is not in the alphabet", card)
	}
	return card, nil
}

// Placement is a card at a position supplied by the client
type Placement struct {
	Card Card `json:"card"`
	Row  int  `json:"row"`
	Col  int  `json:"col"`
}

// ToModel converts placements, rejecting cards outside the alphabet
func ToModel(placements []Placement, alphabet model.Alphabet) ([]model.Placement, error) {
	result := make([]model.Placement, 0, len(placements))
	for _, p := range placements {
		card, err := p.Card.ToModel(alphabet)
		if err != nil {
			return nil, err
		}
		result = append(result, model.Placement{Card: card, Position: model.Position{Row: p.Row, Col: p.Col}})
	}
	return result, nil
}

// ValidateRequest asks whether a card may go at a position
type ValidateRequest struct {
	Alphabet Alphabet    `json:"alphabet"`
	Board    []Placement `json:"board"`
	Pending  []Placement `json:"pending,omitempty"`
	Card     Card        `json:"card"`
	Row      int         `json:"row"`
	Col      int         `json:"col"`
}

// ScoreRequest asks what a set of new placements would score
type ScoreRequest struct {
	Alphabet   Alphabet    `json:"alphabet"`
	Board      []Placement `json:"board"`
	Placements []Placement `json:"placements"`
}

// ImpossibleRequest asks which squares can no longer be filled. With a
// position only that square is checked.
type ImpossibleRequest struct {
	Alphabet  Alphabet    `json:"alphabet"`
	Board     []Placement `json:"board"`
	Row       *int        `json:"row,omitempty"`
	Col       *int        `json:"col,omitempty"`
	WildCards bool        `json:"wild_cards,omitempty"` // Wild cards may still be played
}

// PlacementsRequest asks where a card could go this turn
type PlacementsRequest struct {
	Alphabet Alphabet    `json:"alphabet"`
	Board    []Placement `json:"board"`
	Pending  []Placement `json:"pending,omitempty"`
}
