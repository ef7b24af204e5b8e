package model

import (
	"fmt"
	"sort"
)

// Position identifies a cell on the unbounded grid
type Position struct {
	Row int // Grows downward, may be negative
	Col int // Grows rightward, may be negative
}

// Origin is where the first card of a game goes
var Origin = Position{Row: 0, Col: 0}

// Neighbors returns the four orthogonally adjacent positions
func (p Position) Neighbors() []Position {
	return []Position{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}
}

// Step returns the position n cells away along an axis
func (p Position) Step(axis Axis, n int) Position {
	if axis == Horizontal {
		return Position{Row: p.Row, Col: p.Col + n}
	}
	return Position{Row: p.Row + n, Col: p.Col}
}

// String renders the position as "(row,col)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Less orders positions row-major
func (p Position) Less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// Axis is a grid direction lines run along
type Axis int

const (
	Horizontal Axis = iota // Along a row
	Vertical               // Along a column
)

// Axes lists both axes in the order rule checks report them
var Axes = []Axis{Horizontal, Vertical}

// String returns the axis name
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Placement binds a card to a grid position. Committed board cards and
// pending turn cards share this shape.
type Placement struct {
	Card     Card
	Position Position
}

// Board is an immutable snapshot of committed cards keyed by position.
// Methods that add cards return a new Board.
type Board struct {
	cells map[Position]Card
}

// NewBoard builds a board from placements; later placements at the same
// position are rejected.
func NewBoard(placements ...Placement) (*Board, error) {
	b := &Board{cells: make(map[Position]Card, len(placements))}
	for _, p := range placements {
		if _, taken := b.cells[p.Position]; taken {
			return nil, fmt.Errorf("%w: %s", ErrCellOccupied, p.Position)
		}
		b.cells[p.Position] = p.Card
	}
	return b, nil
}

// MustBoard is NewBoard for callers that know placements do not overlap
func MustBoard(placements ...Placement) *Board {
	b, err := NewBoard(placements...)
	if err != nil {
		panic(err)
	}
	return b
}

// At returns the card at a position
func (b *Board) At(pos Position) (Card, bool) {
	if b == nil {
		return Card{}, false
	}
	card, ok := b.cells[pos]
	return card, ok
}

// IsOccupied returns true if a card sits at the position
func (b *Board) IsOccupied(pos Position) bool {
	_, ok := b.At(pos)
	return ok
}

// IsEmpty returns true if the board holds no cards
func (b *Board) IsEmpty() bool {
	return b.Len() == 0
}

// Len returns the number of cards on the board
func (b *Board) Len() int {
	if b == nil {
		return 0
	}
	return len(b.cells)
}

// HasNeighbor returns true if any orthogonal neighbor is occupied
func (b *Board) HasNeighbor(pos Position) bool {
	for _, n := range pos.Neighbors() {
		if b.IsOccupied(n) {
			return true
		}
	}
	return false
}

// With returns a new board with the placements added. The receiver is left
// unchanged; a placement onto an occupied cell is an error.
func (b *Board) With(placements ...Placement) (*Board, error) {
	next := &Board{cells: make(map[Position]Card, b.Len()+len(placements))}
	if b != nil {
		for pos, card := range b.cells {
			next.cells[pos] = card
		}
	}
	for _, p := range placements {
		if _, taken := next.cells[p.Position]; taken {
			return nil, fmt.Errorf("%w: %s", ErrCellOccupied, p.Position)
		}
		next.cells[p.Position] = p.Card
	}
	return next, nil
}

// Placements returns all cards on the board in row-major order
func (b *Board) Placements() []Placement {
	result := make([]Placement, 0, b.Len())
	if b != nil {
		for pos, card := range b.cells {
			result = append(result, Placement{Card: card, Position: pos})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Position.Less(result[j].Position)
	})
	return result
}

// Frontier returns every empty position orthogonally adjacent to a card,
// in row-major order
func (b *Board) Frontier() []Position {
	seen := make(map[Position]bool)
	var result []Position
	if b == nil {
		return result
	}
	for pos := range b.cells {
		for _, n := range pos.Neighbors() {
			if b.IsOccupied(n) || seen[n] {
				continue
			}
			seen[n] = true
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Less(result[j])
	})
	return result
}
