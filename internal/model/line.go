package model

// Line is a contiguous run of cards along one axis, ordered by ascending
// coordinate. Lines are derived from a board on demand and never stored.
type Line struct {
	Axis  Axis
	Cells []Placement
}

// LineKey identifies a line by axis and endpoints. It is comparable and
// used to count each line once.
type LineKey struct {
	Axis  Axis
	Start Position
	End   Position
}

// Len returns the number of cards in the line
func (l Line) Len() int {
	return len(l.Cells)
}

// Key returns the line's identity; the zero key for an empty line
func (l Line) Key() LineKey {
	if len(l.Cells) == 0 {
		return LineKey{Axis: l.Axis}
	}
	return LineKey{
		Axis:  l.Axis,
		Start: l.Cells[0].Position,
		End:   l.Cells[len(l.Cells)-1].Position,
	}
}

// Cards returns the line's cards in order
func (l Line) Cards() []Card {
	cards := make([]Card, len(l.Cells))
	for i, c := range l.Cells {
		cards[i] = c.Card
	}
	return cards
}

// Points sums the point values of every card in the line
func (l Line) Points() int {
	total := 0
	for _, c := range l.Cells {
		total += c.Card.Points()
	}
	return total
}

// Contains returns true if the line covers the position
func (l Line) Contains(pos Position) bool {
	for _, c := range l.Cells {
		if c.Position == pos {
			return true
		}
	}
	return false
}
