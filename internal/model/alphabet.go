package model

import (
	"fmt"
	"slices"
	"strconv"
)

// Bounds on the number of values per attribute
const (
	MinAttributeValues = 3
	MaxAttributeValues = 6
)

var (
	allShapes  = []Shape{"triangle", "square", "circle", "cross", "star", "hexagon"}
	allColors  = []Color{"red", "green", "blue", "yellow", "purple", "orange"}
	allNumbers = []Number{1, 2, 3, 4, 5, 6}
)

// Alphabet holds the finite value domains cards are drawn from. It is
// resolved once when a game starts and passed to every rule check.
type Alphabet struct {
	Shapes  []Shape
	Colors  []Color
	Numbers []Number
}

// DefaultAlphabet returns the standard four-by-four-by-four alphabet
func DefaultAlphabet() Alphabet {
	a, _ := NewAlphabet(4, 4, 4)
	return a
}

// NewAlphabet builds an alphabet using the first n values of each domain
func NewAlphabet(shapes, colors, numbers int) (Alphabet, error) {
	for _, n := range []int{shapes, colors, numbers} {
		if n < MinAttributeValues || n > MaxAttributeValues {
			return Alphabet{}, fmt.Errorf("%w: sizes must be between %d and %d, got %d",
				ErrInvalidAlphabet, MinAttributeValues, MaxAttributeValues, n)
		}
	}
	return Alphabet{
		Shapes:  append([]Shape(nil), allShapes[:shapes]...),
		Colors:  append([]Color(nil), allColors[:colors]...),
		Numbers: append([]Number(nil), allNumbers[:numbers]...),
	}, nil
}

// Size returns the number of values in an attribute's domain
func (a Alphabet) Size(attr Attribute) int {
	switch attr {
	case AttrShape:
		return len(a.Shapes)
	case AttrColor:
		return len(a.Colors)
	case AttrNumber:
		return len(a.Numbers)
	default:
		return 0
	}
}

// Values returns an attribute's domain in the same string form as Card.Value
func (a Alphabet) Values(attr Attribute) []string {
	var values []string
	switch attr {
	case AttrShape:
		for _, s := range a.Shapes {
			values = append(values, string(s))
		}
	case AttrColor:
		for _, c := range a.Colors {
			values = append(values, string(c))
		}
	case AttrNumber:
		for _, n := range a.Numbers {
			values = append(values, strconv.Itoa(int(n)))
		}
	}
	return values
}

// MaxLineLength is the longest line the rules allow: the largest domain,
// since an all-different attribute can never run past its domain size.
func (a Alphabet) MaxLineLength() int {
	longest := 0
	for _, attr := range Attributes {
		if n := a.Size(attr); n > longest {
			longest = n
		}
	}
	return longest
}

// Cards enumerates one card per value combination, ordered by number then color then shape
func (a Alphabet) Cards() []Card {
	cards := make([]Card, 0, len(a.Shapes)*len(a.Colors)*len(a.Numbers))
	for _, number := range a.Numbers {
		for _, color := range a.Colors {
			for _, shape := range a.Shapes {
				cards = append(cards, Card{Shape: shape, Color: color, Number: number})
			}
		}
	}
	return cards
}

// Contains reports whether every attribute of a non-wild card is drawn from
// the alphabet. Wild cards are always contained.
func (a Alphabet) Contains(card Card) bool {
	if card.Wild {
		return true
	}
	for _, attr := range Attributes {
		if !slices.Contains(a.Values(attr), card.Value(attr)) {
			return false
		}
	}
	return true
}
