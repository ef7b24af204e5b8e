package model

import "strconv"

// CardID uniquely identifies a physical card within a deck
type CardID string

// Shape is a card's shape attribute value
type Shape string

// Color is a card's color attribute value
type Color string

// Number is a card's number attribute value, also its point value
type Number int

// Attribute is one of the three independent card properties
type Attribute int

const (
	AttrShape Attribute = iota
	AttrColor
	AttrNumber
)

// Attributes lists every attribute in the order rule checks report them
var Attributes = []Attribute{AttrShape, AttrColor, AttrNumber}

// String returns the attribute's name
func (a Attribute) String() string {
	switch a {
	case AttrShape:
		return "shape"
	case AttrColor:
		return "color"
	case AttrNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Card is an immutable playing card. Two cards may share all attribute
// values; only the ID distinguishes them.
type Card struct {
	ID     CardID
	Shape  Shape
	Color  Color
	Number Number
	Wild   bool // Matches any attribute value, scores 0
}

// Value returns the card's value for an attribute as a comparable string
func (c Card) Value(attr Attribute) string {
	switch attr {
	case AttrShape:
		return string(c.Shape)
	case AttrColor:
		return string(c.Color)
	case AttrNumber:
		return strconv.Itoa(int(c.Number))
	default:
		return ""
	}
}

// Points returns what the card contributes to a line score
func (c Card) Points() int {
	if c.Wild {
		return 0
	}
	return int(c.Number)
}

// String renders the card as "2-red-circle"
func (c Card) String() string {
	if c.Wild {
		return "wild"
	}
	return strconv.Itoa(int(c.Number)) + "-" + string(c.Color) + "-" + string(c.Shape)
}
