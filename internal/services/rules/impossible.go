package rules

import (
	"slices"

	"github.com/mcoot/iotagame/internal/model"
)

// RequirementKind is the posture a line takes on one attribute
type RequirementKind string

const (
	RequireAny       RequirementKind = "any"       // No constraint yet
	RequireSame      RequirementKind = "same"      // Every card must share Value
	RequireDifferent RequirementKind = "different" // Every card must avoid Used
	RequireBlocked   RequirementKind = "blocked"   // No card can extend the line
)

// Requirement is what a line demands of the next card on one attribute
type Requirement struct {
	Kind  RequirementKind
	Value string   // Set for RequireSame
	Used  []string // Set for RequireDifferent
}

// LineRequirement derives the constraint line places on a card that would
// extend it. A line of fewer than two cards places none.
func (s *Service) LineRequirement(line model.Line, attr model.Attribute) Requirement {
	if line.Len() < 2 {
		return Requirement{Kind: RequireAny}
	}

	values := fixedValues(line, attr)
	roomForNew := line.Len()+1 <= s.alphabet.Size(attr)
	distinct := distinctCount(values)

	switch {
	case len(values) == 0:
		return Requirement{Kind: RequireAny}
	case len(values) == 1 && roomForNew:
		return Requirement{Kind: RequireAny}
	case distinct == 1:
		return Requirement{Kind: RequireSame, Value: values[0]}
	case distinct == len(values) && roomForNew:
		used := slices.Clone(values)
		slices.Sort(used)
		return Requirement{Kind: RequireDifferent, Used: used}
	default:
		return Requirement{Kind: RequireBlocked}
	}
}

// allowed returns the domain values a requirement admits
func (s *Service) allowed(req Requirement, attr model.Attribute) []string {
	domain := s.alphabet.Values(attr)
	switch req.Kind {
	case RequireAny:
		return domain
	case RequireSame:
		if slices.Contains(domain, req.Value) {
			return []string{req.Value}
		}
		return nil
	case RequireDifferent:
		var result []string
		for _, v := range domain {
			if !slices.Contains(req.Used, v) {
				result = append(result, v)
			}
		}
		return result
	default:
		return nil
	}
}

// IsImpossibleSquare reports whether no card could ever be placed at an
// empty position. A square is dead for ordinary cards when a line through it
// is already at the longest legal length, or when the lines through it make
// incompatible demands on some attribute. When wild cards are in play the
// square must also reject a wild, which ignores attribute demands but still
// takes a slot. Occupied and isolated positions are never impossible.
func (s *Service) IsImpossibleSquare(pos model.Position, board *model.Board) bool {
	if board.IsOccupied(pos) || !board.HasNeighbor(pos) {
		return false
	}
	if !s.blocksOrdinaryCards(pos, board) {
		return false
	}
	if !s.wildCards {
		return true
	}
	return !s.IsValidPlacement(model.Card{Wild: true}, pos, board)
}

func (s *Service) blocksOrdinaryCards(pos model.Position, board *model.Board) bool {
	lines := make([]model.Line, 0, len(model.Axes))
	for _, axis := range model.Axes {
		line := ScanLine(board, pos, axis)
		if line.Len() >= s.alphabet.MaxLineLength() {
			return true
		}
		lines = append(lines, line)
	}

	for _, attr := range model.Attributes {
		candidates := s.alphabet.Values(attr)
		for _, line := range lines {
			candidates = intersect(candidates, s.allowed(s.LineRequirement(line, attr), attr))
		}
		if len(candidates) == 0 {
			return true
		}
	}
	return false
}

// ImpossibleSquares returns every impossible square bordering the board in
// row-major order
func (s *Service) ImpossibleSquares(board *model.Board) []model.Position {
	var result []model.Position
	for _, pos := range board.Frontier() {
		if s.IsImpossibleSquare(pos, board) {
			result = append(result, pos)
		}
	}
	return result
}

func intersect(a, b []string) []string {
	var result []string
	for _, v := range a {
		if slices.Contains(b, v) {
			result = append(result, v)
		}
	}
	return result
}
