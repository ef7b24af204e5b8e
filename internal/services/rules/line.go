package rules

import "github.com/mcoot/iotagame/internal/model"

// ScanLine returns the contiguous cards along an axis through a position in
// ascending order. The position itself is included when occupied; when it
// is empty the runs on either side are joined through it. An empty line is
// returned when nothing touches the position along the axis.
func ScanLine(board *model.Board, pos model.Position, axis model.Axis) model.Line {
	line := model.Line{Axis: axis}

	start := pos
	for board.IsOccupied(start.Step(axis, -1)) {
		start = start.Step(axis, -1)
	}

	for p := start; ; p = p.Step(axis, 1) {
		card, ok := board.At(p)
		if !ok {
			if p == pos {
				continue
			}
			break
		}
		line.Cells = append(line.Cells, model.Placement{Card: card, Position: p})
	}
	return line
}

// LineThrough builds the hypothetical line that would exist along an axis
// if card were placed at pos. The position is expected to be empty.
func LineThrough(board *model.Board, card model.Card, pos model.Position, axis model.Axis) model.Line {
	scanned := ScanLine(board, pos, axis)
	candidate := model.Placement{Card: card, Position: pos}

	line := model.Line{Axis: axis, Cells: make([]model.Placement, 0, scanned.Len()+1)}
	inserted := false
	for _, cell := range scanned.Cells {
		if !inserted && coord(pos, axis) < coord(cell.Position, axis) {
			line.Cells = append(line.Cells, candidate)
			inserted = true
		}
		line.Cells = append(line.Cells, cell)
	}
	if !inserted {
		line.Cells = append(line.Cells, candidate)
	}
	return line
}

// IsValidAttributeRun reports whether values are all the same or all
// different. Runs shorter than two always pass.
func IsValidAttributeRun(values []string) bool {
	n := distinctCount(values)
	return n <= 1 || n == len(values)
}

// IsConsistentLine reports whether every attribute of the line obeys the
// same/different law and the line fits within the longest legal length.
func (s *Service) IsConsistentLine(line model.Line) bool {
	_, _, ok := s.lineFault(line)
	return ok
}

// lineFault finds the first rule a line breaks. tooLong is set when the line
// exceeds the longest legal length, otherwise attr names the attribute whose
// run is broken. Lines shorter than two cards are always sound.
func (s *Service) lineFault(line model.Line) (attr model.Attribute, tooLong bool, ok bool) {
	if line.Len() < 2 {
		return 0, false, true
	}
	if line.Len() > s.alphabet.MaxLineLength() {
		return 0, true, false
	}
	for _, attr := range model.Attributes {
		if !s.isValidRun(line, attr) {
			return attr, false, false
		}
	}
	return 0, false, true
}

// isValidRun applies the same/different law to one attribute. Wild cards are
// left out of the comparison but still occupy a slot, so an all-different
// run cannot be longer than the attribute's domain.
func (s *Service) isValidRun(line model.Line, attr model.Attribute) bool {
	values := fixedValues(line, attr)
	if !IsValidAttributeRun(values) {
		return false
	}
	if len(values) < 2 || distinctCount(values) == 1 {
		return true
	}
	return line.Len() <= s.alphabet.Size(attr)
}

// fixedValues collects the attribute values of the non-wild cards in a line
func fixedValues(line model.Line, attr model.Attribute) []string {
	values := make([]string, 0, line.Len())
	for _, card := range line.Cards() {
		if card.Wild {
			continue
		}
		values = append(values, card.Value(attr))
	}
	return values
}

func distinctCount(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func coord(pos model.Position, axis model.Axis) int {
	if axis == model.Horizontal {
		return pos.Col
	}
	return pos.Row
}
