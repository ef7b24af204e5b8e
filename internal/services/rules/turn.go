package rules

import "github.com/mcoot/iotagame/internal/model"

// IsCollinearWithPending reports whether pos keeps a turn's placements on a
// single row or column. Once two placements have fixed the axis the turn
// may not pivot.
func IsCollinearWithPending(pos model.Position, pending []model.Placement) bool {
	switch len(pending) {
	case 0:
		return true
	case 1:
		only := pending[0].Position
		return only.Row == pos.Row || only.Col == pos.Col
	}

	first := pending[0].Position
	sameRow, sameCol := true, true
	for _, p := range pending[1:] {
		sameRow = sameRow && p.Position.Row == first.Row
		sameCol = sameCol && p.Position.Col == first.Col
	}
	switch {
	case sameRow:
		return pos.Row == first.Row
	case sameCol:
		return pos.Col == first.Col
	default:
		return false
	}
}

// ValidPlacements returns the empty positions a card could go this turn:
// the frontier of the board and pending cards, limited to the pending axis.
// An empty board with nothing pending yields only the origin.
func ValidPlacements(board *model.Board, pending []model.Placement) ([]model.Position, error) {
	combined, err := board.With(pending...)
	if err != nil {
		return nil, err
	}
	if combined.IsEmpty() {
		return []model.Position{model.Origin}, nil
	}

	var result []model.Position
	for _, pos := range combined.Frontier() {
		if IsCollinearWithPending(pos, pending) {
			result = append(result, pos)
		}
	}
	return result, nil
}
