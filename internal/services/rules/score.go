package rules

import "github.com/mcoot/iotagame/internal/model"

// ScoredLine is one line counted towards a turn's score
type ScoredLine struct {
	Line   model.Line
	Points int
}

// ScoreBreakdown explains how a turn's total was reached
type ScoreBreakdown struct {
	Lines    []ScoredLine      // Each line of two or more touched by the turn, once
	Isolated []model.Placement // New cards that formed no line
	Total    int
}

// Score totals the lines formed by newPlacements once laid on board. Each
// line of length two or more that touches a new card counts once; a new
// card that forms no such line scores its own points.
func (s *Service) Score(newPlacements []model.Placement, board *model.Board) (ScoreBreakdown, error) {
	var result ScoreBreakdown

	combined, err := board.With(newPlacements...)
	if err != nil {
		return result, err
	}

	seen := make(map[model.LineKey]bool)
	for _, p := range newPlacements {
		formed := false
		for _, axis := range model.Axes {
			line := ScanLine(combined, p.Position, axis)
			if line.Len() < 2 {
				continue
			}
			formed = true
			if seen[line.Key()] {
				continue
			}
			seen[line.Key()] = true
			points := line.Points()
			result.Lines = append(result.Lines, ScoredLine{Line: line, Points: points})
			result.Total += points
		}
		if !formed {
			result.Isolated = append(result.Isolated, p)
			result.Total += p.Card.Points()
		}
	}
	return result, nil
}

// CalculateScore returns the total points for newPlacements laid on board
func (s *Service) CalculateScore(newPlacements []model.Placement, board *model.Board) (int, error) {
	breakdown, err := s.Score(newPlacements, board)
	if err != nil {
		return 0, err
	}
	return breakdown.Total, nil
}
