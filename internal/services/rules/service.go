package rules

import (
	"slices"

	"github.com/mcoot/iotagame/internal/model"
)

// Service evaluates placements, turns and scores against an alphabet.
// It holds no board state and is safe for concurrent use.
type Service struct {
	alphabet  model.Alphabet
	wildCards bool
}

// Option configures a Service
type Option func(*Service)

// WithWildCards tells the service whether wild cards can still reach the
// board. Impossible-square detection is only exact when it knows this.
func WithWildCards(enabled bool) Option {
	return func(s *Service) {
		s.wildCards = enabled
	}
}

// New creates a rules service for an alphabet
func New(alphabet model.Alphabet, opts ...Option) *Service {
	s := &Service{
		alphabet: alphabet,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Alphabet returns the alphabet the service was built with
func (s *Service) Alphabet() model.Alphabet {
	return s.alphabet
}

// Verdict is the outcome of a legality check. Axis and Attribute are only
// meaningful for the reasons that concern a line.
type Verdict struct {
	Valid     bool
	Reason    model.RejectionReason
	Axis      model.Axis
	Attribute model.Attribute
	Message   string
}

// Err returns the verdict as a *model.PlacementError, or nil if valid
func (v Verdict) Err() error {
	if v.Valid {
		return nil
	}
	return &model.PlacementError{Reason: v.Reason, Message: v.Message}
}

func accepted() Verdict {
	return Verdict{Valid: true}
}

func rejected(reason model.RejectionReason, message string) Verdict {
	return Verdict{Reason: reason, Message: message}
}

// IsValidPlacement reports whether card may be placed at pos on board
func (s *Service) IsValidPlacement(card model.Card, pos model.Position, board *model.Board) bool {
	return s.Explain(card, pos, board).Valid
}

// Explain checks a single placement and, when it is illegal, reports which
// rule failed. Any position is legal on an empty board.
func (s *Service) Explain(card model.Card, pos model.Position, board *model.Board) Verdict {
	if board.IsOccupied(pos) {
		return rejected(model.ReasonPositionOccupied, msgPositionOccupied)
	}
	if board.IsEmpty() {
		return accepted()
	}
	if !board.HasNeighbor(pos) {
		return rejected(model.ReasonNotAdjacent, msgNotAdjacent)
	}

	for _, axis := range model.Axes {
		line := LineThrough(board, card, pos, axis)
		attr, tooLong, ok := s.lineFault(line)
		switch {
		case ok:
			continue
		case tooLong:
			v := rejected(model.ReasonLineTooLong, lineTooLongMessage(axis, s.alphabet.MaxLineLength()))
			v.Axis = axis
			return v
		default:
			return s.classify(line, card, pos, attr)
		}
	}
	return accepted()
}

// ExplainPending checks a placement made during a turn. Occupancy and
// collinearity with the turn's other placements are checked first, then the
// placement rules against the board with the pending cards laid down.
func (s *Service) ExplainPending(card model.Card, pos model.Position, board *model.Board, pending []model.Placement) Verdict {
	combined, err := board.With(pending...)
	if err != nil || combined.IsOccupied(pos) {
		return rejected(model.ReasonPositionOccupied, msgPositionOccupied)
	}
	if !IsCollinearWithPending(pos, pending) {
		return rejected(model.ReasonTurnAxisViolation, msgTurnAxisViolation)
	}
	return s.Explain(card, pos, combined)
}

// classify names the attribute failure for a line that already contains the
// candidate card
func (s *Service) classify(line model.Line, card model.Card, pos model.Position, attr model.Attribute) Verdict {
	var existing []string
	for _, c := range line.Cells {
		if c.Position == pos || c.Card.Wild {
			continue
		}
		existing = append(existing, c.Card.Value(attr))
	}

	v := Verdict{Axis: line.Axis, Attribute: attr}
	distinct := distinctCount(existing)
	switch {
	case len(existing) >= 2 && distinct == 1:
		v.Reason = model.ReasonConflictWithFixedValue
		v.Message = fixedValueMessage(line.Axis, attr, existing[0], card.Value(attr))
	case distinct == len(existing) && !card.Wild && slices.Contains(existing, card.Value(attr)):
		v.Reason = model.ReasonDuplicateInDifferentRun
		v.Message = duplicateMessage(line.Axis, attr, card.Value(attr))
	case distinct == len(existing):
		v.Reason = model.ReasonDuplicateInDifferentRun
		v.Message = exhaustedMessage(line.Axis, attr)
	default:
		v.Reason = model.ReasonAxisMixedAttribute
		v.Message = mixedMessage(line.Axis, attr)
	}
	return v
}
