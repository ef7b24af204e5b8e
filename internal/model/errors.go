package model

import "errors"

// Common errors used across the application
var (
	// Configuration errors
	ErrInvalidAlphabet   = errors.New("invalid attribute alphabet")
	ErrInvalidGameConfig = errors.New("invalid game configuration")

	// Board errors
	ErrCellOccupied = errors.New("cell is already occupied")

	// Game errors
	ErrGameNotFound        = errors.New("game not found")
	ErrGameComplete        = errors.New("game is already complete")
	ErrGameAbandoned       = errors.New("game has been abandoned")
	ErrCardNotInHand       = errors.New("card is not in hand")
	ErrNoPendingPlacements = errors.New("no cards placed this turn")
	ErrTurnLimitReached    = errors.New("maximum placements for this turn reached")
	ErrIllegalPlacement    = errors.New("illegal placement")

	// Access errors
	ErrInvalidToken = errors.New("invalid game token")
)

// RejectionReason classifies why a placement was refused
type RejectionReason string

const (
	ReasonNotAdjacent             RejectionReason = "not_adjacent"
	ReasonAxisMixedAttribute      RejectionReason = "axis_mixed_attribute"
	ReasonConflictWithFixedValue  RejectionReason = "attribute_conflict_with_fixed_value"
	ReasonDuplicateInDifferentRun RejectionReason = "attribute_duplicate_in_different_line"
	ReasonTurnAxisViolation       RejectionReason = "turn_axis_violation"
	ReasonPositionOccupied        RejectionReason = "position_occupied"
	ReasonLineTooLong             RejectionReason = "line_too_long"
)

// PlacementError reports a rule rejection as an error for callers that
// mutate game state. It matches ErrIllegalPlacement with errors.Is.
type PlacementError struct {
	Reason  RejectionReason
	Message string
}

func (e *PlacementError) Error() string {
	return e.Message
}

func (e *PlacementError) Unwrap() error {
	return ErrIllegalPlacement
}
