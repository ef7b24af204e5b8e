package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/iotagame/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"` // Rule that rejected a placement
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidConfig       = "INVALID_CONFIG"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeGameComplete        = "GAME_COMPLETE"
	CodeGameAbandoned       = "GAME_ABANDONED"
	CodeCardNotInHand       = "CARD_NOT_IN_HAND"
	CodeNoPendingPlacements = "NO_PENDING_PLACEMENTS"
	CodeTurnLimitReached    = "TURN_LIMIT_REACHED"
	CodeIllegalPlacement    = "ILLEGAL_PLACEMENT"
	CodeCellOccupied        = "CELL_OCCUPIED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var pe *model.PlacementError
	if errors.As(err, &pe) {
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeIllegalPlacement, pe.Message, string(pe.Reason)}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeGameNotFound, Message: "Game not found"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{Code: CodeGameComplete, Message: "Game is already complete"}}
	case errors.Is(err, model.ErrGameAbandoned):
		return &httpError{http.StatusConflict, APIError{Code: CodeGameAbandoned, Message: "Game has been abandoned"}}
	case errors.Is(err, model.ErrCardNotInHand):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeCardNotInHand, Message: "Card is not in hand"}}
	case errors.Is(err, model.ErrNoPendingPlacements):
		return &httpError{http.StatusConflict, APIError{Code: CodeNoPendingPlacements, Message: "You must place at least one card"}}
	case errors.Is(err, model.ErrTurnLimitReached):
		return &httpError{http.StatusConflict, APIError{Code: CodeTurnLimitReached, Message: "Maximum cards per turn already placed"}}
	case errors.Is(err, model.ErrInvalidAlphabet), errors.Is(err, model.ErrInvalidGameConfig):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidConfig, Message: err.Error()}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{Code: CodeCellOccupied, Message: "Cell is already occupied"}}
	case errors.Is(err, model.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{Code: CodeInvalidToken, Message: "Invalid game token"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{Code: CodeUnauthorized, Message: "Game token required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
