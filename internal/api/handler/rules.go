package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/iotagame/internal/api/request"
	"github.com/mcoot/iotagame/internal/api/response"
	"github.com/mcoot/iotagame/internal/model"
	"github.com/mcoot/iotagame/internal/services/rules"
)

// RulesHandler evaluates the rules against a board supplied by the client.
// It holds no state.
type RulesHandler struct{}

// NewRulesHandler creates a new rules handler
func NewRulesHandler() *RulesHandler {
	return &RulesHandler{}
}

// snapshot is a decoded board with the rules service for its alphabet
type snapshot struct {
	rules    *rules.Service
	alphabet model.Alphabet
	board    *model.Board
}

func (h *RulesHandler) snapshot(alphabet request.Alphabet, placements []request.Placement, opts ...rules.Option) (*snapshot, error) {
	a, err := alphabet.ToModel()
	if err != nil {
		return nil, err
	}
	cells, err := request.ToModel(placements, a)
	if err != nil {
		return nil, NewInvalidRequestError(err.Error())
	}
	board, err := model.NewBoard(cells...)
	if err != nil {
		return nil, NewInvalidRequestError(err.Error())
	}
	return &snapshot{rules: rules.New(a, opts...), alphabet: a, board: board}, nil
}

// Validate handles POST /api/v1/rules/validate
func (h *RulesHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateRequest
	if !decode(w, r, &req) {
		return
	}

	snap, err := h.snapshot(req.Alphabet, req.Board)
	if err != nil {
		WriteError(w, err)
		return
	}
	card, err := req.Card.ToModel(snap.alphabet)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}
	pending, err := request.ToModel(req.Pending, snap.alphabet)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	verdict := snap.rules.ExplainPending(card, pos, snap.board, pending)
	response.JSON(w, http.StatusOK, response.VerdictFromRules(verdict))
}

// Score handles POST /api/v1/rules/score
func (h *RulesHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req request.ScoreRequest
	if !decode(w, r, &req) {
		return
	}

	snap, err := h.snapshot(req.Alphabet, req.Board)
	if err != nil {
		WriteError(w, err)
		return
	}
	placements, err := request.ToModel(req.Placements, snap.alphabet)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	breakdown, err := snap.rules.Score(placements, snap.board)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}
	response.JSON(w, http.StatusOK, response.ScoreFromRules(breakdown))
}

// Impossible handles POST /api/v1/rules/impossible
func (h *RulesHandler) Impossible(w http.ResponseWriter, r *http.Request) {
	var req request.ImpossibleRequest
	if !decode(w, r, &req) {
		return
	}
	if (req.Row == nil) != (req.Col == nil) {
		WriteError(w, NewInvalidRequestError("row and col must be given together"))
		return
	}

	snap, err := h.snapshot(req.Alphabet, req.Board, rules.WithWildCards(req.WildCards))
	if err != nil {
		WriteError(w, err)
		return
	}

	if req.Row != nil {
		pos := model.Position{Row: *req.Row, Col: *req.Col}
		response.JSON(w, http.StatusOK, response.Impossible{
			Row:        pos.Row,
			Col:        pos.Col,
			Impossible: snap.rules.IsImpossibleSquare(pos, snap.board),
		})
		return
	}
	response.JSON(w, http.StatusOK, response.Positions{
		Positions: response.PositionsFromModel(snap.rules.ImpossibleSquares(snap.board)),
	})
}

// Placements handles POST /api/v1/rules/placements
func (h *RulesHandler) Placements(w http.ResponseWriter, r *http.Request) {
	var req request.PlacementsRequest
	if !decode(w, r, &req) {
		return
	}

	snap, err := h.snapshot(req.Alphabet, req.Board)
	if err != nil {
		WriteError(w, err)
		return
	}
	pending, err := request.ToModel(req.Pending, snap.alphabet)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	positions, err := rules.ValidPlacements(snap.board, pending)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}
	response.JSON(w, http.StatusOK, response.Positions{Positions: response.PositionsFromModel(positions)})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return false
	}
	return true
}
