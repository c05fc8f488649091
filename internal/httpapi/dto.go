package httpapi

import "github.com/katalvlaran/knightpath/board"

// PositionDTO is a board position on the wire.
type PositionDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p PositionDTO) toBoard() board.Position { return board.Pos(p.X, p.Y) }

func fromBoard(p board.Position) PositionDTO { return PositionDTO{X: p.X, Y: p.Y} }

func sequenceToDTO(seq board.Sequence) []PositionDTO {
	out := make([]PositionDTO, len(seq))
	for i, p := range seq {
		out[i] = fromBoard(p)
	}

	return out
}

func sequenceFromDTO(in []PositionDTO) board.Sequence {
	out := make(board.Sequence, len(in))
	for i, p := range in {
		out[i] = p.toBoard()
	}

	return out
}

// FindPathRequest asks for a route across an encoded board.
type FindPathRequest struct {
	Board    string      `json:"board"` // text encoding, one row per line
	Start    PositionDTO `json:"start"`
	End      PositionDTO `json:"end"`
	Strategy string      `json:"strategy"` // "any", "fewest" or "shortest" (default)
	Sight    string      `json:"sight"`    // "rect" (default), "line" or "none"
	Render   bool        `json:"render"`   // include text frames of the route
}

// FindPathResponse reports the route, or Found=false when there is none.
type FindPathResponse struct {
	RequestID string        `json:"request_id"`
	RunID     string        `json:"run_id,omitempty"`
	Found     bool          `json:"found"`
	Strategy  string        `json:"strategy"`
	Sequence  []PositionDTO `json:"sequence"`
	Cost      int64         `json:"cost"`
	Explored  int           `json:"explored"`
	Frames    string        `json:"frames,omitempty"`
}

// ValidateRequest asks whether a sequence is a legal route.
// Teleport defaults to whether the board has a teleporter pair.
type ValidateRequest struct {
	Board    string        `json:"board"`
	Start    PositionDTO   `json:"start"`
	End      PositionDTO   `json:"end"`
	Sequence []PositionDTO `json:"sequence"`
	Teleport *bool         `json:"teleport,omitempty"`
}

// ValidateResponse carries the verdict.
type ValidateResponse struct {
	RequestID string `json:"request_id"`
	Valid     bool   `json:"valid"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}
