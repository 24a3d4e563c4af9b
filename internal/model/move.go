package model

// Step is a single-square displacement. Each axis is -1, 0 or 1.
type Step struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Move is a path of steps from a piece's square. Sliding moves repeat one
// step, knight moves combine a diagonal and an orthogonal step.
type Move []Step

// Steps are named from black's point of view: forward is toward rank 7.
var (
	stepForward       = Step{X: 0, Y: 1}
	stepBackward      = Step{X: 0, Y: -1}
	stepRight         = Step{X: 1, Y: 0}
	stepLeft          = Step{X: -1, Y: 0}
	stepForwardRight  = Step{X: 1, Y: 1}
	stepForwardLeft   = Step{X: -1, Y: 1}
	stepBackwardRight = Step{X: 1, Y: -1}
	stepBackwardLeft  = Step{X: -1, Y: -1}
)

var (
	diagonals    = []Step{stepForwardLeft, stepForwardRight, stepBackwardLeft, stepBackwardRight}
	directionals = []Step{stepForward, stepBackward, stepLeft, stepRight}
)

// Destination is the square reached after every step of m from origin.
func (m Move) Destination(origin Position) Position {
	pos := origin
	for _, s := range m {
		pos = pos.Apply(s)
	}
	return pos
}

// Path lists every square visited by m, the destination last.
func (m Move) Path(origin Position) []Position {
	path := make([]Position, 0, len(m))
	pos := origin
	for _, s := range m {
		pos = pos.Apply(s)
		path = append(path, pos)
	}
	return path
}

func repeat(s Step, n int) Move {
	m := make(Move, n)
	for i := range m {
		m[i] = s
	}
	return m
}

// AppliedMove records a move that changed the board.
type AppliedMove struct {
	PieceID    string   `json:"pieceId"`
	Side       Side     `json:"side"`
	From       Position `json:"from"`
	To         Position `json:"to"`
	CapturedID string   `json:"capturedId,omitempty"`
}
