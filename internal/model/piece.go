package model

// Side is one of the two players. White moves first.
type Side string

const (
	White Side = "white"
	Black Side = "black"
)

func (s Side) Valid() bool {
	return s == White || s == Black
}

func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Piece is a single piece instance. ID is unique per instance on a board.
type Piece struct {
	ID       string    `json:"id"`
	Type     PieceType `json:"type"`
	Side     Side      `json:"side"`
	HasMoved bool      `json:"hasMoved"`
}

// PieceData is a piece seen at a particular square.
type PieceData struct {
	Type     PieceType `json:"type"`
	Side     Side      `json:"side"`
	Position Position  `json:"position"`
}

func (p Piece) At(pos Position) PieceData {
	return PieceData{Type: p.Type, Side: p.Side, Position: pos}
}
