package model

// GetAllowedMoves returns the pseudo-legal moves of a piece: every template
// of its type that passes its legality checks. King safety is not considered.
func GetAllowedMoves(pd PieceData, gs GameState) []Move {
	moves := []Move{}
	for _, t := range Templates(pd.Type, pd.Side) {
		if t.Check(t.Move, gs, pd) {
			moves = append(moves, append(Move(nil), t.Move...))
		}
	}
	return moves
}

// IsInCheck reports whether any enemy piece has a pseudo-legal move landing
// on a king of side.
func IsInCheck(gs GameState, side Side) bool {
	for _, attacker := range gs.Board.PiecesOf(side.Opponent()) {
		if threatensKing(attacker, gs) {
			return true
		}
	}
	return false
}

func threatensKing(attacker PieceData, gs GameState) bool {
	for _, m := range GetAllowedMoves(attacker, gs) {
		target, ok := gs.Board.PieceAt(m.Destination(attacker.Position))
		if ok && target.Side != attacker.Side && target.Type == King {
			return true
		}
	}
	return false
}

// LegalMoves filters the pseudo-legal moves of a piece down to those that do
// not leave its own king in check.
func LegalMoves(pd PieceData, gs GameState) []Move {
	legal := []Move{}
	for _, m := range GetAllowedMoves(pd, gs) {
		projected := gs
		projected.Board = gs.Board.project(pd.Position, m.Destination(pd.Position))
		if !IsInCheck(projected, pd.Side) {
			legal = append(legal, m)
		}
	}
	return legal
}

// Destinations returns the squares a piece can legally move to.
func Destinations(pd PieceData, gs GameState) []Position {
	moves := LegalMoves(pd, gs)
	out := make([]Position, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.Destination(pd.Position))
	}
	return out
}

// MoveIsAllowed reports whether target is reachable by a legal move.
func MoveIsAllowed(pd PieceData, gs GameState, target Position) bool {
	for _, dest := range Destinations(pd, gs) {
		if dest.ID() == target.ID() {
			return true
		}
	}
	return false
}

// HasLegalMoves reports whether side has at least one legal move.
func HasLegalMoves(gs GameState, side Side) bool {
	for _, pd := range gs.Board.PiecesOf(side) {
		if len(LegalMoves(pd, gs)) > 0 {
			return true
		}
	}
	return false
}
