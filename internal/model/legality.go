package model

// MoveCheck is one predicate of the legality pipeline. It reports whether
// the move survives for the given piece in the given state.
type MoveCheck func(m Move, gs GameState, pd PieceData) bool

// Chain composes checks in order and stops at the first rejection.
func Chain(checks ...MoveCheck) MoveCheck {
	return func(m Move, gs GameState, pd PieceData) bool {
		for _, check := range checks {
			if !check(m, gs, pd) {
				return false
			}
		}
		return true
	}
}

// InsideBoard rejects moves whose path leaves the board at any point.
func InsideBoard(m Move, _ GameState, pd PieceData) bool {
	for _, pos := range m.Path(pd.Position) {
		if !pos.Valid() {
			return false
		}
	}
	return true
}

// NotCollide rejects moves that pass over an occupied square.
func NotCollide(m Move, gs GameState, pd PieceData) bool {
	path := m.Path(pd.Position)
	if len(path) == 0 {
		return true
	}
	for _, pos := range path[:len(path)-1] {
		if _, ok := gs.Board[pos.ID()]; ok {
			return false
		}
	}
	return true
}

// NotPopulated rejects moves onto a square held by the mover's own side.
func NotPopulated(m Move, gs GameState, pd PieceData) bool {
	target, ok := gs.Board[m.Destination(pd.Position).ID()]
	return !ok || target.Side != pd.Side
}

// Eats keeps only moves that capture an enemy piece.
func Eats(m Move, gs GameState, pd PieceData) bool {
	target, ok := gs.Board[m.Destination(pd.Position).ID()]
	return ok && target.Side != pd.Side
}

// NotEats keeps only moves onto an empty square.
func NotEats(m Move, gs GameState, pd PieceData) bool {
	_, ok := gs.Board[m.Destination(pd.Position).ID()]
	return !ok
}

// IsFirstMove keeps the move only if the occupant of the origin square has
// never moved.
func IsFirstMove(_ Move, gs GameState, pd PieceData) bool {
	p, ok := gs.Board[pd.Position.ID()]
	return ok && !p.HasMoved
}
