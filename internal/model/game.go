package model

// GameState is an immutable snapshot of a game. Transitions return a new
// GameState with a new Board and leave the receiver untouched.
type GameState struct {
	Board  BoardState `json:"boardState"`
	Turn   Side       `json:"turn"`
	Winner *Side      `json:"winner"`
	Check  bool       `json:"check"`
}

// Outcome classifies a position by whether the side to move can move.
type Outcome string

const (
	Ongoing   Outcome = "ongoing"
	Checkmate Outcome = "checkmate"
	Stalemate Outcome = "stalemate"
)

// InitialGameState returns the standard starting position with white to move.
func InitialGameState() GameState {
	return GameState{
		Board: newBoard(),
		Turn:  White,
	}
}

// CalculateNextGameState plays target for the piece described by pd.
// A move that is not allowed returns gs unchanged. Turn ownership is not
// checked here; see ApplyMove.
//
// The mover is declared winner whenever the opponent is left without a
// legal move, so stalemate also produces a winner. Outcome tells the two
// apart.
func CalculateNextGameState(pd PieceData, gs GameState, target Position) GameState {
	if !MoveIsAllowed(pd, gs, target) {
		return gs
	}

	next := GameState{
		Board: gs.Board.project(pd.Position, target),
		Turn:  gs.Turn.Opponent(),
	}
	next.Check = IsInCheck(next, next.Turn)
	if !HasLegalMoves(next, next.Turn) {
		winner := gs.Turn
		next.Winner = &winner
	}
	return next
}

// ApplyMove moves the occupant of from to to, enforcing that the game is
// still running, that the piece belongs to the side to move and that the
// move is legal. Errors are *MoveError.
func ApplyMove(gs GameState, from, to Position) (GameState, AppliedMove, error) {
	fail := func(side Side, err error) (GameState, AppliedMove, error) {
		return gs, AppliedMove{}, &MoveError{From: from, To: to, Side: side, Err: err}
	}

	if !from.Valid() || !to.Valid() {
		return fail("", ErrOutOfBounds)
	}
	if gs.Winner != nil {
		return fail("", ErrGameOver)
	}
	piece, ok := gs.Board.PieceAt(from)
	if !ok {
		return fail("", ErrNoPiece)
	}
	if piece.Side != gs.Turn {
		return fail(piece.Side, ErrWrongTurn)
	}
	pd := piece.At(from)
	if !MoveIsAllowed(pd, gs, to) {
		return fail(piece.Side, ErrIllegalMove)
	}

	applied := AppliedMove{PieceID: piece.ID, Side: piece.Side, From: from, To: to}
	if captured, ok := gs.Board.PieceAt(to); ok {
		applied.CapturedID = captured.ID
	}
	return CalculateNextGameState(pd, gs, to), applied, nil
}

// Outcome reports whether the side to move is checkmated, stalemated or
// still has a legal move.
func (gs GameState) Outcome() Outcome {
	if HasLegalMoves(gs, gs.Turn) {
		return Ongoing
	}
	if IsInCheck(gs, gs.Turn) {
		return Checkmate
	}
	return Stalemate
}
