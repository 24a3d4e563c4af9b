package model

import "sync"

// Template is a geometric move candidate together with the legality checks
// that must all pass for it to be playable.
type Template struct {
	Move  Move
	Check MoveCheck
}

type catalogKey struct {
	Type PieceType
	Side Side
}

var (
	insideBoardAndNotCollide = Chain(InsideBoard, NotCollide)
	slidingChecks            = Chain(insideBoardAndNotCollide, NotPopulated)
	leapingChecks            = Chain(InsideBoard, NotPopulated)
)

// catalog is built on first use and read-only afterwards.
var catalog = sync.OnceValue(buildCatalog)

func buildCatalog() map[catalogKey][]Template {
	c := make(map[catalogKey][]Template)
	for _, side := range []Side{White, Black} {
		c[catalogKey{Pawn, side}] = pawnTemplates(side)
		c[catalogKey{Rook, side}] = withChecks(rays(directionals), slidingChecks)
		c[catalogKey{Bishop, side}] = withChecks(rays(diagonals), slidingChecks)
		c[catalogKey{Queen, side}] = withChecks(append(rays(diagonals), rays(directionals)...), slidingChecks)
		c[catalogKey{Knight, side}] = withChecks(knightMoves(), leapingChecks)
		c[catalogKey{King, side}] = withChecks(singleSteps(), slidingChecks)
	}
	return c
}

// Templates returns the move templates of a piece type. Only pawns differ
// between sides. The returned slice is a copy.
func Templates(t PieceType, s Side) []Template {
	src := catalog()[catalogKey{t, s}]
	out := make([]Template, len(src))
	copy(out, src)
	return out
}

func pawnTemplates(side Side) []Template {
	forward, left, right := stepBackward, stepBackwardLeft, stepBackwardRight
	if side == Black {
		forward, left, right = stepForward, stepForwardLeft, stepForwardRight
	}
	return []Template{
		{Move: repeat(forward, 2), Check: Chain(NotEats, IsFirstMove, insideBoardAndNotCollide, NotPopulated)},
		{Move: Move{forward}, Check: Chain(NotEats, insideBoardAndNotCollide, NotPopulated)},
		{Move: Move{left}, Check: Chain(Eats, insideBoardAndNotCollide, NotPopulated)},
		{Move: Move{right}, Check: Chain(Eats, insideBoardAndNotCollide, NotPopulated)},
	}
}

// rays expands each direction into moves of length 1 to 8.
func rays(steps []Step) []Move {
	moves := make([]Move, 0, len(steps)*BoardSize)
	for _, s := range steps {
		for n := 1; n <= BoardSize; n++ {
			moves = append(moves, repeat(s, n))
		}
	}
	return moves
}

func knightMoves() []Move {
	return []Move{
		{stepForwardLeft, stepLeft},
		{stepForwardLeft, stepForward},
		{stepForwardRight, stepRight},
		{stepForwardRight, stepForward},
		{stepBackwardLeft, stepLeft},
		{stepBackwardLeft, stepBackward},
		{stepBackwardRight, stepRight},
		{stepBackwardRight, stepBackward},
	}
}

func singleSteps() []Move {
	moves := make([]Move, 0, 8)
	for _, s := range append(append([]Step{}, diagonals...), directionals...) {
		moves = append(moves, Move{s})
	}
	return moves
}

func withChecks(moves []Move, check MoveCheck) []Template {
	out := make([]Template, len(moves))
	for i, m := range moves {
		out[i] = Template{Move: m, Check: check}
	}
	return out
}
