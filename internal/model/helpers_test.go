package model

import (
	"fmt"
	"sort"
	"testing"
)

func at(x, y int) Position {
	return Position{X: x, Y: y}
}

func pc(side Side, t PieceType) Piece {
	return Piece{Type: t, Side: side, HasMoved: true}
}

func fresh(side Side, t PieceType) Piece {
	return Piece{Type: t, Side: side}
}

// stateWith builds a state from a square -> piece map. Pieces without an ID
// get one derived from their square.
func stateWith(turn Side, pieces map[Position]Piece) GameState {
	board := BoardState{}
	for pos, p := range pieces {
		if p.ID == "" {
			p.ID = fmt.Sprintf("%s-%s-%s", p.Side, p.Type, pos.ID())
		}
		board[pos.ID()] = p
	}
	return GameState{Board: board, Turn: turn}
}

func dataAt(t *testing.T, gs GameState, pos Position) PieceData {
	t.Helper()
	p, ok := gs.Board.PieceAt(pos)
	if !ok {
		t.Fatalf("no piece at %s", pos)
	}
	return p.At(pos)
}

func destinationIDs(origin Position, moves []Move) []string {
	ids := make([]string, 0, len(moves))
	for _, m := range moves {
		ids = append(ids, string(m.Destination(origin).ID()))
	}
	sort.Strings(ids)
	return ids
}

func mustMove(t *testing.T, gs GameState, from, to Position) GameState {
	t.Helper()
	next, _, err := ApplyMove(gs, from, to)
	if err != nil {
		t.Fatalf("ApplyMove(%s, %s): %v", from, to, err)
	}
	return next
}
