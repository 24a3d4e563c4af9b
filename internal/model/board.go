package model

import (
	"fmt"
	"sort"
)

// BoardState maps occupied squares to their pieces. Empty squares have no key.
type BoardState map[PositionID]Piece

var backRank = []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newBoard() BoardState {
	board := make(BoardState, 4*BoardSize)
	for x := 0; x < BoardSize; x++ {
		board.place(Black, backRank[x], Position{X: x, Y: 0})
		board.place(Black, Pawn, Position{X: x, Y: 1})
		board.place(White, Pawn, Position{X: x, Y: 6})
		board.place(White, backRank[x], Position{X: x, Y: 7})
	}
	return board
}

func (b BoardState) place(side Side, t PieceType, pos Position) {
	b[pos.ID()] = Piece{
		ID:   fmt.Sprintf("%s-%s-%d", side, t, pos.X),
		Type: t,
		Side: side,
	}
}

// Clone returns a board that shares nothing with b.
func (b BoardState) Clone() BoardState {
	out := make(BoardState, len(b))
	for id, p := range b {
		out[id] = p
	}
	return out
}

// PieceAt returns the occupant of pos, if any.
func (b BoardState) PieceAt(pos Position) (Piece, bool) {
	p, ok := b[pos.ID()]
	return p, ok
}

// PiecesOf lists the pieces of one side, ordered by square id.
func (b BoardState) PiecesOf(side Side) []PieceData {
	ids := make([]string, 0, len(b))
	for id, p := range b {
		if p.Side == side {
			ids = append(ids, string(id))
		}
	}
	sort.Strings(ids)

	pieces := make([]PieceData, 0, len(ids))
	for _, id := range ids {
		pos, err := ParsePositionID(PositionID(id))
		if err != nil {
			continue
		}
		pieces = append(pieces, b[PositionID(id)].At(pos))
	}
	return pieces
}

// project returns a new board with the occupant of from moved to to.
// Whatever stood on to is dropped.
func (b BoardState) project(from, to Position) BoardState {
	out := b.Clone()
	p, ok := out[from.ID()]
	if !ok {
		return out
	}
	p.HasMoved = true
	delete(out, from.ID())
	out[to.ID()] = p
	return out
}
