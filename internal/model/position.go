package model

import (
	"fmt"
	"strconv"
)

const BoardSize = 8

// Position is a board square. X is the file, Y the rank, both 0-7.
// Rank 0 is black's back rank, rank 7 white's.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PositionID is the board lookup key of a Position, e.g. "46".
type PositionID string

func NewPosition(x, y int) (Position, error) {
	p := Position{X: x, Y: y}
	if !p.Valid() {
		return Position{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return p, nil
}

func (p Position) Valid() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

func (p Position) ID() PositionID {
	return PositionID(strconv.Itoa(p.X) + strconv.Itoa(p.Y))
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Apply returns the square reached by taking a single step from p.
// The result may be off the board.
func (p Position) Apply(s Step) Position {
	return Position{X: p.X + s.X, Y: p.Y + s.Y}
}

// ParsePositionID is the inverse of Position.ID.
func ParsePositionID(id PositionID) (Position, error) {
	if len(id) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPositionID, string(id))
	}
	x, errX := strconv.Atoi(string(id[0]))
	y, errY := strconv.Atoi(string(id[1]))
	if errX != nil || errY != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPositionID, string(id))
	}
	return NewPosition(x, y)
}
