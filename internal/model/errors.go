package model

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrInvalidPositionID = errors.New("invalid position id")
	ErrNoPiece           = errors.New("no piece at from square")
	ErrWrongTurn         = errors.New("not your turn")
	ErrIllegalMove       = errors.New("illegal move")
	ErrGameOver          = errors.New("game is over")
)

// MoveError wraps a rejected move attempt with the squares involved.
type MoveError struct {
	From Position
	To   Position
	Side Side
	Err  error
}

func (e *MoveError) Error() string {
	if e.Side != "" {
		return fmt.Sprintf("%s move %s -> %s: %v", e.Side, e.From, e.To, e.Err)
	}
	return fmt.Sprintf("move %s -> %s: %v", e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
