// Package render draws a game state as text for debug logs.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

var letters = map[model.PieceType]string{
	model.King:   "k",
	model.Queen:  "q",
	model.Rook:   "r",
	model.Bishop: "b",
	model.Knight: "n",
	model.Pawn:   "p",
}

type Renderer struct {
	white *color.Color
	black *color.Color
	empty *color.Color
	label *color.Color
}

// New returns a Renderer. With colored false the output is plain ASCII.
func New(colored bool) *Renderer {
	r := &Renderer{
		white: color.New(color.FgHiWhite, color.Bold),
		black: color.New(color.FgHiRed, color.Bold),
		empty: color.New(color.FgHiBlack),
		label: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{r.white, r.black, r.empty, r.label} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Board renders rank 0 at the top. White pieces are upper case.
func (r *Renderer) Board(gs model.GameState) string {
	var sb strings.Builder
	sb.WriteString(r.label.Sprint("  0 1 2 3 4 5 6 7"))
	sb.WriteByte('\n')
	for y := 0; y < model.BoardSize; y++ {
		sb.WriteString(r.label.Sprint(y))
		for x := 0; x < model.BoardSize; x++ {
			sb.WriteByte(' ')
			sb.WriteString(r.square(gs.Board, model.Position{X: x, Y: y}))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(r.status(gs))
	return sb.String()
}

func (r *Renderer) square(b model.BoardState, pos model.Position) string {
	p, ok := b.PieceAt(pos)
	if !ok {
		return r.empty.Sprint(".")
	}
	if p.Side == model.White {
		return r.white.Sprint(strings.ToUpper(letters[p.Type]))
	}
	return r.black.Sprint(letters[p.Type])
}

func (r *Renderer) status(gs model.GameState) string {
	s := fmt.Sprintf("turn: %s check: %t", gs.Turn, gs.Check)
	if gs.Winner != nil {
		s += fmt.Sprintf(" winner: %s", *gs.Winner)
	}
	return s
}
