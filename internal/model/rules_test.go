package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSlidingBlockedByInterveningPiece(t *testing.T) {
	tests := []struct {
		name    string
		blocker Piece
		want    []string
	}{
		{"own piece", pc(White, Knight), []string{"01", "02"}},
		{"enemy piece", pc(Black, Knight), []string{"01", "02", "03"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := stateWith(White, map[Position]Piece{
				at(0, 0): pc(White, Rook),
				at(0, 3): tt.blocker,
			})
			rook := dataAt(t, gs, at(0, 0))

			var onFile []Move
			for _, m := range GetAllowedMoves(rook, gs) {
				if m.Destination(rook.Position).X == 0 {
					onFile = append(onFile, m)
				}
			}
			if diff := cmp.Diff(tt.want, destinationIDs(rook.Position, onFile)); diff != "" {
				t.Errorf("file destinations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKnightJumps(t *testing.T) {
	gs := InitialGameState()
	knight := dataAt(t, gs, at(1, 7))
	got := destinationIDs(knight.Position, GetAllowedMoves(knight, gs))
	if diff := cmp.Diff([]string{"05", "25"}, got); diff != "" {
		t.Errorf("knight destinations mismatch (-want +got):\n%s", diff)
	}
}

func TestPawnDoubleStepOnlyOnce(t *testing.T) {
	tests := []struct {
		name     string
		hasMoved bool
		want     []string
	}{
		{"unmoved", false, []string{"34", "35"}},
		{"moved", true, []string{"35"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := stateWith(White, map[Position]Piece{
				at(3, 6): {Type: Pawn, Side: White, HasMoved: tt.hasMoved},
			})
			pawn := dataAt(t, gs, at(3, 6))
			got := destinationIDs(pawn.Position, GetAllowedMoves(pawn, gs))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("pawn destinations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPawnBlockedAhead(t *testing.T) {
	gs := stateWith(Black, map[Position]Piece{
		at(2, 1): fresh(Black, Pawn),
		at(2, 3): pc(White, Pawn),
	})
	pawn := dataAt(t, gs, at(2, 1))
	got := destinationIDs(pawn.Position, GetAllowedMoves(pawn, gs))
	if diff := cmp.Diff([]string{"22"}, got); diff != "" {
		t.Errorf("pawn destinations mismatch (-want +got):\n%s", diff)
	}

	gs.Board[at(2, 2).ID()] = pc(White, Bishop)
	if moves := GetAllowedMoves(pawn, gs); len(moves) != 0 {
		t.Errorf("blocked pawn has moves %v", moves)
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[Position]Piece
		side   Side
		want   bool
	}{
		{
			name: "rook on open file",
			pieces: map[Position]Piece{
				at(4, 7): pc(White, King),
				at(4, 0): pc(Black, Rook),
			},
			side: White,
			want: true,
		},
		{
			name: "rook blocked",
			pieces: map[Position]Piece{
				at(4, 7): pc(White, King),
				at(4, 3): pc(Black, Pawn),
				at(4, 0): pc(Black, Rook),
			},
			side: White,
			want: false,
		},
		{
			name: "pawn attacks diagonally",
			pieces: map[Position]Piece{
				at(4, 0): pc(Black, King),
				at(5, 1): pc(White, Pawn),
			},
			side: Black,
			want: true,
		},
		{
			name: "pawn does not attack straight ahead",
			pieces: map[Position]Piece{
				at(4, 0): pc(Black, King),
				at(4, 1): pc(White, Pawn),
			},
			side: Black,
			want: false,
		},
		{
			name: "knight",
			pieces: map[Position]Piece{
				at(4, 0): pc(Black, King),
				at(3, 2): pc(White, Knight),
			},
			side: Black,
			want: true,
		},
		{
			name: "own pieces never give check",
			pieces: map[Position]Piece{
				at(4, 0): pc(Black, King),
				at(4, 4): pc(Black, Queen),
			},
			side: Black,
			want: false,
		},
		{
			name:   "no king",
			pieces: map[Position]Piece{at(4, 4): pc(Black, Queen)},
			side:   White,
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInCheck(stateWith(White, tt.pieces), tt.side); got != tt.want {
				t.Errorf("IsInCheck(%s) = %v; want %v", tt.side, got, tt.want)
			}
		})
	}
}

func TestKingSafety(t *testing.T) {
	gs := stateWith(White, map[Position]Piece{
		at(4, 7): pc(White, King),
		at(4, 5): pc(White, Rook),
		at(4, 0): pc(Black, Rook),
		at(7, 0): pc(Black, King),
	})
	rook := dataAt(t, gs, at(4, 5))
	sideways := Move{stepLeft}

	pseudo := destinationIDs(rook.Position, GetAllowedMoves(rook, gs))
	if !contains(pseudo, "35") {
		t.Fatalf("pseudo-legal destinations %v should include 35", pseudo)
	}
	if !Chain(InsideBoard, NotCollide, NotPopulated)(sideways, gs, rook) {
		t.Fatal("pipeline rejected the sideways rook move")
	}

	legal := destinationIDs(rook.Position, LegalMoves(rook, gs))
	want := []string{"40", "41", "42", "43", "44", "46"}
	if diff := cmp.Diff(want, legal); diff != "" {
		t.Errorf("pinned rook legal destinations mismatch (-want +got):\n%s", diff)
	}
	if MoveIsAllowed(rook, gs, at(3, 5)) {
		t.Error("MoveIsAllowed accepted a move exposing the king")
	}
}

func TestKingCannotStepIntoCheck(t *testing.T) {
	gs := stateWith(White, map[Position]Piece{
		at(4, 7): pc(White, King),
		at(3, 0): pc(Black, Rook),
		at(7, 0): pc(Black, King),
	})
	king := dataAt(t, gs, at(4, 7))
	for _, dest := range Destinations(king, gs) {
		if dest.X == 3 {
			t.Errorf("king may move to attacked square %s", dest)
		}
	}
	if !MoveIsAllowed(king, gs, at(5, 6)) {
		t.Error("king should be allowed to move to (5,6)")
	}
}

func TestInitialPositionMoves(t *testing.T) {
	gs := InitialGameState()
	total := 0
	for _, pd := range gs.Board.PiecesOf(White) {
		total += len(LegalMoves(pd, gs))
	}
	if total != 20 {
		t.Errorf("white has %d legal moves; want 20", total)
	}
	if IsInCheck(gs, White) || IsInCheck(gs, Black) {
		t.Error("initial position reports check")
	}
	if !HasLegalMoves(gs, Black) {
		t.Error("black has no legal moves in the initial position")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
