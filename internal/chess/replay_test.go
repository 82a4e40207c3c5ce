package chess

import (
	"errors"
	"testing"
)

func TestReconstructMatchesFoldedApply(t *testing.T) {
	history := []string{
		"e2e4", "e7e5",
		"g1f3", "b8c6",
		"f1c4", "g8f6",
		"e1g1", "f6e4", // white castles, black grabs the pawn
		"f1e1", "e4d6",
	}

	replayed, err := Reconstruct(InitialFEN, history)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}

	folded := Initial()
	for _, entry := range history {
		folded = mustApply(t, folded, entry)
	}

	if replayed != folded {
		t.Errorf("replayed %q != folded %q", replayed.FEN(), folded.FEN())
	}
}

func TestReconstructEnPassantHistory(t *testing.T) {
	history := []string{"e2e4", "a7a6", "e4e5", "d7d5", "e5d6"}
	p, err := Reconstruct(InitialFEN, history)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if got := p.PieceAt(MakeSquare(FileD, Rank5)); !got.Empty() {
		t.Errorf("en-passant victim still on d5 after replay: %+v", got)
	}
	if got := p.PieceAt(MakeSquare(FileD, Rank6)); got != (Piece{Kind: Pawn, Color: White}) {
		t.Errorf("d6 holds %+v after replay, want white pawn", got)
	}
}

func TestReconstructRejectsBadHistory(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		history []string
		wantPly int
	}{
		{"impossible move", InitialFEN, []string{"e2e4", "e7e6", "e4e3"}, 2},
		{"wrong side", InitialFEN, []string{"e2e4", "d2d4"}, 1},
		{"malformed entry", InitialFEN, []string{"e2e4", "castle"}, 1},
		{"promotion without kind", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", []string{"a7a8"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reconstruct(tt.start, tt.history)
			var mismatch *HistoryMismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("Reconstruct = %v, want *HistoryMismatchError", err)
			}
			if mismatch.Ply != tt.wantPly {
				t.Errorf("mismatch at ply %d, want %d", mismatch.Ply, tt.wantPly)
			}
		})
	}
}

func TestReconstructRejectsBadStart(t *testing.T) {
	_, err := Reconstruct("not a position", nil)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Reconstruct with bad FEN = %v, want *ParseError", err)
	}
}
