package chess

import "testing"

func perft(p Position, depth int) int {
	if depth == 0 {
		return 1
	}
	nodes := 0
	for _, m := range p.LegalMoves() {
		if depth == 1 {
			nodes++
			continue
		}
		nodes += perft(p.applyUnchecked(m), depth-1)
	}
	return nodes
}

// Node counts from the published perft table; together they exercise
// castling, en passant, promotion, pins, and check evasion.
// https://www.chessprogramming.org/Perft_Results
func TestPerft(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
		nodes int
	}{
		{InitialFEN, 1, 20},
		{InitialFEN, 2, 400},
		{InitialFEN, 3, 8902},
		{InitialFEN, 4, 197281},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 1, 48},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
		{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 1, 6},
		{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2, 264},
		{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 3, 9467},
		{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 1, 44},
		{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 2, 1486},
		{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62379},
		{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 1, 46},
		{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 2, 2079},
		{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 3, 89890},
	}
	for _, tt := range tests {
		p, err := ParseFEN(tt.fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", tt.fen, err)
		}
		if nodes := perft(p, tt.depth); nodes != tt.nodes {
			t.Errorf("perft(%q, %d) = %d, want %d", tt.fen, tt.depth, nodes, tt.nodes)
		}
	}
}

func TestLegalMovesDeterministicOrder(t *testing.T) {
	p := Initial()
	first := p.LegalMoves()
	if len(first) != 20 {
		t.Fatalf("initial position has %d legal moves, want 20", len(first))
	}
	second := p.LegalMoves()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("move order not stable: %v vs %v at index %d", first[i], second[i], i)
		}
	}
	// Ascending rank-then-file scan: the a2 pawn's moves come before the
	// b1 knight's only when the b1 knight, on rank 1, is scanned first.
	if first[0].From.String() != "b1" {
		t.Errorf("first generated move starts from %s, want b1", first[0].From)
	}
}

func TestCastlingLegality(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want bool
	}{
		{"kingside allowed", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "e1g1", true},
		{"queenside allowed", "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1", "e1c1", true},
		{"no right", "4k3/8/8/8/8/8/8/4K2R w - - 0 1", "e1g1", false},
		{"blocked", "4k3/8/8/8/8/8/8/4KB1R w K - 0 1", "e1g1", false},
		{"king in check", "4k3/8/8/8/8/8/4r3/4K2R w K - 0 1", "e1g1", false},
		{"pass square attacked", "4kr2/8/8/8/8/8/8/4K2R w K - 0 1", "e1g1", false},
		{"landing square attacked", "4k1r1/8/8/8/8/8/8/4K2R w K - 0 1", "e1g1", false},
		{"queenside pass square attacked", "3rk3/8/8/8/8/8/8/R3K3 w Q - 0 1", "e1c1", false},
		{"queenside b-file attack is fine", "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1", "e1c1", true},
		{"black kingside", "4k2r/8/8/8/8/8/8/4K3 b k - 0 1", "e8g8", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatal(err)
			}
			want, err := ParseMove(tt.move)
			if err != nil {
				t.Fatal(err)
			}
			found := false
			for _, m := range p.LegalMoves() {
				if m == want {
					found = true
				}
			}
			if found != tt.want {
				t.Errorf("castle %s in legal moves = %v, want %v", tt.move, found, tt.want)
			}
		})
	}
}

func TestPromotionEnumeration(t *testing.T) {
	p, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var kinds []PieceKind
	for _, m := range p.LegalMoves() {
		if m.From.String() == "a7" {
			if m.To.String() != "a8" {
				t.Errorf("unexpected pawn move %v", m)
			}
			kinds = append(kinds, m.Promotion)
		}
	}
	want := []PieceKind{Queen, Rook, Bishop, Knight}
	if len(kinds) != len(want) {
		t.Fatalf("promotion kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("promotion kinds = %v, want %v", kinds, want)
			break
		}
	}
}

func TestEnPassantGeneration(t *testing.T) {
	// White pawn e5, black just played d7d5.
	p, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal(err)
	}
	want := Move{From: MakeSquare(FileE, Rank5), To: MakeSquare(FileD, Rank6)}
	found := false
	for _, m := range p.LegalMoves() {
		if m == want {
			found = true
		}
	}
	if !found {
		t.Errorf("en passant capture e5d6 not generated")
	}

	// Same board with no en-passant target: the capture must vanish.
	p2, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range p2.LegalMoves() {
		if m == want {
			t.Errorf("e5d6 generated without an en-passant target")
		}
	}
}

func TestIsAttacked(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/2n5/3P4/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		sq   string
		by   Color
		want bool
	}{
		{"d1", Black, true},  // knight on c3
		{"e1", Black, false}, // knight does not cover e1
		{"c3", White, true},  // pawn d2 attacks diagonally
		{"d3", White, false}, // pawn push is not an attack
		{"e2", White, true},  // king adjacency
		{"e7", Black, true},  // king adjacency
	}
	for _, tt := range tests {
		sq, err := ParseSquare(tt.sq)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.IsAttacked(sq, tt.by); got != tt.want {
			t.Errorf("IsAttacked(%s, %v) = %v, want %v", tt.sq, tt.by, got, tt.want)
		}
	}
}

// Soundness: no legal move may leave the mover's own king attacked.
func TestLegalMovesSoundness(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p, err := ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		mover := p.SideToMove()
		for _, m := range p.LegalMoves() {
			next := p.applyUnchecked(m)
			if next.IsAttacked(next.kingSquare(mover), mover.Other()) {
				t.Errorf("%q: legal move %v leaves own king attacked", fen, m)
			}
		}
	}
}
