package chess

type delta struct {
	df, dr int8
}

var (
	rookDirs   = [4]delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4]delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs = [8]delta{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingDirs   = [8]delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func offsetSquare(sq Square, d delta) Square {
	f := int8(sq.File()) + d.df
	r := int8(sq.Rank()) + d.dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare
	}
	return MakeSquare(File(f), Rank(r))
}

// IsAttacked reports whether any piece of the given color has a
// pseudo-legal attacking path to sq. It ignores whose turn it is and
// whether the attacking side is itself in check; it answers only "can
// this square be struck", which serves both check detection and
// castling-path legality.
func (p Position) IsAttacked(sq Square, by Color) bool {
	for _, d := range rookDirs {
		target := offsetSquare(sq, d)
		for target != NoSquare {
			piece := p.board[target]
			if !piece.Empty() {
				if piece.Color == by && (piece.Kind == Rook || piece.Kind == Queen) {
					return true
				}
				break
			}
			target = offsetSquare(target, d)
		}
	}
	for _, d := range bishopDirs {
		target := offsetSquare(sq, d)
		for target != NoSquare {
			piece := p.board[target]
			if !piece.Empty() {
				if piece.Color == by && (piece.Kind == Bishop || piece.Kind == Queen) {
					return true
				}
				break
			}
			target = offsetSquare(target, d)
		}
	}
	for _, d := range knightDirs {
		if target := offsetSquare(sq, d); target != NoSquare {
			if p.board[target] == (Piece{Kind: Knight, Color: by}) {
				return true
			}
		}
	}
	for _, d := range kingDirs {
		if target := offsetSquare(sq, d); target != NoSquare {
			if p.board[target] == (Piece{Kind: King, Color: by}) {
				return true
			}
		}
	}
	// Pawns attack diagonally forward only, never via their push, so a
	// pawn of the attacking color must sit one rank behind sq relative
	// to its own direction of travel.
	back := int8(-1)
	if by == Black {
		back = 1
	}
	for _, df := range [2]int8{-1, 1} {
		if target := offsetSquare(sq, delta{df, back}); target != NoSquare {
			if p.board[target] == (Piece{Kind: Pawn, Color: by}) {
				return true
			}
		}
	}
	return false
}

// InCheck reports whether the side to move's king is attacked.
func (p Position) InCheck() bool {
	return p.IsAttacked(p.kingSquare(p.turn), p.turn.Other())
}
