package chess

// promotionKinds is the enumeration order for pawn moves reaching the
// final rank: one Move per choice, differing only in promotion kind.
var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves enumerates every move for the side to move that obeys
// piece movement rules, before the own-king safety filter. The scan runs
// in ascending rank then ascending file order over occupied squares; the
// resulting order is deterministic and carries through to LegalMoves.
func (p Position) PseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	for sq := Square(0); sq < 64; sq++ {
		piece := p.board[sq]
		if piece.Empty() || piece.Color != p.turn {
			continue
		}
		switch piece.Kind {
		case Pawn:
			moves = p.pawnMoves(moves, sq)
		case Knight:
			moves = p.stepMoves(moves, sq, knightDirs[:])
		case Bishop:
			moves = p.slideMoves(moves, sq, bishopDirs[:])
		case Rook:
			moves = p.slideMoves(moves, sq, rookDirs[:])
		case Queen:
			moves = p.slideMoves(moves, sq, bishopDirs[:])
			moves = p.slideMoves(moves, sq, rookDirs[:])
		case King:
			moves = p.stepMoves(moves, sq, kingDirs[:])
			moves = p.castleMoves(moves, sq)
		}
	}
	return moves
}

// LegalMoves filters PseudoLegalMoves to moves that do not leave the
// mover's own king attacked, by tentatively applying each one.
func (p Position) LegalMoves() []Move {
	pseudo := p.PseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := p.applyUnchecked(m)
		if !next.IsAttacked(next.kingSquare(p.turn), p.turn.Other()) {
			legal = append(legal, m)
		}
	}
	return legal
}

func (p Position) pawnMoves(moves []Move, sq Square) []Move {
	forward := delta{0, 1}
	startRank, promoRank := Rank2, Rank8
	if p.turn == Black {
		forward = delta{0, -1}
		startRank, promoRank = Rank7, Rank1
	}

	appendPawn := func(to Square) {
		if to.Rank() == promoRank {
			for _, kind := range promotionKinds {
				moves = append(moves, Move{From: sq, To: to, Promotion: kind})
			}
			return
		}
		moves = append(moves, Move{From: sq, To: to})
	}

	if one := offsetSquare(sq, forward); one != NoSquare && p.board[one].Empty() {
		appendPawn(one)
		if sq.Rank() == startRank {
			if two := offsetSquare(one, forward); p.board[two].Empty() {
				moves = append(moves, Move{From: sq, To: two})
			}
		}
	}
	for _, df := range [2]int8{-1, 1} {
		target := offsetSquare(sq, delta{df, forward.dr})
		if target == NoSquare {
			continue
		}
		victim := p.board[target]
		if !victim.Empty() && victim.Color != p.turn {
			appendPawn(target)
		} else if target == p.epTarget {
			moves = append(moves, Move{From: sq, To: target})
		}
	}
	return moves
}

func (p Position) stepMoves(moves []Move, sq Square, dirs []delta) []Move {
	for _, d := range dirs {
		target := offsetSquare(sq, d)
		if target == NoSquare {
			continue
		}
		if piece := p.board[target]; piece.Empty() || piece.Color != p.turn {
			moves = append(moves, Move{From: sq, To: target})
		}
	}
	return moves
}

func (p Position) slideMoves(moves []Move, sq Square, dirs []delta) []Move {
	for _, d := range dirs {
		target := offsetSquare(sq, d)
		for target != NoSquare {
			piece := p.board[target]
			if piece.Empty() {
				moves = append(moves, Move{From: sq, To: target})
			} else {
				if piece.Color != p.turn {
					moves = append(moves, Move{From: sq, To: target})
				}
				break
			}
			target = offsetSquare(target, d)
		}
	}
	return moves
}

// castleMoves emits the two-square king moves. A castle requires the
// corresponding right, empty squares strictly between king and rook, and
// that the king's square, the square it passes through, and the square it
// lands on are all safe from the opponent.
func (p Position) castleMoves(moves []Move, sq Square) []Move {
	homeRank := Rank1
	kingside, queenside := WhiteKingside, WhiteQueenside
	if p.turn == Black {
		homeRank = Rank8
		kingside, queenside = BlackKingside, BlackQueenside
	}
	if sq != MakeSquare(FileE, homeRank) {
		return moves
	}
	opp := p.turn.Other()

	rook := Piece{Kind: Rook, Color: p.turn}

	if p.castling&kingside != 0 && p.board[MakeSquare(FileH, homeRank)] == rook {
		f1 := MakeSquare(FileF, homeRank)
		g1 := MakeSquare(FileG, homeRank)
		if p.board[f1].Empty() && p.board[g1].Empty() &&
			!p.IsAttacked(sq, opp) && !p.IsAttacked(f1, opp) && !p.IsAttacked(g1, opp) {
			moves = append(moves, Move{From: sq, To: g1})
		}
	}
	if p.castling&queenside != 0 && p.board[MakeSquare(FileA, homeRank)] == rook {
		b1 := MakeSquare(FileB, homeRank)
		c1 := MakeSquare(FileC, homeRank)
		d1 := MakeSquare(FileD, homeRank)
		if p.board[b1].Empty() && p.board[c1].Empty() && p.board[d1].Empty() &&
			!p.IsAttacked(sq, opp) && !p.IsAttacked(d1, opp) && !p.IsAttacked(c1, opp) {
			moves = append(moves, Move{From: sq, To: c1})
		}
	}
	return moves
}
