package chess

// rightsLost maps a square to the castling rights revoked when a move
// touches it, either by moving the piece away or by capturing onto it.
// A right is cleared once and never re-set.
func rightsLost(sq Square) CastlingRights {
	switch sq {
	case MakeSquare(FileE, Rank1):
		return WhiteKingside | WhiteQueenside
	case MakeSquare(FileA, Rank1):
		return WhiteQueenside
	case MakeSquare(FileH, Rank1):
		return WhiteKingside
	case MakeSquare(FileE, Rank8):
		return BlackKingside | BlackQueenside
	case MakeSquare(FileA, Rank8):
		return BlackQueenside
	case MakeSquare(FileH, Rank8):
		return BlackKingside
	}
	return 0
}

// Apply validates move against the legal-move set of p and returns the
// resulting position. Validation completes fully before any output is
// constructed; on failure the zero Position and a typed error come back
// and p is untouched, so a rejected move is always safe to retry.
func (p Position) Apply(m Move) (Position, error) {
	sameSquares := false
	for _, legal := range p.LegalMoves() {
		if legal == m {
			return p.applyUnchecked(legal), nil
		}
		if legal.From == m.From && legal.To == m.To {
			sameSquares = true
		}
	}
	if sameSquares {
		// The from/to pair is playable but the promotion kind disagrees:
		// either a promoting pawn move without a chosen kind, or a kind
		// attached to a move that does not promote.
		return Position{}, &AmbiguousPromotionError{Move: m}
	}
	return Position{}, &IllegalMoveError{Move: m}
}

// applyUnchecked performs the mechanics of a move assumed pseudo-legal:
// relocation, capture removal (including the en-passant victim one rank
// behind the target), the rook hop on a castle, promotion substitution,
// and the castling-rights, en-passant, and clock bookkeeping.
func (p Position) applyUnchecked(m Move) Position {
	next := p
	moving := p.board[m.From]
	captured := !p.board[m.To].Empty()

	// En passant: the pawn moves diagonally onto an empty square, and the
	// captured pawn sits on the from rank of the moving pawn.
	if moving.Kind == Pawn && m.To == p.epTarget && m.From.File() != m.To.File() && !captured {
		next.board[MakeSquare(m.To.File(), m.From.Rank())] = Piece{}
		captured = true
	}

	next.board[m.From] = Piece{}
	next.board[m.To] = moving
	if m.Promotion != NoPieceKind {
		next.board[m.To] = Piece{Kind: m.Promotion, Color: moving.Color}
	}

	// A two-square king move is a castle; the rook jumps to the square
	// the king crossed.
	if moving.Kind == King {
		switch {
		case m.To-m.From == 2:
			rook := MakeSquare(FileH, m.From.Rank())
			next.board[MakeSquare(FileF, m.From.Rank())] = next.board[rook]
			next.board[rook] = Piece{}
		case m.From-m.To == 2:
			rook := MakeSquare(FileA, m.From.Rank())
			next.board[MakeSquare(FileD, m.From.Rank())] = next.board[rook]
			next.board[rook] = Piece{}
		}
	}

	// The en-passant target lives for a single ply: set only by a
	// two-square pawn push, cleared by everything else.
	next.epTarget = NoSquare
	if moving.Kind == Pawn {
		switch {
		case m.To-m.From == 16:
			next.epTarget = m.From + 8
		case m.From-m.To == 16:
			next.epTarget = m.From - 8
		}
	}

	next.castling &^= rightsLost(m.From) | rightsLost(m.To)

	if moving.Kind == Pawn || captured {
		next.halfmove = 0
	} else {
		next.halfmove = p.halfmove + 1
	}
	if p.turn == Black {
		next.fullmove = p.fullmove + 1
	}
	next.turn = p.turn.Other()
	return next
}
