package chess

// CastlingRights is a set of the four independent castling permissions.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Position is the complete state of a game at one ply: piece placement,
// side to move, castling rights, en-passant target, and move counters.
// It is an immutable value; operations return fresh positions and two
// positions compare equal with == exactly when they describe the same
// state.
type Position struct {
	board    [64]Piece
	turn     Color
	castling CastlingRights
	epTarget Square
	halfmove int
	fullmove int
}

func (p Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

func (p Position) SideToMove() Color {
	return p.turn
}

func (p Position) CastlingRights() CastlingRights {
	return p.castling
}

// EnPassantTarget reports the square a pawn skipped on the immediately
// preceding two-square advance, if any.
func (p Position) EnPassantTarget() (Square, bool) {
	return p.epTarget, p.epTarget != NoSquare
}

// HalfmoveClock is the number of plies since the last capture or pawn move.
func (p Position) HalfmoveClock() int {
	return p.halfmove
}

func (p Position) FullmoveNumber() int {
	return p.fullmove
}

func (p Position) kingSquare(c Color) Square {
	for sq := Square(0); sq < 64; sq++ {
		if p.board[sq] == (Piece{Kind: King, Color: c}) {
			return sq
		}
	}
	return NoSquare
}

// Initial returns the standard starting position.
func Initial() Position {
	p, err := ParseFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return p
}
