package chess

// Color identifies a side.
type Color int8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is the movement class of a piece. The zero value marks an
// empty square.
type PieceKind int8

const (
	NoPieceKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return ""
}

// ParsePieceKind reads the lowercase kind names used at the boundary.
func ParsePieceKind(text string) (PieceKind, bool) {
	switch text {
	case "pawn":
		return Pawn, true
	case "knight":
		return Knight, true
	case "bishop":
		return Bishop, true
	case "rook":
		return Rook, true
	case "queen":
		return Queen, true
	case "king":
		return King, true
	}
	return NoPieceKind, false
}

// Piece is a kind plus a color. The zero value is an empty square.
type Piece struct {
	Kind  PieceKind
	Color Color
}

func (p Piece) Empty() bool {
	return p.Kind == NoPieceKind
}

var fenPieces = map[byte]Piece{
	'P': {Pawn, White}, 'N': {Knight, White}, 'B': {Bishop, White},
	'R': {Rook, White}, 'Q': {Queen, White}, 'K': {King, White},
	'p': {Pawn, Black}, 'n': {Knight, Black}, 'b': {Bishop, Black},
	'r': {Rook, Black}, 'q': {Queen, Black}, 'k': {King, Black},
}

func (p Piece) fenChar() byte {
	var ch byte
	switch p.Kind {
	case Pawn:
		ch = 'p'
	case Knight:
		ch = 'n'
	case Bishop:
		ch = 'b'
	case Rook:
		ch = 'r'
	case Queen:
		ch = 'q'
	case King:
		ch = 'k'
	}
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// promotionChar maps the kinds a pawn may promote to onto the lowercase
// suffix used in coordinate move notation ("a7a8q").
func promotionChar(k PieceKind) (byte, bool) {
	switch k {
	case Queen:
		return 'q', true
	case Rook:
		return 'r', true
	case Bishop:
		return 'b', true
	case Knight:
		return 'n', true
	}
	return 0, false
}

func promotionKindFromChar(ch byte) (PieceKind, bool) {
	switch ch {
	case 'q':
		return Queen, true
	case 'r':
		return Rook, true
	case 'b':
		return Bishop, true
	case 'n':
		return Knight, true
	}
	return NoPieceKind, false
}
