package chess

import "fmt"

// Move is a from square, a to square, and, only when a pawn reaches the
// final rank, the piece kind it promotes to. Derived properties such as
// capture, castle, and en passant are computed from the position a move
// is applied to, never stored.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// String renders coordinate notation: "e2e4", or "a7a8q" when promoting.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if ch, ok := promotionChar(m.Promotion); ok {
		s += string(ch)
	}
	return s
}

// ParseMove reads coordinate notation as produced by String.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, &ParseError{Field: "move", Msg: fmt.Sprintf("%q is not a coordinate move", text)}
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, &ParseError{Field: "move", Msg: fmt.Sprintf("%q has no valid from square", text)}
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, &ParseError{Field: "move", Msg: fmt.Sprintf("%q has no valid to square", text)}
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		kind, ok := promotionKindFromChar(text[4])
		if !ok {
			return Move{}, &ParseError{Field: "move", Msg: fmt.Sprintf("%q has no valid promotion kind", text)}
		}
		m.Promotion = kind
	}
	return m, nil
}
