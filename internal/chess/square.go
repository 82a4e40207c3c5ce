package chess

import "fmt"

// File is a board column, a through h.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func (f File) String() string {
	return string(rune('a' + f))
}

// Rank is a board row, 1 through 8, stored zero-based.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func (r Rank) String() string {
	return string(rune('1' + r))
}

// Square indexes one of the 64 board cells. a1 is 0, b1 is 1, h8 is 63,
// so ascending Square order is ascending rank, then ascending file.
type Square int8

// NoSquare marks the absence of a square, e.g. no en-passant target.
const NoSquare Square = -1

func MakeSquare(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

func (s Square) File() File {
	return File(s % 8)
}

func (s Square) Rank() Rank {
	return Rank(s / 8)
}

func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}

// ParseSquare reads coordinate notation such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, &ParseError{Field: "square", Msg: fmt.Sprintf("%q is not a square", text)}
	}
	f := text[0]
	r := text[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, &ParseError{Field: "square", Msg: fmt.Sprintf("%q is not a square", text)}
	}
	return MakeSquare(File(f-'a'), Rank(r-'1')), nil
}
