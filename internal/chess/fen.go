package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN reads the six-field Forsyth-Edwards notation into a Position.
// Beyond syntax, it rejects boards that do not carry exactly one king per
// side: such a position is invalid input, not a playable state.
func ParseFEN(text string) (Position, error) {
	fields := strings.Fields(text)
	if len(fields) != 6 {
		return Position{}, &ParseError{Field: "fen", Msg: fmt.Sprintf("expected 6 fields, got %d", len(fields))}
	}

	p := Position{epTarget: NoSquare}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, &ParseError{Field: "placement", Msg: fmt.Sprintf("expected 8 ranks, got %d", len(ranks))}
	}
	var whiteKings, blackKings int
	for i, rankText := range ranks {
		r := Rank(7 - i)
		f := 0
		for j := 0; j < len(rankText); j++ {
			ch := rankText[j]
			if ch >= '1' && ch <= '8' {
				f += int(ch - '0')
				continue
			}
			piece, ok := fenPieces[ch]
			if !ok {
				return Position{}, &ParseError{Field: "placement", Msg: fmt.Sprintf("unrecognized piece character %q", ch)}
			}
			if f > 7 {
				return Position{}, &ParseError{Field: "placement", Msg: fmt.Sprintf("rank %q describes more than 8 squares", rankText)}
			}
			if piece.Kind == King {
				if piece.Color == White {
					whiteKings++
				} else {
					blackKings++
				}
			}
			p.board[MakeSquare(File(f), r)] = piece
			f++
		}
		if f != 8 {
			return Position{}, &ParseError{Field: "placement", Msg: fmt.Sprintf("rank %q does not describe exactly 8 squares", rankText)}
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return Position{}, &ParseError{Field: "placement", Msg: fmt.Sprintf("expected one king per side, got %d white and %d black", whiteKings, blackKings)}
	}

	switch fields[1] {
	case "w":
		p.turn = White
	case "b":
		p.turn = Black
	default:
		return Position{}, &ParseError{Field: "side to move", Msg: fmt.Sprintf("%q is neither \"w\" nor \"b\"", fields[1])}
	}

	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			switch fields[2][j] {
			case 'K':
				p.castling |= WhiteKingside
			case 'Q':
				p.castling |= WhiteQueenside
			case 'k':
				p.castling |= BlackKingside
			case 'q':
				p.castling |= BlackQueenside
			default:
				return Position{}, &ParseError{Field: "castling", Msg: fmt.Sprintf("unrecognized castling character %q", fields[2][j])}
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Position{}, &ParseError{Field: "en passant", Msg: fmt.Sprintf("%q is neither \"-\" nor a square", fields[3])}
		}
		p.epTarget = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Position{}, &ParseError{Field: "halfmove clock", Msg: fmt.Sprintf("%q is not a non-negative integer", fields[4])}
	}
	p.halfmove = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 0 {
		return Position{}, &ParseError{Field: "fullmove number", Msg: fmt.Sprintf("%q is not a non-negative integer", fields[5])}
	}
	p.fullmove = fullmove

	return p, nil
}

// FEN is the deterministic inverse of ParseFEN.
func (p Position) FEN() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			piece := p.board[MakeSquare(f, r)]
			if piece.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.fenChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.castling&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.castling&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.castling&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.epTarget.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmove))

	return sb.String()
}
