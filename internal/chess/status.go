package chess

// Status classifies a position for the side to move.
type Status string

const (
	StatusOngoing      Status = "ongoing"
	StatusCheck        Status = "check"
	StatusCheckmate    Status = "checkmate"
	StatusStalemate    Status = "stalemate"
	StatusFiftyMoves   Status = "draw_fifty_moves"
	StatusInsufficient Status = "draw_insufficient_material"
)

// Status classifies the position: checkmate when no legal move exists and
// the king is attacked, stalemate when no legal move exists and it is not.
// The draw classifications are layered below those two and above the
// check/ongoing split; they never override a mate or stalemate.
func (p Position) Status() Status {
	if len(p.LegalMoves()) == 0 {
		if p.InCheck() {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if p.halfmove >= 100 {
		return StatusFiftyMoves
	}
	if p.insufficientMaterial() {
		return StatusInsufficient
	}
	if p.InCheck() {
		return StatusCheck
	}
	return StatusOngoing
}

// insufficientMaterial reports the dead positions no sequence of legal
// moves can ever mate from: bare kings, king and one minor piece against
// a bare king, or king and bishop each with both bishops on squares of
// one color.
func (p Position) insufficientMaterial() bool {
	var knights, bishops int
	var bishopSquares []Square
	for sq := Square(0); sq < 64; sq++ {
		switch p.board[sq].Kind {
		case NoPieceKind, King:
		case Knight:
			knights++
		case Bishop:
			bishops++
			bishopSquares = append(bishopSquares, sq)
		default:
			return false
		}
	}
	switch {
	case knights == 0 && bishops == 0:
		return true
	case knights+bishops == 1:
		return true
	case knights == 0:
		shade := squareShade(bishopSquares[0])
		for _, sq := range bishopSquares[1:] {
			if squareShade(sq) != shade {
				return false
			}
		}
		return true
	}
	return false
}

func squareShade(sq Square) int8 {
	return (int8(sq.File()) + int8(sq.Rank())) % 2
}
