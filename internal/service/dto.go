package service

import (
	"github.com/castlegate/chess-backend/internal/chess"
)

// MoveType tags the two cases a boundary move can be: a normal move, or a
// promotion that must carry a piece kind. Keeping the tag explicit makes
// the impossible combinations (a promotion without a kind, a kind on a
// normal move) detectable at the edge instead of deep in the engine.
type MoveType string

const (
	MoveTypeNormal    MoveType = "normal"
	MoveTypePromotion MoveType = "promotion"
)

// SquareDTO is a board cell as exposed at the boundary: a file letter and
// a one-based rank.
type SquareDTO struct {
	File string `json:"file"`
	Rank int    `json:"rank"`
}

type MoveDTO struct {
	From SquareDTO `json:"from"`
	To   SquareDTO `json:"to"`
}

// PossibleMove is one legal move as reported by the query operation. A
// promotion entry stands for the whole class of piece choices and lists
// the valid kinds.
type PossibleMove struct {
	Type       MoveType `json:"type"`
	Move       MoveDTO  `json:"move"`
	Promotions []string `json:"promotions,omitempty"`
}

// SelectedMove is one candidate move as submitted by a client.
type SelectedMove struct {
	Type          MoveType `json:"type"`
	Move          MoveDTO  `json:"move"`
	PromotionKind string   `json:"promotionKind,omitempty"`
}

// MoveRequest is the mutating operation's payload. BoardFen is the
// client's claim of the current position; it is cross-checked against the
// replay of History from StartingFen, never trusted on its own.
type MoveRequest struct {
	StartingFen string       `json:"startingFen"`
	History     []string     `json:"history"`
	BoardFen    string       `json:"boardFen"`
	Move        SelectedMove `json:"move"`
}

// Outcome distinguishes an applied move from an explicit no-op, e.g. a
// duplicate submission of an already-recorded move.
type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	OutcomeNoop    Outcome = "noop"
)

type MoveResult struct {
	Outcome Outcome      `json:"outcome"`
	Fen     string       `json:"fen"`
	Status  chess.Status `json:"status"`
}

func squareDTO(sq chess.Square) SquareDTO {
	return SquareDTO{File: sq.File().String(), Rank: int(sq.Rank()) + 1}
}

func moveDTO(m chess.Move) MoveDTO {
	return MoveDTO{From: squareDTO(m.From), To: squareDTO(m.To)}
}

func squareFromDTO(dto SquareDTO) (chess.Square, error) {
	if len(dto.File) != 1 || dto.Rank < 1 || dto.Rank > 8 {
		return chess.NoSquare, &chess.ParseError{Field: "square", Msg: "file must be a-h and rank 1-8"}
	}
	return chess.ParseSquare(dto.File + string(rune('0'+dto.Rank)))
}

// selectedToMove converts a boundary move into an engine move, enforcing
// the tag/kind agreement the SelectedMove shape promises.
func selectedToMove(sel SelectedMove) (chess.Move, error) {
	from, err := squareFromDTO(sel.Move.From)
	if err != nil {
		return chess.Move{}, err
	}
	to, err := squareFromDTO(sel.Move.To)
	if err != nil {
		return chess.Move{}, err
	}
	m := chess.Move{From: from, To: to}

	switch sel.Type {
	case MoveTypeNormal:
		if sel.PromotionKind != "" {
			kind, ok := chess.ParsePieceKind(sel.PromotionKind)
			if !ok {
				kind = chess.Queen
			}
			return chess.Move{}, &chess.AmbiguousPromotionError{Move: chess.Move{From: from, To: to, Promotion: kind}}
		}
		return m, nil
	case MoveTypePromotion:
		kind, ok := chess.ParsePieceKind(sel.PromotionKind)
		if !ok || kind == chess.Pawn || kind == chess.King {
			return chess.Move{}, &chess.ParseError{Field: "move", Msg: "promotionKind must be queen, rook, bishop or knight"}
		}
		m.Promotion = kind
		return m, nil
	default:
		return chess.Move{}, &chess.ParseError{Field: "move", Msg: `type must be "normal" or "promotion"`}
	}
}
