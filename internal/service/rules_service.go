package service

import (
	"fmt"

	"github.com/castlegate/chess-backend/internal/chess"
)

// RulesService exposes the two logical operations of the rules engine
// over boundary DTOs: querying the legal moves of a position, and
// validating-and-applying one move. It holds no state; every call is a
// pure function of its request.
type RulesService struct{}

func NewRulesService() *RulesService {
	return &RulesService{}
}

// LegalMoves parses a FEN position and returns its legal moves in
// generation order. The four promotion choices of one pawn advance are a
// single logical move, so they collapse into one PossibleMove carrying
// the set of valid promotion kinds.
func (s *RulesService) LegalMoves(fen string) ([]PossibleMove, error) {
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse position: %w", err)
	}
	return groupMoves(pos.LegalMoves()), nil
}

// ApplyMove validates one candidate move against a replay-verified
// position and returns the next position with its terminal-state
// classification. The claimed BoardFen is never trusted directly: the
// position is reconstructed from StartingFen plus History, and the claim
// only has to agree with that replay.
//
// A duplicate submission, where History already ends with the candidate
// move and BoardFen matches the replayed result, is reported as an
// explicit no-op outcome rather than an error.
func (s *RulesService) ApplyMove(req MoveRequest) (MoveResult, error) {
	candidate, err := selectedToMove(req.Move)
	if err != nil {
		return MoveResult{}, err
	}

	pos, err := chess.Reconstruct(req.StartingFen, req.History)
	if err != nil {
		return MoveResult{}, fmt.Errorf("replay history: %w", err)
	}
	if pos.FEN() != req.BoardFen {
		return MoveResult{}, &chess.HistoryMismatchError{
			Ply:    len(req.History),
			Reason: "claimed position does not match the replayed history",
		}
	}

	if n := len(req.History); n > 0 && req.History[n-1] == candidate.String() {
		// The candidate is already the last recorded ply and the claimed
		// position agrees, so there is nothing to change. Sides alternate,
		// which keeps this from ever shadowing a genuinely new move.
		return MoveResult{Outcome: OutcomeNoop, Fen: pos.FEN(), Status: pos.Status()}, nil
	}

	next, err := pos.Apply(candidate)
	if err != nil {
		return MoveResult{}, fmt.Errorf("apply move: %w", err)
	}
	return MoveResult{Outcome: OutcomeApplied, Fen: next.FEN(), Status: next.Status()}, nil
}

// Advance applies one selected move to a position the caller already
// owns, e.g. the server-held position of an interactive play session,
// and returns the result together with the new legal-move set.
func (s *RulesService) Advance(fen string, sel SelectedMove) (MoveResult, []PossibleMove, error) {
	candidate, err := selectedToMove(sel)
	if err != nil {
		return MoveResult{}, nil, err
	}
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		return MoveResult{}, nil, fmt.Errorf("parse position: %w", err)
	}
	next, err := pos.Apply(candidate)
	if err != nil {
		return MoveResult{}, nil, fmt.Errorf("apply move: %w", err)
	}
	return MoveResult{Outcome: OutcomeApplied, Fen: next.FEN(), Status: next.Status()},
		groupMoves(next.LegalMoves()), nil
}

func groupMoves(moves []chess.Move) []PossibleMove {
	out := make([]PossibleMove, 0, len(moves))
	for i := 0; i < len(moves); {
		m := moves[i]
		if m.Promotion == chess.NoPieceKind {
			out = append(out, PossibleMove{Type: MoveTypeNormal, Move: moveDTO(m)})
			i++
			continue
		}
		// Promotion variants of one from/to pair are generated
		// consecutively; fold them into a single entry.
		var kinds []string
		j := i
		for j < len(moves) && moves[j].From == m.From && moves[j].To == m.To && moves[j].Promotion != chess.NoPieceKind {
			kinds = append(kinds, moves[j].Promotion.String())
			j++
		}
		out = append(out, PossibleMove{Type: MoveTypePromotion, Move: moveDTO(m), Promotions: kinds})
		i = j
	}
	return out
}
