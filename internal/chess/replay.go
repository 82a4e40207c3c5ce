package chess

import "fmt"

// Reconstruct rebuilds a position by replaying an ordered move history
// from a starting position. This is how a state-changing request earns
// trust in a "current position": the client-declared text is never taken
// at face value, it must be the deterministic result of replaying an
// append-only move list, or the request is rejected.
//
// Each history entry is a coordinate move ("e2e4", "a7a8q") and must
// match exactly one legal move at its ply; zero matches or a malformed
// entry yield a HistoryMismatchError carrying the ply index.
func Reconstruct(startFEN string, history []string) (Position, error) {
	pos, err := ParseFEN(startFEN)
	if err != nil {
		return Position{}, err
	}
	for ply, entry := range history {
		m, err := ParseMove(entry)
		if err != nil {
			return Position{}, &HistoryMismatchError{Ply: ply, Reason: fmt.Sprintf("malformed move %q", entry)}
		}
		var matched Move
		matches := 0
		for _, legal := range pos.LegalMoves() {
			if legal == m {
				matched = legal
				matches++
			}
		}
		if matches != 1 {
			return Position{}, &HistoryMismatchError{Ply: ply, Reason: fmt.Sprintf("move %q does not match exactly one legal move", entry)}
		}
		pos = pos.applyUnchecked(matched)
	}
	return pos, nil
}
