package chess

import "fmt"

// ParseError reports malformed position or move notation.
type ParseError struct {
	Field string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Field, e.Msg)
}

// IllegalMoveError reports a syntactically valid move that is not in the
// legal-move set of the position it was applied to.
type IllegalMoveError struct {
	Move Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s", e.Move)
}

// AmbiguousPromotionError reports a pawn move to the final rank submitted
// without a promotion kind, or a promotion kind attached to a move that
// does not promote.
type AmbiguousPromotionError struct {
	Move Move
}

func (e *AmbiguousPromotionError) Error() string {
	if e.Move.Promotion == NoPieceKind {
		return fmt.Sprintf("move %s promotes but no promotion kind was chosen", e.Move)
	}
	return fmt.Sprintf("move %s does not promote but a promotion kind was chosen", e.Move)
}

// HistoryMismatchError reports that a recorded move history could not be
// replayed, or that the replayed result contradicts the claimed position.
// Ply is the zero-based index of the offending history entry; for a
// mismatch detected after a full replay it is the history length.
type HistoryMismatchError struct {
	Ply    int
	Reason string
}

func (e *HistoryMismatchError) Error() string {
	return fmt.Sprintf("history mismatch at ply %d: %s", e.Ply, e.Reason)
}
