package rules

import (
	"errors"

	. "github.com/cricklet/chessrules/internal/helpers"
)

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrKingNotFound      = errors.New("king not found")
	ErrOutOfBounds       = errors.New("square out of bounds")
	ErrInvalidPromotion  = errors.New("invalid promotion")
	ErrMalformedCastling = errors.New("malformed castling request")
)

func checkSquares(squares ...Square) Error {
	for _, s := range squares {
		if !s.IsValid() {
			return Errorf("%w: {file %d, rank %d}", ErrOutOfBounds, s.File, s.Rank)
		}
	}
	return NilError
}

// inBounds is checkSquares for the per-piece helpers, which report false
// rather than an error.
func inBounds(squares ...Square) bool {
	for _, s := range squares {
		if !s.IsValid() {
			return false
		}
	}
	return true
}
