package rules

import (
	. "github.com/cricklet/chessrules/internal/helpers"
)

// IsValidEnPassant accepts a pawn on its fifth rank whose destination is the
// current target square. Nothing else on board is consulted: keeping target
// current, and checking the step and the captured pawn, is the caller's job.
func IsValidEnPassant(board *BoardArray, piece Piece, start Square, end Square, target Optional[Square]) (bool, Error) {
	if err := checkSquares(start, end); !IsNil(err) {
		return false, err
	}
	if piece.PieceType() != Pawn {
		return false, NilError
	}
	if start.Rank != EnPassantRank(piece.Player()) {
		return false, NilError
	}
	return target.HasValue() && target.Value() == end, NilError
}

// EnPassantCaptureSquare is where the captured pawn stands.
func EnPassantCaptureSquare(start Square, end Square) Square {
	return Square{File: end.File, Rank: start.Rank}
}

// EnPassantTargetForMove returns the skipped square if start->end is a pawn
// double step for piece.
func EnPassantTargetForMove(piece Piece, start Square, end Square) Optional[Square] {
	if piece.PieceType() != Pawn || start.File != end.File || AbsDiff(start.Rank, end.Rank) != 2 {
		return Empty[Square]()
	}
	return Some(Square{File: start.File, Rank: (start.Rank + end.Rank) / 2})
}

func CastlingSideForMove(start Square, end Square) (CastlingSide, Error) {
	if start.Rank == end.Rank && start.File == 4 {
		switch end.File {
		case 6:
			return Kingside, NilError
		case 2:
			return Queenside, NilError
		}
	}
	return Kingside, Errorf("%w: %v-%v is not a castling move", ErrMalformedCastling, start, end)
}

// RookMoveForCastle returns the rook's start and end squares for a king
// castling from kingStart to kingEnd.
func RookMoveForCastle(kingStart Square, kingEnd Square) (Square, Square, Error) {
	side, err := CastlingSideForMove(kingStart, kingEnd)
	if !IsNil(err) {
		return Square{}, Square{}, err
	}
	if side == Kingside {
		return Square{File: 7, Rank: kingStart.Rank}, Square{File: 5, Rank: kingStart.Rank}, NilError
	}
	return Square{File: 0, Rank: kingStart.Rank}, Square{File: 3, Rank: kingStart.Rank}, NilError
}

// IsValidCastling requires the king on its home square, the matching right,
// the rook in its corner with nothing in between, and the king never standing
// on an attacked square: not before, not while crossing, not after.
func IsValidCastling(board *BoardArray, piece Piece, start Square, end Square, rights CastlingRights) (bool, Error) {
	if err := checkSquares(start, end); !IsNil(err) {
		return false, err
	}
	if piece.PieceType() != King {
		return false, NilError
	}

	player := piece.Player()
	if start != (Square{File: 4, Rank: HomeRank(player)}) {
		return false, NilError
	}
	side, err := CastlingSideForMove(start, end)
	if !IsNil(err) {
		return false, NilError
	}
	if !rights[player][side] {
		return false, NilError
	}

	rookStart, rookEnd, err := RookMoveForCastle(start, end)
	if !IsNil(err) {
		return false, err
	}
	if board.PieceAt(rookStart) != PieceForPlayer[player][Rook] {
		return false, NilError
	}
	if !isPathClear(board, start, rookStart) {
		return false, NilError
	}

	inCheck, err := IsInCheck(board, player)
	if !IsNil(err) || inCheck {
		return false, err
	}

	// rookEnd is the square the king crosses
	crossing := *board
	crossing.Move(start, rookEnd)
	inCheck, err = IsInCheck(&crossing, player)
	if !IsNil(err) || inCheck {
		return false, err
	}

	final := *board
	final.Move(start, end)
	final.Move(rookStart, rookEnd)
	inCheck, err = IsInCheck(&final, player)
	if !IsNil(err) {
		return false, err
	}
	return !inCheck, NilError
}

// IsValidPawnPromotion accepts a legal pawn move from the seventh rank onto
// the opponent's back rank, promoting to a queen, rook, bishop or knight.
func IsValidPawnPromotion(board *BoardArray, piece Piece, start Square, end Square, promotion PieceType) (bool, Error) {
	if err := checkSquares(start, end); !IsNil(err) {
		return false, err
	}
	if piece.PieceType() != Pawn {
		return false, NilError
	}

	player := piece.Player()
	if start.Rank != PromotionStartRank(player) || !IsPromotionSquare(end, player) {
		return false, NilError
	}
	if !IsLegalPawnMove(board, piece, start, end) {
		return false, NilError
	}
	return IsPromotionPiece(promotion), NilError
}

// PerformPawnPromotion clears start and puts the promoted piece on end. It
// trusts the caller to have checked IsValidPawnPromotion.
func PerformPawnPromotion(board *BoardArray, piece Piece, start Square, end Square, promotion PieceType) Error {
	if err := checkSquares(start, end); !IsNil(err) {
		return err
	}
	if piece.IsEmpty() || !IsPromotionPiece(promotion) {
		return Errorf("%w: %v to %v", ErrInvalidPromotion, piece, promotion.Name())
	}

	board.Set(start, XX)
	board.Set(end, PieceForPlayer[piece.Player()][promotion])
	return NilError
}
