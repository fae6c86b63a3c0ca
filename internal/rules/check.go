package rules

import (
	. "github.com/cricklet/chessrules/internal/helpers"
)

func FindKing(board *BoardArray, player Player) (Square, Error) {
	king := PieceForPlayer[player][King]
	for i, piece := range board {
		if piece == king {
			return SquareFromIndex(i), NilError
		}
	}
	return Square{}, Errorf("%w: no %v king on the board", ErrKingNotFound, player)
}

// IsSquareAttacked reports whether any piece of player by could capture on
// target. Pawns attack their forward diagonals whether or not target is occupied.
func IsSquareAttacked(board *BoardArray, target Square, by Player) bool {
	for i, piece := range board {
		if !piece.IsFriendOf(by) {
			continue
		}
		start := SquareFromIndex(i)
		if piece.PieceType() == Pawn {
			if target.Rank-start.Rank == Rank(PawnDirection(by)) && AbsDiff(target.File, start.File) == 1 {
				return true
			}
			continue
		}
		if isLegalMove(board, piece, start, target) {
			return true
		}
	}
	return false
}

func IsInCheck(board *BoardArray, player Player) (bool, Error) {
	king, err := FindKing(board, player)
	if !IsNil(err) {
		return false, err
	}
	return IsSquareAttacked(board, king, player.Other()), NilError
}
