package rules

import (
	. "github.com/cricklet/chessrules/internal/helpers"
)

// PawnDirection is the rank delta of a single pawn step.
func PawnDirection(player Player) int {
	if player == White {
		return 1
	}
	return -1
}

func HomeRank(player Player) Rank {
	if player == White {
		return 0
	}
	return 7
}

func PawnStartRank(player Player) Rank {
	return HomeRank(player) + Rank(PawnDirection(player))
}

// EnPassantRank is the mover's fifth rank.
func EnPassantRank(player Player) Rank {
	return HomeRank(player) + Rank(4*PawnDirection(player))
}

// PromotionStartRank is the mover's seventh rank.
func PromotionStartRank(player Player) Rank {
	return HomeRank(player.Other()) - Rank(PawnDirection(player))
}

func IsPromotionSquare(s Square, player Player) bool {
	return s.Rank == HomeRank(player.Other())
}

var PromotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func IsPromotionPiece(t PieceType) bool {
	switch t {
	case Queen, Rook, Bishop, Knight:
		return true
	case Pawn, King, InvalidPiece:
		return false
	}
	return false
}
