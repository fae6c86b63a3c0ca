package rules

import (
	. "github.com/cricklet/chessrules/internal/helpers"
)

type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "invalid"
}

func (s GameStatus) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// LeavesKingInCheck plays start->end on a copy of board and reports whether
// player's king is attacked afterwards.
func LeavesKingInCheck(board *BoardArray, player Player, start Square, end Square) (bool, Error) {
	hypothetical := *board
	hypothetical.Move(start, end)
	return IsInCheck(&hypothetical, player)
}

// HasLegalMove searches every piece of player against every square for a
// move that IsLegalMove accepts and that does not leave player in check.
// Castling and en passant are not considered.
func HasLegalMove(board *BoardArray, player Player) (bool, Error) {
	for i, piece := range board {
		if !piece.IsFriendOf(player) {
			continue
		}
		start := SquareFromIndex(i)
		for j := 0; j < 64; j++ {
			end := SquareFromIndex(j)
			if !isLegalMove(board, piece, start, end) {
				continue
			}
			inCheck, err := LeavesKingInCheck(board, player, start, end)
			if !IsNil(err) {
				return false, err
			}
			if !inCheck {
				return true, NilError
			}
		}
	}
	return false, NilError
}

func IsCheckmate(board *BoardArray, player Player) (bool, Error) {
	inCheck, err := IsInCheck(board, player)
	if !IsNil(err) || !inCheck {
		return false, err
	}
	hasMove, err := HasLegalMove(board, player)
	return !hasMove && IsNil(err), err
}

func IsStalemate(board *BoardArray, player Player) (bool, Error) {
	inCheck, err := IsInCheck(board, player)
	if !IsNil(err) || inCheck {
		return false, err
	}
	hasMove, err := HasLegalMove(board, player)
	return !hasMove && IsNil(err), err
}

func Status(board *BoardArray, player Player) (GameStatus, Error) {
	inCheck, err := IsInCheck(board, player)
	if !IsNil(err) {
		return Ongoing, err
	}
	hasMove, err := HasLegalMove(board, player)
	if !IsNil(err) {
		return Ongoing, err
	}

	switch {
	case inCheck && !hasMove:
		return Checkmate, NilError
	case !hasMove:
		return Stalemate, NilError
	case inCheck:
		return Check, NilError
	}
	return Ongoing, NilError
}
