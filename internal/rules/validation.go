package rules

import (
	. "github.com/cricklet/chessrules/internal/helpers"
)

// IsLegalMove reports whether piece may travel from start to end on board,
// judged on movement pattern and blocking only. It does not look at whose turn
// it is, whether board holds piece on start, or whether the mover's king ends
// up in check. Castling and en passant are validated separately.
func IsLegalMove(board *BoardArray, piece Piece, start Square, end Square) (bool, Error) {
	if err := checkSquares(start, end); !IsNil(err) {
		return false, err
	}
	return isLegalMove(board, piece, start, end), NilError
}

func isLegalMove(board *BoardArray, piece Piece, start Square, end Square) bool {
	if start == end {
		return false
	}

	switch piece.PieceType() {
	case Pawn:
		return IsLegalPawnMove(board, piece, start, end)
	case Rook:
		return IsLegalRookMove(board, piece, start, end)
	case Knight:
		return IsLegalKnightMove(board, piece, start, end)
	case Bishop:
		return IsLegalBishopMove(board, piece, start, end)
	case Queen:
		return IsLegalQueenMove(board, piece, start, end)
	case King:
		return IsLegalKingMove(board, piece, start, end)
	case InvalidPiece:
		return false
	}
	return false
}

func IsLegalPawnMove(board *BoardArray, piece Piece, start Square, end Square) bool {
	if !inBounds(start, end) {
		return false
	}
	player := piece.Player()
	forward := PawnDirection(player)

	dFile := int(end.File - start.File)
	dRank := int(end.Rank - start.Rank)
	target := board.PieceAt(end)

	switch {
	case dFile == 0 && dRank == forward:
		return target.IsEmpty()
	case dFile == 0 && dRank == 2*forward:
		if start.Rank != PawnStartRank(player) {
			return false
		}
		return target.IsEmpty() && board.PieceAt(start.Offset(0, forward)).IsEmpty()
	case Abs(dFile) == 1 && dRank == forward:
		// no en passant here
		return target.IsEnemyOf(player)
	}
	return false
}

func IsLegalRookMove(board *BoardArray, piece Piece, start Square, end Square) bool {
	if !inBounds(start, end) {
		return false
	}
	if start.File != end.File && start.Rank != end.Rank {
		return false
	}
	return isPathClear(board, start, end) && canLandOn(board, piece, end)
}

func IsLegalBishopMove(board *BoardArray, piece Piece, start Square, end Square) bool {
	if !inBounds(start, end) {
		return false
	}
	if AbsDiff(start.File, end.File) != File(AbsDiff(start.Rank, end.Rank)) {
		return false
	}
	return isPathClear(board, start, end) && canLandOn(board, piece, end)
}

func IsLegalQueenMove(board *BoardArray, piece Piece, start Square, end Square) bool {
	if !inBounds(start, end) {
		return false
	}
	return IsLegalRookMove(board, piece, start, end) || IsLegalBishopMove(board, piece, start, end)
}

func IsLegalKnightMove(board *BoardArray, piece Piece, start Square, end Square) bool {
	if !inBounds(start, end) {
		return false
	}
	dFile := AbsDiff(start.File, end.File)
	dRank := AbsDiff(start.Rank, end.Rank)
	if !(dFile == 2 && dRank == 1) && !(dFile == 1 && dRank == 2) {
		return false
	}
	return canLandOn(board, piece, end)
}

func IsLegalKingMove(board *BoardArray, piece Piece, start Square, end Square) bool {
	if !inBounds(start, end) {
		return false
	}
	if start == end {
		return false
	}
	if AbsDiff(start.File, end.File) > 1 || AbsDiff(start.Rank, end.Rank) > 1 {
		return false
	}
	return canLandOn(board, piece, end)
}

// isPathClear checks the squares strictly between start and end, which must
// share a rank, file or diagonal.
func isPathClear(board *BoardArray, start Square, end Square) bool {
	dFile := Sign(int(end.File - start.File))
	dRank := Sign(int(end.Rank - start.Rank))
	if dFile == 0 && dRank == 0 {
		return false
	}

	for s := start.Offset(dFile, dRank); s != end; s = s.Offset(dFile, dRank) {
		if !board.PieceAt(s).IsEmpty() {
			return false
		}
	}
	return true
}

func canLandOn(board *BoardArray, piece Piece, end Square) bool {
	return !board.PieceAt(end).IsFriendOf(piece.Player())
}
