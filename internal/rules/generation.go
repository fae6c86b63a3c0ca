package rules

import (
	. "github.com/cricklet/chessrules/internal/helpers"
)

type offset struct {
	dFile int
	dRank int
}

var rookDirections = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var bishopDirections = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

var knightOffsets = []offset{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = []offset{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
	{0, 1}, {1, -1}, {1, 0}, {1, 1},
}

// PseudoMoves lists the squares the piece on from can reach by geometry.
// Squares holding a friendly piece are not filtered out; IsLegalMove does that.
func PseudoMoves(board *BoardArray, from Square) ([]Square, Error) {
	if err := checkSquares(from); !IsNil(err) {
		return nil, err
	}

	switch board.PieceAt(from).PieceType() {
	case Pawn:
		return PawnMoves(board, from), NilError
	case Rook:
		return RookMoves(board, from), NilError
	case Knight:
		return KnightMoves(board, from), NilError
	case Bishop:
		return BishopMoves(board, from), NilError
	case Queen:
		return QueenMoves(board, from), NilError
	case King:
		return KingMoves(board, from), NilError
	case InvalidPiece:
		return []Square{}, NilError
	}
	return []Square{}, NilError
}

// PawnMoves generates single steps and diagonal captures. Double steps and
// en passant are validation-only.
func PawnMoves(board *BoardArray, from Square) []Square {
	moves := []Square{}
	if !from.IsValid() {
		return moves
	}
	piece := board.PieceAt(from)
	if piece.PieceType() != Pawn {
		return moves
	}

	player := piece.Player()
	forward := PawnDirection(player)

	if s := from.Offset(0, forward); s.IsValid() && board.PieceAt(s).IsEmpty() {
		moves = append(moves, s)
	}
	for _, dFile := range []int{-1, 1} {
		if s := from.Offset(dFile, forward); s.IsValid() && board.PieceAt(s).IsEnemyOf(player) {
			moves = append(moves, s)
		}
	}
	return moves
}

func RookMoves(board *BoardArray, from Square) []Square {
	if !from.IsValid() || board.PieceAt(from).IsEmpty() {
		return []Square{}
	}
	return walk(board, from, rookDirections, []Square{})
}

func BishopMoves(board *BoardArray, from Square) []Square {
	if !from.IsValid() || board.PieceAt(from).IsEmpty() {
		return []Square{}
	}
	return walk(board, from, bishopDirections, []Square{})
}

func QueenMoves(board *BoardArray, from Square) []Square {
	if !from.IsValid() || board.PieceAt(from).IsEmpty() {
		return []Square{}
	}
	moves := walk(board, from, rookDirections, []Square{})
	return walk(board, from, bishopDirections, moves)
}

func KnightMoves(board *BoardArray, from Square) []Square {
	if !from.IsValid() || board.PieceAt(from).IsEmpty() {
		return []Square{}
	}
	return jump(from, knightOffsets)
}

func KingMoves(board *BoardArray, from Square) []Square {
	if !from.IsValid() || board.PieceAt(from).IsEmpty() {
		return []Square{}
	}
	return jump(from, kingOffsets)
}

// walk follows each ray until the edge, including the first occupied square.
func walk(board *BoardArray, from Square, directions []offset, moves []Square) []Square {
	for _, d := range directions {
		for s := from.Offset(d.dFile, d.dRank); s.IsValid(); s = s.Offset(d.dFile, d.dRank) {
			moves = append(moves, s)
			if !board.PieceAt(s).IsEmpty() {
				break
			}
		}
	}
	return moves
}

func jump(from Square, offsets []offset) []Square {
	moves := []Square{}
	for _, o := range offsets {
		if s := from.Offset(o.dFile, o.dRank); s.IsValid() {
			moves = append(moves, s)
		}
	}
	return moves
}

// LegalDestinations lists, in board index order, every square the piece on
// from may move to according to IsLegalMove. This includes pawn double steps
// but not castling or en passant, and ignores self-check.
func LegalDestinations(board *BoardArray, from Square) ([]Square, Error) {
	if err := checkSquares(from); !IsNil(err) {
		return nil, err
	}

	piece := board.PieceAt(from)
	result := []Square{}
	if piece.IsEmpty() {
		return result, NilError
	}
	for i := 0; i < 64; i++ {
		end := SquareFromIndex(i)
		if isLegalMove(board, piece, from, end) {
			result = append(result, end)
		}
	}
	return result, NilError
}
