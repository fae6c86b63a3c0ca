package game

import (
	. "github.com/cricklet/chessrules/internal/helpers"
)

type MoveType int

const (
	QuietMove MoveType = iota
	CaptureMove
	CastlingMove
	EnPassantMove
	PromotionMove
)

func (t MoveType) String() string {
	switch t {
	case QuietMove:
		{
			return "QuietMove"
		}
	case CaptureMove:
		{
			return "CaptureMove"
		}
	case CastlingMove:
		{
			return "CastlingMove"
		}
	case EnPassantMove:
		{
			return "EnPassantMove"
		}
	case PromotionMove:
		{
			return "PromotionMove"
		}
	}

	return "Invalid"
}

// BoardUpdate records every square a move touches, plus the state needed to
// undo it. A move touches at most four squares (castling).
type BoardUpdate struct {
	MoveType MoveType

	Squares [4]Square
	Pieces  [4]Piece
	Num     int

	PrevPieces          [4]Piece
	PrevPlayer          Player
	PrevCastlingRights  CastlingRights
	PrevEnPassantTarget Optional[Square]
	PrevHalfMoveClock   int
	PrevFullMoveClock   int
}

func (u *BoardUpdate) Add(prevPiece Piece, square Square, piece Piece) {
	u.Squares[u.Num] = square
	u.Pieces[u.Num] = piece
	u.PrevPieces[u.Num] = prevPiece
	u.Num++
}

func (u *BoardUpdate) Captured() Piece {
	for i := 0; i < u.Num; i++ {
		if u.PrevPieces[i].IsEnemyOf(u.PrevPlayer) {
			return u.PrevPieces[i]
		}
	}
	return XX
}

// Apply writes the update onto board.
func (u *BoardUpdate) Apply(board *BoardArray) {
	for i := 0; i < u.Num; i++ {
		board.Set(u.Squares[i], u.Pieces[i])
	}
}

// Undo restores board to how it was before Apply.
func (u *BoardUpdate) Undo(board *BoardArray) {
	for i := u.Num - 1; i >= 0; i-- {
		board.Set(u.Squares[i], u.PrevPieces[i])
	}
}
