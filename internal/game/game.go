package game

import (
	"errors"

	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/cricklet/chessrules/internal/rules"
)

// GameState is the live position owned by a game loop. The rules package only
// ever sees copies of Board.
type GameState struct {
	Board           BoardArray
	Player          Player
	CastlingRights  CastlingRights
	EnPassantTarget Optional[Square]
	HalfMoveClock   int
	FullMoveClock   int
}

func NewGameState(
	board BoardArray,
	player Player,
	castlingRights CastlingRights,
	enPassantTarget Optional[Square],
	halfMoveClock int,
	fullMoveClock int,
) *GameState {
	return &GameState{
		Board:           board,
		Player:          player,
		CastlingRights:  castlingRights,
		EnPassantTarget: enPassantTarget,
		HalfMoveClock:   halfMoveClock,
		FullMoveClock:   fullMoveClock,
	}
}

func NewStartingGameState() *GameState {
	return NewGameState(StartingBoard(), White, AllCastlingRights, Empty[Square](), 0, 1)
}

func (g *GameState) Enemy() Player {
	return g.Player.Other()
}

func (g *GameState) CanCastle(player Player, side CastlingSide) bool {
	return g.CastlingRights[player][side]
}

func illegal(format string, args ...any) Error {
	return Errorf("%w: "+format, append([]any{rules.ErrIllegalMove}, args...)...)
}

// ClassifyMove checks move against the piece rules for the side to move,
// including castling, en passant and promotion, but not self-check.
func (g *GameState) ClassifyMove(move Move) (MoveType, Error) {
	if !move.Start.IsValid() || !move.End.IsValid() {
		return QuietMove, Errorf("%w: %v", rules.ErrOutOfBounds, move)
	}

	piece := g.Board.PieceAt(move.Start)
	if piece.IsEmpty() {
		return QuietMove, illegal("no piece on %v", move.Start)
	}
	if piece.Player() != g.Player {
		return QuietMove, illegal("%v to move, %v belongs to %v", g.Player, move.Start, piece.Player())
	}

	if move.Promotion.HasValue() && !(piece.PieceType() == Pawn && rules.IsPromotionSquare(move.End, g.Player)) {
		return QuietMove, illegal("%v does not promote", move)
	}

	switch piece.PieceType() {
	case King:
		if AbsDiff(move.Start.File, move.End.File) == 2 {
			ok, err := rules.IsValidCastling(&g.Board, piece, move.Start, move.End, g.CastlingRights)
			if !IsNil(err) {
				return CastlingMove, err
			}
			if !ok {
				return CastlingMove, illegal("cannot castle %v", move)
			}
			return CastlingMove, NilError
		}
	case Pawn:
		if rules.IsPromotionSquare(move.End, g.Player) {
			promotion := move.Promotion.ValueOr(Queen)
			ok, err := rules.IsValidPawnPromotion(&g.Board, piece, move.Start, move.End, promotion)
			if !IsNil(err) {
				return PromotionMove, err
			}
			if !ok {
				return PromotionMove, illegal("cannot promote %v", move)
			}
			return PromotionMove, NilError
		}
		ok, err := rules.IsValidEnPassant(&g.Board, piece, move.Start, move.End, g.EnPassantTarget)
		if !IsNil(err) {
			return EnPassantMove, err
		}
		if ok && g.capturesEnPassant(piece, move) {
			return EnPassantMove, NilError
		}
	}

	ok, err := rules.IsLegalMove(&g.Board, piece, move.Start, move.End)
	if !IsNil(err) {
		return QuietMove, err
	}
	if !ok {
		return QuietMove, illegal("%v cannot move %v", piece.PieceType().Name(), move)
	}

	if g.Board.PieceAt(move.End).IsEmpty() {
		return QuietMove, NilError
	}
	return CaptureMove, NilError
}

// capturesEnPassant checks what the target square alone does not: a single
// diagonal step forward onto an empty square, beside an enemy pawn.
func (g *GameState) capturesEnPassant(piece Piece, move Move) bool {
	player := piece.Player()
	if int(move.End.Rank-move.Start.Rank) != rules.PawnDirection(player) || AbsDiff(move.Start.File, move.End.File) != 1 {
		return false
	}
	if !g.Board.PieceAt(move.End).IsEmpty() {
		return false
	}
	captured := g.Board.PieceAt(rules.EnPassantCaptureSquare(move.Start, move.End))
	return captured == PieceForPlayer[player.Other()][Pawn]
}

// ValidateMove is ClassifyMove plus the requirement that the mover's king is
// not in check afterwards.
func (g *GameState) ValidateMove(move Move) (MoveType, Error) {
	moveType, err := g.ClassifyMove(move)
	if !IsNil(err) {
		return moveType, err
	}

	hypothetical := g.Board
	if moveType == PromotionMove {
		err = rules.PerformPawnPromotion(&hypothetical, g.Board.PieceAt(move.Start), move.Start, move.End, move.Promotion.ValueOr(Queen))
		if !IsNil(err) {
			return moveType, err
		}
	} else {
		update := BoardUpdate{}
		g.setupBoardUpdate(move, moveType, &update)
		update.Apply(&hypothetical)
	}

	inCheck, err := rules.IsInCheck(&hypothetical, g.Player)
	if !IsNil(err) {
		return moveType, err
	}
	if inCheck {
		return moveType, illegal("%v leaves the %v king in check", move, g.Player)
	}
	return moveType, NilError
}

func (g *GameState) setupBoardUpdate(move Move, moveType MoveType, output *BoardUpdate) {
	startPiece := g.Board.PieceAt(move.Start)
	*output = BoardUpdate{MoveType: moveType}

	switch moveType {
	case QuietMove, CaptureMove:
		{
			output.Add(startPiece, move.Start, XX)
			output.Add(g.Board.PieceAt(move.End), move.End, startPiece)
		}
	case PromotionMove:
		{
			// recorded square by square so Undo can restore the pawn
			promoted := PieceForPlayer[startPiece.Player()][move.Promotion.ValueOr(Queen)]
			output.Add(startPiece, move.Start, XX)
			output.Add(g.Board.PieceAt(move.End), move.End, promoted)
		}
	case EnPassantMove:
		{
			captureSquare := rules.EnPassantCaptureSquare(move.Start, move.End)
			output.Add(g.Board.PieceAt(captureSquare), captureSquare, XX)
			output.Add(startPiece, move.Start, XX)
			output.Add(g.Board.PieceAt(move.End), move.End, startPiece)
		}
	case CastlingMove:
		{
			// validated by ClassifyMove, so the squares are well formed
			rookStart, rookEnd, _ := rules.RookMoveForCastle(move.Start, move.End)
			rookPiece := g.Board.PieceAt(rookStart)

			output.Add(startPiece, move.Start, XX)
			output.Add(rookPiece, rookStart, XX)
			output.Add(g.Board.PieceAt(move.End), move.End, startPiece)
			output.Add(g.Board.PieceAt(rookEnd), rookEnd, rookPiece)
		}
	}

	output.PrevPlayer = g.Player
	output.PrevCastlingRights = g.CastlingRights
	output.PrevEnPassantTarget = g.EnPassantTarget
	output.PrevFullMoveClock = g.FullMoveClock
	output.PrevHalfMoveClock = g.HalfMoveClock
}

func (g *GameState) updateCastlingRightsFor(s Square) {
	for _, player := range []Player{White, Black} {
		home := rules.HomeRank(player)
		if s.Rank != home {
			continue
		}
		switch s.File {
		case 4:
			g.CastlingRights[player][Kingside] = false
			g.CastlingRights[player][Queenside] = false
		case 7:
			g.CastlingRights[player][Kingside] = false
		case 0:
			g.CastlingRights[player][Queenside] = false
		}
	}
}

// PerformMove validates move for the side to move and applies it, filling
// update so the move can be undone.
func (g *GameState) PerformMove(move Move, update *BoardUpdate) Error {
	moveType, err := g.ValidateMove(move)
	if !IsNil(err) {
		return err
	}

	startPiece := g.Board.PieceAt(move.Start)
	g.setupBoardUpdate(move, moveType, update)
	update.Apply(&g.Board)

	g.EnPassantTarget = rules.EnPassantTargetForMove(startPiece, move.Start, move.End)

	if startPiece.PieceType() == Pawn || update.Captured() != XX {
		g.HalfMoveClock = 0
	} else {
		g.HalfMoveClock++
	}
	if g.Player == Black {
		g.FullMoveClock++
	}

	g.updateCastlingRightsFor(move.Start)
	g.updateCastlingRightsFor(move.End)

	g.Player = g.Player.Other()
	return NilError
}

func (g *GameState) UndoUpdate(update *BoardUpdate) {
	update.Undo(&g.Board)

	g.Player = update.PrevPlayer
	g.CastlingRights = update.PrevCastlingRights
	g.EnPassantTarget = update.PrevEnPassantTarget
	g.FullMoveClock = update.PrevFullMoveClock
	g.HalfMoveClock = update.PrevHalfMoveClock
}

// LegalMovesFrom lists every fully legal move of the piece on start, one per
// promotion choice.
func (g *GameState) LegalMovesFrom(start Square) ([]Move, Error) {
	if !start.IsValid() {
		return nil, Errorf("%w: %v", rules.ErrOutOfBounds, start)
	}

	result := []Move{}
	piece := g.Board.PieceAt(start)
	if !piece.IsFriendOf(g.Player) {
		return result, NilError
	}

	for i := 0; i < 64; i++ {
		end := SquareFromIndex(i)
		candidates := []Move{{Start: start, End: end}}
		if piece.PieceType() == Pawn && rules.IsPromotionSquare(end, g.Player) {
			candidates = MapSlice(rules.PromotionPieces[:], func(t PieceType) Move {
				return Move{Start: start, End: end, Promotion: Some(t)}
			})
		}

		for _, move := range candidates {
			_, err := g.ValidateMove(move)
			if IsNil(err) {
				result = append(result, move)
			} else if !errors.Is(err, rules.ErrIllegalMove) {
				return nil, err
			}
		}
	}
	return result, NilError
}

func (g *GameState) Status() (rules.GameStatus, Error) {
	return rules.Status(&g.Board, g.Player)
}
