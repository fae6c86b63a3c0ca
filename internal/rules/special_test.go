package rules

import (
	"errors"
	"testing"

	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func enPassant(t *testing.T, b *BoardArray, start string, end string, target Optional[Square]) bool {
	t.Helper()
	result, err := IsValidEnPassant(b, b.PieceAt(MustSquare(start)), MustSquare(start), MustSquare(end), target)
	assert.True(t, IsNil(err))
	return result
}

func TestEnPassantEligibility(t *testing.T) {
	b := StartingBoard()
	b.Move(MustSquare("e2"), MustSquare("e5"))
	b.Move(MustSquare("d7"), MustSquare("d5"))
	target := EnPassantTargetForMove(BP, MustSquare("d7"), MustSquare("d5"))
	assert.Equal(t, Some(MustSquare("d6")), target)

	assert.True(t, enPassant(t, &b, "e5", "d6", target))
	assert.False(t, enPassant(t, &b, "e5", "f6", target))
	assert.False(t, enPassant(t, &b, "e5", "f6", Empty[Square]()))
	assert.False(t, enPassant(t, &b, "e5", "d6", Empty[Square]()))

	// ordinary validation never allows the empty diagonal
	assert.False(t, legal(t, &b, "e5", "d6"))
	assert.Equal(t, MustSquare("d5"), EnPassantCaptureSquare(MustSquare("e5"), MustSquare("d6")))
}

func TestEnPassantForBlack(t *testing.T) {
	b := setup(map[string]Piece{"d4": BP, "e4": WP, "a4": BP})
	target := Some(MustSquare("e3"))
	assert.True(t, enPassant(t, b, "d4", "e3", target))
	assert.False(t, enPassant(t, b, "a4", "b3", target))
	assert.False(t, enPassant(t, b, "d4", "e3", Empty[Square]()))
}

func TestEnPassantRequiresFifthRankAndPawn(t *testing.T) {
	b := setup(map[string]Piece{"e4": WP, "d4": BP, "e5": WN, "d5": BP})
	assert.False(t, enPassant(t, b, "e4", "d5", Some(MustSquare("d5"))))
	assert.False(t, enPassant(t, b, "e5", "d6", Some(MustSquare("d6"))))

	// only the rank and the target are consulted
	noVictim := setup(map[string]Piece{"e5": WP})
	assert.True(t, enPassant(t, noVictim, "e5", "d6", Some(MustSquare("d6"))))
	assert.True(t, enPassant(t, noVictim, "e5", "e6", Some(MustSquare("e6"))))
	assert.False(t, enPassant(t, noVictim, "e5", "d6", Some(MustSquare("f6"))))

	_, err := IsValidEnPassant(noVictim, WP, MustSquare("e5"), Square{File: 3, Rank: 8}, Empty[Square]())
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func castle(t *testing.T, b *BoardArray, start string, end string, rights CastlingRights) bool {
	t.Helper()
	result, err := IsValidCastling(b, b.PieceAt(MustSquare(start)), MustSquare(start), MustSquare(end), rights)
	assert.True(t, IsNil(err))
	return result
}

func castlingBoard(extra map[string]Piece) *BoardArray {
	pieces := map[string]Piece{
		"e1": WK, "a1": WR, "h1": WR,
		"e8": BK, "a8": BR, "h8": BR,
	}
	for s, p := range extra {
		pieces[s] = p
	}
	return setup(pieces)
}

func TestCastling(t *testing.T) {
	b := castlingBoard(nil)
	assert.True(t, castle(t, b, "e1", "g1", AllCastlingRights))
	assert.True(t, castle(t, b, "e1", "c1", AllCastlingRights))
	assert.True(t, castle(t, b, "e8", "g8", AllCastlingRights))
	assert.True(t, castle(t, b, "e8", "c8", AllCastlingRights))

	assert.False(t, castle(t, b, "e1", "f1", AllCastlingRights))
	assert.False(t, castle(t, b, "e1", "b1", AllCastlingRights))
	assert.False(t, castle(t, b, "e1", "g2", AllCastlingRights))
	assert.False(t, castle(t, b, "a1", "c1", AllCastlingRights))
}

func TestCastlingRights(t *testing.T) {
	b := castlingBoard(nil)
	rights := AllCastlingRights
	rights[White][Kingside] = false
	assert.False(t, castle(t, b, "e1", "g1", rights))
	assert.True(t, castle(t, b, "e1", "c1", rights))

	rights[Black][Queenside] = false
	assert.True(t, castle(t, b, "e8", "g8", rights))
	assert.False(t, castle(t, b, "e8", "c8", rights))
}

func TestCastlingPath(t *testing.T) {
	assert.False(t, castle(t, castlingBoard(map[string]Piece{"g1": WN}), "e1", "g1", AllCastlingRights))
	assert.False(t, castle(t, castlingBoard(map[string]Piece{"b1": WN}), "e1", "c1", AllCastlingRights))
	assert.False(t, castle(t, castlingBoard(map[string]Piece{"f8": BB}), "e8", "g8", AllCastlingRights))

	noRook := castlingBoard(nil)
	noRook.Set(MustSquare("h1"), XX)
	assert.False(t, castle(t, noRook, "e1", "g1", AllCastlingRights))

	enemyRook := castlingBoard(nil)
	enemyRook.Set(MustSquare("h1"), BR)
	assert.False(t, castle(t, enemyRook, "e1", "g1", AllCastlingRights))

	moved := castlingBoard(nil)
	moved.Move(MustSquare("e1"), MustSquare("f1"))
	assert.False(t, castle(t, moved, "f1", "g1", AllCastlingRights))
}

func TestCastlingAndCheck(t *testing.T) {
	// landing on an attacked square
	assert.False(t, castle(t, castlingBoard(map[string]Piece{"g5": BR}), "e1", "g1", AllCastlingRights))
	// crossing an attacked square
	assert.False(t, castle(t, castlingBoard(map[string]Piece{"f5": BR}), "e1", "g1", AllCastlingRights))
	assert.False(t, castle(t, castlingBoard(map[string]Piece{"d5": BR}), "e1", "c1", AllCastlingRights))
	// castling out of check
	assert.False(t, castle(t, castlingBoard(map[string]Piece{"e5": BR}), "e1", "g1", AllCastlingRights))
	// b1 is not on the king's path
	assert.True(t, castle(t, castlingBoard(map[string]Piece{"b5": BR}), "e1", "c1", AllCastlingRights))
	// attacks on the rook do not matter
	assert.True(t, castle(t, castlingBoard(map[string]Piece{"h5": BQ}), "e1", "g1", AllCastlingRights))
	// pawns attack diagonally even onto empty squares
	assert.False(t, castle(t, castlingBoard(map[string]Piece{"e2": BP}), "e1", "g1", AllCastlingRights))
	assert.False(t, castle(t, castlingBoard(map[string]Piece{"h2": BP}), "e1", "g1", AllCastlingRights))
}

func TestRookMoveForCastle(t *testing.T) {
	start, end, err := RookMoveForCastle(MustSquare("e8"), MustSquare("c8"))
	assert.True(t, IsNil(err))
	assert.Equal(t, MustSquare("a8"), start)
	assert.Equal(t, MustSquare("d8"), end)

	_, _, err = RookMoveForCastle(MustSquare("e1"), MustSquare("e2"))
	assert.True(t, errors.Is(err, ErrMalformedCastling))
}

func promotion(t *testing.T, b *BoardArray, start string, end string, to PieceType) bool {
	t.Helper()
	result, err := IsValidPawnPromotion(b, b.PieceAt(MustSquare(start)), MustSquare(start), MustSquare(end), to)
	assert.True(t, IsNil(err))
	return result
}

func TestPawnPromotionEligibility(t *testing.T) {
	b := setup(map[string]Piece{"e7": WP, "d8": BR, "f8": WB, "b2": BP, "c1": WN, "a6": WP})
	for _, to := range PromotionPieces {
		assert.True(t, promotion(t, b, "e7", "e8", to), to.Name())
		assert.True(t, promotion(t, b, "e7", "d8", to), to.Name())
		assert.True(t, promotion(t, b, "b2", "b1", to), to.Name())
		assert.True(t, promotion(t, b, "b2", "c1", to), to.Name())
	}
	assert.False(t, promotion(t, b, "e7", "e8", King))
	assert.False(t, promotion(t, b, "e7", "e8", Pawn))
	assert.False(t, promotion(t, b, "e7", "f8", Queen))
	assert.False(t, promotion(t, b, "a6", "a7", Queen))
	assert.False(t, promotion(t, b, "b2", "a1", Queen))

	b.Set(MustSquare("e8"), BK)
	assert.False(t, promotion(t, b, "e7", "e8", Queen))

	notPawn := setup(map[string]Piece{"e7": WR})
	assert.False(t, promotion(t, notPawn, "e7", "e8", Queen))
}

func TestPawnPromotionRoundTrip(t *testing.T) {
	b := setup(map[string]Piece{"e7": WP, "d8": BR, "e1": WK, "e8": BK})
	ok := promotion(t, b, "e7", "d8", Knight)
	assert.True(t, ok)

	err := PerformPawnPromotion(b, WP, MustSquare("e7"), MustSquare("d8"), Knight)
	assert.True(t, IsNil(err))

	expected := setup(map[string]Piece{"d8": WN, "e1": WK, "e8": BK})
	if diff := cmp.Diff(*expected, *b); diff != "" {
		t.Errorf("promotion mismatch (-want +got):\n%s", diff)
	}

	inCheck, err := IsInCheck(b, Black)
	assert.True(t, IsNil(err))
	assert.False(t, inCheck)
}

func TestPerformPawnPromotionRejectsKinds(t *testing.T) {
	b := setup(map[string]Piece{"b2": BP})
	before := *b
	err := PerformPawnPromotion(b, BP, MustSquare("b2"), MustSquare("b1"), King)
	assert.True(t, errors.Is(err, ErrInvalidPromotion))
	assert.Equal(t, before, *b)

	err = PerformPawnPromotion(b, BP, MustSquare("b2"), MustSquare("b1"), Queen)
	assert.True(t, IsNil(err))
	assert.Equal(t, BQ, b.PieceAt(MustSquare("b1")))
	assert.Equal(t, XX, b.PieceAt(MustSquare("b2")))
}
