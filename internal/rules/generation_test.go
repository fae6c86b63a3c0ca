package rules

import (
	"errors"
	"testing"

	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"
)

func squareNames(squares []Square) []string {
	indices := MapSlice(squares, func(s Square) int { return s.Index() })
	slices.Sort(indices)
	return MapSlice(indices, func(i int) string { return SquareFromIndex(i).String() })
}

func generated(t *testing.T, b *BoardArray, from string) []string {
	t.Helper()
	squares, err := PseudoMoves(b, MustSquare(from))
	assert.True(t, IsNil(err))
	return squareNames(squares)
}

func TestPawnGeneration(t *testing.T) {
	b := setup(map[string]Piece{"e2": WP, "d3": BN, "f3": WN})
	// no double step, friendly diagonal ignored
	assert.Equal(t, []string{"d3", "e3"}, generated(t, b, "e2"))

	b = setup(map[string]Piece{"a7": BP, "b6": WP, "a6": WR})
	assert.Equal(t, []string{"b6"}, generated(t, b, "a7"))

	b = setup(map[string]Piece{"h8": WP})
	assert.Empty(t, generated(t, b, "h8"))
}

func TestRookGenerationIncludesBlockers(t *testing.T) {
	b := setup(map[string]Piece{"a1": WR, "a3": WP, "c1": BN})
	assert.Equal(t, []string{"b1", "c1", "a2", "a3"}, generated(t, b, "a1"))
}

func TestBishopGenerationStopsAtEdge(t *testing.T) {
	b := setup(map[string]Piece{"h1": BB})
	assert.Equal(t, []string{"g2", "f3", "e4", "d5", "c6", "b7", "a8"}, generated(t, b, "h1"))

	b = setup(map[string]Piece{"c1": WB, "b2": WP, "e3": BP})
	assert.Equal(t, []string{"b2", "d2", "e3"}, generated(t, b, "c1"))
}

func TestQueenGenerationIsRookPlusBishop(t *testing.T) {
	b := setup(map[string]Piece{"d4": WQ, "d6": BP, "f6": WP, "b4": WN})
	queen := generated(t, b, "d4")

	rook := RookMoves(b, MustSquare("d4"))
	bishop := BishopMoves(b, MustSquare("d4"))
	assert.Equal(t, squareNames(append(rook, bishop...)), queen)
	assert.Len(t, queen, len(rook)+len(bishop))
}

func TestLeaperGenerationKeepsFriendlySquares(t *testing.T) {
	b := setup(map[string]Piece{"b1": WN, "d2": WP})
	assert.Equal(t, []string{"d2", "a3", "c3"}, generated(t, b, "b1"))

	b = setup(map[string]Piece{"a1": WK, "a2": WP})
	assert.Equal(t, []string{"b1", "a2", "b2"}, generated(t, b, "a1"))

	b = setup(map[string]Piece{"d4": BN})
	assert.Len(t, generated(t, b, "d4"), 8)
}

func TestGenerationFromEmptySquare(t *testing.T) {
	b := BoardArray{}
	assert.Empty(t, generated(t, &b, "d4"))

	_, err := PseudoMoves(&b, Square{File: 9, Rank: 0})
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestLegalDestinations(t *testing.T) {
	b := StartingBoard()
	squares, err := LegalDestinations(&b, MustSquare("e2"))
	assert.True(t, IsNil(err))
	assert.Equal(t, []string{"e3", "e4"}, squareNames(squares))

	squares, err = LegalDestinations(&b, MustSquare("g1"))
	assert.True(t, IsNil(err))
	assert.Equal(t, []string{"f3", "h3"}, squareNames(squares))

	squares, err = LegalDestinations(&b, MustSquare("a1"))
	assert.True(t, IsNil(err))
	assert.Empty(t, squares)
}

func TestGeneratedMovesSupersetOfSliderLegality(t *testing.T) {
	b := setup(map[string]Piece{"d4": WQ, "d6": BP, "f6": WP, "b4": WN, "g1": BB})
	generatedSquares, _ := PseudoMoves(b, MustSquare("d4"))
	legalSquares, _ := LegalDestinations(b, MustSquare("d4"))
	for _, s := range legalSquares {
		assert.Contains(t, generatedSquares, s)
	}
	for _, s := range generatedSquares {
		if !b.PieceAt(s).IsFriendOf(White) {
			assert.Contains(t, legalSquares, s)
		}
	}
}
