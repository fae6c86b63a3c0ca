package referee

import (
	"errors"
	"strings"
	"testing"

	"github.com/cricklet/chessrules/internal/game"
	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/cricklet/chessrules/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReferee(t *testing.T, options ...RefereeOption) (*Referee, *strings.Builder) {
	t.Helper()
	logs := &strings.Builder{}
	options = append(options, WithLogger(FuncLogger(func(m string) { logs.WriteString(m) })))
	r, err := NewReferee(options...)
	require.True(t, IsNil(err), err.Error())
	return r, logs
}

// line reads moves written as "f2f3 e7e5 ..."
func line(t *testing.T, s string) []Move {
	t.Helper()
	return MapSlice(strings.Fields(s), func(m string) Move {
		move, err := MoveFromSquares(m[0:2], m[2:4], "")
		require.True(t, IsNil(err), m)
		return move
	})
}

func TestFoolsMateThroughReferee(t *testing.T) {
	r, _ := newReferee(t)
	err := r.PerformMoves(line(t, "f2f3 e7e5 g2g4 d8h4"))
	assert.True(t, IsNil(err))

	status, err := r.Status()
	assert.True(t, IsNil(err))
	assert.Equal(t, rules.Checkmate, status)
	assert.Equal(t, []string{"f2-f3", "e7-e5", "g2-g4", "d8-h4"}, r.MoveHistory())
	assert.Equal(t, "d8-h4", r.LastMove().Value().String())
}

func TestRejectedMovesAreLogged(t *testing.T) {
	r, logs := newReferee(t)
	err := r.PerformMoveFromSquares("e2", "e5", "")
	assert.True(t, errors.Is(err, rules.ErrIllegalMove))
	assert.Contains(t, logs.String(), "rejected e2-e5")
	assert.Empty(t, r.MoveHistory())
	assert.Equal(t, game.StartingFen, r.FenString())

	err = r.PerformMoveFromSquares("e2", "nonsense", "")
	assert.False(t, IsNil(err))
	assert.Empty(t, r.MoveHistory())
}

func TestRewind(t *testing.T) {
	r, _ := newReferee(t)
	assert.True(t, IsNil(r.PerformMoves(line(t, "e2e4 e7e5 g1f3"))))

	assert.True(t, IsNil(r.Rewind(2)))
	assert.Equal(t, []string{"e2-e4"}, r.MoveHistory())
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", r.FenString())

	assert.True(t, IsNil(r.Rewind(10)))
	assert.Equal(t, game.StartingFen, r.FenString())
	assert.True(t, r.LastMove().IsEmpty())

	assert.False(t, IsNil(r.Rewind(-1)))
}

func TestSetupPosition(t *testing.T) {
	fen := "7k/4P3/8/8/8/8/8/4K3 w - - 0 1"
	r, _ := newReferee(t, WithStartFen(fen))
	assert.Equal(t, White, r.Player())

	moves, err := r.MovesForSelection("e7")
	assert.True(t, IsNil(err))
	assert.Equal(t, []string{"e7-e8=queen", "e7-e8=rook", "e7-e8=bishop", "e7-e8=knight"}, moves)

	assert.True(t, IsNil(r.PerformMoveFromSquares("e7", "e8", "knight")))
	board := r.Board()
	assert.Equal(t, WN, board.PieceAt(MustSquare("e8")))

	assert.True(t, IsNil(r.Reset()))
	assert.Equal(t, fen, r.FenString())

	err = r.SetupPosition("not a fen")
	assert.False(t, IsNil(err))
	assert.Equal(t, fen, r.FenString())

	_, err = r.MovesForSelection("z9")
	assert.False(t, IsNil(err))
}

func TestValidate(t *testing.T) {
	r, _ := newReferee(t)
	moveType, err := r.Validate(Move{Start: MustSquare("e2"), End: MustSquare("e4")})
	assert.True(t, IsNil(err))
	assert.Equal(t, game.QuietMove, moveType)
	assert.Empty(t, r.MoveHistory())
}
