package referee

import (
	"github.com/cricklet/chessrules/internal/game"
	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/cricklet/chessrules/internal/rules"
)

// Referee owns one game, accepts moves for whichever side is to move and
// keeps enough history to take them back.
type Referee struct {
	logger Logger

	g        *game.GameState
	StartFen string
	history  []HistoryValue
}

type RefereeOption func(*Referee)

func WithLogger(logger Logger) RefereeOption {
	return func(r *Referee) {
		r.logger = logger
	}
}

func WithStartFen(fen string) RefereeOption {
	return func(r *Referee) {
		r.StartFen = fen
	}
}

type HistoryValue struct {
	move   Move
	update game.BoardUpdate
}

func NewReferee(options ...RefereeOption) (*Referee, Error) {
	r := &Referee{StartFen: game.StartingFen}
	for _, o := range options {
		o(r)
	}
	if r.logger == nil {
		r.logger = &DefaultLogger
	}

	err := r.SetupPosition(r.StartFen)
	if !IsNil(err) {
		return nil, err
	}
	return r, NilError
}

func (r *Referee) Reset() Error {
	return r.SetupPosition(r.StartFen)
}

// SetupPosition replaces the game with the one described by fen. On error the
// current game is left untouched.
func (r *Referee) SetupPosition(fen string) Error {
	g, err := game.GamestateFromFenString(fen)
	if !IsNil(err) {
		return Errorf("couldn't create game from %v, %w", fen, err)
	}

	r.g = g
	r.StartFen = fen
	r.history = []HistoryValue{}
	return NilError
}

func (r *Referee) LastMove() Optional[Move] {
	if len(r.history) > 0 {
		return Some(r.history[len(r.history)-1].move)
	}
	return Empty[Move]()
}

// Rewind takes back up to num moves.
func (r *Referee) Rewind(num int) Error {
	if num < 0 {
		return Errorf("cannot rewind %v moves", num)
	}
	for n := MinInt(num, len(r.history)); n > 0; n-- {
		h := r.history[len(r.history)-1]
		r.g.UndoUpdate(&h.update)
		r.history = r.history[:len(r.history)-1]
	}
	return NilError
}

func (r *Referee) PerformMove(move Move) Error {
	h := HistoryValue{move: move}

	err := r.g.PerformMove(move, &h.update)
	if !IsNil(err) {
		r.logger.Println("rejected", move, "for", r.g.Player, ":", err.Message())
		return Errorf("PerformMove: %w", err)
	}

	r.history = append(r.history, h)
	return NilError
}

// PerformMoveFromSquares is the form a board UI sends: two square names and an
// optional promotion piece name.
func (r *Referee) PerformMoveFromSquares(start string, end string, promotion string) Error {
	move, err := MoveFromSquares(start, end, promotion)
	if !IsNil(err) {
		return err
	}
	return r.PerformMove(move)
}

func (r *Referee) PerformMoves(moves []Move) Error {
	for _, m := range moves {
		err := r.PerformMove(m)
		if !IsNil(err) {
			return err
		}
	}
	return NilError
}

func (r *Referee) MovesForSelection(selection string) ([]string, Error) {
	square, err := SquareFromString(selection)
	if !IsNil(err) {
		return nil, Errorf("failed to parse selection %w", err)
	}

	moves, err := r.g.LegalMovesFrom(square)
	if !IsNil(err) {
		return nil, err
	}
	return MapSlice(moves, Move.String), NilError
}

func (r *Referee) Validate(move Move) (game.MoveType, Error) {
	return r.g.ValidateMove(move)
}

func (r *Referee) Status() (rules.GameStatus, Error) {
	return r.g.Status()
}

func (r *Referee) FenString() string {
	return game.FenStringForGame(r.g)
}

func (r *Referee) MoveHistory() []string {
	return MapSlice(r.history, func(h HistoryValue) string {
		return h.move.String()
	})
}

func (r *Referee) Player() Player {
	return r.g.Player
}

func (r *Referee) Board() BoardArray {
	return r.g.Board
}
