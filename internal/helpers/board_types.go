package helpers

import (
	"fmt"
	"strings"
)

type File int
type Rank int

type Player uint

const (
	White Player = iota
	Black
)

var _playerStrings = [2]string{
	"white", "black",
}

func (p Player) String() string {
	return _playerStrings[p]
}

func (p Player) Other() Player {
	return 1 - p
}

func PlayerFromString(c string) (Player, Error) {
	switch c {
	case "b", "black":
		return Black, NilError
	case "w", "white":
		return White, NilError
	default:
		return White, Errorf("invalid player %v", c)
	}
}

type Piece uint

const (
	XX Piece = iota
	WR
	WN
	WB
	WK
	WQ
	WP
	BR
	BN
	BB
	BK
	BQ
	BP
)

type PieceType uint

const (
	Rook PieceType = iota
	Knight
	Bishop
	King
	Queen
	Pawn
	InvalidPiece
)

var AllPieceTypes = [6]PieceType{Rook, Knight, Bishop, King, Queen, Pawn}

func (p PieceType) String() string {
	return [7]string{
		"r", "n", "b", "k", "q", "p", "?",
	}[p]
}

func (p PieceType) Name() string {
	return [7]string{
		"rook", "knight", "bishop", "king", "queen", "pawn", "invalid",
	}[p]
}

func PieceTypeFromString(s string) PieceType {
	switch s {
	case "r", "rook":
		return Rook
	case "n", "knight":
		return Knight
	case "b", "bishop":
		return Bishop
	case "k", "king":
		return King
	case "q", "queen":
		return Queen
	case "p", "pawn":
		return Pawn
	default:
		return InvalidPiece
	}
}

func (p PieceType) IsValid() bool {
	return p >= Rook && p <= Pawn
}

func (f File) String() string {
	if f < 0 || f > 7 {
		return "?"
	}
	return [8]string{
		"a", "b", "c", "d", "e", "f", "g", "h",
	}[f]
}
func (r Rank) String() string {
	if r < 0 || r > 7 {
		return "?"
	}
	return [8]string{
		"1", "2", "3", "4", "5", "6", "7", "8",
	}[r]
}

func RankFromChar(c byte) (Rank, Error) {
	rank := int(c) - '1'
	if rank < 0 || rank >= 8 {
		return 0, Errorf("rank invalid %q", c)
	}
	return Rank(rank), NilError
}

func FileFromChar(c byte) (File, Error) {
	file := int(c) - 'a'
	if file < 0 || file >= 8 {
		return 0, Errorf("file invalid %q", c)
	}
	return File(file), NilError
}

// Square is a board coordinate. Rank 0 is White's back rank.
type Square struct {
	File File
	Rank Rank
}

func (s Square) IsValid() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 0 && s.Rank < 8
}

func (s Square) String() string {
	return s.File.String() + s.Rank.String()
}

func (s Square) Index() int {
	return int(s.Rank)*8 + int(s.File)
}

func (s Square) Offset(dFile int, dRank int) Square {
	return Square{s.File + File(dFile), s.Rank + Rank(dRank)}
}

func SquareFromIndex(index int) Square {
	return Square{File(index & 0b111), Rank(index >> 3)}
}

func SquareFromString(s string) (Square, Error) {
	if len(s) != 2 {
		return Square{}, Errorf("invalid square %q", s)
	}

	file, fileErr := FileFromChar(s[0])
	rank, rankErr := RankFromChar(s[1])

	if !IsNil(fileErr) || !IsNil(rankErr) {
		return Square{}, Errorf("invalid square %q: %v", s, Join(fileErr, rankErr).Message())
	}

	return Square{file, rank}, NilError
}

// MustSquare is for literals in tests and tables.
func MustSquare(s string) Square {
	square, err := SquareFromString(s)
	if !IsNil(err) {
		panic(err)
	}
	return square
}

var PieceTypeLookup [16]PieceType = func() [16]PieceType {
	result := [16]PieceType{}
	result[XX] = InvalidPiece
	result[WR] = Rook
	result[WN] = Knight
	result[WB] = Bishop
	result[WK] = King
	result[WQ] = Queen
	result[WP] = Pawn
	result[BR] = Rook
	result[BN] = Knight
	result[BB] = Bishop
	result[BK] = King
	result[BQ] = Queen
	result[BP] = Pawn
	return result
}()

func (p Piece) PieceType() PieceType {
	return PieceTypeLookup[p]
}

// Player is only meaningful for non-empty pieces.
func (p Piece) Player() Player {
	if p < BR {
		return White
	}
	return Black
}

func (p Piece) IsWhite() bool {
	return p <= WP && p >= WR
}

func (p Piece) IsEmpty() bool {
	return p == XX
}

func (p Piece) IsValid() bool {
	return p >= WR && p <= BP
}

// IsEnemyOf is false for empty squares.
func (p Piece) IsEnemyOf(player Player) bool {
	return !p.IsEmpty() && p.Player() != player
}

func (p Piece) IsFriendOf(player Player) bool {
	return !p.IsEmpty() && p.Player() == player
}

var PieceForPlayer [2][8]Piece = func() [2][8]Piece {
	result := [2][8]Piece{}
	for i := range result {
		for j := range result[i] {
			result[i][j] = XX
		}
	}

	result[White][Rook] = WR
	result[White][Knight] = WN
	result[White][Bishop] = WB
	result[White][King] = WK
	result[White][Queen] = WQ
	result[White][Pawn] = WP

	result[Black][Rook] = BR
	result[Black][Knight] = BN
	result[Black][Bishop] = BB
	result[Black][King] = BK
	result[Black][Queen] = BQ
	result[Black][Pawn] = BP

	return result
}()

func PieceFromRune(c rune) (Piece, Error) {
	switch c {
	case 'R':
		return WR, NilError
	case 'N':
		return WN, NilError
	case 'B':
		return WB, NilError
	case 'K':
		return WK, NilError
	case 'Q':
		return WQ, NilError
	case 'P':
		return WP, NilError
	case 'r':
		return BR, NilError
	case 'n':
		return BN, NilError
	case 'b':
		return BB, NilError
	case 'k':
		return BK, NilError
	case 'q':
		return BQ, NilError
	case 'p':
		return BP, NilError
	default:
		return XX, Errorf("invalid piece %q", c)
	}
}

func (p Piece) String() string {
	return []string{
		" ",
		"R",
		"N",
		"B",
		"K",
		"Q",
		"P",
		"r",
		"n",
		"b",
		"k",
		"q",
		"p",
	}[p]
}

func (p PieceType) Unicode() string {
	return []string{
		"♜",
		"♞",
		"♝",
		"♚",
		"♛",
		"♟",
		" ",
	}[p]
}

type BoardArray [64]Piece

// NaturalBoardArray is laid out as printed, with rank 8 first.
type NaturalBoardArray [64]Piece

func (n NaturalBoardArray) AsBoardArray() BoardArray {
	b := BoardArray{}

	for rank := 0; rank < 8; rank++ {
		index := rank * 8
		newIndex := (7 - rank) * 8
		copy(b[index:index+8], n[newIndex:newIndex+8])
	}

	return b
}

func (b *BoardArray) PieceAt(s Square) Piece {
	return b[s.Index()]
}

func (b *BoardArray) Set(s Square, p Piece) {
	b[s.Index()] = p
}

// Move relocates whatever is on start onto end, overwriting any capture.
func (b *BoardArray) Move(start Square, end Square) {
	b[end.Index()] = b[start.Index()]
	b[start.Index()] = XX
}

func (b BoardArray) String() string {
	result := ""
	for rank := 7; rank >= 0; rank-- {
		row := b[rank*8 : (rank+1)*8]
		for _, p := range row {
			result += p.String()
		}
		if rank != 0 {
			result += "\n"
		}
	}
	return result
}

const _hintForeground = "\033[38;5;244m"
const _whiteForeground = "\033[38;5;255m"
const _blackForeground = "\033[38;5;232m"
const _whiteBackground = "\033[48;5;244m"
const _blackBackground = "\033[48;5;243m"
const _resetColors = "\x1b[0m"

func (b BoardArray) Unicode() string {
	result := ""
	result += "  "
	for file := 0; file < 8; file++ {
		result += _hintForeground + " " + File(file).String() + " " + _resetColors
	}
	result += "\n"

	for rank := 7; rank >= 0; rank-- {
		result += _hintForeground + Rank(rank).String() + " " + _resetColors
		for file := 0; file < 8; file++ {
			squareColor := (file%2 + rank%2) % 2
			piece := b.PieceAt(Square{File(file), Rank(rank)})

			if squareColor == int(White) {
				result += _whiteBackground
			} else {
				result += _blackBackground
			}
			if piece.IsWhite() {
				result += _whiteForeground
			} else {
				result += _blackForeground
			}

			result += " " + piece.PieceType().Unicode() + " "
			result += _resetColors
		}
		result += "\n"
	}

	return result
}

var _backRow = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func StartingBoard() BoardArray {
	b := BoardArray{}
	for file := 0; file < 8; file++ {
		b.Set(Square{File(file), 0}, PieceForPlayer[White][_backRow[file]])
		b.Set(Square{File(file), 1}, WP)
		b.Set(Square{File(file), 6}, BP)
		b.Set(Square{File(file), 7}, PieceForPlayer[Black][_backRow[file]])
	}
	return b
}

type CastlingSide int

const (
	Kingside CastlingSide = iota
	Queenside
)

var AllCastlingSides = [2]CastlingSide{Kingside, Queenside}

func (s CastlingSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}

// CastlingRights is indexed [player][side].
type CastlingRights [2][2]bool

var AllCastlingRights = CastlingRights{{true, true}, {true, true}}

type Move struct {
	Start     Square
	End       Square
	Promotion Optional[PieceType]
}

func (m Move) String() string {
	if m.Promotion.HasValue() {
		return fmt.Sprintf("%v-%v=%v", m.Start, m.End, m.Promotion.Value().Name())
	}
	return fmt.Sprintf("%v-%v", m.Start, m.End)
}

// MoveFromSquares builds a move from square names and an optional promotion
// piece name such as "queen" or "q".
func MoveFromSquares(start string, end string, promotion string) (Move, Error) {
	startSquare, startErr := SquareFromString(start)
	endSquare, endErr := SquareFromString(end)
	if !IsNil(startErr) || !IsNil(endErr) {
		return Move{}, Join(startErr, endErr)
	}

	move := Move{Start: startSquare, End: endSquare}
	if promotion != "" {
		kind := PieceTypeFromString(strings.ToLower(promotion))
		if !kind.IsValid() {
			return Move{}, Errorf("invalid promotion %q", promotion)
		}
		move.Promotion = Some(kind)
	}
	return move, NilError
}
