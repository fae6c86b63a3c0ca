package game

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/cricklet/chessrules/internal/helpers"
)

const StartingFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func FenStringForPlayer(p Player) string {
	if p == White {
		return "w"
	} else {
		return "b"
	}
}

var fenStringForCastling = [2][2]string{
	{"K", "Q"},
	{"k", "q"},
}

func fenStringForCastlingAllowed(castlingRights CastlingRights) string {
	s := ""
	for _, player := range []Player{White, Black} {
		for _, side := range AllCastlingSides {
			if castlingRights[player][side] {
				s += fenStringForCastling[player][side]
			}
		}
	}
	if len(s) == 0 {
		s += "-"
	}
	return s
}

func fenStringForEnPassant(enPassant Optional[Square]) string {
	if enPassant.IsEmpty() {
		return "-"
	}
	return enPassant.Value().String()
}

func FenStringForBoard(b BoardArray) string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		numSpaces := 0
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(Square{File: File(file), Rank: Rank(rank)})
			if !piece.IsValid() {
				numSpaces++
				continue
			}
			if numSpaces > 0 {
				s += fmt.Sprint(numSpaces)
				numSpaces = 0
			}
			s += piece.String()
		}
		if numSpaces > 0 {
			s += fmt.Sprint(numSpaces)
		}
		if rank != 0 {
			s += "/"
		}
	}
	return s
}

func FenStringForGame(g *GameState) string {
	return fmt.Sprintf("%v %v %v %v %v %v",
		FenStringForBoard(g.Board),
		FenStringForPlayer(g.Player),
		fenStringForCastlingAllowed(g.CastlingRights),
		fenStringForEnPassant(g.EnPassantTarget),
		g.HalfMoveClock,
		g.FullMoveClock)
}

func BoardFromFenString(boardStr string) (BoardArray, Error) {
	var board BoardArray

	var rankIndex Rank = 7
	var fileIndex File = 0
	for _, c := range boardStr {
		if c == '/' {
			if fileIndex != 8 {
				return BoardArray{}, Errorf("not enough squares in rank %v of '%v'", rankIndex, boardStr)
			}
			if rankIndex == 0 {
				return BoardArray{}, Errorf("too many ranks in '%v'", boardStr)
			}
			rankIndex--
			fileIndex = 0
		} else if c >= '1' && c <= '8' {
			fileIndex += File(c - '0')
		} else if p, err := PieceFromRune(c); IsNil(err) {
			if fileIndex > 7 {
				return BoardArray{}, Errorf("too many squares in rank %v of '%v'", rankIndex, boardStr)
			}
			// rank 8 comes first in the string, but index 0 is a1
			board.Set(Square{File: fileIndex, Rank: rankIndex}, p)
			fileIndex++
		} else {
			return BoardArray{}, Errorf("unknown character '%c' in '%v'", c, boardStr)
		}
	}

	if rankIndex != 0 || fileIndex != 8 {
		return BoardArray{}, Errorf("incomplete board '%v'", boardStr)
	}
	return board, NilError
}

func GamestateFromFenString(s string) (*GameState, Error) {
	ss := strings.Fields(s)
	if len(ss) != 6 && len(ss) != 4 && len(ss) != 2 {
		return &GameState{}, Errorf("wrong num %v of fields in str '%v'", len(ss), s)
	}

	boardStr, playerString := ss[0], ss[1]

	var castlingRights CastlingRights
	var enPassantTarget Optional[Square]
	var halfMoveClock int
	var fullMoveClock int

	board, err := BoardFromFenString(boardStr)
	if !IsNil(err) {
		return &GameState{}, err
	}

	player, err := PlayerFromString(playerString)
	if !IsNil(err) {
		return &GameState{}, Errorf("invalid player '%v' in '%v'", playerString, s)
	}

	castlingRightsString, enPassantTargetString := "-", "-"
	if len(ss) >= 4 {
		castlingRightsString, enPassantTargetString = ss[2], ss[3]
	}

	halfMoveClockString, fullMoveClockString := "0", "1"
	if len(ss) == 6 {
		halfMoveClockString, fullMoveClockString = ss[4], ss[5]
	}

	for _, c := range castlingRightsString {
		switch c {
		case '-':
			continue
		case 'K':
			castlingRights[White][Kingside] = true
		case 'Q':
			castlingRights[White][Queenside] = true
		case 'k':
			castlingRights[Black][Kingside] = true
		case 'q':
			castlingRights[Black][Queenside] = true
		default:
			return &GameState{}, Errorf("invalid castling rights '%v' in '%v'", castlingRightsString, s)
		}
	}

	if enPassantTargetString == "-" {
		enPassantTarget = Empty[Square]()
	} else if v, err := SquareFromString(enPassantTargetString); IsNil(err) {
		enPassantTarget = Some(v)
	} else {
		return &GameState{}, Errorf("invalid en-passant target '%v' in '%v'", enPassantTargetString, s)
	}

	if v, err := strconv.ParseInt(halfMoveClockString, 10, 0); err == nil {
		halfMoveClock = int(v)
	} else {
		return &GameState{}, Errorf("invalid half move clock '%v' in '%v'", halfMoveClockString, s)
	}

	if v, err := strconv.ParseInt(fullMoveClockString, 10, 0); err == nil {
		fullMoveClock = int(v)
	} else {
		return &GameState{}, Errorf("invalid full move clock '%v' in '%v'", fullMoveClockString, s)
	}

	return NewGameState(
		board,
		player,
		castlingRights,
		enPassantTarget,
		halfMoveClock,
		fullMoveClock,
	), NilError
}
