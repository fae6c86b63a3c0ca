package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/cricklet/chessrules/internal/referee"
	"github.com/gorilla/websocket"
)

type UpdateToWeb struct {
	FenString     string   `json:"fenString"`
	LastMove      string   `json:"lastMove"`
	Selection     string   `json:"selection"`
	PossibleMoves []string `json:"possibleMoves"`
	Player        string   `json:"player"`
	Status        string   `json:"status"`
	Error         string   `json:"error,omitempty"`
}

func (u UpdateToWeb) String() string {
	return fmt.Sprint("UpdateToWeb: ", u.FenString, ", ", u.LastMove, ", ", u.Selection, ", ", u.PossibleMoves, ", ", u.Status)
}

type MessageFromWeb struct {
	NewFen    *string      `json:"newFen"`
	Selection *string      `json:"selection"`
	Move      *MoveRequest `json:"move"`
	Rewind    *int         `json:"rewind"`
}

func (u MessageFromWeb) String() string {
	if u.NewFen != nil {
		return fmt.Sprint("MessageFromWeb NewFen: ", *u.NewFen)
	}
	if u.Selection != nil {
		return fmt.Sprint("MessageFromWeb Selection: ", *u.Selection)
	}
	if u.Move != nil {
		return fmt.Sprint("MessageFromWeb Move: ", *u.Move)
	}
	if u.Rewind != nil {
		return fmt.Sprint("MessageFromWeb Rewind: ", *u.Rewind)
	}
	return "MessageFromWeb unknown"
}

// session is one websocket connection refereeing one game.
type session struct {
	logger  Logger
	referee *referee.Referee
	send    func(v any)
}

func (s *session) handle(message MessageFromWeb) UpdateToWeb {
	var update UpdateToWeb
	var err Error

	if message.NewFen != nil {
		err = s.referee.SetupPosition(*message.NewFen)
	} else if message.Selection != nil {
		if *message.Selection != "" {
			update.Selection = *message.Selection
			update.PossibleMoves, err = s.referee.MovesForSelection(*message.Selection)
		}
	} else if message.Move != nil {
		err = s.referee.PerformMoveFromSquares(message.Move.Start, message.Move.End, message.Move.Promotion)
	} else if message.Rewind != nil {
		err = s.referee.Rewind(*message.Rewind)
	}

	if !IsNil(err) {
		s.logger.Println(message, err.Message())
		update.Error = err.Message()
	}

	update.FenString = s.referee.FenString()
	update.Player = s.referee.Player().String()
	if lastMove := s.referee.LastMove(); lastMove.HasValue() {
		update.LastMove = lastMove.Value().String()
	}
	if status, err := s.referee.Status(); IsNil(err) {
		update.Status = status.String()
	} else {
		update.Status = "invalid"
	}
	return update
}

func (s *Server) ws(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Println("upgrade:", err)
		return
	}
	defer c.Close()

	var send = func(v any) {
		bytes, err := json.Marshal(v)
		if err != nil {
			s.logger.Println("websocket: json marshal:", err)
			return
		}
		err = c.WriteMessage(websocket.TextMessage, bytes)
		if err != nil {
			s.logger.Println("websocket:", err)
		}
	}

	// Log lines are forwarded to the browser as a one element array, the
	// same channel the board updates use.
	logger := FuncLogger(func(message string) {
		s.logger.Print("session: ", message)
		send([]string{message})
	})

	ref, rerr := referee.NewReferee(referee.WithLogger(logger))
	if !IsNil(rerr) {
		s.logger.Println("referee:", rerr.Message())
		return
	}

	sess := &session{logger: logger, referee: ref, send: send}
	sess.send(sess.handle(MessageFromWeb{}))

	for {
		_, bytes, err := c.ReadMessage()
		if err != nil {
			s.logger.Printf("websocket closed: %v", err)
			break
		}

		var message MessageFromWeb
		if err := json.Unmarshal(bytes, &message); err != nil {
			logger.Println("json unmarshal:", err)
			continue
		}
		sess.send(sess.handle(message))
	}
}
