package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cricklet/chessrules/internal/game"
	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/cricklet/chessrules/internal/rules"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

type MoveRequest struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Promotion string `json:"promotion,omitempty"`
}

type ValidateRequest struct {
	Fen  string      `json:"fen"`
	Move MoveRequest `json:"move"`
}

type ValidateResponse struct {
	Legal    bool   `json:"legal"`
	MoveType string `json:"moveType,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Fen      string `json:"fen,omitempty"`
}

type StatusRequest struct {
	Fen string `json:"fen"`
}

type StatusResponse struct {
	Player  string `json:"player"`
	Status  string `json:"status"`
	InCheck bool   `json:"inCheck"`
}

type MovesResponse struct {
	Square string   `json:"square"`
	Moves  []string `json:"moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Server struct {
	logger   Logger
	upgrader websocket.Upgrader
}

type ServerOption func(*Server)

func WithLogger(logger Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

func NewServer(options ...ServerOption) *Server {
	s := &Server{}
	for _, o := range options {
		o(s)
	}
	if s.logger == nil {
		s.logger = &DefaultLogger
	}
	return s
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/validate", s.validate).Methods(http.MethodPost)
	router.HandleFunc("/status", s.status).Methods(http.MethodPost)
	router.HandleFunc("/moves", s.moves).Methods(http.MethodGet).Queries("fen", "{fen}", "square", "{square}")
	router.HandleFunc("/ws", s.ws)
	return router
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		s.logger.Println("writeJSON:", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, format string, args ...any) {
	s.writeJSON(w, code, errorResponse{Error: fmt.Sprintf(format, args...)})
}

func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	var request ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeError(w, http.StatusBadRequest, "request: %v", err)
		return
	}

	g, err := game.GamestateFromFenString(request.Fen)
	if !IsNil(err) {
		s.writeError(w, http.StatusBadRequest, "fen: %v", err.Message())
		return
	}
	move, err := MoveFromSquares(request.Move.Start, request.Move.End, request.Move.Promotion)
	if !IsNil(err) {
		s.writeError(w, http.StatusBadRequest, "move: %v", err.Message())
		return
	}

	update := game.BoardUpdate{}
	err = g.PerformMove(move, &update)
	if !IsNil(err) {
		s.writeJSON(w, http.StatusOK, ValidateResponse{Legal: false, Reason: err.Message()})
		return
	}

	s.writeJSON(w, http.StatusOK, ValidateResponse{
		Legal:    true,
		MoveType: update.MoveType.String(),
		Fen:      game.FenStringForGame(g),
	})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	var request StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeError(w, http.StatusBadRequest, "request: %v", err)
		return
	}

	g, err := game.GamestateFromFenString(request.Fen)
	if !IsNil(err) {
		s.writeError(w, http.StatusBadRequest, "fen: %v", err.Message())
		return
	}

	status, err := g.Status()
	if !IsNil(err) {
		s.writeError(w, http.StatusUnprocessableEntity, "%v", err.Message())
		return
	}

	s.writeJSON(w, http.StatusOK, StatusResponse{
		Player:  g.Player.String(),
		Status:  status.String(),
		InCheck: status == rules.Check || status == rules.Checkmate,
	})
}

func (s *Server) moves(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	g, err := game.GamestateFromFenString(vars["fen"])
	if !IsNil(err) {
		s.writeError(w, http.StatusBadRequest, "fen: %v", err.Message())
		return
	}
	square, err := SquareFromString(vars["square"])
	if !IsNil(err) {
		s.writeError(w, http.StatusBadRequest, "square: %v", err.Message())
		return
	}

	moves, err := g.LegalMovesFrom(square)
	if !IsNil(err) {
		s.writeError(w, http.StatusUnprocessableEntity, "%v", err.Message())
		return
	}

	s.writeJSON(w, http.StatusOK, MovesResponse{
		Square: square.String(),
		Moves:  MapSlice(moves, Move.String),
	})
}

