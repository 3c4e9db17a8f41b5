package models

import (
	"errors"
	"fmt"

	"github.com/lk16/reversi/internal/othello"
)

// CreateSessionRequest represents the payload for starting a new session.
type CreateSessionRequest struct {
	Mode       othello.GameMode   `json:"mode"`
	Difficulty othello.Difficulty `json:"difficulty"`
	Seed       int64              `json:"seed"`
}

// MoveRequest represents the payload for a move, e.g. {"move": "c4"}.
type MoveRequest struct {
	Move string `json:"move"`
}

// Validate parses the move field.
func (r MoveRequest) Validate() (othello.Position, error) {
	if r.Move == "" {
		return othello.Position{}, errors.New("move field is either empty or missing")
	}

	pos, err := othello.ParsePosition(r.Move)
	if err != nil {
		return othello.Position{}, fmt.Errorf("invalid move: %w", err)
	}

	return pos, nil
}

// Score represents the disc counts.
type Score struct {
	Black int    `json:"black"`
	White int    `json:"white"`
	Text  string `json:"text"`
}

// GameState is the read-only view of a session sent to clients.
type GameState struct {
	Board         string           `json:"board"`
	Rows          []string         `json:"rows"`
	CurrentPlayer string           `json:"current_player"`
	Mode          othello.GameMode `json:"mode"`
	Difficulty    string           `json:"difficulty"`
	Status        string           `json:"status"`
	LastMove      *string          `json:"last_move"`
	LegalMoves    []string         `json:"legal_moves"`
	Score         Score            `json:"score"`
	Winner        *string          `json:"winner"`
}

// NewGameState builds the view of a controller.
func NewGameState(c *othello.Controller) GameState {
	board := c.Snapshot()
	black, white := board.CountDiscs()

	state := GameState{
		Board:         board.String(),
		Rows:          board.Rows(),
		CurrentPlayer: c.CurrentPlayer().String(),
		Mode:          c.Mode(),
		Difficulty:    c.Difficulty().String(),
		Status:        c.Status().String(),
		LegalMoves:    make([]string, 0),
		Score: Score{
			Black: black,
			White: white,
			Text:  c.ScoreText(),
		},
	}

	if last, ok := c.LastMove(); ok {
		field := last.String()
		state.LastMove = &field
	}

	if c.Status() == othello.InProgress {
		for _, move := range c.LegalMovesFor(c.CurrentPlayer()) {
			state.LegalMoves = append(state.LegalMoves, move.String())
		}
	}

	if winner, ok := c.Winner(); ok {
		name := winner.String()
		state.Winner = &name
	}

	return state
}

// SessionResponse represents the response for session creation and lookup.
type SessionResponse struct {
	ID    string    `json:"id"`
	State GameState `json:"state"`
}

// MoveResponse represents the response for a move.
type MoveResponse struct {
	Outcome string    `json:"outcome"`
	State   GameState `json:"state"`
}
