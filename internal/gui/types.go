package gui

import "github.com/lk16/reversi/internal/othello"

// screen is the view shown in the window.
type screen int

const (
	screenMenu screen = iota
	screenQuitConfirm
	screenGame
)

// DrawArgs contains arguments for drawing the window content.
type DrawArgs struct {
	// Board is the current board state
	Board othello.Board

	// Turn is the player on move
	Turn othello.Player

	// LegalMoves are the squares highlighted for the player on move
	LegalMoves []othello.Position

	// LastMove is the most recently placed disc, nil before the first move
	LastMove *othello.Position

	// Status is shown below the board, e.g. "Black: 2, White: 2 | Black to move"
	Status string

	// Notice announces passes, rejected moves and the end of the game
	Notice string
}

// button is a clickable menu entry.
type button struct {
	label  string
	action func()
}
