package gui

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lk16/reversi/internal/othello"
)

// computerDelay is how long the computer waits before moving on its own.
const computerDelay = 500 * time.Millisecond

type Controller struct {
	// session is the running game, nil while the menu is shown before the first game
	session *othello.Controller

	// start and toMove are the position every new game from the menu starts from
	start  othello.Board
	toMove othello.Player

	// opts configure the computer opponent of new games
	opts []othello.SessionOption

	// screen is the view currently shown
	screen screen

	// notice is the last announcement shown below the board
	notice string

	// lastChange is when the board last changed, used to pace the computer
	lastChange time.Time

	// quit is set once the user confirmed quitting
	quit bool
}

// NewWindow creates a window that opens on the start menu. Games started from
// the menu begin at start with toMove on move.
func NewWindow(start othello.Board, toMove othello.Player, opts ...othello.SessionOption) *Controller {
	return &Controller{
		start:  start,
		toMove: toMove,
		opts:   opts,
		screen: screenMenu,
	}
}

func (c *Controller) Run() {
	rl.SetTraceLogLevel(rl.LogError)

	rl.InitWindow(WindowWidthPx, WindowHeightPx, "Reversi")
	defer rl.CloseWindow()

	// Escape returns to the menu instead of closing the window.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	windowDrawer := newWindowDrawer(c)

	for !c.quit && !rl.WindowShouldClose() {
		c.handleEvents()
		c.playComputerIfOnMove(time.Now())
		windowDrawer.draw()
	}
}

// NewGame starts a game in the given mode from the configured start position.
func (c *Controller) NewGame(mode othello.GameMode) {
	c.session = othello.NewSessionFromBoard(mode, c.start, c.toMove, c.opts...)
	c.screen = screenGame
	c.notice = ""
	c.lastChange = time.Now()

	slog.Info("Starting game", "mode", mode, "board", c.start.String(), "turn", c.toMove)
}

func (c *Controller) menuButtons() []button {
	switch c.screen {
	case screenMenu:
		return []button{
			{label: "Player vs Player", action: func() { c.NewGame(othello.PlayerVsPlayer) }},
			{label: "Player vs Computer", action: func() { c.NewGame(othello.PlayerVsComputer) }},
			{label: "Quit", action: func() { c.screen = screenQuitConfirm }},
		}
	case screenQuitConfirm:
		return []button{
			{label: "Yes, quit", action: func() { c.quit = true }},
			{label: "No", action: func() { c.screen = screenMenu }},
		}
	default:
		return nil
	}
}

func (c *Controller) handleEvents() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		mousePos := rl.GetMousePosition()
		c.OnClick(int(mousePos.X), int(mousePos.Y))
	}

	for {
		key := rl.GetKeyPressed()
		if key == rl.KeyNull {
			break
		}

		c.OnKeyPress(key)
	}
}

// OnClick handles a left click at window coordinates x, y.
func (c *Controller) OnClick(x, y int) {
	if c.screen != screenGame {
		for i, b := range c.menuButtons() {
			if rl.CheckCollisionPointRec(rl.NewVector2(float32(x), float32(y)), buttonRect(i)) {
				b.action()
				return
			}
		}
		return
	}

	pos, ok := squareAt(x, y)
	if !ok {
		return
	}

	c.OnMove(pos)
}

// OnMove attempts a move for the player on move.
func (c *Controller) OnMove(pos othello.Position) {
	if c.isComputerTurn() {
		return
	}

	outcome := c.session.AttemptMove(pos)
	c.onOutcome(outcome)
}

func (c *Controller) onOutcome(outcome othello.MoveOutcome) {
	c.notice = c.session.OutcomeText(outcome)
	if outcome.Changed() {
		c.lastChange = time.Now()
	}
}

func (c *Controller) isComputerTurn() bool {
	return c.session.Mode() == othello.PlayerVsComputer &&
		c.session.Status() == othello.InProgress &&
		c.session.CurrentPlayer() == othello.ComputerPlayer
}

// playComputerIfOnMove lets the computer move when the human has no legal move
// or when a game starts with the computer on move.
func (c *Controller) playComputerIfOnMove(now time.Time) {
	if c.screen != screenGame || !c.isComputerTurn() {
		return
	}

	if now.Sub(c.lastChange) < computerDelay {
		return
	}

	c.onOutcome(c.session.PlayComputerMove())
}

func (c *Controller) OnKeyPress(key int32) {
	if c.screen != screenGame {
		if key == rl.KeyEscape && c.screen == screenQuitConfirm {
			c.screen = screenMenu
		}
		return
	}

	switch key {
	// Print current board.
	case rl.KeyD:
		board := c.session.Snapshot()
		slog.Info("Current board", "board", board.String(), "turn", c.session.CurrentPlayer())
		board.Print(c.session.LegalMovesFor(c.session.CurrentPlayer()))

	// Restart game
	case rl.KeyN:
		c.NewGame(c.session.Mode())

	// Back to the menu
	case rl.KeyEscape:
		c.screen = screenMenu
	}
}

func (c *Controller) GetDrawArgs() *DrawArgs {
	args := &DrawArgs{
		Board:      c.session.Snapshot(),
		Turn:       c.session.CurrentPlayer(),
		LegalMoves: []othello.Position{},
		Status:     c.session.ScoreText() + " | " + c.session.StatusText(),
		Notice:     c.notice,
	}

	if c.session.Status() == othello.InProgress && !c.isComputerTurn() {
		args.LegalMoves = c.session.LegalMovesFor(args.Turn)
	}

	if last, ok := c.session.LastMove(); ok {
		args.LastMove = &last
	}

	return args
}
