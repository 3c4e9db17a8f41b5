package tui

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/othello"
)

const (
	pageMenu        = "menu"
	pageGame        = "game"
	pageQuitConfirm = "quit"
)

// App is the terminal client: a start menu, a quit confirmation and the board.
type App struct {
	app    *tview.Application
	pages  *tview.Pages
	menu   *tview.List
	board  *BoardView
	cfg    *config.TUIConfig
	start  othello.Board
	toMove othello.Player
	opts   []othello.SessionOption
}

// NewApp builds the pages of the client. Games start at start with toMove on move.
func NewApp(cfg *config.TUIConfig, start othello.Board, toMove othello.Player, opts ...othello.SessionOption) *App {
	a := &App{
		app:    tview.NewApplication(),
		pages:  tview.NewPages(),
		cfg:    cfg,
		start:  start,
		toMove: toMove,
		opts:   opts,
	}
	a.pages.SetBorder(true).SetTitle(" ● reversi ")

	status := tview.NewTextView()
	status.SetBorder(true)
	status.SetTitle(" Status ")
	status.SetTitleAlign(tview.AlignLeft)

	a.board = NewBoardView(cfg, status)
	a.board.Box.SetInputCapture(a.handleGameKey)

	gameFrame := tview.NewFlex().
		AddItem(a.board.Box, boardLeft+othello.MaxX*cellWidth+2, 0, true).
		AddItem(status, 0, 1, false)

	a.menu = tview.NewList().
		AddItem("Player vs Player", "Two players take turns at this terminal", '1', func() {
			a.StartGame(othello.PlayerVsPlayer)
		}).
		AddItem("Player vs Computer", "Play Black against the computer", '2', func() {
			a.StartGame(othello.PlayerVsComputer)
		}).
		AddItem("Quit", "", 'q', a.confirmQuit)
	a.menu.SetBorder(true).SetTitle(" New game ")

	if cfg.Game.Mode == othello.PlayerVsComputer {
		a.menu.SetCurrentItem(1)
	}

	quitModal := tview.NewModal().
		SetText("Do you really want to quit?").
		AddButtons([]string{"Quit", "Cancel"}).
		SetDoneFunc(func(buttonIndex int, _ string) {
			if buttonIndex == 0 {
				a.app.Stop()
				return
			}
			a.pages.HidePage(pageQuitConfirm)
			a.pages.SwitchToPage(pageMenu)
		})

	a.pages.AddPage(pageMenu, a.menu, true, true)
	a.pages.AddPage(pageGame, gameFrame, true, false)
	a.pages.AddPage(pageQuitConfirm, quitModal, true, false)

	return a
}

// StartGame starts a new game and shows the board.
func (a *App) StartGame(mode othello.GameMode) {
	opts := append([]othello.SessionOption{othello.WithDifficulty(a.cfg.Game.Difficulty)}, a.opts...)
	game := othello.NewSessionFromBoard(mode, a.start, a.toMove, opts...)

	a.board.SetGame(game)
	a.cfg.Game.Mode = mode

	// The computer opens when the game starts with White on move.
	a.board.playComputerTurns()

	slog.Info("Starting game", "mode", mode, "board", a.start.String(), "turn", a.toMove)

	a.pages.SwitchToPage(pageGame)
}

// Config returns the configuration, including the mode of the last game.
func (a *App) Config() *config.TUIConfig {
	return a.cfg
}

func (a *App) confirmQuit() {
	a.pages.ShowPage(pageQuitConfirm)
}

// CurrentPage returns the name of the page in front.
func (a *App) CurrentPage() string {
	name, _ := a.pages.GetFrontPage()
	return name
}

func (a *App) handleGameKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		a.board.MoveSelection(0, -1)
	case tcell.KeyDown:
		a.board.MoveSelection(0, 1)
	case tcell.KeyLeft:
		a.board.MoveSelection(-1, 0)
	case tcell.KeyRight:
		a.board.MoveSelection(1, 0)
	case tcell.KeyEnter:
		a.board.PlayMove()
	case tcell.KeyEsc:
		a.pages.SwitchToPage(pageMenu)
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			a.board.MoveSelection(-1, 0)
		case 'j':
			a.board.MoveSelection(0, 1)
		case 'k':
			a.board.MoveSelection(0, -1)
		case 'l':
			a.board.MoveSelection(1, 0)
		case 'n':
			a.StartGame(a.board.Game().Mode())
		case 'q':
			a.pages.SwitchToPage(pageMenu)
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

// Run shows the client until the user quits.
func (a *App) Run() error {
	return a.app.SetRoot(a.pages, true).Run()
}
