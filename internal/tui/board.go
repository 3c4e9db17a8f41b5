// Package tui is a terminal client for playing Reversi, built on tview.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/othello"
)

const (
	// boardLeft is the width of the row labels left of the board.
	boardLeft = 3

	// cellWidth is 2 characters per cell for square appearance.
	cellWidth = 2
)

type BoardView struct {
	Box     *tview.Box
	game    *othello.Controller
	status  *tview.TextView
	cfg     *config.TUIConfig
	styles  boardStyles
	selX    int
	selY    int
	notices []string
}

type boardStyles struct {
	board      tcell.Color
	line       tcell.Color
	black      tcell.Color
	white      tcell.Color
	hint       tcell.Color
	cursor     tcell.Color
	lastPlayed tcell.Color
}

// NewBoardView creates the board widget. Status lines are written to status.
func NewBoardView(cfg *config.TUIConfig, status *tview.TextView) *BoardView {
	board := &BoardView{
		Box:    tview.NewBox(),
		status: status,
		selX:   3,
		selY:   3,
	}
	board.SetConfig(cfg)
	board.Box.SetDrawFunc(board.draw)
	return board
}

func (b *BoardView) SetConfig(cfg *config.TUIConfig) {
	colors := cfg.Theme.Colors
	b.styles = boardStyles{
		board:      tcell.PaletteColor(colors.BoardColor),
		line:       tcell.PaletteColor(colors.LineColor),
		black:      tcell.PaletteColor(colors.BlackColor),
		white:      tcell.PaletteColor(colors.WhiteColor),
		hint:       tcell.PaletteColor(colors.HintColor),
		cursor:     tcell.PaletteColor(colors.CursorColorBG),
		lastPlayed: tcell.PaletteColor(colors.LastPlayedColor),
	}
	b.cfg = cfg
}

// SetGame replaces the game shown on the board.
func (b *BoardView) SetGame(game *othello.Controller) {
	b.game = game
	b.notices = nil
	b.selX, b.selY = 3, 3
	b.refreshStatus()
}

// Game returns the game shown on the board, nil before the first game.
func (b *BoardView) Game() *othello.Controller {
	return b.game
}

// Selection returns the square under the cursor.
func (b *BoardView) Selection() othello.Position {
	return othello.Position{Col: b.selX, Row: b.selY}
}

// MoveSelection moves the cursor, staying on the board.
func (b *BoardView) MoveSelection(h, v int) {
	pos := othello.Position{Col: b.selX + h, Row: b.selY + v}
	if !pos.Valid() {
		return
	}
	b.selX, b.selY = pos.Col, pos.Row
}

// PlayMove plays the square under the cursor. When the computer is left on
// move because the human has to pass, it keeps moving until the human can play
// or the game ends.
func (b *BoardView) PlayMove() {
	if b.game == nil {
		return
	}

	b.notices = b.notices[:0]
	b.addNotice(b.game.AttemptMove(b.Selection()))
	b.playComputerTurns()
}

// playComputerTurns lets the computer move for as long as it is on move.
func (b *BoardView) playComputerTurns() {
	for b.isComputerTurn() {
		b.addNotice(b.game.PlayComputerMove())
	}
	b.refreshStatus()
}

func (b *BoardView) addNotice(outcome othello.MoveOutcome) {
	if text := b.game.OutcomeText(outcome); text != "" {
		b.notices = append(b.notices, text)
	}
}

func (b *BoardView) isComputerTurn() bool {
	return b.game.Mode() == othello.PlayerVsComputer &&
		b.game.Status() == othello.InProgress &&
		b.game.CurrentPlayer() == othello.ComputerPlayer
}

func (b *BoardView) refreshStatus() {
	if b.status == nil || b.game == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "  %s\n  %s\n", b.game.ScoreText(), b.game.StatusText())

	if len(b.notices) > 0 {
		fmt.Fprintf(&sb, "\n  %s\n", strings.Join(b.notices, "\n  "))
	}

	if b.game.Status() == othello.Over {
		sb.WriteString("\n  n · new game   q · menu")
	} else {
		sb.WriteString("\n  hjkl/↑↓←→ move   ⏎ play\n  n · new game   q · menu")
	}

	b.status.SetText(sb.String())
}

func (b *BoardView) draw(screen tcell.Screen, x, y, _, _ int) (int, int, int, int) {
	if b.game == nil {
		return x, y, 1, 1
	}

	board := b.game.Snapshot()
	lastMove, hasLastMove := b.game.LastMove()

	hints := make(map[othello.Position]bool)
	if b.cfg.Theme.ShowHints && b.game.Status() == othello.InProgress && !b.isComputerTurn() {
		for _, move := range b.game.LegalMovesFor(b.game.CurrentPlayer()) {
			hints[move] = true
		}
	}

	symbols := b.cfg.Theme.Symbols

	for _, pos := range othello.AllPositions() {
		style := tcell.StyleDefault.Background(b.styles.board)
		drawRune := symbols.Empty

		switch board.Get(pos) {
		case othello.BlackDisc:
			drawRune = symbols.BlackDisc
			style = style.Foreground(b.styles.black)
		case othello.WhiteDisc:
			drawRune = symbols.WhiteDisc
			style = style.Foreground(b.styles.white)
		default:
			style = style.Foreground(b.styles.line)
			if hints[pos] {
				drawRune = symbols.Hint
				style = style.Foreground(b.styles.hint)
			}
		}

		if pos == b.Selection() {
			style = style.Background(b.styles.cursor)
		} else if hasLastMove && pos == lastMove {
			style = style.Background(b.styles.lastPlayed)
		}

		left := x + boardLeft + pos.Col*cellWidth
		screen.SetContent(left, y+pos.Row, drawRune, nil, style)
		screen.SetContent(left+1, y+pos.Row, ' ', nil, style)
	}

	b.drawCoordinates(screen, x, y)

	return x, y, boardLeft + othello.MaxX*cellWidth, othello.MaxY + 1
}

func (b *BoardView) drawCoordinates(screen tcell.Screen, x, y int) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(b.styles.cursor)

	for col := range othello.MaxX {
		colStyle := style
		if col == b.selX {
			colStyle = highlight
		}
		left := x + boardLeft + col*cellWidth
		screen.SetContent(left, y+othello.MaxY, rune('a'+col), nil, colStyle)
	}

	for row := range othello.MaxY {
		rowStyle := style
		if row == b.selY {
			rowStyle = highlight
		}
		screen.SetContent(x+1, y+row, rune('1'+row), nil, rowStyle)
	}
}
