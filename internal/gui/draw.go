package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lk16/reversi/internal/othello"
)

const (
	BoardWidthPx  = 600
	BoardHeightPx = 600

	StatusBarHeightPx = 70
	WindowWidthPx     = BoardWidthPx
	WindowHeightPx    = BoardHeightPx + StatusBarHeightPx

	SquareSize          = BoardWidthPx / othello.MaxX
	DiscRadius          = SquareSize/2 - 5
	MoveIndicatorRadius = SquareSize / 8
	LastMoveRadius      = SquareSize / 10

	ButtonWidthPx  = 300
	ButtonHeightPx = 60
	ButtonGapPx    = 20
	ButtonsTopPx   = 220

	statusFontSize = 20
	buttonFontSize = 24
	titleFontSize  = 48
)

// squareAt converts window coordinates into a board square.
func squareAt(x, y int) (othello.Position, bool) {
	if x < 0 || y < 0 {
		return othello.Position{}, false
	}

	pos := othello.Position{Col: x / SquareSize, Row: y / SquareSize}
	return pos, pos.Valid()
}

// buttonRect returns the area of the i-th menu button.
func buttonRect(i int) rl.Rectangle {
	x := (WindowWidthPx - ButtonWidthPx) / 2
	y := ButtonsTopPx + i*(ButtonHeightPx+ButtonGapPx)
	return rl.NewRectangle(float32(x), float32(y), ButtonWidthPx, ButtonHeightPx)
}

type windowDrawer struct {
	controller *Controller
}

func newWindowDrawer(controller *Controller) *windowDrawer {
	return &windowDrawer{controller: controller}
}

func (w *windowDrawer) playerToColor(player othello.Player) rl.Color {
	switch player {
	case othello.White:
		return rl.White
	case othello.Black:
		return rl.Black
	default:
		panic("invalid player")
	}
}

func (w *windowDrawer) draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	backgroundColor := rl.NewColor(0, 128, 0, 255)
	rl.ClearBackground(backgroundColor)

	if w.controller.screen != screenGame {
		w.drawMenu()
		return
	}

	args := w.controller.GetDrawArgs()
	w.drawGrid()

	for _, square := range othello.AllPositions() {
		switch args.Board.Get(square) {
		case othello.WhiteDisc:
			w.drawDisc(square, w.playerToColor(othello.White))
		case othello.BlackDisc:
			w.drawDisc(square, w.playerToColor(othello.Black))
		}
	}

	for _, move := range args.LegalMoves {
		w.drawMoveIndicator(move, w.playerToColor(args.Turn))
	}

	if args.LastMove != nil {
		w.drawLastMoveIndicator(*args.LastMove)
	}

	w.drawStatusBar(args)
}

func (w *windowDrawer) drawGrid() {
	lineColor := rl.NewColor(0, 80, 0, 255)
	for i := 1; i < othello.MaxX; i++ {
		offset := int32(i * SquareSize) //nolint:gosec
		rl.DrawLine(offset, 0, offset, BoardHeightPx, lineColor)
		rl.DrawLine(0, offset, BoardWidthPx, offset, lineColor)
	}
}

func (w *windowDrawer) getSquareCenter(pos othello.Position) (int32, int32) {
	x := pos.Col*SquareSize + SquareSize/2
	y := pos.Row*SquareSize + SquareSize/2

	return int32(x), int32(y) //nolint:gosec
}

func (w *windowDrawer) drawDisc(pos othello.Position, color rl.Color) {
	centerX, centerY := w.getSquareCenter(pos)
	rl.DrawCircle(centerX, centerY, DiscRadius, color)
}

func (w *windowDrawer) drawMoveIndicator(pos othello.Position, color rl.Color) {
	centerX, centerY := w.getSquareCenter(pos)
	rl.DrawCircle(centerX, centerY, MoveIndicatorRadius, rl.Fade(color, 0.6))
}

func (w *windowDrawer) drawLastMoveIndicator(pos othello.Position) {
	centerX, centerY := w.getSquareCenter(pos)
	rl.DrawCircle(centerX, centerY, LastMoveRadius, rl.Red)
}

func (w *windowDrawer) drawStatusBar(args *DrawArgs) {
	rl.DrawRectangle(0, BoardHeightPx, WindowWidthPx, StatusBarHeightPx, rl.DarkGray)

	rl.DrawText(args.Status, 10, BoardHeightPx+10, statusFontSize, rl.RayWhite)

	if args.Notice != "" {
		rl.DrawText(args.Notice, 10, BoardHeightPx+10+statusFontSize+8, statusFontSize, rl.Yellow)
	}
}

func (w *windowDrawer) drawMenu() {
	title := "Reversi"
	if w.controller.screen == screenQuitConfirm {
		title = "Quit?"
	}

	titleWidth := rl.MeasureText(title, titleFontSize)
	rl.DrawText(title, (WindowWidthPx-titleWidth)/2, 100, titleFontSize, rl.RayWhite)

	mouse := rl.GetMousePosition()

	for i, b := range w.controller.menuButtons() {
		rect := buttonRect(i)

		color := rl.DarkGray
		if rl.CheckCollisionPointRec(mouse, rect) {
			color = rl.Gray
		}

		rl.DrawRectangleRec(rect, color)
		rl.DrawRectangleLinesEx(rect, 2, rl.RayWhite)

		textWidth := rl.MeasureText(b.label, buttonFontSize)
		textX := int32(rect.X) + (int32(rect.Width)-textWidth)/2
		textY := int32(rect.Y) + (int32(rect.Height)-buttonFontSize)/2
		rl.DrawText(b.label, textX, textY, buttonFontSize, rl.RayWhite)
	}
}
