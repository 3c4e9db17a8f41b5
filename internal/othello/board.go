package othello

import (
	"fmt"
	"strconv"
	"strings"
)

// Board holds the 64 squares of an Othello board. The zero value is an empty board.
type Board struct {
	cells [MaxX * MaxY]Cell
}

// NewBoardStart creates a board with the starting position.
func NewBoardStart() Board {
	var b Board
	b.Reset()
	return b
}

// NewBoardEmpty creates a board without any discs.
func NewBoardEmpty() Board {
	return Board{}
}

// ParseBoard creates a board from the string returned by Board.String.
func ParseBoard(s string) (Board, error) {
	if len(s) != 32 {
		return Board{}, fmt.Errorf("board string must be 32 characters long, got %d", len(s))
	}

	black, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid black discs: %w", err)
	}

	white, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid white discs: %w", err)
	}

	if black&white != 0 {
		return Board{}, fmt.Errorf("invalid board: black and white discs cannot overlap")
	}

	var b Board
	for i := range b.cells {
		mask := uint64(1) << i
		switch {
		case black&mask != 0:
			b.cells[i] = BlackDisc
		case white&mask != 0:
			b.cells[i] = WhiteDisc
		}
	}

	return b, nil
}

// ParseStart parses a board string followed by "-b" or "-w" for the player to move.
func ParseStart(s string) (Board, Player, error) {
	if len(s) != 34 {
		return Board{}, Black, fmt.Errorf("start string must be 34 characters long, got %d", len(s))
	}

	board, err := ParseBoard(s[:32])
	if err != nil {
		return Board{}, Black, err
	}

	var turn Player
	switch s[32:] {
	case "-b":
		turn = Black
	case "-w":
		turn = White
	default:
		return Board{}, Black, fmt.Errorf("invalid turn: %s", s[32:])
	}

	return board, turn, nil
}

func mustValid(pos Position) {
	if !pos.Valid() {
		panic(fmt.Errorf("%w: %s", ErrOutOfRange, pos))
	}
}

// Get returns the content of a square. It panics on positions outside the board.
func (b Board) Get(pos Position) Cell {
	mustValid(pos)
	return b.cells[pos.index()]
}

// Set writes a square without any legality checking.
func (b *Board) Set(pos Position, cell Cell) {
	mustValid(pos)
	b.cells[pos.index()] = cell
}

// Reset clears the board and places the four starting discs.
func (b *Board) Reset() {
	b.cells = [MaxX * MaxY]Cell{}
	b.Set(Position{Col: 3, Row: 3}, WhiteDisc)
	b.Set(Position{Col: 4, Row: 4}, WhiteDisc)
	b.Set(Position{Col: 3, Row: 4}, BlackDisc)
	b.Set(Position{Col: 4, Row: 3}, BlackDisc)
}

// CountDiscs returns the number of black and white discs.
func (b Board) CountDiscs() (black, white int) {
	for _, cell := range b.cells {
		switch cell {
		case BlackDisc:
			black++
		case WhiteDisc:
			white++
		}
	}
	return black, white
}

// CountOccupied returns the number of non-empty squares.
func (b Board) CountOccupied() int {
	black, white := b.CountDiscs()
	return black + white
}

// Rows returns one string per row using ".", "B" and "W".
func (b Board) Rows() []string {
	rows := make([]string, MaxY)
	for y := range MaxY {
		var sb strings.Builder
		for x := range MaxX {
			sb.WriteString(b.cells[y*MaxX+x].String())
		}
		rows[y] = sb.String()
	}
	return rows
}

// ASCIIArtLines returns the ascii art lines for the board. Squares in hints get a dot.
func (b Board) ASCIIArtLines(hints []Position) []string {
	hinted := make(map[Position]bool, len(hints))
	for _, pos := range hints {
		hinted[pos] = true
	}

	lines := make([]string, MaxY+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for y := range MaxY {
		line := fmt.Sprintf("%d ", y+1)

		for x := range MaxX {
			pos := Position{Col: x, Row: y}

			switch {
			case b.cells[pos.index()] == WhiteDisc:
				line += "○ "
			case b.cells[pos.index()] == BlackDisc:
				line += "● "
			case hinted[pos]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[y+1] = line + "|"
	}

	lines[MaxY+1] = "+-----------------+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print(hints []Position) {
	for _, line := range b.ASCIIArtLines(hints) {
		fmt.Println(line)
	}
}

// String returns the black and white bitmasks in hex.
func (b Board) String() string {
	var black, white uint64
	for i, cell := range b.cells {
		switch cell {
		case BlackDisc:
			black |= uint64(1) << i
		case WhiteDisc:
			white |= uint64(1) << i
		}
	}

	return fmt.Sprintf("%016x%016x", black, white)
}
