package othello

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MaxX = 8
	MaxY = 8
)

var (
	// ErrOutOfRange is wrapped by panics when a position outside the board is addressed.
	ErrOutOfRange = errors.New("position out of range")

	// ErrIllegalMove is wrapped by panics when a move that was not validated is applied.
	ErrIllegalMove = errors.New("illegal move")
)

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	BlackDisc
	WhiteDisc
)

func (c Cell) String() string {
	switch c {
	case BlackDisc:
		return "B"
	case WhiteDisc:
		return "W"
	default:
		return "."
	}
}

// Player is one of the two sides. Black moves first.
type Player uint8

const (
	Black Player = Player(BlackDisc)
	White Player = Player(WhiteDisc)
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Black {
		return White
	}
	return Black
}

// Disc returns the cell value for a disc of this player.
func (p Player) Disc() Cell {
	return Cell(p)
}

func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// ParsePlayer parses "black", "b", "white" or "w".
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(s) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return Black, fmt.Errorf("invalid player: %q", s)
	}
}

// Position is a square on the board.
type Position struct {
	Col int
	Row int
}

// Valid checks that both coordinates are inside the board.
func (p Position) Valid() bool {
	return p.Col >= 0 && p.Col < MaxX && p.Row >= 0 && p.Row < MaxY
}

func (p Position) index() int {
	return p.Row*MaxX + p.Col
}

func positionFromIndex(index int) Position {
	return Position{Col: index % MaxX, Row: index / MaxX}
}

// AllPositions returns every square of the board in row-major order.
func AllPositions() []Position {
	positions := make([]Position, 0, MaxX*MaxY)
	for index := range MaxX * MaxY {
		positions = append(positions, positionFromIndex(index))
	}
	return positions
}

// String returns field notation, e.g. "c4" for column 2, row 3.
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
	}
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

// ParsePosition converts field notation (e.g. "a1", "H8") to a Position.
func ParsePosition(field string) (Position, error) {
	if len(field) != 2 {
		return Position{}, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Position{}, fmt.Errorf("invalid field: %q", field)
	}

	return Position{Col: int(field[0] - 'a'), Row: int(field[1] - '1')}, nil
}

// GameMode decides whether White is played by a human or the computer.
type GameMode uint8

const (
	PlayerVsPlayer GameMode = iota
	PlayerVsComputer
)

func (m GameMode) String() string {
	if m == PlayerVsComputer {
		return "pve"
	}
	return "pvp"
}

// ParseGameMode parses "pvp" or "pve".
func ParseGameMode(s string) (GameMode, error) {
	switch strings.ToLower(s) {
	case "pvp":
		return PlayerVsPlayer, nil
	case "pve":
		return PlayerVsComputer, nil
	default:
		return PlayerVsPlayer, fmt.Errorf("invalid game mode: %q", s)
	}
}

func (m GameMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *GameMode) UnmarshalText(text []byte) error {
	mode, err := ParseGameMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// GameStatus is derived from the board after every move.
type GameStatus uint8

const (
	InProgress GameStatus = iota
	Over
)

func (s GameStatus) String() string {
	if s == Over {
		return "over"
	}
	return "in_progress"
}

// MoveOutcome is the result of a move attempt.
type MoveOutcome uint8

const (
	Rejected MoveOutcome = iota
	Applied
	AppliedThenOpponentSkipped
	GameOver
)

func (o MoveOutcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case AppliedThenOpponentSkipped:
		return "opponent_skipped"
	case GameOver:
		return "game_over"
	default:
		return "rejected"
	}
}

// Changed reports whether the board was modified.
func (o MoveOutcome) Changed() bool {
	return o != Rejected
}
