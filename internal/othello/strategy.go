package othello

import (
	"fmt"
	"math/rand"
	"strings"
)

// MoveSelector picks the computer's move from a non-empty list of legal moves.
type MoveSelector interface {
	SelectMove(moves []Position, board Board, player Player) Position
}

// RandomSelector picks a legal move uniformly at random.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a RandomSelector drawing from rng.
func NewRandomSelector(rng *rand.Rand) *RandomSelector {
	return &RandomSelector{rng: rng}
}

// SelectMove implements MoveSelector.
func (s *RandomSelector) SelectMove(moves []Position, _ Board, _ Player) Position {
	return moves[s.rng.Intn(len(moves))]
}

// Difficulty is the configured strength of the computer.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}

// ParseDifficulty parses "easy", "normal" or "hard".
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("invalid difficulty: %q", s)
	}
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	difficulty, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = difficulty
	return nil
}

// SelectorFor returns the move selector used for a difficulty.
// Every level currently plays uniformly random moves.
func SelectorFor(_ Difficulty, rng *rand.Rand) MoveSelector {
	return NewRandomSelector(rng)
}
