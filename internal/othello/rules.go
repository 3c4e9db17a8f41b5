package othello

import "fmt"

// directions are the eight compass steps as (dx, dy).
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// run returns the opponent discs captured in one direction, or nil if the direction doesn't qualify.
func run(b Board, pos Position, player Player, dx, dy int) []Position {
	opponent := player.Opponent().Disc()

	var captured []Position
	cur := Position{Col: pos.Col + dx, Row: pos.Row + dy}

	for cur.Valid() && b.cells[cur.index()] == opponent {
		captured = append(captured, cur)
		cur = Position{Col: cur.Col + dx, Row: cur.Row + dy}
	}

	if len(captured) == 0 || !cur.Valid() || b.cells[cur.index()] != player.Disc() {
		return nil
	}

	return captured
}

// Flips returns all discs that would be flipped if player moved on pos.
// It returns nil for occupied squares and positions outside the board.
func Flips(b Board, pos Position, player Player) []Position {
	if !pos.Valid() || b.cells[pos.index()] != Empty {
		return nil
	}

	var flipped []Position
	for _, dir := range directions {
		flipped = append(flipped, run(b, pos, player, dir[0], dir[1])...)
	}

	return flipped
}

// IsLegalMove checks if player may place a disc on pos.
func IsLegalMove(b Board, pos Position, player Player) bool {
	if !pos.Valid() || b.cells[pos.index()] != Empty {
		return false
	}

	for _, dir := range directions {
		if run(b, pos, player, dir[0], dir[1]) != nil {
			return true
		}
	}

	return false
}

// LegalMoves returns all legal moves for player in row-major order.
func LegalMoves(b Board, player Player) []Position {
	moves := make([]Position, 0)

	for index := range b.cells {
		pos := positionFromIndex(index)
		if IsLegalMove(b, pos, player) {
			moves = append(moves, pos)
		}
	}

	return moves
}

// HasLegalMove checks if player has at least one legal move.
func HasLegalMove(b Board, player Player) bool {
	for index := range b.cells {
		if IsLegalMove(b, positionFromIndex(index), player) {
			return true
		}
	}
	return false
}

// ApplyMove places a disc for player on pos and flips all captured discs.
// The move must be legal, otherwise ApplyMove panics. It returns the number of flipped discs.
func ApplyMove(b *Board, pos Position, player Player) int {
	// Captures are computed for all directions before anything is written.
	flipped := Flips(*b, pos, player)
	if len(flipped) == 0 {
		panic(fmt.Errorf("%w: %s for %s", ErrIllegalMove, pos, player))
	}

	b.Set(pos, player.Disc())
	for _, f := range flipped {
		b.cells[f.index()] = player.Disc()
	}

	return len(flipped)
}
