package othello

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// firstMoveSelector always picks the first legal move and records how often it was asked.
type firstMoveSelector struct {
	calls int
}

func (s *firstMoveSelector) SelectMove(moves []Position, _ Board, _ Player) Position {
	s.calls++
	return moves[0]
}

func TestNewSession(t *testing.T) {
	c := NewSession(PlayerVsPlayer)

	require.Equal(t, NewBoardStart(), c.Snapshot())
	require.Equal(t, Black, c.CurrentPlayer())
	require.Equal(t, InProgress, c.Status())
	require.Equal(t, PlayerVsPlayer, c.Mode())
	require.Equal(t, Easy, c.Difficulty())
	require.Len(t, c.LegalMovesFor(Black), 4)
	require.Equal(t, "Black: 2, White: 2", c.ScoreText())

	_, ok := c.LastMove()
	require.False(t, ok)
}

func TestController_AttemptMove_ScenarioA(t *testing.T) {
	c := NewSession(PlayerVsPlayer)

	outcome := c.AttemptMove(Position{Col: 2, Row: 3})
	require.Equal(t, Applied, outcome)
	require.Equal(t, White, c.CurrentPlayer())
	require.Equal(t, "Black: 4, White: 1", c.ScoreText())

	last, ok := c.LastMove()
	require.True(t, ok)
	require.Equal(t, Position{Col: 2, Row: 3}, last)
}

func TestController_AttemptMove_Rejected(t *testing.T) {
	c := NewSession(PlayerVsPlayer)
	before := c.Snapshot()

	// Occupied, no capture, and off the board.
	for _, pos := range []Position{{3, 3}, {0, 0}, {-1, 2}, {2, 8}} {
		require.Equal(t, Rejected, c.AttemptMove(pos))
	}

	require.Equal(t, before, c.Snapshot())
	require.Equal(t, Black, c.CurrentPlayer())
	_, ok := c.LastMove()
	require.False(t, ok)
}

func TestController_Snapshot_IsCopy(t *testing.T) {
	c := NewSession(PlayerVsPlayer)

	snapshot := c.Snapshot()
	snapshot.Set(Position{Col: 0, Row: 0}, BlackDisc)

	require.Equal(t, Empty, c.Snapshot().Get(Position{Col: 0, Row: 0}))
}

func TestController_AttemptMove_ScenarioB(t *testing.T) {
	board := boardFromRows(t,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"BW......",
	)
	c := NewSessionFromBoard(PlayerVsPlayer, board, Black)

	outcome := c.AttemptMove(Position{Col: 2, Row: 0})
	require.Equal(t, AppliedThenOpponentSkipped, outcome)
	require.Equal(t, Black, c.CurrentPlayer())
	require.Equal(t, InProgress, c.Status())
	require.Empty(t, c.LegalMovesFor(White))
	require.Equal(t, []Position{{2, 7}}, c.LegalMovesFor(Black))
}

func TestController_AttemptMove_ScenarioC(t *testing.T) {
	board := boardFromRows(t,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	c := NewSessionFromBoard(PlayerVsPlayer, board, Black)

	outcome := c.AttemptMove(Position{Col: 2, Row: 0})
	require.Equal(t, GameOver, outcome)
	require.Equal(t, Over, c.Status())

	winner, ok := c.Winner()
	require.True(t, ok)
	require.Equal(t, Black, winner)

	// No further moves are accepted, not even ones that would capture.
	before := c.Snapshot()
	for index := range 64 {
		require.Equal(t, Rejected, c.AttemptMove(positionFromIndex(index)))
	}
	require.Equal(t, before, c.Snapshot())
}

func TestController_GameOver_FullBoard(t *testing.T) {
	board := boardFromRows(t,
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"WWWWWWWW",
		"WWWWWWWW",
		"WWWWWWWB",
		"WWWWWWW.",
	)
	c := NewSessionFromBoard(PlayerVsPlayer, board, Black)

	// h8 flips g7, f6 and e5 and fills the last square.
	outcome := c.AttemptMove(Position{Col: 7, Row: 7})
	require.Equal(t, GameOver, outcome)
	require.Equal(t, Over, c.Status())
	require.Equal(t, 64, c.Snapshot().CountOccupied())
	require.Equal(t, "Black: 37, White: 27", c.ScoreText())

	winner, ok := c.Winner()
	require.True(t, ok)
	require.Equal(t, Black, winner)
}

func TestController_Winner_Draw(t *testing.T) {
	board := boardFromRows(t,
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"WWWWWWWW",
		"WWWWWWWW",
		"WWWWWWWW",
		"WWWWWWWW",
	)
	c := NewSessionFromBoard(PlayerVsPlayer, board, Black)
	require.Equal(t, Over, c.Status())

	_, ok := c.Winner()
	require.False(t, ok)

	inProgress := NewSession(PlayerVsPlayer)
	_, ok = inProgress.Winner()
	require.False(t, ok)
}

func TestController_StatusText(t *testing.T) {
	c := NewSession(PlayerVsPlayer)
	require.Equal(t, "Black to move", c.StatusText())

	c.AttemptMove(Position{Col: 2, Row: 3})
	require.Equal(t, "White to move", c.StatusText())

	won := NewSessionFromBoard(PlayerVsPlayer, boardFromRows(t,
		"WW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	), Black)
	require.Equal(t, "Game over, White wins", won.StatusText())

	// Black still has c1 here. Playing it ends the game.
	finishing := NewSessionFromBoard(PlayerVsPlayer, boardFromRows(t,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	), Black)
	require.Equal(t, "Black to move", finishing.StatusText())
	require.Equal(t, GameOver, finishing.AttemptMove(Position{Col: 2, Row: 0}))
	require.Equal(t, "Game over, Black wins", finishing.StatusText())

	draw := NewSessionFromBoard(PlayerVsPlayer, boardFromRows(t,
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"WWWWWWWW",
		"WWWWWWWW",
		"WWWWWWWW",
		"WWWWWWWW",
	), Black)
	require.Equal(t, Over, draw.Status())
	require.Equal(t, "Game over, draw", draw.StatusText())
}

func TestController_OutcomeText(t *testing.T) {
	board := boardFromRows(t,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"BW......",
	)
	c := NewSessionFromBoard(PlayerVsPlayer, board, Black)

	require.Equal(t, "Illegal move", c.OutcomeText(c.AttemptMove(Position{Col: 7, Row: 7})))
	require.Equal(t, "White has no legal moves and passes", c.OutcomeText(c.AttemptMove(Position{Col: 2, Row: 0})))
	require.Equal(t, "Game over, Black wins", c.OutcomeText(c.AttemptMove(Position{Col: 2, Row: 7})))
	require.Empty(t, c.OutcomeText(Applied))
}

func TestNewSessionFromBoard_DerivedState(t *testing.T) {
	full := boardFromRows(t,
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
	)
	c := NewSessionFromBoard(PlayerVsPlayer, full, Black)
	require.Equal(t, Over, c.Status())
	require.Equal(t, Rejected, c.AttemptMove(Position{Col: 0, Row: 0}))

	// White has no move, so Black moves first.
	onlyBlack := boardFromRows(t,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	c = NewSessionFromBoard(PlayerVsPlayer, onlyBlack, White)
	require.Equal(t, InProgress, c.Status())
	require.Equal(t, Black, c.CurrentPlayer())
}

func TestController_Reset(t *testing.T) {
	c := NewSession(PlayerVsComputer, WithSeed(7))

	c.AttemptMove(Position{Col: 2, Row: 3})
	c.AttemptMove(c.LegalMovesFor(c.CurrentPlayer())[0])
	require.Greater(t, c.Snapshot().CountOccupied(), 4)

	c.Reset()

	require.Equal(t, NewBoardStart(), c.Snapshot())
	require.Equal(t, Black, c.CurrentPlayer())
	require.Equal(t, InProgress, c.Status())
	require.Equal(t, PlayerVsComputer, c.Mode())
	_, ok := c.LastMove()
	require.False(t, ok)
}

func TestController_Reset_AfterGameOver(t *testing.T) {
	board := boardFromRows(t,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	c := NewSessionFromBoard(PlayerVsPlayer, board, Black)
	require.Equal(t, GameOver, c.AttemptMove(Position{Col: 2, Row: 0}))

	c.Reset()
	require.Equal(t, InProgress, c.Status())
	require.Equal(t, Applied, c.AttemptMove(Position{Col: 2, Row: 3}))
}

func TestController_ComputerReplies(t *testing.T) {
	selector := &firstMoveSelector{}
	c := NewSession(PlayerVsComputer, WithSelector(selector))

	outcome := c.AttemptMove(Position{Col: 2, Row: 3})

	// The computer played c3, the first legal white move, flipping d4.
	require.Equal(t, Applied, outcome)
	require.Equal(t, 1, selector.calls)
	require.Equal(t, Black, c.CurrentPlayer())
	require.Equal(t, "Black: 3, White: 3", c.ScoreText())

	last, ok := c.LastMove()
	require.True(t, ok)
	require.Equal(t, Position{Col: 2, Row: 2}, last)
}

func TestController_ComputerDoesNotChain(t *testing.T) {
	board := boardFromRows(t,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		".......B",
		"WB.....W",
	)
	selector := &firstMoveSelector{}
	c := NewSessionFromBoard(PlayerVsComputer, board, Black, WithSelector(selector))

	// Black plays c1, the computer answers h6 after which Black must pass.
	outcome := c.AttemptMove(Position{Col: 2, Row: 0})
	require.Equal(t, AppliedThenOpponentSkipped, outcome)
	require.Equal(t, 1, selector.calls)
	require.Equal(t, White, c.CurrentPlayer())
	require.Equal(t, InProgress, c.Status())

	// The computer only continues when asked.
	outcome = c.PlayComputerMove()
	require.Equal(t, GameOver, outcome)
	require.Equal(t, 2, selector.calls)
	require.Equal(t, Over, c.Status())
}

func TestController_PlayComputerMove_Rejected(t *testing.T) {
	pvp := NewSession(PlayerVsPlayer)
	pvp.AttemptMove(Position{Col: 2, Row: 3})
	require.Equal(t, White, pvp.CurrentPlayer())
	require.Equal(t, Rejected, pvp.PlayComputerMove())

	pve := NewSession(PlayerVsComputer)
	require.Equal(t, Rejected, pve.PlayComputerMove())
	require.Equal(t, NewBoardStart(), pve.Snapshot())
}

func TestController_PlayerVsPlayer_NoComputer(t *testing.T) {
	selector := &firstMoveSelector{}
	c := NewSession(PlayerVsPlayer, WithSelector(selector))

	c.AttemptMove(Position{Col: 2, Row: 3})
	require.Equal(t, 0, selector.calls)
	require.Equal(t, White, c.CurrentPlayer())
}

func TestController_SeededReplay(t *testing.T) {
	play := func(seed int64) []Board {
		c := NewSession(PlayerVsComputer, WithRand(rand.New(rand.NewSource(seed))))
		var boards []Board

		for c.Status() == InProgress {
			var outcome MoveOutcome
			if c.CurrentPlayer() == ComputerPlayer {
				outcome = c.PlayComputerMove()
			} else {
				outcome = c.AttemptMove(c.LegalMovesFor(Black)[0])
			}
			require.NotEqual(t, Rejected, outcome)
			boards = append(boards, c.Snapshot())
		}

		return boards
	}

	first := play(99)
	second := play(99)
	require.Equal(t, first, second)

	// Occupied squares never decrease during a game.
	for i := 1; i < len(first); i++ {
		require.GreaterOrEqual(t, first[i].CountOccupied(), first[i-1].CountOccupied())
	}
}
