package othello

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// ComputerPlayer is the side played by the computer in PlayerVsComputer mode.
const ComputerPlayer = White

// GameState is the mutable state of one game. It is owned by a single Controller.
type GameState struct {
	board    Board
	current  Player
	mode     GameMode
	status   GameStatus
	lastMove *Position
}

func newGameState(mode GameMode) *GameState {
	return &GameState{
		board:   NewBoardStart(),
		current: Black,
		mode:    mode,
		status:  InProgress,
	}
}

// Controller sequences turns for one game session. It is not safe for concurrent use.
type Controller struct {
	state      *GameState
	rng        *rand.Rand
	difficulty Difficulty
	selector   MoveSelector
	logger     *slog.Logger
}

// SessionOption configures a Controller.
type SessionOption func(*Controller)

// WithRand sets the random source used by the computer opponent.
func WithRand(rng *rand.Rand) SessionOption {
	return func(c *Controller) {
		c.rng = rng
	}
}

// WithSeed seeds the random source used by the computer opponent.
func WithSeed(seed int64) SessionOption {
	return WithRand(rand.New(rand.NewSource(seed))) //nolint:gosec
}

// WithDifficulty sets the difficulty of the computer opponent.
func WithDifficulty(difficulty Difficulty) SessionOption {
	return func(c *Controller) {
		c.difficulty = difficulty
	}
}

// WithSelector replaces the move selection of the computer opponent.
func WithSelector(selector MoveSelector) SessionOption {
	return func(c *Controller) {
		c.selector = selector
	}
}

// WithLogger sets the logger. The default logger is used otherwise.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewSession creates a controller for a new game in the starting position.
func NewSession(mode GameMode, opts ...SessionOption) *Controller {
	c := &Controller{
		state:      newGameState(mode),
		difficulty: Easy,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec
	}

	if c.selector == nil {
		c.selector = SelectorFor(c.difficulty, c.rng)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// NewSessionFromBoard creates a controller for a game starting from a custom board.
// If toMove has no legal move the opponent moves first. If neither has one the game is over.
func NewSessionFromBoard(mode GameMode, board Board, toMove Player, opts ...SessionOption) *Controller {
	c := NewSession(mode, opts...)
	c.state.board = board
	c.state.current = toMove

	switch {
	case HasLegalMove(board, toMove):
	case HasLegalMove(board, toMove.Opponent()):
		c.state.current = toMove.Opponent()
	default:
		c.state.status = Over
	}

	return c
}

// AttemptMove tries to play pos for the current player.
// In PlayerVsComputer mode the computer answers once if it ends up on move.
// The returned outcome is the one of the last move applied during the call.
func (c *Controller) AttemptMove(pos Position) MoveOutcome {
	outcome := c.attempt(pos)

	if outcome == Applied || outcome == AppliedThenOpponentSkipped {
		if c.isComputerTurn() {
			return c.computerMove()
		}
	}

	return outcome
}

// PlayComputerMove lets the computer move if it is on move in PlayerVsComputer mode.
func (c *Controller) PlayComputerMove() MoveOutcome {
	if !c.isComputerTurn() {
		return Rejected
	}
	return c.computerMove()
}

func (c *Controller) isComputerTurn() bool {
	s := c.state
	return s.mode == PlayerVsComputer && s.status == InProgress && s.current == ComputerPlayer
}

func (c *Controller) computerMove() MoveOutcome {
	player := c.state.current

	moves := LegalMoves(c.state.board, player)
	if len(moves) == 0 {
		return Rejected
	}

	move := c.selector.SelectMove(moves, c.state.board, player)
	c.logger.Debug("computer selected move", "move", move.String(), "difficulty", c.difficulty.String())

	return c.attempt(move)
}

func (c *Controller) attempt(pos Position) MoveOutcome {
	s := c.state

	if s.status == Over || !pos.Valid() || s.board.Get(pos) != Empty {
		return Rejected
	}

	mover := s.current
	if !IsLegalMove(s.board, pos, mover) {
		return Rejected
	}

	flipped := ApplyMove(&s.board, pos, mover)
	last := pos
	s.lastMove = &last
	s.current = mover.Opponent()

	c.logger.Debug("applied move", "player", mover.String(), "move", pos.String(), "flipped", flipped)

	if !HasLegalMove(s.board, s.current) {
		if !HasLegalMove(s.board, mover) {
			s.status = Over
			c.logger.Debug("game over", "score", c.ScoreText())
			return GameOver
		}

		c.logger.Debug("turn skipped", "player", s.current.String())
		s.current = mover
		return AppliedThenOpponentSkipped
	}

	return Applied
}

// LegalMovesFor returns the legal moves of player in row-major order.
func (c *Controller) LegalMovesFor(player Player) []Position {
	return LegalMoves(c.state.board, player)
}

// ScoreText summarizes the disc counts.
func (c *Controller) ScoreText() string {
	black, white := c.state.board.CountDiscs()
	return fmt.Sprintf("Black: %d, White: %d", black, white)
}

// Snapshot returns a copy of the board.
func (c *Controller) Snapshot() Board {
	return c.state.board
}

// CurrentPlayer returns the player on move.
func (c *Controller) CurrentPlayer() Player {
	return c.state.current
}

// Status returns whether the game is still in progress.
func (c *Controller) Status() GameStatus {
	return c.state.status
}

// Mode returns the game mode.
func (c *Controller) Mode() GameMode {
	return c.state.mode
}

// Difficulty returns the configured difficulty of the computer.
func (c *Controller) Difficulty() Difficulty {
	return c.difficulty
}

// LastMove returns the most recently placed disc, if any.
func (c *Controller) LastMove() (Position, bool) {
	if c.state.lastMove == nil {
		return Position{}, false
	}
	return *c.state.lastMove, true
}

// Winner returns the player with the most discs. The boolean is false while
// the game is in progress or when it ended in a draw.
func (c *Controller) Winner() (Player, bool) {
	if c.state.status != Over {
		return Black, false
	}

	black, white := c.state.board.CountDiscs()
	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	default:
		return Black, false
	}
}

// StatusText describes who is on move, or the result once the game is over.
func (c *Controller) StatusText() string {
	if c.state.status == InProgress {
		return fmt.Sprintf("%s to move", c.state.current)
	}

	if winner, ok := c.Winner(); ok {
		return fmt.Sprintf("Game over, %s wins", winner)
	}
	return "Game over, draw"
}

// OutcomeText describes the result of the most recent move attempt for display.
// It returns an empty string when there is nothing to announce.
func (c *Controller) OutcomeText(outcome MoveOutcome) string {
	switch outcome {
	case Rejected:
		return "Illegal move"
	case AppliedThenOpponentSkipped:
		return fmt.Sprintf("%s has no legal moves and passes", c.state.current.Opponent())
	case GameOver:
		return c.StatusText()
	default:
		return ""
	}
}

// Reset starts a new game with the same mode and opponent.
func (c *Controller) Reset() {
	c.state = newGameState(c.state.mode)
}
