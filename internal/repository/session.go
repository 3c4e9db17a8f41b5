package repository

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/services"
	"github.com/lk16/reversi/internal/sessions"
)

// SessionRepository runs game operations against the session store.
type SessionRepository struct {
	services *services.Services
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(c *fiber.Ctx) *SessionRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &SessionRepository{
		services: services,
	}
}

// NewSessionRepositoryFromServices creates a new SessionRepository outside of a fiber handler.
func NewSessionRepositoryFromServices(services *services.Services) *SessionRepository {
	return &SessionRepository{
		services: services,
	}
}

// Create starts a new session.
func (repo *SessionRepository) Create(req models.CreateSessionRequest) (models.SessionResponse, error) {
	store := repo.services.Sessions

	id, err := store.Create(sessions.Settings{
		Mode:       req.Mode,
		Difficulty: req.Difficulty,
		Seed:       req.Seed,
	})
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("error creating session: %w", err)
	}

	return repo.Get(id)
}

// Get returns the current state of a session.
func (repo *SessionRepository) Get(id string) (models.SessionResponse, error) {
	var state models.GameState

	err := repo.services.Sessions.With(id, func(c *othello.Controller) error {
		state = models.NewGameState(c)
		return nil
	})
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("error getting session %s: %w", id, err)
	}

	return models.SessionResponse{ID: id, State: state}, nil
}

// Move attempts a move for the player on move.
func (repo *SessionRepository) Move(id string, pos othello.Position) (models.MoveResponse, error) {
	return repo.do(id, func(c *othello.Controller) othello.MoveOutcome {
		return c.AttemptMove(pos)
	})
}

// ComputerMove lets the computer move when it is on move.
func (repo *SessionRepository) ComputerMove(id string) (models.MoveResponse, error) {
	return repo.do(id, func(c *othello.Controller) othello.MoveOutcome {
		return c.PlayComputerMove()
	})
}

// Reset restarts the game of a session.
func (repo *SessionRepository) Reset(id string) (models.SessionResponse, error) {
	var state models.GameState

	err := repo.services.Sessions.With(id, func(c *othello.Controller) error {
		c.Reset()
		state = models.NewGameState(c)
		return nil
	})
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("error resetting session %s: %w", id, err)
	}

	return models.SessionResponse{ID: id, State: state}, nil
}

// Delete ends a session.
func (repo *SessionRepository) Delete(id string) error {
	if err := repo.services.Sessions.Delete(id); err != nil {
		return fmt.Errorf("error deleting session %s: %w", id, err)
	}
	return nil
}

func (repo *SessionRepository) do(id string, move func(c *othello.Controller) othello.MoveOutcome) (models.MoveResponse, error) {
	var response models.MoveResponse

	err := repo.services.Sessions.With(id, func(c *othello.Controller) error {
		outcome := move(c)
		response = models.MoveResponse{
			Outcome: outcome.String(),
			State:   models.NewGameState(c),
		}
		return nil
	})
	if err != nil {
		return models.MoveResponse{}, fmt.Errorf("error moving in session %s: %w", id, err)
	}

	return response, nil
}
