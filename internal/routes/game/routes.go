package game

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/sessions"
)

// SetupRoutes sets up the game session routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api/sessions")

	apiGroup.Post("/", CreateSession)
	apiGroup.Get("/:id", GetSession)
	apiGroup.Delete("/:id", DeleteSession)
	apiGroup.Post("/:id/moves", Move)
	apiGroup.Post("/:id/computer-move", ComputerMove)
	apiGroup.Post("/:id/reset", Reset)
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, sessions.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, sessions.ErrFull):
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// CreateSession starts a new game.
func CreateSession(c *fiber.Ctx) error {
	var payload models.CreateSessionRequest

	// An empty body starts a player vs player game.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	repo := repository.NewSessionRepository(c)
	session, err := repo.Create(payload)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSession returns the state of a game.
func GetSession(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	session, err := repo.Get(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(session)
}

// DeleteSession ends a game.
func DeleteSession(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	if err := repo.Delete(c.Params("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Move handles a move by the player on move. Rejected moves are not an error.
func Move(c *fiber.Ctx) error {
	var payload models.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	pos, err := payload.Validate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewSessionRepository(c)
	response, err := repo.Move(c.Params("id"), pos)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Locals("outcome", response.Outcome)

	return c.Status(fiber.StatusOK).JSON(response)
}

// ComputerMove lets the computer move.
func ComputerMove(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	response, err := repo.ComputerMove(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	c.Locals("outcome", response.Outcome)

	return c.Status(fiber.StatusOK).JSON(response)
}

// Reset restarts a game.
func Reset(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	session, err := repo.Reset(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(session)
}
