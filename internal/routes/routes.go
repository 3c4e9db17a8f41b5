package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lk16/reversi/internal/routes/game"
	"github.com/lk16/reversi/internal/routes/version"
	"github.com/lk16/reversi/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.Redirect("/version")
}

func SetupRoutes(app *fiber.App) {
	// Serve game API routes
	game.SetupRoutes(app)

	// Serve live game updates
	ws.SetupRoutes(app)

	// Serve version info
	version.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
