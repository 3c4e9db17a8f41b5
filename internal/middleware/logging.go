package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Logging middleware that logs route, status code and response time.
// Access logs are skipped when the log level is above INFO.
func Logging() fiber.Handler {
	return logger.New(logger.Config{
		Next: func(_ *fiber.Ctx) bool {
			return !slog.Default().Enabled(context.Background(), slog.LevelInfo)
		},
		Format:     "${time} | ${status} | ${latency} | ${method} | ${path} | ${outcome}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		CustomTags: map[string]logger.LogFunc{
			"latency": func(output logger.Buffer, _ *fiber.Ctx, data *logger.Data, _ string) (int, error) {
				latency := float64(data.Stop.Sub(data.Start).Nanoseconds()) / float64(time.Millisecond)
				return fmt.Fprintf(output, "%6.1fms", latency)
			},
			"outcome": func(output logger.Buffer, c *fiber.Ctx, _ *logger.Data, _ string) (int, error) {
				outcome, _ := c.Locals("outcome").(string)
				if outcome == "" {
					outcome = "-"
				}
				return output.WriteString(outcome)
			},
		},
	})
}
