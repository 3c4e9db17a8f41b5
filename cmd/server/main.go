package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
)

const pruneInterval = time.Minute

// serve runs app until ctx is done. A graceful shutdown returns nil.
func serve(ctx context.Context, app *fiber.App, address string) error {
	go func() {
		<-ctx.Done()
		_ = app.Shutdown()
	}()

	return app.Listen(address)
}

func main() {
	config.SetLogLevel()

	// Setup app
	app, cfg, services := internal.SetupApp()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Remove idle sessions in the background
	go services.Sessions.RunPruner(ctx, pruneInterval)

	// Start server
	if err := serve(ctx, app, cfg.Address()); err != nil {
		log.Fatal(err)
	}
}
