package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/adrg/xdg"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/tui"
)

const logFile = "reversi/tui.log"

func main() {
	defaultStart := othello.NewBoardStart().String() + "-b"
	start := flag.String("start", defaultStart, "the start position, followed by -b or -w for the player on move")
	mode := flag.String("mode", "", "skip the menu and start a game: pvp or pve")
	difficulty := flag.String("difficulty", "", "computer difficulty: easy, normal or hard, overrides the config file")
	seed := flag.Int64("seed", 0, "seed for the computer opponent, 0 picks one from the clock")
	flag.Parse()

	// Log lines would garble the full-screen view, so they go to a file.
	logPath, err := xdg.StateFile(logFile)
	if err != nil {
		log.Fatalf("failed to find log file location: %v", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer f.Close()

	config.SetLogOutput(f)

	cfg, err := config.LoadTUIConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	startBoard, toMove, err := othello.ParseStart(*start)
	if err != nil {
		log.Fatalf("failed to create board: %v", err)
	}

	if *difficulty != "" {
		level, err := othello.ParseDifficulty(*difficulty)
		if err != nil {
			log.Fatalf("failed to parse difficulty: %v", err)
		}
		cfg.Game.Difficulty = level
	}

	var opts []othello.SessionOption
	if *seed != 0 {
		opts = append(opts, othello.WithSeed(*seed))
	}

	app := tui.NewApp(cfg, startBoard, toMove, opts...)

	if *mode != "" {
		gameMode, err := othello.ParseGameMode(*mode)
		if err != nil {
			log.Fatalf("failed to parse mode: %v", err)
		}
		app.StartGame(gameMode)
	}

	if err := app.Run(); err != nil {
		slog.Error("Terminal client stopped", "error", err)
		os.Exit(1)
	}

	// Remember the last mode for the next start.
	if err := app.Config().Save(); err != nil {
		slog.Warn("Could not save config", "error", err)
	}
}
