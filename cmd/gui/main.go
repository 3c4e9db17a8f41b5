package main

import (
	"flag"
	"log"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/gui"
	"github.com/lk16/reversi/internal/othello"
)

func main() {
	defaultStart := othello.NewBoardStart().String() + "-b"
	start := flag.String("start", defaultStart, "the start position, followed by -b or -w for the player on move")
	mode := flag.String("mode", "", "skip the menu and start a game: pvp or pve")
	difficulty := flag.String("difficulty", "easy", "computer difficulty: easy, normal or hard")
	seed := flag.Int64("seed", 0, "seed for the computer opponent, 0 picks one from the clock")
	flag.Parse()

	config.SetLogLevel()

	startBoard, toMove, err := othello.ParseStart(*start)
	if err != nil {
		log.Fatalf("failed to create board: %v", err)
	}

	level, err := othello.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatalf("failed to parse difficulty: %v", err)
	}

	opts := []othello.SessionOption{othello.WithDifficulty(level)}
	if *seed != 0 {
		opts = append(opts, othello.WithSeed(*seed))
	}

	window := gui.NewWindow(startBoard, toMove, opts...)

	if *mode != "" {
		gameMode, err := othello.ParseGameMode(*mode)
		if err != nil {
			log.Fatalf("failed to parse mode: %v", err)
		}
		window.NewGame(gameMode)
	}

	window.Run()
}
