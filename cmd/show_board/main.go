package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/reversi/internal/othello"
)

func main() {
	defaultStart := othello.NewBoardStart().String() + "-b"
	start := flag.String("board", defaultStart, "the board to show, followed by -b or -w for the player on move")
	flag.Parse()

	board, toMove, err := othello.ParseStart(*start)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	board.Print(othello.LegalMoves(board, toMove))

	black, white := board.CountDiscs()
	fmt.Printf("%s to move. Black: %d, White: %d\n", toMove, black, white)
}
