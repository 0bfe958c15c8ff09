package console

import (
	"fmt"
	"io"
	"tictactoe/game"
	"tictactoe/player"

	"github.com/google/uuid"
)

// observer narrates a game on the console.
type observer struct {
	out io.Writer
}

func (o observer) GameStarted(_ uuid.UUID, board *game.Board, _ [2]player.Player) {
	Render(o.out, board)
	fmt.Fprintln(o.out, "Player 1: X")
	fmt.Fprintln(o.out, "Player 2: O")
}

func (o observer) TurnStarted(_ *game.Board, p player.Player) {
	fmt.Fprintf(o.out, "Player %d's turn\n", number(p.Mark()))
}

func (o observer) MovePlayed(board *game.Board, _ player.Player, _ game.Move) {
	Render(o.out, board)
}

func (o observer) GameOver(_ *game.Board, outcome game.Outcome) {
	if outcome.Status == game.Win {
		fmt.Fprintf(o.out, "Winner is: Player %d\n", number(outcome.Winner))
		return
	}
	fmt.Fprintln(o.out, "A draw!")
}

// number is the 1-based seat of a mark; X always moves first.
func number(p game.Player) int {
	if p == game.X {
		return 1
	}
	return 2
}
