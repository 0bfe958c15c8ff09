package engine

import (
	"tictactoe/game"
	"tictactoe/player"

	"github.com/google/uuid"
)

// MaxMoves bounds the turn loop; a 3x3 game never needs more.
const MaxMoves = game.Size * game.Size

// Observer is told about every step of a game. Implementations must not
// modify the board.
type Observer interface {
	GameStarted(id uuid.UUID, board *game.Board, players [2]player.Player)
	TurnStarted(board *game.Board, p player.Player)
	MovePlayed(board *game.Board, p player.Player, move game.Move)
	GameOver(board *game.Board, outcome game.Outcome)
}

type nopObserver struct{}

func (nopObserver) GameStarted(uuid.UUID, *game.Board, [2]player.Player) {}
func (nopObserver) TurnStarted(*game.Board, player.Player)               {}
func (nopObserver) MovePlayed(*game.Board, player.Player, game.Move)     {}
func (nopObserver) GameOver(*game.Board, game.Outcome)                   {}
