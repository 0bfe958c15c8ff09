package player

import (
	"errors"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

// ErrNoMoves is returned when asked to move on a full board.
var ErrNoMoves = errors.New("no vacant cell left")

type Player interface {
	// Mark is the symbol this player places.
	Mark() game.Player
	// Name is a short label for logs and reports.
	Name() string
	// NextMove chooses a vacant cell. The board is left as it was found; the
	// caller applies the move. Search metrics are zero for players that do not search.
	NextMove(board *game.Board) (game.Move, metrics.SearchMetric, error)
}
