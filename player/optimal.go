package player

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
)

// Optimal plays the minimax move. It never loses.
type Optimal struct {
	mark     game.Player
	searcher *searcher.Minimax
}

func NewOptimal(mark game.Player, options ...searcher.Option) *Optimal {
	return &Optimal{
		mark:     mark,
		searcher: searcher.NewMinimax(options...),
	}
}

func (o *Optimal) Mark() game.Player {
	return o.mark
}

func (o *Optimal) Name() string {
	return "optimal"
}

func (o *Optimal) NextMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	move, metric := o.searcher.FindBestMove(board, o.mark, o.mark.Opponent())
	if move == game.NoMove {
		return move, metric, ErrNoMoves
	}
	return move, metric, nil
}
