package player

import (
	"time"
	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

type RandomOption func(r *Random)

// WithSeed makes the sequence of moves reproducible.
func WithSeed(seed uint64) RandomOption {
	return func(r *Random) {
		r.rng = rand.New(rand.NewSource(seed))
	}
}

// Random picks cells uniformly, drawing again whenever it hits an occupied one.
type Random struct {
	mark game.Player
	rng  *rand.Rand
}

func NewRandom(mark game.Player, options ...RandomOption) *Random {
	r := &Random{
		mark: mark,
		rng:  rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *Random) Mark() game.Player {
	return r.mark
}

func (r *Random) Name() string {
	return "random"
}

func (r *Random) NextMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	if board.IsDraw() {
		return game.NoMove, metrics.SearchMetric{}, ErrNoMoves
	}
	for {
		// Rows and columns are drawn from 1..3 like a human would enter them
		row := r.rng.Intn(game.Size) + 1
		col := r.rng.Intn(game.Size) + 1
		if board.IsVacant(row-1, col-1) {
			return game.Move{Row: row - 1, Col: col - 1}, metrics.SearchMetric{}, nil
		}
	}
}
