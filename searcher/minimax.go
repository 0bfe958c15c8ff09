package searcher

import (
	"math"
	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

// Scores are from the maximizer's point of view.
const (
	WinScore  = 10
	LossScore = -10
	DrawScore = 0
)

type Option func(m *Minimax)

// Minimax searches the full game tree from a position. It holds no state
// between searches apart from the metrics collector, so a Minimax must not
// be shared by concurrent searches when metrics are enabled.
type Minimax struct {
	metrics metrics.Collector
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

var plain = NewMinimax()

// Evaluate scores board for maximizer using the default searcher.
func Evaluate(board *game.Board, maximizer, opponent game.Player, maximizing bool) int {
	return plain.Evaluate(board, maximizer, opponent, maximizing)
}

// FindBestMove returns the best move for mover using the default searcher.
func FindBestMove(board *game.Board, mover, opponent game.Player) game.Move {
	move, _ := plain.FindBestMove(board, mover, opponent)
	return move
}

// Evaluate returns the minimax value of board for maximizer, assuming both
// sides play perfectly from here. maximizing tells whose turn it is.
// The board is restored before returning.
func (m *Minimax) Evaluate(board *game.Board, maximizer, opponent game.Player, maximizing bool) int {
	m.metrics.AddNode()

	if board.IsWinner(opponent) {
		m.metrics.AddTerminal()
		return LossScore
	}
	if board.IsWinner(maximizer) {
		m.metrics.AddTerminal()
		return WinScore
	}
	if board.IsDraw() {
		m.metrics.AddTerminal()
		return DrawScore
	}

	if maximizing {
		best := math.MinInt
		for _, move := range board.Vacancies() {
			apply(board, move, maximizer)
			best = max(best, m.Evaluate(board, maximizer, opponent, false))
			undo(board, move)
		}
		return best
	}

	best := math.MaxInt
	for _, move := range board.Vacancies() {
		apply(board, move, opponent)
		best = min(best, m.Evaluate(board, maximizer, opponent, true))
		undo(board, move)
	}
	return best
}

// FindBestMove tries every vacant cell in row-major order and keeps the
// first one with the strictly highest score. It returns game.NoMove when the
// board is full. The board is restored before returning.
func (m *Minimax) FindBestMove(board *game.Board, mover, opponent game.Player) (game.Move, metrics.SearchMetric) {
	m.metrics.Start()

	bestMove := game.NoMove
	bestScore := math.MinInt
	for _, move := range board.Vacancies() {
		apply(board, move, mover)
		score := m.Evaluate(board, mover, opponent, false)
		undo(board, move)

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	if bestMove == game.NoMove {
		bestScore = DrawScore
	}
	metric := m.metrics.Complete(bestScore)
	log.Debug().
		Str("player", mover.String()).
		Stringer("move", bestMove).
		Int("score", bestScore).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("minimax search complete")
	return bestMove, metric
}

func apply(board *game.Board, move game.Move, p game.Player) {
	if err := board.Place(move.Row, move.Col, p); err != nil {
		panic(err)
	}
}

func undo(board *game.Board, move game.Move) {
	if err := board.Clear(move.Row, move.Col); err != nil {
		panic(err)
	}
}
