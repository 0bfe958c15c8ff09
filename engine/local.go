package engine

import (
	"errors"
	"fmt"
	"time"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrMoveLimit = errors.New("game did not finish within the move limit")

type Option func(e *Engine)

func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		if observer != nil {
			e.observer = observer
		}
	}
}

// WithBoard starts the game from an existing position instead of an empty board.
func WithBoard(board *game.Board) Option {
	return func(e *Engine) {
		if board != nil {
			e.Board = board
		}
	}
}

type Engine struct {
	ID       uuid.UUID
	Board    *game.Board
	Players  [2]player.Player
	observer Observer
}

// LocalEngine sets up a game between two players. players[0] moves first
// and must play X; players[1] must play O.
func LocalEngine(players [2]player.Player, options ...Option) *Engine {
	if players[0] == nil || players[1] == nil {
		panic("need two players")
	}
	if players[0].Mark() != game.X || players[1].Mark() != game.O {
		panic("first player must play X and second player must play O")
	}

	e := &Engine{
		ID:       uuid.New(),
		Board:    game.NewBoard(),
		Players:  players,
		observer: nopObserver{},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays the game to the end. After each move the mover's win is
// checked before a full board, so a win on the last cell is not a draw.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        e.ID,
		Starter:   e.Players[0].Mark().String(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("game", e.ID.String()).Msgf("%s (X) vs %s (O) is starting", e.Players[0].Name(), e.Players[1].Name())
	e.observer.GameStarted(e.ID, e.Board, e.Players)

	outcome := e.Board.Outcome()
	turn := e.firstTurn()
	for step := 1; !outcome.IsOver(); step++ {
		if step > MaxMoves {
			return outcome, e.finish(gameMetric, len(moveMetrics), outcome), moveMetrics, ErrMoveLimit
		}
		current := e.Players[turn]
		e.observer.TurnStarted(e.Board, current)

		move, searchMetric, err := current.NextMove(e.Board)
		if err != nil {
			return outcome, e.finish(gameMetric, len(moveMetrics), outcome), moveMetrics,
				fmt.Errorf("player %s failed to move: %w", current.Mark(), err)
		}
		if err := e.Board.Place(move.Row, move.Col, current.Mark()); err != nil {
			return outcome, e.finish(gameMetric, len(moveMetrics), outcome), moveMetrics,
				fmt.Errorf("player %s played an illegal move %v: %w", current.Mark(), move, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       current.Mark().String(),
			SearchMetric: searchMetric,
		})
		log.Debug().
			Str("game", e.ID.String()).
			Int("step", step).
			Str("player", current.Mark().String()).
			Stringer("move", move).
			Msg("move played")
		e.observer.MovePlayed(e.Board, current, move)

		switch {
		case e.Board.IsWinner(current.Mark()):
			outcome = game.Outcome{Status: game.Win, Winner: current.Mark()}
		case e.Board.IsDraw():
			outcome = game.Outcome{Status: game.Draw}
		}
		turn = 1 - turn
	}

	gameMetric = e.finish(gameMetric, len(moveMetrics), outcome)
	log.Info().
		Str("game", e.ID.String()).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msgf("game over: %s", outcome)
	e.observer.GameOver(e.Board, outcome)

	return outcome, gameMetric, moveMetrics, nil
}

// firstTurn picks who moves next on a board that may already hold marks.
func (e *Engine) firstTurn() int {
	if e.Board.Marks(game.X) > e.Board.Marks(game.O) {
		return 1
	}
	return 0
}

func (e *Engine) finish(m metrics.GameMetric, moves int, outcome game.Outcome) metrics.GameMetric {
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.TotalMoves = moves
	if outcome.Status == game.Win {
		m.Winner = outcome.Winner.String()
	}
	return m
}
