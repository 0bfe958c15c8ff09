package experiments

import (
	"errors"
	"fmt"
	"sync"
	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"
	"tictactoe/searcher"

	"github.com/rs/zerolog/log"
)

const (
	Optimal = "optimal"
	Random  = "random"
)

const DefaultGames = 100 // Per match up

type Option func(t *Tournament)

func WithGames(games int) Option {
	return func(t *Tournament) {
		if games > 0 {
			t.games = games
		}
	}
}

func WithParallelism(goroutines int) Option {
	return func(t *Tournament) {
		if goroutines > 0 {
			t.goroutines = goroutines
		}
	}
}

// WithSeed makes random agents reproducible. Every game derives its own
// seeds from it, so results do not depend on scheduling.
func WithSeed(seed uint64) Option {
	return func(t *Tournament) {
		t.seed = seed
	}
}

// WithOutputDir stores agent configs and matchup summaries as CSV files in
// a timestamped subfolder of dir.
func WithOutputDir(dir string) Option {
	return func(t *Tournament) {
		t.outputDir = dir
	}
}

// Tournament plays every pairing of the optimal and random agents, with
// each agent taking both seats.
type Tournament struct {
	games      int
	goroutines int
	seed       uint64
	outputDir  string
}

func NewTournament(options ...Option) *Tournament {
	t := &Tournament{ // Default values
		games:      DefaultGames,
		goroutines: 1,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *Tournament) Agents() []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: 0, Kind: Optimal},
		{ID: 1, Kind: Random, Seed: t.seed},
	}
}

func (t *Tournament) Matchups() [][2]metrics.AgentConfig {
	agents := t.Agents()
	matchups := [][2]metrics.AgentConfig{}
	for _, x := range agents {
		for _, o := range agents {
			matchups = append(matchups, [2]metrics.AgentConfig{x, o})
		}
	}
	return matchups
}

// Run plays all games and returns one summary per matchup.
func (t *Tournament) Run() ([]metrics.MatchupSummary, error) {
	matchups := t.Matchups()
	summaries := make([]metrics.MatchupSummary, len(matchups))

	log.Info().Msgf("starting tournament with %d games per matchup on %d goroutines...", t.games, t.goroutines)

	for mi, matchup := range matchups {
		log.Info().Msgf("starting matchup %d of %d between X=%s and O=%s...", mi+1, len(matchups), matchup[0].Kind, matchup[1].Kind)

		summary, err := t.playMatchup(mi, matchup)
		if err != nil {
			return nil, fmt.Errorf("matchup %d: %w", mi+1, err)
		}
		summaries[mi] = summary

		log.Info().
			Int("x_wins", summary.XWins).
			Int("o_wins", summary.OWins).
			Int("draws", summary.Draws).
			Float64("avg_moves", summary.AverageMoves()).
			Int("nodes", summary.Nodes).
			Dur("search_time", summary.SearchTime).
			Msgf("completed matchup %d of %d", mi+1, len(matchups))
	}

	log.Info().Msg("completed tournament")

	if t.outputDir != "" {
		if err := t.store(summaries); err != nil {
			return summaries, err
		}
	}
	return summaries, nil
}

func (t *Tournament) playMatchup(id int, matchup [2]metrics.AgentConfig) (metrics.MatchupSummary, error) {
	task := make(chan int, t.games)
	for i := 0; i < t.games; i++ {
		task <- i
	}
	close(task)

	total := metrics.MatchupSummary{ID: id, AgentX: matchup[0].ID, AgentO: matchup[1].ID}
	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	for i := 0; i < t.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var partial metrics.MatchupSummary
			for g := range task {
				_, gameMetric, moveMetrics, err := t.playGame(matchup, g)
				if err != nil {
					mu.Lock()
					errs = append(errs, fmt.Errorf("game %d: %w", g+1, err))
					mu.Unlock()
					continue
				}
				partial.Add(gameMetric, moveMetrics)
			}

			mu.Lock()
			total.Merge(partial)
			mu.Unlock()
		}()
	}
	wg.Wait()

	return total, errors.Join(errs...)
}

func (t *Tournament) playGame(matchup [2]metrics.AgentConfig, g int) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	players := [2]player.Player{
		t.newPlayer(matchup[0], game.X, g),
		t.newPlayer(matchup[1], game.O, g),
	}
	return engine.LocalEngine(players).Run()
}

func (t *Tournament) newPlayer(config metrics.AgentConfig, mark game.Player, g int) player.Player {
	switch config.Kind {
	case Optimal:
		return player.NewOptimal(mark, searcher.WithMetrics())
	case Random:
		if config.Seed == 0 {
			return player.NewRandom(mark)
		}
		return player.NewRandom(mark, player.WithSeed(config.Seed+uint64(2*g)+uint64(mark)-1))
	}
	panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
}

func (t *Tournament) store(summaries []metrics.MatchupSummary) error {
	writer, err := metrics.NewWriter(t.outputDir)
	if err != nil {
		return fmt.Errorf("failed to create tournament writer: %w", err)
	}

	err = writer.WriteAgentConfigs(t.Agents())
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteMatchupSummaries(summaries)
	if err != nil {
		return fmt.Errorf("failed to store matchup summaries: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored matchup summaries")
	return nil
}
