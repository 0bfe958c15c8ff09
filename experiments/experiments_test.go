package experiments

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTournament(t *testing.T) {
	tr := NewTournament(WithGames(0), WithParallelism(-1))
	require.Equal(t, DefaultGames, tr.games, "Non-positive games should keep the default")
	require.Equal(t, 1, tr.goroutines)

	matchups := NewTournament(WithSeed(9)).Matchups()
	require.Len(t, matchups, 4)
	require.Equal(t, Optimal, matchups[0][0].Kind)
	require.Equal(t, Optimal, matchups[0][1].Kind)
	require.Equal(t, Random, matchups[3][0].Kind)
	require.Equal(t, uint64(9), matchups[3][1].Seed)
}

func TestTournamentRun(t *testing.T) {
	t.Run("optimal agents never lose", func(t *testing.T) {
		summaries, err := NewTournament(WithGames(12), WithParallelism(4), WithSeed(5)).Run()
		require.NoError(t, err)
		require.Len(t, summaries, 4)

		for i, s := range summaries {
			require.Equal(t, 12, s.Games, "matchup %d", i)
			require.Equal(t, s.Games, s.XWins+s.OWins+s.Draws, "matchup %d", i)
			require.GreaterOrEqual(t, s.AverageMoves(), 5.0)
			require.LessOrEqual(t, s.AverageMoves(), 9.0)
		}

		optimalMirror := summaries[0]
		require.Equal(t, 12, optimalMirror.Draws)
		require.Equal(t, 9*12, optimalMirror.TotalMoves)
		require.Positive(t, optimalMirror.Nodes)

		require.Zero(t, summaries[1].OWins, "Optimal X should never lose to random O")
		require.Zero(t, summaries[2].XWins, "Optimal O should never lose to random X")
		require.Zero(t, summaries[3].Nodes, "Random agents do not search")
	})

	t.Run("same seed gives the same results", func(t *testing.T) {
		a, err := NewTournament(WithGames(8), WithParallelism(3), WithSeed(11)).Run()
		require.NoError(t, err)
		b, err := NewTournament(WithGames(8), WithParallelism(1), WithSeed(11)).Run()
		require.NoError(t, err)

		for i := range a {
			require.Equal(t, a[i].XWins, b[i].XWins)
			require.Equal(t, a[i].OWins, b[i].OWins)
			require.Equal(t, a[i].TotalMoves, b[i].TotalMoves)
		}
	})

	t.Run("writes summaries when an output dir is set", func(t *testing.T) {
		dir := t.TempDir()

		_, err := NewTournament(WithGames(2), WithSeed(1), WithOutputDir(dir)).Run()
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		files, err := os.ReadDir(dir + "/" + entries[0].Name())
		require.NoError(t, err)
		names := []string{}
		for _, f := range files {
			names = append(names, f.Name())
		}
		require.ElementsMatch(t, []string{"agent_configs.csv", "matchup_summaries.csv"}, names)
	})
}
