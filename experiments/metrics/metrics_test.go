package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts nodes and terminals between start and complete", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		for range 5 {
			c.AddNode()
		}
		c.AddTerminal()
		c.AddTerminal()

		m := c.Complete(10)

		require.Equal(t, 5, m.Nodes)
		require.Equal(t, 2, m.Terminals)
		require.Equal(t, 10, m.BestScore)
		require.GreaterOrEqual(t, m.Duration, time.Duration(0))
	})

	t.Run("start resets previous counts", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddNode()
		c.Complete(0)

		c.Start()
		m := c.Complete(0)

		require.Zero(t, m.Nodes, "Counts should not leak between searches")
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddNode()
		c.AddTerminal()
		require.Equal(t, SearchMetric{}, c.Complete(10))
	})
}

func TestMatchupSummary(t *testing.T) {
	var s MatchupSummary
	moves := []MoveMetric{
		{Step: 1, Player: "X", SearchMetric: SearchMetric{Nodes: 100, Duration: time.Millisecond}},
		{Step: 2, Player: "O", SearchMetric: SearchMetric{Nodes: 20, Duration: time.Millisecond}},
	}

	s.Add(GameMetric{Winner: "X", TotalMoves: 7}, moves)
	s.Add(GameMetric{Winner: "O", TotalMoves: 8}, nil)
	s.Add(GameMetric{TotalMoves: 9}, nil)

	require.Equal(t, 3, s.Games)
	require.Equal(t, 1, s.XWins)
	require.Equal(t, 1, s.OWins)
	require.Equal(t, 1, s.Draws)
	require.Equal(t, 120, s.Nodes)
	require.Equal(t, 2*time.Millisecond, s.SearchTime)
	require.InDelta(t, 8.0, s.AverageMoves(), 1e-9)

	var total MatchupSummary
	total.Merge(s)
	total.Merge(s)
	require.Equal(t, 6, total.Games)
	require.Equal(t, 2, total.Draws)
	require.Zero(t, MatchupSummary{}.AverageMoves())
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 0, Kind: "optimal"},
		{ID: 1, Kind: "random", Seed: 42},
	}))
	require.NoError(t, w.WriteMatchupSummaries([]MatchupSummary{
		{ID: 0, AgentX: 0, AgentO: 1, Games: 2, XWins: 2, TotalMoves: 14, Nodes: 600},
	}))

	agents := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{
		{"id", "kind", "seed"},
		{"0", "optimal", "0"},
		{"1", "random", "42"},
	}, agents)

	summaries := readCSV(t, filepath.Join(w.Dir(), "matchup_summaries.csv"))
	require.Len(t, summaries, 2)
	require.Equal(t, []string{"0", "0", "1", "2", "2", "0", "0", "7.00", "600", "0s"}, summaries[1])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}
