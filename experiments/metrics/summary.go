package metrics

import "time"

type AgentConfig struct {
	ID   int
	Kind string // "optimal" or "random"
	Seed uint64 // Only meaningful for random agents
}

// MatchupSummary aggregates every game played between two agents.
type MatchupSummary struct {
	ID         int
	AgentX     int // AgentConfig.ID
	AgentO     int // AgentConfig.ID
	Games      int
	XWins      int
	OWins      int
	Draws      int
	TotalMoves int
	Nodes      int
	SearchTime time.Duration
}

// Add folds a finished game into the summary.
func (s *MatchupSummary) Add(game GameMetric, moves []MoveMetric) {
	s.Games++
	switch game.Winner {
	case "X":
		s.XWins++
	case "O":
		s.OWins++
	default:
		s.Draws++
	}
	s.TotalMoves += game.TotalMoves
	for _, m := range moves {
		s.Nodes += m.Nodes
		s.SearchTime += m.Duration
	}
}

// Merge combines two partial summaries of the same matchup.
func (s *MatchupSummary) Merge(other MatchupSummary) {
	s.Games += other.Games
	s.XWins += other.XWins
	s.OWins += other.OWins
	s.Draws += other.Draws
	s.TotalMoves += other.TotalMoves
	s.Nodes += other.Nodes
	s.SearchTime += other.SearchTime
}

func (s MatchupSummary) AverageMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.Games)
}
