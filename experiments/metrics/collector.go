package metrics

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Duration  time.Duration
	Nodes     int // Positions visited, including terminals
	Terminals int
	BestScore int
}

type MoveMetric struct {
	Step   int
	Player string // Mark of the mover
	SearchMetric
}

type GameMetric struct {
	ID         uuid.UUID
	Starter    string // Mark of the first mover
	Winner     string // Mark of the winner, empty on a draw
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector accumulates statistics for a single search.
type Collector interface {
	Start()
	AddNode()
	AddTerminal()
	Complete(bestScore int) SearchMetric
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	terminals atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.terminals.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) Complete(bestScore int) SearchMetric {
	return SearchMetric{
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Terminals: int(m.terminals.Load()),
		BestScore: bestScore,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                    {}
func (m *dummyCollector) AddNode()                  {}
func (m *dummyCollector) AddTerminal()              {}
func (m *dummyCollector) Complete(int) SearchMetric { return SearchMetric{} }
