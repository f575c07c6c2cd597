package metrics

import (
	"sync/atomic"
	"time"

	"jumprace/game"
)

type SearchMetric struct {
	Strategy    string // "random", "minimax" or "mcts"
	Depth       int    // Deepest completed iteration
	Nodes       int
	TTHits      int
	Cutoffs     int
	Simulations int
	Duration    time.Duration
}

type MoveMetric struct {
	Step       int
	Player     game.Color
	Difficulty string
	Passed     bool
	SearchMetric
}

type GameMetric struct {
	Players        int
	StartingPlayer game.Color
	Winner         game.Color
	Placements     []game.Color
	Draw           bool
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(strategy string)
	SetDepth(depth int)
	AddNode()
	AddTTHit()
	AddCutoff()
	AddSimulation()
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	startTime   time.Time
	depth       atomic.Int32
	nodes       atomic.Int64
	ttHits      atomic.Int64
	cutoffs     atomic.Int64
	simulations atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.depth.Store(0)
	m.nodes.Store(0)
	m.ttHits.Store(0)
	m.cutoffs.Store(0)
	m.simulations.Store(0)
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTTHit() {
	m.ttHits.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Depth:       int(m.depth.Load()),
		Nodes:       int(m.nodes.Load()),
		TTHits:      int(m.ttHits.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		Simulations: int(m.simulations.Load()),
		Duration:    time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)  {}
func (m *dummyCollector) SetDepth(depth int)     {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddTTHit()              {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) AddSimulation()         {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
