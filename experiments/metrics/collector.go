package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	MaxDepth   int
	Duration   time.Duration
	Successors int // Root successors searched
	Nodes      int
	Cutoffs    int
	Value      float64 // Backed-up value of the chosen successor
}

type MoveMetric struct {
	Step   int
	Player int // Player sign, +1 or -1
	SearchMetric
}

type GameMetric struct {
	GameID         string
	StartingPlayer int    // Player sign
	Winner         string // "" on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines, maxDepth int)
	AddNode()
	AddCutoff()
	Complete(successors int, value float64) SearchMetric
}

type collector struct {
	goroutines int
	maxDepth   int
	startTime  time.Time
	nodes      atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, maxDepth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.maxDepth = maxDepth
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(successors int, value float64) SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		MaxDepth:   m.maxDepth,
		Duration:   time.Since(m.startTime),
		Successors: successors,
		Nodes:      int(m.nodes.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
		Value:      value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, maxDepth int)                      {}
func (m *dummyCollector) AddNode()                                            {}
func (m *dummyCollector) AddCutoff()                                          {}
func (m *dummyCollector) Complete(successors int, value float64) SearchMetric { return SearchMetric{} }
