package metrics

import (
	"time"
)

// Variant names the rule set a game was played under.
type Variant string

const (
	Simple    Variant = "simple"
	Recursive Variant = "recursive"
)

type GameMetric struct {
	Variant   Variant
	Winner    int // Player ID
	Score     int
	Rounds    int // Rounds played at every depth
	SubGames  int // Sub-games actually played
	Shortcuts int // Sub-games decided without playing
	Cycles    int // Games ended by a repeated state
	MaxDepth  int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Collector observes a single top-level game, including all of its sub-games.
// Games are sequential, so implementations need no synchronisation.
type Collector interface {
	Start(variant Variant)
	AddRound(depth int)
	AddSubGame(depth int)
	AddShortcut(depth int)
	AddCycle(depth int)
	Complete(winner, score int) GameMetric
}

type collector struct {
	variant   Variant
	startTime time.Time
	rounds    int
	subGames  int
	shortcuts int
	cycles    int
	maxDepth  int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(variant Variant) {
	*m = collector{variant: variant, startTime: time.Now()}
}

func (m *collector) AddRound(depth int) {
	m.rounds++
	m.observeDepth(depth)
}

func (m *collector) AddSubGame(depth int) {
	m.subGames++
	m.observeDepth(depth)
}

func (m *collector) AddShortcut(depth int) {
	m.shortcuts++
	m.observeDepth(depth)
}

func (m *collector) AddCycle(depth int) {
	m.cycles++
	m.observeDepth(depth)
}

func (m *collector) observeDepth(depth int) {
	if depth > m.maxDepth {
		m.maxDepth = depth
	}
}

func (m *collector) Complete(winner, score int) GameMetric {
	end := time.Now()
	return GameMetric{
		Variant:   m.variant,
		Winner:    winner,
		Score:     score,
		Rounds:    m.rounds,
		SubGames:  m.subGames,
		Shortcuts: m.shortcuts,
		Cycles:    m.cycles,
		MaxDepth:  m.maxDepth,
		StartTime: m.startTime,
		EndTime:   end,
		Duration:  end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(variant Variant)                 {}
func (m *dummyCollector) AddRound(depth int)                    {}
func (m *dummyCollector) AddSubGame(depth int)                  {}
func (m *dummyCollector) AddShortcut(depth int)                 {}
func (m *dummyCollector) AddCycle(depth int)                    {}
func (m *dummyCollector) Complete(winner, score int) GameMetric { return GameMetric{} }
