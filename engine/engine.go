package engine

import (
	"combat/game"
	"combat/metrics"
)

type Runner interface {
	// Run plays both variants from the initial decks and scores the winners
	Run() (Result, error)
}

// Report describes one finished game.
type Report struct {
	Outcome game.Outcome
	Score   int
	Metric  metrics.GameMetric
}

// Result holds the simple game (part 1) and recursive game (part 2) reports.
type Result struct {
	Simple    Report
	Recursive Report
}
