package engine

import (
	"combat/game"
	"combat/metrics"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Engine plays both variants of Combat from the same pair of initial decks.
// The initial decks are never mutated, so each variant starts from the input.
type Engine struct {
	Player1 game.Deck
	Player2 game.Deck
	options []game.Option
}

var _ Runner = (*Engine)(nil)

func LocalEngine(player1, player2 game.Deck, options ...game.Option) *Engine {
	return &Engine{
		Player1: player1.Copy(),
		Player2: player2.Copy(),
		options: options,
	}
}

// Run validates the decks and plays the simple game followed by the recursive game.
func (e *Engine) Run() (Result, error) {
	if err := game.Validate(e.Player1, e.Player2); err != nil {
		return Result{}, fmt.Errorf("invalid decks: %w", err)
	}

	simple, err := e.PlaySimple()
	if err != nil {
		return Result{}, err
	}
	recursive, err := e.PlayRecursive()
	if err != nil {
		return Result{}, err
	}
	return Result{Simple: simple, Recursive: recursive}, nil
}

func (e *Engine) PlaySimple() (Report, error) {
	return e.play(metrics.Simple, game.PlaySimpleGame)
}

func (e *Engine) PlayRecursive() (Report, error) {
	return e.play(metrics.Recursive, game.PlayRecursiveGame)
}

type playFunc func(player1, player2 game.Deck, opts ...game.Option) (game.Outcome, error)

func (e *Engine) play(variant metrics.Variant, play playFunc) (Report, error) {
	collector := metrics.NewCollector()
	opts := append([]game.Option{game.WithCollector(collector)}, e.options...)

	log.Info().Msgf("starting %s game with %d and %d cards", variant, e.Player1.Len(), e.Player2.Len())

	outcome, err := play(e.Player1, e.Player2, opts...)
	if err != nil {
		return Report{}, fmt.Errorf("%s game: %w", variant, err)
	}

	score := game.Score(outcome.Deck)
	metric := collector.Complete(int(outcome.Winner), score)

	log.Info().Msgf("completed %s game with winner: %s, score: %d, rounds: %d, sub-games: %d, max depth: %d",
		variant, outcome.Winner, score, metric.Rounds, metric.SubGames, metric.MaxDepth)

	return Report{Outcome: outcome, Score: score, Metric: metric}, nil
}
