package game

import (
	"combat/metrics"
	"errors"
	"fmt"
)

var (
	ErrEmptyDeck     = errors.New("draw from an empty deck")
	ErrTie           = errors.New("drawn cards have equal value")
	ErrInvalidCard   = errors.New("card value out of range")
	ErrDuplicateCard = errors.New("card appears twice in one deck")
	ErrEndlessGame   = errors.New("simple game never ends")
)

type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

func (p Player) String() string {
	return fmt.Sprintf("Player%d", int(p))
}

// Opponent returns the other player of a two-player game.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Outcome is the terminal result of a game: the winner and the deck they hold.
type Outcome struct {
	Winner Player
	Deck   Deck
}

type Option func(o *options)

type options struct {
	metrics  metrics.Collector
	shortcut bool
}

// WithCollector reports rounds, sub-games and cycles to c.
func WithCollector(c metrics.Collector) Option {
	return func(o *options) {
		if c != nil {
			o.metrics = c
		}
	}
}

// WithoutShortcut forces every recursive sub-game to be played out.
func WithoutShortcut() Option {
	return func(o *options) {
		o.shortcut = false
	}
}

func newOptions(opts []Option) options {
	o := options{ // Default values
		metrics:  metrics.NewDummyCollector(),
		shortcut: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
