package game

import (
	"combat/metrics"
	"fmt"
)

// SimpleGame plays Combat without recursion. It owns copies of the decks it
// was created with.
type SimpleGame struct {
	State State
	seen  seenStates
	opts  options
}

func NewSimpleGame(player1, player2 Deck, opts ...Option) *SimpleGame {
	return &SimpleGame{
		State: State{Player1: player1.Copy(), Player2: player2.Copy()},
		seen:  newSeenStates(),
		opts:  newOptions(opts),
	}
}

// Round plays one round: the higher card wins both cards. Some deals cycle
// forever under these rules, so a repeated state is reported as
// ErrEndlessGame instead of being played again.
func (g *SimpleGame) Round() error {
	if !g.seen.Add(g.State) {
		return fmt.Errorf("%w: state repeated after %d rounds", ErrEndlessGame, g.seen.Len())
	}
	card1, card2, err := draw(&g.State)
	if err != nil {
		return err
	}
	winner, err := resolveRound(card1, card2)
	if err != nil {
		return err
	}
	award(&g.State, winner, card1, card2)
	g.opts.metrics.AddRound(0)
	return nil
}

func (g *SimpleGame) Over() bool {
	return g.State.Player1.Empty() || g.State.Player2.Empty()
}

// Outcome reports the winner once the game is over, nil before that.
func (g *SimpleGame) Outcome() *Outcome {
	switch {
	case g.State.Player2.Empty():
		return &Outcome{Winner: Player1, Deck: g.State.Player1}
	case g.State.Player1.Empty():
		return &Outcome{Winner: Player2, Deck: g.State.Player2}
	default:
		return nil
	}
}

// Play runs rounds until one deck is empty.
func (g *SimpleGame) Play() (Outcome, error) {
	for !g.Over() {
		if err := g.Round(); err != nil {
			return Outcome{}, err
		}
	}
	return *g.Outcome(), nil
}

// PlaySimpleGame plays a full simple game on copies of the given decks.
func PlaySimpleGame(player1, player2 Deck, opts ...Option) (Outcome, error) {
	g := NewSimpleGame(player1, player2, opts...)
	g.opts.metrics.Start(metrics.Simple)
	return g.Play()
}
