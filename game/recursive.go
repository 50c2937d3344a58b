package game

import (
	"combat/metrics"

	"github.com/rs/zerolog/log"
)

// RecursiveGame is one instance of Recursive Combat. Every instance, including
// each sub-game, owns its decks and its own set of seen states.
type RecursiveGame struct {
	State State
	depth int
	seen  seenStates
	opts  options
}

func NewRecursiveGame(player1, player2 Deck, opts ...Option) *RecursiveGame {
	return newRecursiveGame(State{Player1: player1.Copy(), Player2: player2.Copy()}, 0, newOptions(opts))
}

func newRecursiveGame(state State, depth int, opts options) *RecursiveGame {
	return &RecursiveGame{
		State: state,
		depth: depth,
		seen:  newSeenStates(),
		opts:  opts,
	}
}

func (g *RecursiveGame) Depth() int {
	return g.depth
}

// Round plays one round and returns the outcome if it ended the game, or nil
// if the game continues. A repeated state ends the game in favour of player 1
// without drawing.
func (g *RecursiveGame) Round() (*Outcome, error) {
	if !g.seen.Add(g.State) {
		g.opts.metrics.AddCycle(g.depth)
		log.Debug().Msgf("repeated state at depth %d after %d rounds", g.depth, g.seen.Len())
		return &Outcome{Winner: Player1, Deck: g.State.Player1}, nil
	}

	card1, card2, err := draw(&g.State)
	if err != nil {
		return nil, err
	}

	var winner Player
	if g.State.Player1.Len() >= int(card1) && g.State.Player2.Len() >= int(card2) {
		winner, err = g.subGame(int(card1), int(card2))
	} else {
		winner, err = resolveRound(card1, card2)
	}
	if err != nil {
		return nil, err
	}

	award(&g.State, winner, card1, card2)
	g.opts.metrics.AddRound(g.depth)

	if g.State.deck(winner.Opponent()).Empty() {
		return &Outcome{Winner: winner, Deck: *g.State.deck(winner)}, nil
	}
	return nil, nil
}

// subGame decides a round by playing a new game on copies of the top n1 and
// n2 cards of the remaining decks.
func (g *RecursiveGame) subGame(n1, n2 int) (Player, error) {
	state := State{Player1: g.State.Player1.Prefix(n1), Player2: g.State.Player2.Prefix(n2)}
	depth := g.depth + 1

	if g.opts.shortcut && player1Holds(state) {
		g.opts.metrics.AddShortcut(depth)
		return Player1, nil
	}

	g.opts.metrics.AddSubGame(depth)
	outcome, err := newRecursiveGame(state, depth, g.opts).Play()
	if err != nil {
		return 0, err
	}
	return outcome.Winner, nil
}

// player1Holds reports whether player 1 owns a card that beats every card of
// player 2 and is too high to ever trigger a sub-game. Player 1 can never lose
// that card, so player 1 wins the game either by emptying player 2's deck or
// by a repeated state.
func player1Holds(s State) bool {
	if s.Player1.Empty() || s.Player2.Empty() {
		return false
	}
	high := s.Player1.Max()
	return high > s.Player2.Max() && int(high) >= s.Len()-1
}

// Play runs rounds until the game ends.
func (g *RecursiveGame) Play() (Outcome, error) {
	for {
		outcome, err := g.Round()
		if err != nil {
			return Outcome{}, err
		}
		if outcome != nil {
			return *outcome, nil
		}
	}
}

// PlayRecursiveGame plays a full game of Recursive Combat on copies of the
// given decks.
func PlayRecursiveGame(player1, player2 Deck, opts ...Option) (Outcome, error) {
	g := NewRecursiveGame(player1, player2, opts...)
	g.opts.metrics.Start(metrics.Recursive)
	return g.Play()
}
