package game

import (
	"combat/metrics"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecursiveGameRound(t *testing.T) {
	t.Run("low cards fall back to comparison", func(t *testing.T) {
		g := NewRecursiveGame(Deck{5, 1}, Deck{3, 2})

		outcome, err := g.Round()

		require.NoError(t, err)
		require.Nil(t, outcome)
		require.Equal(t, Deck{1, 5, 3}, g.State.Player1)
		require.Equal(t, Deck{2}, g.State.Player2)
	})

	t.Run("sub-game decides the round against the higher card", func(t *testing.T) {
		// Player 1 draws 2 over player 2's 1, but loses the sub-game [1, 3] vs [5].
		g := NewRecursiveGame(Deck{2, 1, 3}, Deck{1, 5})

		outcome, err := g.Round()

		require.NoError(t, err)
		require.Nil(t, outcome)
		require.Equal(t, Deck{1, 3}, g.State.Player1)
		require.Equal(t, Deck{5, 1, 2}, g.State.Player2)
	})

	t.Run("winning the last card ends the game", func(t *testing.T) {
		g := NewRecursiveGame(Deck{6, 2}, Deck{4})

		outcome, err := g.Round()

		require.NoError(t, err)
		require.NotNil(t, outcome)
		require.Equal(t, Player1, outcome.Winner)
		require.Equal(t, Deck{2, 6, 4}, outcome.Deck)
	})

	t.Run("round with an empty deck fails", func(t *testing.T) {
		g := NewRecursiveGame(Deck{6}, Deck{})

		_, err := g.Round()

		require.ErrorIs(t, err, ErrEmptyDeck)
	})
}

func TestPlayRecursiveGame(t *testing.T) {
	t.Run("sample game", func(t *testing.T) {
		p1, p2 := sampleDecks()
		c := metrics.NewCollector()

		outcome, err := PlayRecursiveGame(p1, p2, WithCollector(c), WithoutShortcut())

		require.NoError(t, err)
		require.Equal(t, Player2, outcome.Winner)
		require.Equal(t, Deck{7, 5, 6, 2, 4, 1, 10, 8, 9, 3}, outcome.Deck)
		require.Equal(t, 291, Score(outcome.Deck))

		m := c.Complete(int(outcome.Winner), 291)
		require.Equal(t, metrics.Recursive, m.Variant)
		require.Equal(t, 29, m.Rounds)
		require.Equal(t, 4, m.SubGames)
		require.Equal(t, 2, m.MaxDepth)
		require.Zero(t, m.Cycles)
	})

	t.Run("input decks are left untouched", func(t *testing.T) {
		p1, p2 := sampleDecks()

		_, err := PlayRecursiveGame(p1, p2)

		require.NoError(t, err)
		require.Equal(t, Deck{9, 2, 6, 3, 1}, p1)
		require.Equal(t, Deck{5, 8, 4, 7, 10}, p2)
	})

	t.Run("repeated state ends the game for player 1", func(t *testing.T) {
		c := metrics.NewCollector()

		outcome, err := PlayRecursiveGame(Deck{43, 19}, Deck{2, 29, 14}, WithCollector(c))

		require.NoError(t, err)
		require.Equal(t, Player1, outcome.Winner)
		require.Equal(t, Deck{43, 19}, outcome.Deck, "player 1's deck at the repeat, unplayed")

		m := c.Complete(int(outcome.Winner), Score(outcome.Deck))
		require.Equal(t, 6, m.Rounds)
		require.Equal(t, 1, m.Cycles)
	})

	t.Run("each instance detects the repeat on its own", func(t *testing.T) {
		playUntilRepeat := func(g *RecursiveGame) int {
			rounds := 0
			for {
				outcome, err := g.Round()
				require.NoError(t, err)
				if outcome != nil {
					return rounds
				}
				rounds++
			}
		}

		first := NewRecursiveGame(Deck{43, 19}, Deck{2, 29, 14})
		second := NewRecursiveGame(Deck{43, 19}, Deck{2, 29, 14})

		// Interleave the first rounds so a shared set would trip the second game early.
		_, err := first.Round()
		require.NoError(t, err)
		_, err = second.Round()
		require.NoError(t, err)

		require.Equal(t, 5, playUntilRepeat(first))
		require.Equal(t, 5, playUntilRepeat(second))
	})

	t.Run("tie is reported", func(t *testing.T) {
		_, err := PlayRecursiveGame(Deck{5, 1}, Deck{5, 2})

		require.ErrorIs(t, err, ErrTie)
	})

	t.Run("shortcut skips a sub-game player 1 cannot lose", func(t *testing.T) {
		with := metrics.NewCollector()
		without := metrics.NewCollector()

		got, err := PlayRecursiveGame(Deck{2, 7, 3}, Deck{1, 5, 4, 6}, WithCollector(with))
		require.NoError(t, err)
		want, err := PlayRecursiveGame(Deck{2, 7, 3}, Deck{1, 5, 4, 6}, WithCollector(without), WithoutShortcut())
		require.NoError(t, err)

		require.Equal(t, want, got)
		require.Equal(t, 1, with.Complete(1, 0).Shortcuts)
		m := without.Complete(1, 0)
		require.Equal(t, 1, m.SubGames)
		require.Zero(t, m.Shortcuts)
	})

	t.Run("shortcut never changes the outcome of dealt games", func(t *testing.T) {
		for seed := uint64(0); seed < 40; seed++ {
			p1, p2 := Deal(5+int(seed%4)*5, seed)

			got, err := PlayRecursiveGame(p1, p2)
			require.NoError(t, err)
			want, err := PlayRecursiveGame(p1, p2, WithoutShortcut())
			require.NoError(t, err)

			require.Equal(t, want, got, "seed %d", seed)
		}
	})

	t.Run("dealt games conserve cards every round", func(t *testing.T) {
		for seed := uint64(0); seed < 20; seed++ {
			p1, p2 := Deal(10, seed)
			g := NewRecursiveGame(p1, p2)
			for {
				outcome, err := g.Round()
				require.NoError(t, err)
				require.Equal(t, 20, g.State.Len(), "seed %d", seed)
				if outcome != nil {
					break
				}
			}
		}
	})
}
