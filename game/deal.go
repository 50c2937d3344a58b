package game

import (
	"golang.org/x/exp/rand"
)

// Deal shuffles the cards 1..2n with the given seed and splits them into two
// decks of n cards. The same seed always yields the same decks.
func Deal(n int, seed uint64) (Deck, Deck) {
	rng := rand.New(rand.NewSource(seed))
	cards := make(Deck, 2*n)
	for i := range cards {
		cards[i] = Card(i + 1)
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards[:n].Copy(), cards[n:].Copy()
}
