package game

import "slices"

type Card int

// Deck is an ordered pile of cards: index 0 is the next card to play and the
// end of the slice is where won cards are placed.
type Deck []Card

func NewDeck(cards ...Card) Deck {
	return slices.Clone(Deck(cards))
}

func (d Deck) Len() int {
	return len(d)
}

func (d Deck) Empty() bool {
	return len(d) == 0
}

// PopFront removes and returns the top card.
func (d *Deck) PopFront() (Card, error) {
	if len(*d) == 0 {
		return 0, ErrEmptyDeck
	}
	card := (*d)[0]
	*d = (*d)[1:]
	return card, nil
}

func (d *Deck) PushBack(cards ...Card) {
	*d = append(*d, cards...)
}

// Prefix returns an independent copy of the top n cards.
func (d Deck) Prefix(n int) Deck {
	if n > len(d) {
		n = len(d)
	}
	return slices.Clone(d[:n])
}

func (d Deck) Copy() Deck {
	c := make(Deck, len(d))
	copy(c, d)
	return c
}

func (d Deck) Equal(other Deck) bool {
	return slices.Equal(d, other)
}

// Max returns the highest card, or 0 for an empty deck.
func (d Deck) Max() Card {
	if len(d) == 0 {
		return 0
	}
	return slices.Max(d)
}
