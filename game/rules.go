package game

import (
	"combat/meta"
	"fmt"
)

// resolveRound applies the plain comparison rule.
func resolveRound(card1, card2 Card) (Player, error) {
	switch {
	case card1 > card2:
		return Player1, nil
	case card2 > card1:
		return Player2, nil
	default:
		return 0, fmt.Errorf("%w: both players drew %d", ErrTie, card1)
	}
}

// draw removes the top card of each deck.
func draw(s *State) (Card, Card, error) {
	card1, err := s.Player1.PopFront()
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", Player1, err)
	}
	card2, err := s.Player2.PopFront()
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", Player2, err)
	}
	return card1, card2, nil
}

// award gives both drawn cards to the round winner, winner's card first.
func award(s *State, winner Player, card1, card2 Card) {
	if winner == Player1 {
		s.Player1.PushBack(card1, card2)
	} else {
		s.Player2.PushBack(card2, card1)
	}
}

// Validate checks the decks are well formed: every card in range and no card
// repeated within one deck. Cards may repeat across decks.
func Validate(player1, player2 Deck) error {
	for i, d := range []Deck{player1, player2} {
		p := Player(i + 1)
		seen := make(map[Card]bool, len(d))
		for _, card := range d {
			if card < 1 || card > meta.MAX_CARD_VALUE {
				return fmt.Errorf("%s: %w: %d", p, ErrInvalidCard, card)
			}
			if seen[card] {
				return fmt.Errorf("%s: %w: %d", p, ErrDuplicateCard, card)
			}
			seen[card] = true
		}
	}
	return nil
}
