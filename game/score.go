package game

// Score weights each card by its position counted from the bottom of the
// deck, starting at 1, and sums the weighted values.
func Score(d Deck) int {
	total := 0
	for i, card := range d {
		total += (len(d) - i) * int(card)
	}
	return total
}
