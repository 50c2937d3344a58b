package input

import (
	"bufio"
	"combat/game"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadDecks reads two decks from r. Each deck is introduced by a "Player"
// header line and decks are separated by a blank line. Cards are listed top
// first, one per line. Lines that are not integers are skipped.
func ReadDecks(r io.Reader) (game.Deck, game.Deck, error) {
	decks := [2]game.Deck{{}, {}}
	current := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "Player") {
			continue
		}
		if line == "" {
			current = 1
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			continue
		}
		decks[current].PushBack(game.Card(n))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read decks: %w", err)
	}

	return decks[0], decks[1], nil
}

func ReadFile(path string) (game.Deck, game.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open deck file: %w", err)
	}
	defer f.Close()

	return ReadDecks(f)
}
