package game

import (
	"encoding/binary"
	"hash/fnv"
)

type StateHash uint64

// State is the pair of decks at the start of a round.
type State struct {
	Player1 Deck
	Player2 Deck
}

func (s State) Copy() State {
	return State{Player1: s.Player1.Copy(), Player2: s.Player2.Copy()}
}

func (s State) Equal(other State) bool {
	return s.Player1.Equal(other.Player1) && s.Player2.Equal(other.Player2)
}

func (s State) Len() int {
	return s.Player1.Len() + s.Player2.Len()
}

func (s *State) deck(p Player) *Deck {
	if p == Player1 {
		return &s.Player1
	}
	return &s.Player2
}

// Hash is order sensitive. Deck lengths are hashed too, so moving a card from
// the bottom of one deck to the top of the other changes the hash.
func (s State) Hash() StateHash {
	hasher := fnv.New64a()
	var buf [binary.MaxVarintLen64]byte

	for _, d := range []Deck{s.Player1, s.Player2} {
		hasher.Write(binary.AppendUvarint(buf[:0], uint64(len(d))))
		for _, card := range d {
			hasher.Write(binary.AppendUvarint(buf[:0], uint64(card)))
		}
	}

	return StateHash(hasher.Sum64())
}

// seenStates is the set of states observed by one game instance. States are
// bucketed by hash and compared exactly within a bucket.
type seenStates struct {
	buckets map[StateHash][]State
	size    int
}

func newSeenStates() seenStates {
	return seenStates{buckets: make(map[StateHash][]State)}
}

func (s seenStates) Contains(state State) bool {
	return s.find(state.Hash(), state)
}

// Add records a copy of state and reports whether it was new.
func (s *seenStates) Add(state State) bool {
	h := state.Hash()
	if s.find(h, state) {
		return false
	}
	s.buckets[h] = append(s.buckets[h], state.Copy())
	s.size++
	return true
}

func (s seenStates) Len() int {
	return s.size
}

func (s seenStates) find(h StateHash, state State) bool {
	for _, seen := range s.buckets[h] {
		if seen.Equal(state) {
			return true
		}
	}
	return false
}
