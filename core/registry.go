package core

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownMatch = errors.New("unknown match")
)

// Creates the match between left and right under the next
// free match id and links it into the bracket graph.
func (b *Bracket) registerMatch(left, right *Node) (*Node, error) {
	match := newMatch(left, right, len(b.matches)+1)

	if err := b.graph.AddVertex(match); err != nil {
		return nil, err
	}
	if err := b.graph.AddEdge(match, left); err != nil {
		return nil, err
	}
	if err := b.graph.AddEdge(match, right); err != nil {
		return nil, err
	}

	b.matches = append(b.matches, match)
	return match, nil
}

// Returns the match with the given id
func (b *Bracket) Match(id int) (*Node, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMatch, id)
	}
	match, ok := b.graph.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMatch, id)
	}
	return match, nil
}

// Returns all matches ordered by id
func (b *Bracket) Matches() []*Node {
	return slices.Clone(b.matches)
}

func (b *Bracket) NumMatches() int {
	return len(b.matches)
}

// Returns the undecided matches whose participants are
// both known, ordered by id.
func (b *Bracket) ReadyMatches() []*Node {
	ready := make([]*Node, 0, len(b.matches))
	for _, m := range b.matches {
		if m.decided {
			continue
		}
		if m.left.IsDecided() && m.right.IsDecided() {
			ready = append(ready, m)
		}
	}
	return ready
}

// Returns the tournament winner once the final is decided.
//
// The only player of a single player bracket is the
// champion right away. A final that was won by a bye
// has no champion.
func (b *Bracket) Champion() (string, bool) {
	name, ok := b.root.Participant()
	if !ok || b.root.bye {
		return "", false
	}
	return name, true
}
