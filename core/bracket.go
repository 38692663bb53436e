package core

import (
	"errors"
	"slices"

	"github.com/google/uuid"

	"github.com/ezBadminton/gobracket/internal"
)

var (
	ErrTooFewEntries = errors.New("a bracket needs at least one entry")
)

// A Bracket is a single elimination tournament tree.
//
// The leaves are the entry slots in their left-to-right
// order. Every internal node is a match between the
// winners of its two children and the root is the final.
//
// The shape of the tree never changes after construction.
// Only the winners of matches are filled in over time.
type Bracket struct {
	id uuid.UUID

	root   *Node
	leaves []*Node

	// Indexed by match id - 1
	matches []*Node

	// Holds every node with edges from each match
	// to its two children
	graph *internal.DependencyGraph[*Node]

	nextLeafKey int
}

// Creates the bracket for the given players.
//
// The number of leaves is padded with byes to the next
// power of two. The leaves are filled with the players in
// the given order followed by the byes. Matches are created
// level by level going up from the leaves, pairing the nodes
// of a level from left to right. The match ids count up from
// 1 in that order.
//
// A single player results in a bracket without matches where
// the player is the root.
func NewBracket(players []string) (*Bracket, error) {
	if len(players) == 0 {
		return nil, ErrTooFewEntries
	}

	b := &Bracket{
		id:    uuid.New(),
		graph: internal.NewDependencyGraph[*Node](),
	}

	leafCount := nextPowerOf2(len(players))
	b.leaves = make([]*Node, 0, leafCount)
	b.matches = make([]*Node, 0, leafCount-1)

	for i := range leafCount {
		var leaf *Node
		if i < len(players) {
			leaf = newLeaf(players[i], b.takeLeafKey())
		} else {
			leaf = newByeLeaf(b.takeLeafKey())
		}
		if err := b.graph.AddVertex(leaf); err != nil {
			return nil, err
		}
		b.leaves = append(b.leaves, leaf)
	}

	level := slices.Clone(b.leaves)
	for len(level) > 1 {
		next, err := b.pairLevel(level)
		if err != nil {
			return nil, err
		}
		level = next
	}
	b.root = level[0]

	return b, nil
}

// Creates one match for each pair of nodes in the level
// and returns the matches as the next level.
func (b *Bracket) pairLevel(level []*Node) ([]*Node, error) {
	next := make([]*Node, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		left := level[i]

		var right *Node
		if i+1 < len(level) {
			right = level[i+1]
		} else {
			right = newByeLeaf(b.takeLeafKey())
			if err := b.graph.AddVertex(right); err != nil {
				return nil, err
			}
		}

		match, err := b.registerMatch(left, right)
		if err != nil {
			return nil, err
		}
		next = append(next, match)
	}

	return next, nil
}

func (b *Bracket) takeLeafKey() int {
	b.nextLeafKey -= 1
	return b.nextLeafKey
}

func (b *Bracket) ID() uuid.UUID {
	return b.id
}

// Returns the final match or the only leaf of a
// single player bracket.
func (b *Bracket) Root() *Node {
	return b.root
}

// Returns the leaves in left-to-right order
func (b *Bracket) Leaves() []*Node {
	return slices.Clone(b.leaves)
}

// Returns the occupant names of the leaves in left-to-right
// order including the byes
func (b *Bracket) LeafNames() []string {
	names := make([]string, len(b.leaves))
	for i, l := range b.leaves {
		names[i] = l.value
	}
	return names
}

func (b *Bracket) LeafCount() int {
	return len(b.leaves)
}

// Returns the number of rounds which is also the round
// number of the final.
func (b *Bracket) NumRounds() int {
	return getNumRounds(len(b.leaves))
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func getNumRounds(numSlots int) int {
	rounds := 0
	for numSlots > 1 {
		numSlots >>= 1
		rounds += 1
	}
	return rounds
}
