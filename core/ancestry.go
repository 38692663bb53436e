package core

import (
	"errors"
	"fmt"
)

var (
	ErrNodeNotFound = errors.New("node is not part of the bracket")
	ErrNotAMatch    = errors.New("node is not a match")
)

// Returns the match that has the given node as a direct
// child or nil when the node is the root or not in the tree.
//
// No parent links are stored. The tree is searched
// breadth-first from the root and every node is visited
// at most once.
func (b *Bracket) ParentOf(child *Node) *Node {
	if child == nil || child == b.root {
		return nil
	}

	queue := []*Node{b.root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.IsLeaf() {
			continue
		}
		if current.left == child || current.right == child {
			return current
		}
		queue = append(queue, current.left, current.right)
	}

	return nil
}

// Returns the node followed by all of its ancestors up to
// and including the root.
func (b *Bracket) ancestorChain(node *Node) ([]*Node, error) {
	if node == nil {
		return nil, ErrNodeNotFound
	}

	chain := []*Node{node}
	for current := node; current != b.root; {
		current = b.ParentOf(current)
		if current == nil {
			return nil, ErrNodeNotFound
		}
		chain = append(chain, current)
	}

	return chain, nil
}

// Returns the number of parent hops from the node to the root
func (b *Bracket) DepthOf(node *Node) (int, error) {
	chain, err := b.ancestorChain(node)
	if err != nil {
		return -1, err
	}
	return len(chain) - 1, nil
}

// Records the depth of every node in one breadth-first pass
// over the bracket graph.
func (b *Bracket) depthsByTraversal() map[*Node]int {
	depths := make(map[*Node]int, 2*len(b.leaves))
	for node, depth := range b.graph.BreadthSearchIter(b.root) {
		depths[node] = depth
	}
	return depths
}

// Returns the round that the match is played in.
//
// Round 1 is made up of the matches right above the leaves
// and the final is played in the last round.
func (b *Bracket) RoundOf(match *Node) (int, error) {
	if match == nil || match.IsLeaf() {
		return -1, ErrNotAMatch
	}

	depth, err := b.DepthOf(match)
	if err != nil {
		return -1, err
	}

	// All leaves have the same depth
	leafDepth, err := b.DepthOf(b.leaves[len(b.leaves)-1])
	if err != nil {
		return -1, err
	}

	return leafDepth - depth, nil
}

// Returns the deepest node that has both x and y in its
// subtree. A node is part of its own subtree.
func (b *Bracket) LowestCommonAncestor(x, y *Node) (*Node, error) {
	chainX, err := b.ancestorChain(x)
	if err != nil {
		return nil, fmt.Errorf("first node: %w", err)
	}

	ancestorsX := make(map[*Node]struct{}, len(chainX))
	for _, n := range chainX {
		ancestorsX[n] = struct{}{}
	}

	for current := y; current != nil; current = b.ParentOf(current) {
		if _, ok := ancestorsX[current]; ok {
			return current, nil
		}
	}

	return nil, fmt.Errorf("second node: %w", ErrNodeNotFound)
}
