// This file contains thin wrappers around the graph module
// for managing the graph structure of a bracket.
package internal

import (
	"iter"

	"github.com/dominikbraun/graph"
)

type GraphNode interface {
	// A key that is unique within one graph and
	// used as the node hash
	Key() int
}

func getNodeKey[T GraphNode](node T) int {
	return node.Key()
}

// A DependencyGraph is a directed graph whose edges point
// from a node to the nodes it depends on.
type DependencyGraph[T GraphNode] struct {
	graph.Graph[int, T]
	adjacencyMap map[int]map[int]graph.Edge[int]
}

func NewDependencyGraph[T GraphNode]() *DependencyGraph[T] {
	return &DependencyGraph[T]{
		Graph: graph.New(getNodeKey[T], graph.Directed()),
	}
}

func (g *DependencyGraph[T]) AddEdge(source, target T) error {
	g.adjacencyMap = nil
	return g.Graph.AddEdge(source.Key(), target.Key())
}

// Returns the node with the given key and whether
// it is part of the graph.
func (g *DependencyGraph[T]) Lookup(key int) (T, bool) {
	node, err := g.Vertex(key)
	if err != nil {
		var zero T
		return zero, false
	}
	return node, true
}

// Iterates all nodes reachable from start in breadth-first
// order together with their distance from start.
func (g *DependencyGraph[T]) BreadthSearchIter(start T) iter.Seq2[T, int] {
	iterator := func(yield func(v T, depth int) bool) {
		adjacencyMap := g.adjacency()

		// Vertices are dequeued level by level so the first
		// depth a vertex is assigned is its distance.
		// graph.BFSWithDepth is not used, it increments the depth
		// for every dequeued vertex instead of every level.
		depths := map[int]int{start.Key(): 0}

		visitor := func(key int) bool {
			depth := depths[key]
			for next := range adjacencyMap[key] {
				if _, ok := depths[next]; !ok {
					depths[next] = depth + 1
				}
			}

			v, _ := g.Vertex(key)
			return !yield(v, depth)
		}
		// BFS only errors when start is not a vertex, the
		// iteration is empty then
		_ = graph.BFS(g.Graph, start.Key(), visitor)
	}
	return iterator
}

func (g *DependencyGraph[T]) adjacency() map[int]map[int]graph.Edge[int] {
	if g.adjacencyMap == nil {
		// The map is rebuilt lazily after the last AddEdge
		g.adjacencyMap, _ = g.Graph.AdjacencyMap()
	}
	return g.adjacencyMap
}
