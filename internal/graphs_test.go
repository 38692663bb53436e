package internal

import (
	"testing"
)

type testNode int

func (n testNode) Key() int {
	return int(n)
}

// Builds the graph
//
//	1 -> 2, 1 -> 3, 2 -> 4, 2 -> 5, 3 -> 6, 6 -> 7
func newTestGraph(t *testing.T) *DependencyGraph[testNode] {
	g := NewDependencyGraph[testNode]()
	for i := 1; i <= 7; i += 1 {
		if err := g.AddVertex(testNode(i)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	edges := [][2]testNode{{1, 2}, {1, 3}, {2, 4}, {2, 5}, {3, 6}, {6, 7}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return g
}

func TestBreadthSearchIter(t *testing.T) {
	g := newTestGraph(t)

	expectedDepths := map[testNode]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 6: 2, 7: 3}
	depths := make(map[testNode]int)
	lastDepth := 0
	for node, depth := range g.BreadthSearchIter(testNode(1)) {
		if depth < lastDepth {
			t.Fatal("the nodes were not visited level by level")
		}
		lastDepth = depth
		depths[node] = depth
	}

	if len(depths) != len(expectedDepths) {
		t.Fatalf("visited %d nodes, expected %d", len(depths), len(expectedDepths))
	}
	for node, depth := range expectedDepths {
		if depths[node] != depth {
			t.Fatalf("node %d has depth %d, expected %d", node, depths[node], depth)
		}
	}

	visited := 0
	for node := range g.BreadthSearchIter(testNode(3)) {
		visited += 1
		if node == 2 {
			t.Fatal("a node that is not reachable was visited")
		}
	}
	if visited != 3 {
		t.Fatal("the search from an inner node did not visit its subtree")
	}
}

func TestBreadthSearchIterBreak(t *testing.T) {
	g := newTestGraph(t)

	visited := 0
	for range g.BreadthSearchIter(testNode(1)) {
		visited += 1
		if visited == 2 {
			break
		}
	}
	if visited != 2 {
		t.Fatal("the iteration did not stop")
	}
}

func TestLookup(t *testing.T) {
	g := newTestGraph(t)

	node, ok := g.Lookup(6)
	if !ok || node != 6 {
		t.Fatal("an existing node was not found")
	}

	if _, ok := g.Lookup(9); ok {
		t.Fatal("a missing node was found")
	}
}

func TestBreadthSearchIterAfterNewEdge(t *testing.T) {
	g := newTestGraph(t)
	for range g.BreadthSearchIter(testNode(1)) {
	}

	if err := g.AddVertex(testNode(8)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddEdge(testNode(7), testNode(8)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for node, depth := range g.BreadthSearchIter(testNode(1)) {
		if node == 8 {
			found = true
			if depth != 4 {
				t.Fatalf("new node has depth %d, expected 4", depth)
			}
		}
	}
	if !found {
		t.Fatal("a node behind a new edge was not visited")
	}
}

// Siblings on one level must all get the same depth. Counting
// dequeued vertices would give 4 and 5 different depths.
func TestBreadthSearchIterWideLevel(t *testing.T) {
	g := NewDependencyGraph[testNode]()
	for i := 1; i <= 5; i += 1 {
		if err := g.AddVertex(testNode(i)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for i := 2; i <= 5; i += 1 {
		if err := g.AddEdge(testNode(1), testNode(i)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	for node, depth := range g.BreadthSearchIter(testNode(1)) {
		if node != 1 && depth != 1 {
			t.Fatalf("sibling %d has depth %d, expected 1", node, depth)
		}
	}
}

func TestBreadthSearchIterMissingStart(t *testing.T) {
	g := newTestGraph(t)

	for node := range g.BreadthSearchIter(testNode(42)) {
		t.Fatalf("node %d was visited from a missing start", node)
	}
}
