package core

const (
	// The occupant of a padding slot
	ByeName = "BYE"

	// Stands in for a participant or winner that is not known yet
	Undetermined = "?"
)

// A Node is one spot in the bracket tree.
//
// A Node can represent one of 2 things:
//   - A leaf: an entry slot that is occupied by a player
//     or by a bye.
//   - A match: an internal node with exactly two children
//     whose value is the winner once the match is decided.
//
// Nodes do not know their parent. The parent of a node is
// derived from the tree by the bracket's ancestry methods.
type Node struct {
	left, right *Node

	// The occupant's name for leaves, the winner's
	// name for decided matches
	value string

	// True for bye leaves and for matches that were
	// won by a bye
	bye bool

	decided bool

	// Graph hash. Equal to the match id for matches
	// and negative for leaves.
	key int

	matchID int
}

func newLeaf(name string, key int) *Node {
	return &Node{value: name, key: key}
}

func newByeLeaf(key int) *Node {
	return &Node{value: ByeName, bye: true, key: key}
}

func newMatch(left, right *Node, id int) *Node {
	return &Node{left: left, right: right, key: id, matchID: id}
}

func (n *Node) Key() int {
	return n.key
}

// Returns the match id or 0 when the node is a leaf
func (n *Node) MatchID() int {
	return n.matchID
}

func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *Node) IsMatch() bool {
	return !n.IsLeaf()
}

func (n *Node) Left() *Node {
	return n.left
}

func (n *Node) Right() *Node {
	return n.right
}

// Returns whether this node is an effective bye.
//
// Effective bye means it is also true for a match
// that was won by a bye (both of its sides were byes).
func (n *Node) IsBye() bool {
	return n.bye
}

// Returns true for leaves and for decided matches.
func (n *Node) IsDecided() bool {
	return n.IsLeaf() || n.decided
}

// Returns the name that this node sends into its parent
// match and whether it is known yet.
func (n *Node) Participant() (string, bool) {
	if !n.IsDecided() {
		return Undetermined, false
	}
	return n.value, true
}

// Returns the winner of a decided match.
func (n *Node) Winner() (string, bool) {
	if n.IsLeaf() || !n.decided {
		return "", false
	}
	return n.value, true
}

func (n *Node) String() string {
	name, _ := n.Participant()
	return name
}

// Marks the match as won by the given side. This is the
// only place where the tree is mutated after construction.
func (n *Node) setWinner(side *Node) {
	n.value = side.value
	n.bye = side.bye
	n.decided = true
}
