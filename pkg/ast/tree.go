package ast

// Tree is the arena owning a syntax tree. Every node reachable from Root is
// registered under a NodeID, and the tree records the NodeID of each
// node's parent so that algorithms holding only a node can look upwards.
//
// Nodes never point at their parents. Moving a node to a different parent
// without calling Adopt leaves the recorded parent stale, which printing
// reports as a consistency error.
type Tree struct {
	Root Node

	nodes   []Node
	parents []NodeID
}

// NewTree adopts root and everything beneath it.
func NewTree(root Node) *Tree {
	t := &Tree{Root: root}
	t.Adopt()
	return t
}

// Adopt re-registers every node reachable from Root, reassigning IDs and
// parents. Call it after restructuring the tree.
func (t *Tree) Adopt() {
	t.nodes = t.nodes[:0]
	t.parents = t.parents[:0]
	if t.Root != nil {
		t.adopt(t.Root, 0)
	}
}

func (t *Tree) adopt(n Node, parent NodeID) {
	t.nodes = append(t.nodes, n)
	t.parents = append(t.parents, parent)
	id := NodeID(len(t.nodes))
	b := n.Base()
	b.ID = id
	if b.Comment != nil {
		t.adopt(b.Comment, id)
	}
	for _, child := range n.Children() {
		t.adopt(child, id)
	}
}

// Len returns the number of nodes in the tree, attached comments included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node registered under id.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if id <= 0 || int(id) > len(t.nodes) {
		return nil, false
	}
	return t.nodes[id-1], true
}

// Contains reports whether n is registered in this tree.
func (t *Tree) Contains(n Node) bool {
	found, ok := t.Node(n.Base().ID)
	return ok && found == n
}

// Parent returns the recorded parent of n. The root, and nodes not
// registered in this tree, have no parent.
func (t *Tree) Parent(n Node) (Node, bool) {
	if !t.Contains(n) {
		return nil, false
	}
	return t.Node(t.parents[n.Base().ID-1])
}

// Nodes returns every registered node in adoption (depth-first) order.
func (t *Tree) Nodes() []Node {
	return append([]Node(nil), t.nodes...)
}
