package nodetree

import "time"

// NodeID addresses a node in a Tree. IDs are stable until the tree is reset.
type NodeID int32

// NoParent is the parent of every root node.
const NoParent NodeID = -1

type (
	// Node holds the aggregated statistics of one scope identity.
	Node struct {
		Name     string
		Parent   NodeID
		Count    uint64
		Elapsed  time.Duration
		Children []NodeID
	}

	// key is the identity of a node: its label and its enclosing node.
	key struct {
		parent NodeID
		name   string
	}

	// Tree is an arena of nodes. It is not safe for concurrent use; callers
	// serialize access.
	Tree struct {
		nodes []Node
		roots []NodeID
		index map[key]NodeID
	}
)

func New() *Tree {
	return &Tree{
		index: make(map[key]NodeID),
	}
}

// Resolve returns the node identified by (name, parent), creating it and
// linking it under parent, or in the root list, if it doesn't exist yet.
func (t *Tree) Resolve(parent NodeID, name string) (id NodeID, created bool) {
	k := key{parent: parent, name: name}
	if id, ok := t.index[k]; ok {
		return id, false
	}
	id = NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Name: name, Parent: parent})
	if parent == NoParent {
		t.roots = append(t.roots, id)
	} else {
		p := &t.nodes[parent]
		p.Children = append(p.Children, id)
	}
	t.index[k] = id
	return id, true
}

// Record adds one completed invocation lasting d to the node.
func (t *Tree) Record(id NodeID, d time.Duration) {
	n := &t.nodes[id]
	n.Count++
	n.Elapsed += d
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// Walk visits every node depth-first, parents before children, siblings in
// first-seen order.
func (t *Tree) Walk(fn func(depth int, n *Node)) {
	for _, id := range t.roots {
		t.walk(id, 0, fn)
	}
}

func (t *Tree) walk(id NodeID, depth int, fn func(depth int, n *Node)) {
	n := &t.nodes[id]
	fn(depth, n)
	for _, child := range n.Children {
		t.walk(child, depth+1, fn)
	}
}

// Reset drops every node. Previously issued IDs become invalid.
func (t *Tree) Reset() {
	t.nodes = nil
	t.roots = nil
	t.index = make(map[key]NodeID)
}
