package rbtree

// NodeID is the stable identity of a node. IDs are unique within a tree and
// are never reused, so a stale ID never resolves to a different node.
type NodeID uint64

type color uint8

const (
	red color = iota
	black
)

// Node is a tree node holding one item.
//
// Node pointers stay valid while the node is part of its tree. Rotations and
// removals of other nodes never move an item to a different node.
type Node[I SummarizedItem[S], S any] struct {
	item    I
	summary S   // aggregate over the subtree rooted here
	count   int // number of nodes in the subtree rooted here
	color   color
	id      NodeID
	parent  *Node[I, S]
	left    *Node[I, S]
	right   *Node[I, S]
	tree    *Tree[I, S] // nil once removed
}

// Item returns the item carried by this node.
func (n *Node[I, S]) Item() I {
	return n.item
}

// ID returns the stable identity of this node.
func (n *Node[I, S]) ID() NodeID {
	return n.id
}

// Subtree returns the aggregated summary of the subtree rooted at n.
func (n *Node[I, S]) Subtree() S {
	return n.summary
}

// Attached reports whether the node is currently part of a tree.
func (n *Node[I, S]) Attached() bool {
	return n != nil && n.tree != nil
}

func (n *Node[I, S]) detach() {
	n.parent, n.left, n.right = nil, nil, nil
	n.tree = nil
}

func isRed[I SummarizedItem[S], S any](n *Node[I, S]) bool {
	return n != nil && n.color == red
}

func isBlack[I SummarizedItem[S], S any](n *Node[I, S]) bool {
	return n == nil || n.color == black
}

func leftmost[I SummarizedItem[S], S any](n *Node[I, S]) *Node[I, S] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[I SummarizedItem[S], S any](n *Node[I, S]) *Node[I, S] {
	for n.right != nil {
		n = n.right
	}
	return n
}
