package rbtree

import "fmt"

// Dimension describes a seek dimension over summaries.
//
// K is the dimension key/position type. Add must be monotone: adding a
// summary never decreases the accumulator.
type Dimension[S any, K any] interface {
	Zero() K
	Add(acc K, summary S) K
	Compare(acc K, target K) int
}

// Cursor translates between positions along one dimension and tree nodes.
type Cursor[I SummarizedItem[S], S any, K any] struct {
	tree *Tree[I, S]
	dim  Dimension[S, K]
}

// NewCursor creates a cursor for a tree and a dimension.
func NewCursor[I SummarizedItem[S], S any, K any](tree *Tree[I, S], dim Dimension[S, K]) (*Cursor[I, S, K], error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: tree is nil", ErrInvalidConfig)
	}
	if dim == nil {
		return nil, fmt.Errorf("%w: dimension is nil", ErrInvalidDimension)
	}
	return &Cursor[I, S, K]{
		tree: tree,
		dim:  dim,
	}, nil
}

// Total returns the accumulated dimension value over the whole tree.
func (c *Cursor[I, S, K]) Total() K {
	if c.tree.root == nil {
		return c.dim.Zero()
	}
	return c.dim.Add(c.dim.Zero(), c.tree.root.summary)
}

// Seek finds the node whose range [start, start+weight) contains target,
// together with start.
//
// A target equal to the total resolves to the first node starting there,
// i.e. to the first of any trailing zero-weight nodes, or else to the last
// node. Targets below zero or beyond the total are not found. Any other
// target resolves to the node covering it, so zero-weight nodes in front
// of that node are skipped.
func (c *Cursor[I, S, K]) Seek(target K) (node *Node[I, S], start K, found bool) {
	acc := c.dim.Zero()
	if c.tree.root == nil || c.dim.Compare(acc, target) > 0 {
		return nil, acc, false
	}
	if c.dim.Compare(c.Total(), target) < 0 {
		return nil, acc, false
	}
	if n, start := c.descend(target, 1); n != nil {
		return n, start, true
	}
	// target equals the total: find the first node ending there
	n, start := c.descend(target, 0)
	if c.dim.Compare(start, target) < 0 {
		if next := c.tree.Next(n); next != nil {
			return next, c.dim.Add(start, n.item.Summary()), true
		}
	}
	return n, start, true
}

// descend finds the first node whose end compares to target with at least
// cmp, together with its start. It returns nil if there is no such node.
func (c *Cursor[I, S, K]) descend(target K, cmp int) (*Node[I, S], K) {
	acc := c.dim.Zero()
	n := c.tree.root
	for n != nil {
		if n.left != nil {
			leftEnd := c.dim.Add(acc, n.left.summary)
			if c.dim.Compare(leftEnd, target) >= cmp {
				n = n.left
				continue
			}
			acc = leftEnd
		}
		end := c.dim.Add(acc, n.item.Summary())
		if c.dim.Compare(end, target) >= cmp {
			return n, acc
		}
		acc = end
		n = n.right
	}
	return nil, acc
}

// Position returns the start of node along the cursor's dimension, i.e. the
// accumulated value of all nodes preceding it.
//
// Position walks from node up to the root. Whenever it arrives from a right
// child, the parent's left subtree and the parent itself precede node.
func (c *Cursor[I, S, K]) Position(node *Node[I, S]) K {
	assert(c.tree.Contains(node), "rbtree: Position called with node not in tree")
	acc := c.dim.Zero()
	if node.left != nil {
		acc = c.dim.Add(acc, node.left.summary)
	}
	for n := node; n.parent != nil; n = n.parent {
		if n == n.parent.right {
			if n.parent.left != nil {
				acc = c.dim.Add(acc, n.parent.left.summary)
			}
			acc = c.dim.Add(acc, n.parent.item.Summary())
		}
	}
	return acc
}
