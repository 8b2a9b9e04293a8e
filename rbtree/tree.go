package rbtree

import (
	"math/bits"
)

// Tree is an augmented red-black tree ordered by sequence position.
//
// I is the item type, S is the summary type aggregated through the tree.
// The item type is tied to the summary type via SummarizedItem[S].
type Tree[I SummarizedItem[S], S any] struct {
	cfg    Config[I, S]
	root   *Node[I, S]
	nodes  map[NodeID]*Node[I, S]
	lastID NodeID
}

// New creates an empty tree with validated configuration.
func New[I SummarizedItem[S], S any](cfg Config[I, S]) (*Tree[I, S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[I, S]{
		cfg:   cfg,
		nodes: make(map[NodeID]*Node[I, S]),
	}, nil
}

// Config returns a copy of the tree configuration.
func (t *Tree[I, S]) Config() Config[I, S] {
	return t.cfg
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[I, S]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of nodes in the tree.
func (t *Tree[I, S]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.count
}

// Summary returns the root summary, or Zero() for an empty tree.
func (t *Tree[I, S]) Summary() S {
	if t.root == nil {
		return t.cfg.Monoid.Zero()
	}
	return t.root.summary
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
//
// Height walks the whole tree and is meant for tests and diagnostics.
func (t *Tree[I, S]) Height() int {
	var h func(*Node[I, S]) int
	h = func(n *Node[I, S]) int {
		if n == nil {
			return 0
		}
		return 1 + max(h(n.left), h(n.right))
	}
	return h(t.root)
}

// Contains reports whether n is a node of this tree.
func (t *Tree[I, S]) Contains(n *Node[I, S]) bool {
	return n != nil && n.tree == t
}

// Lookup resolves a node identity. It returns false if no node with this ID
// is currently part of the tree, e.g. because it has been removed.
func (t *Tree[I, S]) Lookup(id NodeID) (*Node[I, S], bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Clear removes all nodes. Removed nodes are detached and will no longer
// resolve through Lookup.
func (t *Tree[I, S]) Clear() {
	for id, n := range t.nodes {
		n.detach()
		delete(t.nodes, id)
	}
	t.root = nil
}

// BulkLoad replaces the contents of the tree by items, in order.
//
// The tree shape is built directly from the sequence in O(n): every subtree
// is split at its midpoint, which keeps all nil links within one level of
// each other. Nodes on the deepest level are colored red, all others black.
// If items is empty and the configuration has a Sentinel, the tree will hold
// a single sentinel item.
//
// BulkLoad returns the new nodes in sequence order.
func (t *Tree[I, S]) BulkLoad(items []I) []*Node[I, S] {
	t.Clear()
	if len(items) == 0 {
		if t.cfg.Sentinel == nil {
			return nil
		}
		items = []I{t.cfg.Sentinel()}
	}
	nodes := make([]*Node[I, S], len(items))
	for i, item := range items {
		nodes[i] = t.newNode(item)
	}
	deepest := bits.Len(uint(len(nodes))) - 1
	t.root = t.build(nodes, 0, deepest)
	t.root.parent = nil
	return nodes
}

func (t *Tree[I, S]) build(nodes []*Node[I, S], depth, deepest int) *Node[I, S] {
	if len(nodes) == 0 {
		return nil
	}
	mid := len(nodes) / 2
	n := nodes[mid]
	n.left = t.build(nodes[:mid], depth+1, deepest)
	n.right = t.build(nodes[mid+1:], depth+1, deepest)
	if n.left != nil {
		n.left.parent = n
	}
	if n.right != nil {
		n.right.parent = n
	}
	n.color = black
	if depth == deepest && depth > 0 {
		n.color = red
	}
	t.recompute(n)
	return n
}

// InsertAfter inserts a new node for item immediately following node in
// sequence order and returns it. If node is nil, the item is inserted at
// the front.
func (t *Tree[I, S]) InsertAfter(node *Node[I, S], item I) *Node[I, S] {
	assert(node == nil || t.Contains(node), "rbtree: InsertAfter called with node not in tree")
	n := t.newNode(item)
	switch {
	case t.root == nil:
		t.root = n
	case node == nil:
		first := leftmost(t.root)
		first.left = n
		n.parent = first
	case node.right == nil:
		node.right = n
		n.parent = node
	default:
		succ := leftmost(node.right)
		succ.left = n
		n.parent = succ
	}
	t.propagate(n.parent)
	t.insertFixup(n)
	return n
}

// Remove deletes node from the tree. It is a programming error to remove a
// node which is not part of this tree.
func (t *Tree[I, S]) Remove(z *Node[I, S]) {
	assert(t.Contains(z), "rbtree: Remove called with node not in tree")
	var x, xParent *Node[I, S]
	y := z
	removedColor := y.color
	switch {
	case z.left == nil:
		x, xParent = z.right, z.parent
		t.replaceChild(z.parent, z, z.right)
	case z.right == nil:
		x, xParent = z.left, z.parent
		t.replaceChild(z.parent, z, z.left)
	default:
		y = leftmost(z.right)
		removedColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.replaceChild(y.parent, y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.replaceChild(z.parent, z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	t.propagate(xParent)
	if removedColor == black {
		t.removeFixup(x, xParent)
	}
	delete(t.nodes, z.id)
	z.detach()
}

// Update recomputes the aggregates of node and all its ancestors. Clients
// must call Update after changing an item in place in a way that changes
// its summary.
func (t *Tree[I, S]) Update(node *Node[I, S]) {
	assert(t.Contains(node), "rbtree: Update called with node not in tree")
	t.propagate(node)
}

// Replace exchanges the item of node and updates the aggregates.
func (t *Tree[I, S]) Replace(node *Node[I, S], item I) {
	assert(t.Contains(node), "rbtree: Replace called with node not in tree")
	node.item = item
	t.propagate(node)
}

// --- Navigation ------------------------------------------------------------

// First returns the first node in sequence order, or nil.
func (t *Tree[I, S]) First() *Node[I, S] {
	if t.root == nil {
		return nil
	}
	return leftmost(t.root)
}

// Last returns the last node in sequence order, or nil.
func (t *Tree[I, S]) Last() *Node[I, S] {
	if t.root == nil {
		return nil
	}
	return rightmost(t.root)
}

// Next returns the successor of n, or nil.
func (t *Tree[I, S]) Next(n *Node[I, S]) *Node[I, S] {
	assert(t.Contains(n), "rbtree: Next called with node not in tree")
	if n.right != nil {
		return leftmost(n.right)
	}
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	return n.parent
}

// Prev returns the predecessor of n, or nil.
func (t *Tree[I, S]) Prev(n *Node[I, S]) *Node[I, S] {
	assert(t.Contains(n), "rbtree: Prev called with node not in tree")
	if n.left != nil {
		return rightmost(n.left)
	}
	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}
	return n.parent
}

// At returns the node at index in sequence order, or nil if index is out
// of range.
func (t *Tree[I, S]) At(index int) *Node[I, S] {
	if index < 0 || index >= t.Len() {
		return nil
	}
	n := t.root
	for n != nil {
		leftCount := 0
		if n.left != nil {
			leftCount = n.left.count
		}
		switch {
		case index < leftCount:
			n = n.left
		case index == leftCount:
			return n
		default:
			index -= leftCount + 1
			n = n.right
		}
	}
	assert(false, "rbtree: At routing exceeded subtree size")
	return nil
}

// Index returns the position of n in sequence order.
func (t *Tree[I, S]) Index(n *Node[I, S]) int {
	assert(t.Contains(n), "rbtree: Index called with node not in tree")
	index := 0
	if n.left != nil {
		index = n.left.count
	}
	for ; n.parent != nil; n = n.parent {
		if n == n.parent.right {
			index++
			if n.parent.left != nil {
				index += n.parent.left.count
			}
		}
	}
	return index
}

// --- Internals -------------------------------------------------------------

func (t *Tree[I, S]) newNode(item I) *Node[I, S] {
	t.lastID++
	n := &Node[I, S]{
		item:  item,
		color: red,
		id:    t.lastID,
		tree:  t,
	}
	t.recompute(n)
	t.nodes[n.id] = n
	return n
}

// recompute derives the aggregates of n from its item and its children.
// Summaries are always combined in the order left, self, right.
func (t *Tree[I, S]) recompute(n *Node[I, S]) {
	sum := t.cfg.Monoid.Zero()
	count := 1
	if n.left != nil {
		sum = t.cfg.Monoid.Add(sum, n.left.summary)
		count += n.left.count
	}
	sum = t.cfg.Monoid.Add(sum, n.item.Summary())
	if n.right != nil {
		sum = t.cfg.Monoid.Add(sum, n.right.summary)
		count += n.right.count
	}
	n.summary = sum
	n.count = count
}

func (t *Tree[I, S]) propagate(n *Node[I, S]) {
	for ; n != nil; n = n.parent {
		t.recompute(n)
	}
}

func (t *Tree[I, S]) replaceChild(parent, old, child *Node[I, S]) {
	switch {
	case parent == nil:
		t.root = child
	case parent.left == old:
		parent.left = child
	default:
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
}

// rotateLeft lifts x.right into the position of x. The node set of the
// rotated subtree does not change, so ancestors keep their aggregates.
func (t *Tree[I, S]) rotateLeft(x *Node[I, S]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceChild(x.parent, x, y)
	y.left = x
	x.parent = y
	t.recompute(x)
	t.recompute(y)
}

func (t *Tree[I, S]) rotateRight(x *Node[I, S]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.replaceChild(x.parent, x, y)
	y.right = x
	x.parent = y
	t.recompute(x)
	t.recompute(y)
}

func (t *Tree[I, S]) insertFixup(z *Node[I, S]) {
	for isRed(z.parent) {
		p := z.parent
		g := p.parent
		if p == g.left {
			if u := g.right; isRed(u) {
				p.color, u.color, g.color = black, black, red
				z = g
				continue
			}
			if z == p.right {
				z = p
				t.rotateLeft(z)
				p = z.parent
			}
			p.color, g.color = black, red
			t.rotateRight(g)
		} else {
			if u := g.left; isRed(u) {
				p.color, u.color, g.color = black, black, red
				z = g
				continue
			}
			if z == p.left {
				z = p
				t.rotateRight(z)
				p = z.parent
			}
			p.color, g.color = black, red
			t.rotateLeft(g)
		}
	}
	t.root.color = black
}

// removeFixup restores the red-black properties after removing a black
// node. x may be nil, therefore its parent is passed explicitly.
func (t *Tree[I, S]) removeFixup(x, parent *Node[I, S]) {
	for x != t.root && isBlack(x) {
		if x == parent.left {
			w := parent.right
			if isRed(w) {
				w.color, parent.color = black, red
				t.rotateLeft(parent)
				w = parent.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x, parent = parent, parent.parent
				continue
			}
			if isBlack(w.right) {
				w.left.color, w.color = black, red
				t.rotateRight(w)
				w = parent.right
			}
			w.color, parent.color = parent.color, black
			w.right.color = black
			t.rotateLeft(parent)
			x, parent = t.root, nil
		} else {
			w := parent.left
			if isRed(w) {
				w.color, parent.color = black, red
				t.rotateRight(parent)
				w = parent.left
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x, parent = parent, parent.parent
				continue
			}
			if isBlack(w.left) {
				w.right.color, w.color = black, red
				t.rotateLeft(w)
				w = parent.left
			}
			w.color, parent.color = parent.color, black
			w.left.color = black
			t.rotateRight(parent)
			x, parent = t.root, nil
		}
	}
	if x != nil {
		x.color = black
	}
}
