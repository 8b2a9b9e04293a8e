package rbtree

import (
	"fmt"
	"reflect"
)

// Check validates structural tree invariants:
//
//   - the root is black and has no parent,
//   - parent links are consistent with child links,
//   - no red node has a red child,
//   - every path from a node to a nil link has the same number of black nodes,
//   - each node's count and summary equal the values freshly recomputed
//     over its subtree,
//   - the identity table holds exactly the nodes of the tree.
//
// Check visits every node and is meant to be used in tests.
func (t *Tree[I, S]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if len(t.nodes) != 0 {
			return fmt.Errorf("%w: empty tree holds %d identities", ErrCorrupted, len(t.nodes))
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupted)
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root is red", ErrCorrupted)
	}
	count, _, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != len(t.nodes) {
		return fmt.Errorf("%w: %d nodes reachable, %d identities", ErrCorrupted, count, len(t.nodes))
	}
	return nil
}

func (t *Tree[I, S]) checkNode(n *Node[I, S]) (count int, sum S, blackHeight int, err error) {
	if n.tree != t {
		return 0, sum, 0, fmt.Errorf("%w: node %d belongs to another tree", ErrCorrupted, n.id)
	}
	if t.nodes[n.id] != n {
		return 0, sum, 0, fmt.Errorf("%w: node %d missing from identity table", ErrCorrupted, n.id)
	}
	sum = t.cfg.Monoid.Zero()
	count = 1
	leftBH, rightBH := 1, 1
	if n.left != nil {
		if n.left.parent != n {
			return 0, sum, 0, fmt.Errorf("%w: broken parent link at node %d", ErrCorrupted, n.left.id)
		}
		if isRed(n) && isRed(n.left) {
			return 0, sum, 0, fmt.Errorf("%w: red node %d has red child", ErrCorrupted, n.id)
		}
		c, s, bh, e := t.checkNode(n.left)
		if e != nil {
			return 0, sum, 0, e
		}
		count += c
		sum = t.cfg.Monoid.Add(sum, s)
		leftBH = bh
	}
	sum = t.cfg.Monoid.Add(sum, n.item.Summary())
	if n.right != nil {
		if n.right.parent != n {
			return 0, sum, 0, fmt.Errorf("%w: broken parent link at node %d", ErrCorrupted, n.right.id)
		}
		if isRed(n) && isRed(n.right) {
			return 0, sum, 0, fmt.Errorf("%w: red node %d has red child", ErrCorrupted, n.id)
		}
		c, s, bh, e := t.checkNode(n.right)
		if e != nil {
			return 0, sum, 0, e
		}
		count += c
		sum = t.cfg.Monoid.Add(sum, s)
		rightBH = bh
	}
	if leftBH != rightBH {
		return 0, sum, 0, fmt.Errorf("%w: black height mismatch at node %d (%d != %d)",
			ErrCorrupted, n.id, leftBH, rightBH)
	}
	if count != n.count {
		return 0, sum, 0, fmt.Errorf("%w: node %d count %d, subtree has %d", ErrCorrupted, n.id, n.count, count)
	}
	if !reflect.DeepEqual(sum, n.summary) {
		return 0, sum, 0, fmt.Errorf("%w: node %d summary %+v, subtree sums to %+v",
			ErrCorrupted, n.id, n.summary, sum)
	}
	blackHeight = leftBH
	if n.color == black {
		blackHeight++
	}
	return count, sum, blackHeight, nil
}
