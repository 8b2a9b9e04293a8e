package rbtree

import "iter"

// All returns an iterator over all nodes in sequence order.
//
// The tree must not be modified during iteration.
func (t *Tree[I, S]) All() iter.Seq[*Node[I, S]] {
	return func(yield func(*Node[I, S]) bool) {
		for n := t.First(); n != nil; n = t.Next(n) {
			if !yield(n) {
				return
			}
		}
	}
}

// Range returns an iterator over the nodes from index i (inclusive) to
// index j (exclusive).
func (t *Tree[I, S]) Range(i, j int) iter.Seq[*Node[I, S]] {
	return func(yield func(*Node[I, S]) bool) {
		if i < 0 {
			i = 0
		}
		n := t.At(i)
		for k := i; k < j && n != nil; k++ {
			if !yield(n) {
				return
			}
			n = t.Next(n)
		}
	}
}
