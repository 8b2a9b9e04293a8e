/*
Package rbtree provides an augmented red-black tree for positional indexes.

The tree is not a map or set container. Nodes are kept in sequence order
(document order), and every node carries a summary of its item. Summaries
are aggregated up the tree by a monoid, so each node knows the totals of
its subtree in every dimension the summary type carries. Seeking along any
one of those dimensions is done with a Cursor, which descends the tree by
subtree totals in O(log n).

Properties:
  - items are summarized at the type level (`item.Summary()`),
  - one summary type carries all numeric dimensions of an item at once,
  - nodes have a stable identity (`NodeID`) independent of their position,
  - `BulkLoad` builds a balanced tree from an ordered sequence in O(n),
  - `InsertAfter`, `Remove` and `Update` keep aggregates exact in O(log n),
  - `Cursor.Seek` and `Cursor.Position` translate between dimension
    offsets and nodes,
  - `At` and `Index` give rank/select by node count.

The tree is not safe for concurrent use. Mutations and queries must not be
interleaved across goroutines.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
