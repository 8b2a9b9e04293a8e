package rbtree

import "fmt"

// SummarizedItem ties a tree item to its summary type at compile time.
type SummarizedItem[S any] interface {
	Summary() S
}

// SummaryMonoid defines how summaries are aggregated up the tree.
//
// For summaries s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
type SummaryMonoid[S any] interface {
	Zero() S
	Add(left, right S) S
}

// Config configures an augmented red-black tree.
type Config[I SummarizedItem[S], S any] struct {
	// Monoid aggregates summaries up the tree.
	Monoid SummaryMonoid[S]
	// Sentinel, if set, creates the single item a tree holds after bulk
	// loading an empty sequence.
	Sentinel func() I
}

func (cfg Config[I, S]) validate() error {
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	return nil
}
