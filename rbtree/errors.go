package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrInvalidDimension signals an invalid or missing dimension.
	ErrInvalidDimension = errors.New("rbtree: invalid dimension")
	// ErrCorrupted signals a violated structural invariant, found by Check.
	ErrCorrupted = errors.New("rbtree: invariant violated")
)
