package lines

import "errors"

var (
	// ErrInvalidConfig signals an invalid manager configuration.
	ErrInvalidConfig = errors.New("lines: invalid configuration")
	// ErrInconsistent signals that the line index does not match its text.
	ErrInconsistent = errors.New("lines: index inconsistent with text")
)
