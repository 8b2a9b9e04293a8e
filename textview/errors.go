package textview

import "errors"

// ErrIndexOutOfBounds is flagged whenever a character position or range
// lies outside of the text.
var ErrIndexOutOfBounds = errors.New("textview: index out of bounds")
