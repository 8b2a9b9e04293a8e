/*
Package textview provides a mutable, character-addressed text buffer.

A Text is the string view a line index works on: it hands out substrings by
character range and locates line delimiters ('\n', '\r' and "\r\n"). All
offsets are counted in characters (runes), not bytes.

Text is stored as a sequence of small UTF-8 chunks held in an augmented
red-black tree, summarized by byte and character counts. Lookups by
character offset are O(log n), edits touch only the chunks they overlap.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package textview

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
