/*
Package lines maintains a line index for a mutable text buffer.

A Manager tracks the boundaries of every line of a document along three
dimensions at once: character offset, byte offset and rendered vertical
position. Lines are nodes of a single augmented red-black tree, which
aggregates line length, byte count and line height over every subtree, so
lookups by any of the three dimensions and by row are O(log n).

The manager does not store text. It reads characters from a StringView,
which must already reflect an edit when the edit is reported through
Insert or Remove. Both return a ChangeSet naming the lines which have been
inserted, removed or edited, for downstream consumers such as renderers or
syntax highlighters.

Line delimiters are '\n', '\r' and "\r\n". An edit may split a "\r\n" pair
into two lines or join a '\r' and a '\n' into one delimiter; the manager
splits and merges lines accordingly.

A Manager is not safe for concurrent use. All calls must happen on one
logical timeline, and queries must not be interleaved with an edit.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package lines

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// assert flags broken internal invariants. A failed assertion means the
// line tree can no longer be trusted, so it is not recoverable.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
