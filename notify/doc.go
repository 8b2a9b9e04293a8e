/*
Package notify broadcasts line change sets to downstream consumers.

Syntax highlighters, renderers and similar clients of a line index react to
edits by re-processing the lines an edit touched. A Hub fans out every
non-empty change set to all subscribers, so each of them may cancel or
restart stale work. Delivery is asynchronous: publishing never waits for a
subscriber to process a change set.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package notify

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
