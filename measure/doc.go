/*
Package measure computes rendered line heights for a line index.

A line index only knows estimated heights until lines are measured. A
Measurer takes the place of a renderer for fixed-width output: it computes
the display width of a line with Unicode East Asian Width rules (UAX #11)
over grapheme clusters, soft-wraps it at line-break opportunities (UAX #14)
using a first-fit strategy, and multiplies the resulting number of rows
with the height of a single row.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package measure

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
