/*
Package textfile provides API helpers to load UTF-8 text files as documents.

Files are read completely and synchronously, fragment by fragment. The line
index of the resulting document is built in a single pass once the file
has been read.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
