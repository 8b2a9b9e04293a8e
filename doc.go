/*
Package lineindex keeps a multi-dimensional line index for a mutable text.

An editor has to answer questions like "which line holds character 4711",
"which line is displayed at y-offset 830.5" or "at which byte does row 12
start" after every keystroke, for documents with hundreds of thousands of
lines. Package lineindex answers them in O(log n) by keeping all lines of a
document in one augmented balanced tree, aggregating line length, byte
count and rendered height for every subtree.

A Document binds a text buffer to its line index. Edits are applied to the
text first, then reported to the index, which splits, merges and resizes
lines and reports the affected lines in a change set. Change sets may be
broadcast to downstream consumers, and lines may be measured for display.

Sub-packages:

  - rbtree: the augmented red-black tree
  - chunk: small UTF-8 text fragments
  - textview: a chunked text buffer addressed by character offsets
  - lines: the line manager
  - notify: broadcasting of change sets
  - measure: display width and soft-wrap based line heights
  - textfile: loading of text files into documents

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package lineindex

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// DocumentError is an error type for the lineindex module
type DocumentError string

func (e DocumentError) Error() string {
	return string(e)
}

// ErrDocumentCompleted signals that a builder has already completed a document
// and it's illegal to further add text.
const ErrDocumentCompleted = DocumentError("forbidden to add text; document has been completed")

// ErrIndexOutOfBounds is flagged whenever a document position is
// greater than the length of the document.
const ErrIndexOutOfBounds = DocumentError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = DocumentError("illegal arguments")

// ErrIllegalPosition is flagged for byte offsets inside of a UTF-8 sequence.
const ErrIllegalPosition = DocumentError("illegal position")

// ErrInvalidText is flagged for text which is not valid UTF-8.
const ErrInvalidText = DocumentError("text is not valid UTF-8")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
