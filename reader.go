package lineindex

import (
	"io"

	"github.com/npillmayer/lineindex/lines"
)

// Reader returns a reader for the bytes of doc. The reader proceeds line
// by line; the document must not be edited while reading.
func (doc *Document) Reader() io.Reader {
	return &lineReader{doc: doc, line: doc.lines.FirstLine()}
}

type lineReader struct {
	doc  *Document
	line lines.Line
	buf  string
}

func (lr *lineReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if lr.buf == "" {
			if lr.line == nil {
				break
			}
			lr.buf = lr.doc.LineText(lr.line, true)
			lr.line = lr.doc.lines.Next(lr.line)
			continue
		}
		k := copy(p[n:], lr.buf)
		lr.buf = lr.buf[k:]
		n += k
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}
