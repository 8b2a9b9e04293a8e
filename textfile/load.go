package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/lineindex"
)

// ErrNotRegular is returned for paths which do not denote a regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// ErrNotText is returned for files which are not valid UTF-8.
var ErrNotText = errors.New("textfile: file is not valid UTF-8 text")

// Load reads a file, which must be a UTF-8 text file, and creates a document
// from it. Options are passed on to the document.
func Load(name string, opts ...lineindex.Option) (*lineindex.Document, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("textfile: %w", err)
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, fmt.Errorf("textfile: %w", err)
	}
	defer file.Close()
	doc, err := Read(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, name)
	}
	tracer().Debugf("textfile: loaded %s, %d bytes in %d lines", name, fi.Size(), doc.LineCount())
	return doc, nil
}

// Read creates a document from the text read from r.
func Read(r io.Reader, opts ...lineindex.Option) (*lineindex.Document, error) {
	b := lineindex.NewBuilder()
	br := bufio.NewReader(r)
	for {
		// fragments end at line ends, which never split a UTF-8 sequence
		fragment, err := br.ReadBytes('\n')
		if len(fragment) > 0 {
			if e := b.AppendBytes(fragment); e != nil {
				if errors.Is(e, lineindex.ErrInvalidText) {
					return nil, ErrNotText
				}
				return nil, e
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("textfile: %w", err)
		}
	}
	return b.Document(opts...)
}
