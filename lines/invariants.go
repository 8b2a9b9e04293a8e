package lines

import (
	"fmt"
	"io"

	"github.com/npillmayer/lineindex/textview"
)

// Check validates the line tree and compares every line against the string
// view. It is intended for tests and debugging.
//
// A "\r\n" may be split across two lines.
func (m *Manager) Check() error {
	if err := m.tree.Check(); err != nil {
		return err
	}
	if m.tree.Len() == 0 {
		return fmt.Errorf("%w: no lines", ErrInconsistent)
	}
	if m.Len() != m.view.Len() {
		return fmt.Errorf("%w: lines cover %d chars, text has %d", ErrInconsistent, m.Len(), m.view.Len())
	}
	loc, last := 0, m.tree.Last()
	for line := range m.tree.All() {
		d := line.Item()
		if d.DelimiterLength == 0 && line != last {
			return fmt.Errorf("%w: line at %d has no delimiter", ErrInconsistent, loc)
		}
		s := m.view.Substring(textview.Range{Location: loc, Length: d.Length})
		content, delimiter := s[:len(s)-d.DelimiterLength], s[len(s)-d.DelimiterLength:]
		if len(content) != d.ByteCount {
			return fmt.Errorf("%w: line at %d has %d bytes, counted %d", ErrInconsistent, loc, len(content), d.ByteCount)
		}
		switch delimiter {
		case "", "\n", "\r", "\r\n":
		default:
			return fmt.Errorf("%w: line at %d ends in %q", ErrInconsistent, loc, delimiter)
		}
		if delimiter == "" && line != last {
			return fmt.Errorf("%w: line at %d has no delimiter", ErrInconsistent, loc)
		}
		if r, ok := m.view.NextDelimiter(loc); ok && r.Location < loc+d.ContentLength() {
			return fmt.Errorf("%w: line at %d contains a delimiter at %d", ErrInconsistent, loc, r.Location)
		}
		loc += d.Length
	}
	return nil
}

// WriteDot writes the line tree in Graphviz DOT format, for debugging.
func (m *Manager) WriteDot(w io.Writer) error {
	return m.tree.WriteDot(w, func(d *LineData) string {
		return d.String()
	})
}
