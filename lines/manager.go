package lines

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/lineindex/rbtree"
	"github.com/npillmayer/lineindex/textview"
)

// StringView gives the manager read access to the current text. For edits,
// the view must already contain the edit when Insert or Remove is called.
type StringView interface {
	Len() int
	Substring(r textview.Range) string
	ByteCount(r textview.Range) int
	// NextDelimiter locates the first line delimiter at or after
	// character offset from.
	NextDelimiter(from int) (textview.Range, bool)
}

type lineTree = rbtree.Tree[*LineData, LineSummary]

// Manager maintains the lines of a text.
type Manager struct {
	view    StringView
	cfg     Config
	tree    *lineTree
	chars   *rbtree.Cursor[*LineData, LineSummary, int]
	bytes   *rbtree.Cursor[*LineData, LineSummary, int]
	heights *rbtree.Cursor[*LineData, LineSummary, float64]
	longest LineID // longest line found by the last Rebuild, 0 if none
}

// New creates a line manager reading from view. The new manager holds a
// single empty line; call Rebuild to index existing text.
func New(view StringView, cfg Config) (*Manager, error) {
	if view == nil {
		return nil, fmt.Errorf("%w: string view is required", ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	m := &Manager{view: view, cfg: cfg}
	tree, err := rbtree.New(rbtree.Config[*LineData, LineSummary]{
		Monoid:   Monoid{},
		Sentinel: m.emptyLine,
	})
	if err != nil {
		return nil, err
	}
	m.tree = tree
	if m.chars, err = rbtree.NewCursor[*LineData, LineSummary, int](tree, LengthDimension{}); err != nil {
		return nil, err
	}
	if m.bytes, err = rbtree.NewCursor[*LineData, LineSummary, int](tree, ByteDimension{}); err != nil {
		return nil, err
	}
	if m.heights, err = rbtree.NewCursor[*LineData, LineSummary, float64](tree, HeightDimension{}); err != nil {
		return nil, err
	}
	tree.BulkLoad(nil)
	return m, nil
}

// Config returns the configuration of m.
func (m *Manager) Config() Config {
	return m.cfg
}

func (m *Manager) emptyLine() *LineData {
	return &LineData{Height: m.cfg.EstimatedLineHeight}
}

// Rebuild replaces all lines with the lines of text. Every line gets the
// estimated line height. Rebuild remembers the longest line, see
// InitialLongestLine.
func (m *Manager) Rebuild(text string) {
	var items []*LineData
	est := m.cfg.EstimatedLineHeight
	chars, lineStart, lineStartByte := 0, 0, 0
	longest, longestLength := -1, -1
	emit := func(delimiter, contentBytes int) {
		l := &LineData{
			Length:          chars - lineStart,
			DelimiterLength: delimiter,
			ByteCount:       contentBytes,
			Height:          est,
		}
		if l.Length > longestLength {
			longest, longestLength = len(items), l.Length
		}
		items = append(items, l)
	}
	for i := 0; i < len(text); {
		switch b := text[i]; b {
		case '\r', '\n':
			delimiter := 1
			if b == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				delimiter = 2
			}
			chars += delimiter
			emit(delimiter, i-lineStartByte)
			i += delimiter
			lineStart, lineStartByte = chars, i
		default:
			// invalid bytes count as one character each, like in a view
			_, size := utf8.DecodeRuneInString(text[i:])
			chars++
			i += size
		}
	}
	emit(0, len(text)-lineStartByte)
	nodes := m.tree.BulkLoad(items)
	m.longest = nodes[longest].ID()
	tracer().Debugf("lines: rebuilt %d lines, longest is #%d with %d chars", len(nodes), longest, longestLength)
}

// Insert updates the lines after text has been inserted at character
// offset at. The string view must already contain text.
func (m *Manager) Insert(text string, at int) *ChangeSet {
	cs := NewChangeSet()
	if text == "" {
		return cs
	}
	line, lineStart, found := m.chars.Seek(at)
	assert(found, "lines: insert location outside of document")
	if d := line.Item(); at > lineStart+d.ContentLength() {
		// text lands between '\r' and '\n', splitting the delimiter
		line = m.setLength(line, d.Length-1, cs)
		line = m.insertLine(line, 1, cs)
	}
	textLength := utf8.RuneCountInString(text)
	delimiterEnd := 0
	for r := range textview.Delimiters(text) {
		lineStart := m.chars.Position(line)
		breakAt := at + r.End()
		rest := lineStart + line.Item().Length - (at + delimiterEnd)
		line = m.setLength(line, breakAt-lineStart, cs)
		line = m.insertLine(line, rest, cs)
		delimiterEnd = r.End()
	}
	if delimiterEnd != textLength {
		m.setLength(line, line.Item().Length+textLength-delimiterEnd, cs)
	}
	tracer().Debugf("lines: insert %d chars at %d: %v", textLength, at, cs)
	return cs
}

// Remove updates the lines after the characters of r have been removed.
// The string view must no longer contain them.
func (m *Manager) Remove(r textview.Range) *ChangeSet {
	cs := NewChangeSet()
	for r.Length > 0 {
		start, startLoc, found := m.chars.Seek(r.Location)
		assert(found, "lines: remove location outside of document")
		d := start.Item()
		if r.Location > startLoc+d.ContentLength() {
			// removal starts at the '\n' of a "\r\n"
			m.setLength(start, d.Length-1, cs)
			r.Length--
			continue
		}
		if r.End() < startLoc+d.Length {
			m.setLength(start, d.Length-r.Length, cs)
			break
		}
		removedInStart := startLoc + d.Length - r.Location
		assert(removedInStart > 0, "lines: remove does not touch its start line")
		end, endLoc, found := m.chars.Seek(r.End())
		assert(found, "lines: remove range outside of document")
		if end == start {
			m.setLength(start, d.Length-r.Length, cs)
			break
		}
		leftInEnd := endLoc + end.Item().Length - r.End()
		for line := m.tree.Next(start); ; {
			next := m.tree.Next(line)
			cs.MarkRemoved(line.ID())
			m.tree.Remove(line)
			if line == end {
				break
			}
			line = next
		}
		m.setLength(start, d.Length-removedInStart+leftInEnd, cs)
		break
	}
	tracer().Debugf("lines: remove %v: %v", r, cs)
	return cs
}

// insertLine inserts a line of length after line and returns it.
func (m *Manager) insertLine(after Line, length int, cs *ChangeSet) Line {
	line := m.tree.InsertAfter(after, m.emptyLine())
	cs.MarkInserted(line.ID())
	return m.setLength(line, length, cs)
}

// setLength changes the length of line and re-derives its delimiter and
// byte count from the string view. A line consisting of a single '\n'
// which follows a '\r' is merged into its predecessor. setLength returns
// the line which finally holds the characters.
func (m *Manager) setLength(line Line, length int, cs *ChangeSet) Line {
	for {
		cs.MarkEdited(line.ID())
		loc := m.chars.Position(line)
		delimiter := 0
		if length > 0 {
			switch m.charAt(loc + length - 1) {
			case "\r":
				delimiter = 1
			case "\n":
				switch {
				case length >= 2 && m.charAt(loc+length-2) == "\r":
					delimiter = 2
				case length == 1 && loc > 0 && m.charAt(loc-1) == "\r":
					prev := m.tree.Prev(line)
					assert(prev != nil, "lines: no line in front of a '\\n'")
					tracer().Debugf("lines: merging '\\n' at %d into previous line", loc)
					cs.MarkRemoved(line.ID())
					m.tree.Remove(line)
					line, length = prev, prev.Item().Length+1
					continue
				default:
					delimiter = 1
				}
			}
		}
		d := line.Item()
		d.Length = length
		d.DelimiterLength = delimiter
		d.ByteCount = m.view.ByteCount(textview.Range{Location: loc, Length: length - delimiter})
		m.tree.Update(line)
		return line
	}
}

func (m *Manager) charAt(pos int) string {
	return m.view.Substring(textview.Range{Location: pos, Length: 1})
}
