package lines

import (
	"fmt"
	"iter"

	"github.com/npillmayer/lineindex/textview"
)

// LinePosition is a row/column position in a document.
type LinePosition struct {
	Row    int
	Column int
}

func (p LinePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// LineDetails describes the line containing a character offset.
type LineDetails struct {
	Line          Line
	StartLocation int // character offset of the line start
	TotalLength   int // line length including its delimiter
	Position      LinePosition
}

// LineCount returns the number of lines. It is never less than 1.
func (m *Manager) LineCount() int {
	return m.tree.Len()
}

// Len returns the number of characters covered by all lines.
func (m *Manager) Len() int {
	return m.chars.Total()
}

// ByteLen returns the number of bytes covered by all lines.
func (m *Manager) ByteLen() int {
	return m.bytes.Total()
}

// ContentHeight returns the sum of all line heights.
func (m *Manager) ContentHeight() float64 {
	return m.heights.Total()
}

// FirstLine returns the first line of the document.
func (m *Manager) FirstLine() Line {
	return m.tree.First()
}

// LastLine returns the last line of the document.
func (m *Manager) LastLine() Line {
	return m.tree.Last()
}

// Next returns the line following line, or nil.
func (m *Manager) Next(line Line) Line {
	return m.tree.Next(line)
}

// Prev returns the line preceding line, or nil.
func (m *Manager) Prev(line Line) Line {
	return m.tree.Prev(line)
}

// Lines iterates over all lines in document order.
func (m *Manager) Lines() iter.Seq[Line] {
	return m.tree.All()
}

// Lookup finds a line by its identity. Removed lines are not found.
func (m *Manager) Lookup(id LineID) (Line, bool) {
	return m.tree.Lookup(id)
}

// InitialLongestLine returns the longest line found by the last Rebuild,
// as long as it has not been removed since.
func (m *Manager) InitialLongestLine() (Line, bool) {
	if m.longest == 0 {
		return nil, false
	}
	return m.tree.Lookup(m.longest)
}

// LineContainingCharacter returns the line holding character offset at.
// An offset equal to the document length resolves to the last line.
func (m *Manager) LineContainingCharacter(at int) (Line, bool) {
	line, _, found := m.chars.Seek(at)
	return line, found
}

// LineContainingByte returns the line holding byte offset at. An offset
// equal to the document's byte length resolves to the last line.
func (m *Manager) LineContainingByte(at int) (Line, bool) {
	line, _, found := m.bytes.Seek(at)
	return line, found
}

// LineContainingYOffset returns the line covering vertical offset y. An
// offset equal to the content height resolves to the last line.
func (m *Manager) LineContainingYOffset(y float64) (Line, bool) {
	line, _, found := m.heights.Seek(y)
	return line, found
}

// LineAtRow returns the line with zero-based index row.
func (m *Manager) LineAtRow(row int) (Line, bool) {
	line := m.tree.At(row)
	return line, line != nil
}

// LinesIn returns the lines touched by character range r, from the line
// containing its start through the line containing its end. If the end of r
// lies beyond the text, only the line containing its start is returned.
// LinesIn returns nil if the start of r is not inside the text.
func (m *Manager) LinesIn(r textview.Range) []Line {
	first, ok := m.LineContainingCharacter(r.Location)
	if !ok {
		return nil
	}
	lines := []Line{first}
	last, ok := m.LineContainingCharacter(r.End())
	if !ok || last == first {
		return lines
	}
	for line := range m.tree.Range(m.tree.Index(first)+1, m.tree.Index(last)+1) {
		lines = append(lines, line)
	}
	return lines
}

// Details returns the line containing character offset at, together with
// its location and the row/column position of at.
func (m *Manager) Details(at int) (LineDetails, bool) {
	line, start, found := m.chars.Seek(at)
	if !found {
		return LineDetails{}, false
	}
	return LineDetails{
		Line:          line,
		StartLocation: start,
		TotalLength:   line.Item().Length,
		Position:      LinePosition{Row: m.tree.Index(line), Column: at - start},
	}, true
}

// Position returns the row/column position of character offset at.
func (m *Manager) Position(at int) (LinePosition, bool) {
	details, ok := m.Details(at)
	return details.Position, ok
}

// Location returns the character offset where line starts.
func (m *Manager) Location(line Line) int {
	return m.chars.Position(line)
}

// ByteOffset returns the byte offset where line starts.
func (m *Manager) ByteOffset(line Line) int {
	return m.bytes.Position(line)
}

// YPosition returns the vertical offset of the top of line.
func (m *Manager) YPosition(line Line) float64 {
	return m.heights.Position(line)
}

// Row returns the zero-based index of line.
func (m *Manager) Row(line Line) int {
	return m.tree.Index(line)
}

// CharRange returns the character range of line, including its delimiter.
func (m *Manager) CharRange(line Line) textview.Range {
	return textview.Range{Location: m.Location(line), Length: line.Item().Length}
}

// Text returns the characters of line without its delimiter.
func (m *Manager) Text(line Line) string {
	d := line.Item()
	return m.view.Substring(textview.Range{Location: m.Location(line), Length: d.ContentLength()})
}

// SetHeight sets the rendered height of line. It returns false if the
// height did not change.
func (m *Manager) SetHeight(line Line, height float64) bool {
	d := line.Item()
	if diff := d.Height - height; diff > -heightEpsilon && diff < heightEpsilon {
		return false
	}
	d.Height = height
	m.tree.Update(line)
	return true
}
