package lineindex

import (
	"errors"
	"fmt"

	"github.com/npillmayer/lineindex/chunk"
	"github.com/npillmayer/lineindex/textview"
)

// Pos is an immutable position coordinate.
//
// A Pos carries both a character offset and a byte offset. Both values
// always refer to the same logical boundary in a specific document state.
type Pos struct {
	chars   int
	bytepos int
}

// Chars returns the character offset of p.
func (p Pos) Chars() int { return p.chars }

// Bytes returns the byte offset of p.
func (p Pos) Bytes() int { return p.bytepos }

func (p Pos) String() string {
	return fmt.Sprintf("(%d|%d)", p.chars, p.bytepos)
}

// PosStart returns the zero position of a document.
func (doc *Document) PosStart() Pos {
	return Pos{}
}

// PosEnd returns the end position of a document.
func (doc *Document) PosEnd() Pos {
	return Pos{chars: doc.lines.Len(), bytepos: doc.lines.ByteLen()}
}

// PosFromByte creates a position from a byte offset.
//
// The byte offset must point to a UTF-8 rune boundary.
func (doc *Document) PosFromByte(b int) (Pos, error) {
	c, err := doc.text.CharOffset(b)
	if errors.Is(err, chunk.ErrNotCharBoundary) {
		return Pos{}, ErrIllegalPosition
	} else if err != nil {
		return Pos{}, ErrIndexOutOfBounds
	}
	return Pos{chars: c, bytepos: b}, nil
}

// PosFromChar creates a position from a character offset.
func (doc *Document) PosFromChar(c int) (Pos, error) {
	line, ok := doc.lines.LineContainingCharacter(c)
	if !ok {
		return Pos{}, ErrIndexOutOfBounds
	}
	loc := doc.lines.Location(line)
	head := doc.text.Substring(textview.Range{Location: loc, Length: c - loc})
	return Pos{chars: c, bytepos: doc.lines.ByteOffset(line) + len(head)}, nil
}

// PosFromRowColumn creates a position from a row and a character column.
// The column may address the line's delimiter, but not beyond.
func (doc *Document) PosFromRowColumn(row, column int) (Pos, error) {
	line, ok := doc.lines.LineAtRow(row)
	if !ok || column < 0 || column > line.Item().Length {
		return Pos{}, ErrIndexOutOfBounds
	}
	return doc.PosFromChar(doc.lines.Location(line) + column)
}

// RowColumn returns the row and column of p.
func (doc *Document) RowColumn(p Pos) (row, column int, err error) {
	pos, ok := doc.lines.Position(p.chars)
	if !ok {
		return 0, 0, ErrIndexOutOfBounds
	}
	return pos.Row, pos.Column, nil
}
