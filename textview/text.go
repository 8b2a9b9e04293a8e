package textview

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/lineindex/chunk"
	"github.com/npillmayer/lineindex/rbtree"
)

type chunkTree = rbtree.Tree[chunk.Chunk, chunk.Summary]
type chunkNode = rbtree.Node[chunk.Chunk, chunk.Summary]

// Text is a mutable text buffer addressed by character offsets.
//
// The zero value is not usable; create a Text with FromString.
type Text struct {
	tree  *chunkTree
	chars *rbtree.Cursor[chunk.Chunk, chunk.Summary, int]
	bytes *rbtree.Cursor[chunk.Chunk, chunk.Summary, int]
}

// FromString creates a text from a Go string, which must be valid UTF-8.
func FromString(s string) (*Text, error) {
	tree, err := rbtree.New(rbtree.Config[chunk.Chunk, chunk.Summary]{Monoid: chunk.Monoid{}})
	if err != nil {
		return nil, err
	}
	chars, err := rbtree.NewCursor[chunk.Chunk, chunk.Summary, int](tree, chunk.CharDimension{})
	if err != nil {
		return nil, err
	}
	bytes, err := rbtree.NewCursor[chunk.Chunk, chunk.Summary, int](tree, chunk.ByteDimension{})
	if err != nil {
		return nil, err
	}
	text := &Text{tree: tree, chars: chars, bytes: bytes}
	if err := text.Reset(s); err != nil {
		return nil, err
	}
	return text, nil
}

// Reset replaces the complete content of the text.
func (text *Text) Reset(s string) error {
	chunks, err := chunk.Split(s)
	if err != nil {
		return err
	}
	text.tree.BulkLoad(chunks)
	return nil
}

// Len returns the number of characters of the text.
func (text *Text) Len() int {
	return text.tree.Summary().Chars
}

// ByteLen returns the length of the text in bytes.
func (text *Text) ByteLen() int {
	return text.tree.Summary().Bytes
}

// String returns the complete text as a Go string. This may be an expensive
// operation, as it will collect all fragments to a single continuous string.
func (text *Text) String() string {
	var b strings.Builder
	b.Grow(text.ByteLen())
	for n := range text.tree.All() {
		b.WriteString(n.Item().String())
	}
	return b.String()
}

// Slice returns the characters of range r. It returns false if r does not
// lie completely inside the text.
func (text *Text) Slice(r Range) (string, bool) {
	if r.Location < 0 || r.Length < 0 || r.End() > text.Len() {
		return "", false
	}
	if r.Length == 0 {
		return "", true
	}
	node, start, _ := text.chars.Seek(r.Location)
	local := r.Location - start
	remaining := r.Length
	var b strings.Builder
	for remaining > 0 {
		c := node.Item()
		n := min(remaining, c.CharCount()-local)
		s, err := c.SliceChars(local, local+n)
		assert(err == nil, "textview: chunk slice out of range")
		b.WriteString(s)
		remaining -= n
		local = 0
		node = text.tree.Next(node)
		assert(node != nil || remaining == 0, "textview: text ends before range")
	}
	return b.String(), true
}

// Substring returns the characters of range r, or "" if r is not inside the
// text.
func (text *Text) Substring(r Range) string {
	s, _ := text.Slice(r)
	return s
}

// ByteCount returns the number of bytes the characters of r occupy.
func (text *Text) ByteCount(r Range) int {
	return len(text.Substring(r))
}

// CharOffset maps byte offset b to a character offset. b must be located
// at a UTF-8 rune boundary.
func (text *Text) CharOffset(b int) (int, error) {
	if b < 0 || b > text.ByteLen() {
		return 0, fmt.Errorf("%w: byte %d, length %d", ErrIndexOutOfBounds, b, text.ByteLen())
	}
	if b == text.ByteLen() {
		return text.Len(), nil
	}
	node, start, _ := text.bytes.Seek(b)
	c := node.Item()
	if !c.IsCharBoundary(b - start) {
		return 0, fmt.Errorf("%w: byte %d", chunk.ErrNotCharBoundary, b)
	}
	return text.chars.Position(node) + c.CharsBefore(b-start), nil
}

// Insert inserts s at character offset at.
func (text *Text) Insert(s string, at int) error {
	if at < 0 || at > text.Len() {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, at, text.Len())
	}
	if !utf8.ValidString(s) {
		return chunk.ErrInvalidUTF8
	}
	if s == "" {
		return nil
	}
	if text.tree.IsEmpty() {
		return text.Reset(s)
	}
	node, start, _ := text.chars.Seek(at)
	c := node.Item()
	split, err := c.ByteOffset(at - start)
	assert(err == nil, "textview: insert position outside of chunk")
	old := c.String()
	pieces, err := chunk.Split(old[:split] + s + old[split:])
	if err != nil {
		return err
	}
	text.tree.Replace(node, pieces[0])
	for _, piece := range pieces[1:] {
		node = text.tree.InsertAfter(node, piece)
	}
	tracer().Debugf("textview: inserted %d bytes at %d as %d chunk(s)", len(s), at, len(pieces))
	return nil
}

// Delete removes the characters of range r.
func (text *Text) Delete(r Range) error {
	if r.Location < 0 || r.Length < 0 || r.End() > text.Len() {
		return fmt.Errorf("%w: delete %v, length %d", ErrIndexOutOfBounds, r, text.Len())
	}
	remaining := r.Length
	var last *chunkNode
	for remaining > 0 {
		node, start, _ := text.chars.Seek(r.Location)
		c := node.Item()
		local := r.Location - start
		n := min(remaining, c.CharCount()-local)
		from, _ := c.ByteOffset(local)
		to, _ := c.ByteOffset(local + n)
		rest := c.String()[:from] + c.String()[to:]
		remaining -= n
		if rest == "" {
			last = text.tree.Prev(node)
			text.tree.Remove(node)
			continue
		}
		replacement, err := chunk.New(rest)
		assert(err == nil, "textview: cannot rebuild chunk after delete")
		text.tree.Replace(node, replacement)
		last = node
	}
	if last != nil {
		text.compact(last)
	}
	return nil
}

// compact merges node with its successor if both fit into one chunk.
func (text *Text) compact(node *chunkNode) {
	next := text.tree.Next(node)
	if next == nil {
		return
	}
	a, b := node.Item(), next.Item()
	if a.Len() >= chunk.MinBase && b.Len() >= chunk.MinBase {
		return
	}
	if a.Len()+b.Len() > chunk.MaxBase {
		return
	}
	merged, err := chunk.New(a.String() + b.String())
	assert(err == nil, "textview: cannot merge chunks")
	text.tree.Replace(node, merged)
	text.tree.Remove(next)
}

// NextDelimiter locates the first line delimiter at or after character
// offset from.
func (text *Text) NextDelimiter(from int) (Range, bool) {
	if from < 0 || from >= text.Len() {
		return Range{}, false
	}
	node, start, _ := text.chars.Seek(from)
	c := node.Item()
	offset, err := c.ByteOffset(from - start)
	assert(err == nil, "textview: delimiter search outside of chunk")
	for node != nil {
		c = node.Item()
		if p := c.NextBreak(offset); p >= 0 {
			loc := start + c.CharsBefore(p)
			if c.ByteAt(p) == '\n' {
				return Range{Location: loc, Length: 1}, true
			}
			if p+1 < c.Len() {
				if c.ByteAt(p+1) == '\n' {
					return Range{Location: loc, Length: 2}, true
				}
				return Range{Location: loc, Length: 1}, true
			}
			if next := text.tree.Next(node); next != nil && next.Item().ByteAt(0) == '\n' {
				return Range{Location: loc, Length: 2}, true
			}
			return Range{Location: loc, Length: 1}, true
		}
		start += c.CharCount()
		offset = 0
		node = text.tree.Next(node)
	}
	return Range{}, false
}

// Check validates the internal chunk tree (for tests).
func (text *Text) Check() error {
	for n := range text.tree.All() {
		if n.Item().IsEmpty() {
			return fmt.Errorf("%w: empty chunk", rbtree.ErrCorrupted)
		}
	}
	return text.tree.Check()
}

// FromChunks creates a text from a sequence of non-empty chunks.
func FromChunks(chunks []chunk.Chunk) (*Text, error) {
	text, err := FromString("")
	if err != nil {
		return nil, err
	}
	for _, c := range chunks {
		if c.IsEmpty() {
			return nil, fmt.Errorf("%w: empty chunk", rbtree.ErrCorrupted)
		}
	}
	text.tree.BulkLoad(chunks)
	return text, nil
}
