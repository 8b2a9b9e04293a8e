package lineindex

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/npillmayer/lineindex/lines"
	"github.com/npillmayer/lineindex/textview"
)

// Document is an editing session on a text together with its line index.
//
// Every edit updates the text first and then the line index. If the
// document has been created with a hub, the change set of every edit is
// published to it.
//
// A Document is not safe for concurrent use.
type Document struct {
	text  *textview.Text
	lines *lines.Manager
	opts  options
}

// NewDocument creates a document for text s.
func NewDocument(s string, opts ...Option) (*Document, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidText
	}
	text, err := textview.FromString(s)
	if err != nil {
		return nil, err
	}
	return newDocument(text, s, collect(opts))
}

func newDocument(text *textview.Text, s string, o options) (*Document, error) {
	m, err := lines.New(text, o.lines)
	if err != nil {
		T().Errorf("document: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrIllegalArguments, err)
	}
	doc := &Document{text: text, lines: m, opts: o}
	doc.rebuild(s)
	return doc, nil
}

func (doc *Document) rebuild(s string) {
	doc.lines.Rebuild(s)
	if doc.opts.measurer != nil {
		doc.opts.measurer.Apply(doc.lines)
	}
	T().Debugf("document: %d chars in %d lines", doc.text.Len(), doc.lines.LineCount())
}

// Len returns the number of characters of the document.
func (doc *Document) Len() int {
	return doc.text.Len()
}

// LineCount returns the number of lines of the document.
func (doc *Document) LineCount() int {
	return doc.lines.LineCount()
}

// String returns the complete text of the document.
func (doc *Document) String() string {
	return doc.text.String()
}

// Text returns the text buffer of the document. Clients must not modify it
// directly, as this would invalidate the line index.
func (doc *Document) Text() *textview.Text {
	return doc.text
}

// Lines returns the line index of the document. Clients may query it and
// set line heights, but must edit through the document.
func (doc *Document) Lines() *lines.Manager {
	return doc.lines
}

// AllLines iterates over the lines of the document.
func (doc *Document) AllLines() iter.Seq[lines.Line] {
	return doc.lines.Lines()
}

// LineText returns the characters of line, with or without its delimiter.
func (doc *Document) LineText(line lines.Line, withDelimiter bool) string {
	if withDelimiter {
		return doc.text.Substring(doc.lines.CharRange(line))
	}
	return doc.lines.Text(line)
}

// Insert inserts s at character offset at.
func (doc *Document) Insert(s string, at int) (*lines.ChangeSet, error) {
	cs, err := doc.insert(s, at)
	if err != nil {
		return nil, err
	}
	doc.finish(cs)
	return cs, nil
}

// Remove deletes the characters of range r.
func (doc *Document) Remove(r textview.Range) (*lines.ChangeSet, error) {
	cs, err := doc.remove(r)
	if err != nil {
		return nil, err
	}
	doc.finish(cs)
	return cs, nil
}

// Replace replaces the characters of range r by s. The change set covers
// both the removal and the insertion.
func (doc *Document) Replace(r textview.Range, s string) (*lines.ChangeSet, error) {
	if !utf8.ValidString(s) {
		T().Errorf("document: replace with invalid text")
		return nil, ErrInvalidText
	}
	cs, err := doc.remove(r)
	if err != nil {
		return nil, err
	}
	ins, err := doc.insert(s, r.Location)
	assert(err == nil, "document: insert after remove failed")
	cs.Union(ins)
	doc.finish(cs)
	return cs, nil
}

// SetText replaces the complete text of the document and rebuilds the line
// index. Line identities from before are void afterwards.
func (doc *Document) SetText(s string) error {
	if !utf8.ValidString(s) {
		T().Errorf("document: set text with invalid text")
		return ErrInvalidText
	}
	if err := doc.text.Reset(s); err != nil {
		T().Errorf("document: %v", err)
		return err
	}
	doc.rebuild(s)
	return nil
}

func (doc *Document) insert(s string, at int) (*lines.ChangeSet, error) {
	if at < 0 || at > doc.text.Len() {
		T().Errorf("document: insert at %d, length is %d", at, doc.text.Len())
		return nil, fmt.Errorf("%w: insert at %d", ErrIndexOutOfBounds, at)
	}
	if !utf8.ValidString(s) {
		T().Errorf("document: insert of invalid text")
		return nil, ErrInvalidText
	}
	if err := doc.text.Insert(s, at); err != nil {
		T().Errorf("document: %v", err)
		return nil, err
	}
	return doc.lines.Insert(s, at), nil
}

func (doc *Document) remove(r textview.Range) (*lines.ChangeSet, error) {
	if r.Location < 0 || r.Length < 0 || r.End() > doc.text.Len() {
		T().Errorf("document: remove %v, length is %d", r, doc.text.Len())
		return nil, fmt.Errorf("%w: remove %v", ErrIndexOutOfBounds, r)
	}
	if err := doc.text.Delete(r); err != nil {
		T().Errorf("document: %v", err)
		return nil, err
	}
	return doc.lines.Remove(r), nil
}

// finish measures and publishes the lines of a completed edit.
func (doc *Document) finish(cs *lines.ChangeSet) {
	if doc.opts.measurer != nil {
		doc.opts.measurer.ApplyChanges(doc.lines, cs)
	}
	if doc.opts.hub != nil {
		doc.opts.hub.Publish(cs)
	}
}
