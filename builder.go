package lineindex

import (
	"unicode/utf8"

	"github.com/npillmayer/lineindex/chunk"
	"github.com/npillmayer/lineindex/textview"
)

// Builder incrementally stages text and finalizes it into a Document.
//
// Builder collects UTF-8 text as chunks and materializes the document only
// when Document() is called, indexing all lines in a single pass.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended chunks in reverse logical order.
	front []chunk.Chunk
	// back keeps appended chunks in logical order.
	back []chunk.Chunk

	done bool
	doc  *Document
}

// NewBuilder creates a new and empty document builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Document returns the document built from all staged text.
//
// It is illegal to continue adding text after Document has been called, but
// Document may be called multiple times; options are only honoured by the
// first call.
func (b *Builder) Document(opts ...Option) (*Document, error) {
	if b == nil {
		return nil, ErrIllegalArguments
	}
	if b.doc != nil {
		return b.doc, nil
	}
	text, err := textview.FromChunks(b.orderedChunks())
	if err != nil {
		return nil, err
	}
	doc, err := newDocument(text, text.String(), collect(opts))
	if err != nil {
		return nil, err
	}
	b.doc, b.done = doc, true
	b.front, b.back = nil, nil
	return doc, nil
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.doc = nil
}

// AppendString appends UTF-8 text to the staged build.
func (b *Builder) AppendString(text string) error {
	if !utf8.ValidString(text) {
		return ErrInvalidText
	}
	return b.AppendBytes([]byte(text))
}

// PrependString prepends UTF-8 text to the staged build.
func (b *Builder) PrependString(text string) error {
	if !utf8.ValidString(text) {
		return ErrInvalidText
	}
	return b.PrependBytes([]byte(text))
}

// AppendBytes appends UTF-8 bytes to the staged build. Small fragments are
// joined with the last staged chunk where it has room left.
func (b *Builder) AppendBytes(text []byte) error {
	if err := b.check(); err != nil {
		return err
	}
	if len(b.back) > 0 {
		last := b.back[len(b.back)-1]
		if last.Len()+len(text) <= chunk.MaxBase {
			if merged, err := chunk.NewBytes(append(last.Bytes(), text...)); err == nil {
				b.back[len(b.back)-1] = merged
				return nil
			}
		}
	}
	chunks, err := chunk.Split(string(text))
	if err != nil {
		return ErrInvalidText
	}
	b.back = append(b.back, chunks...)
	return nil
}

// PrependBytes prepends UTF-8 bytes to the staged build.
func (b *Builder) PrependBytes(text []byte) error {
	if err := b.check(); err != nil {
		return err
	}
	chunks, err := chunk.Split(string(text))
	if err != nil {
		return ErrInvalidText
	}
	// front is stored in reverse logical order.
	for i := len(chunks) - 1; i >= 0; i-- {
		b.front = append(b.front, chunks[i])
	}
	return nil
}

func (b *Builder) check() error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrDocumentCompleted
	}
	return nil
}

func (b *Builder) orderedChunks() []chunk.Chunk {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]chunk.Chunk, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}
