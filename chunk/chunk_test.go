package chunk

import (
	"errors"
	"strings"
	"testing"
)

func TestNewBuildsBitmaps(t *testing.T) {
	c, err := New("a\r\n😀b")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	if c.Len() != 8 || c.CharCount() != 5 {
		t.Fatalf("unexpected len/chars: %d/%d", c.Len(), c.CharCount())
	}
	// char starts at offsets: 0 ('a'), 1 ('\r'), 2 ('\n'), 3 ('😀'), 7 ('b')
	for _, off := range []int{0, 1, 2, 3, 7} {
		if c.chars&bit(off) == 0 {
			t.Fatalf("expected chars bit at %d", off)
		}
	}
	if c.returns&bit(1) == 0 || c.newlines&bit(2) == 0 {
		t.Fatalf("expected CR bit at 1 and LF bit at 2")
	}
}

func TestNewRejectsInvalidUTF8(t *testing.T) {
	_, err := New(string([]byte{0xff}))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	_, err = NewBytes([]byte{0xff})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8 from NewBytes, got %v", err)
	}
}

func TestNewRejectsOversizedText(t *testing.T) {
	_, err := New(strings.Repeat("a", MaxBase+1))
	if !errors.Is(err, ErrChunkTooLarge) {
		t.Fatalf("expected ErrChunkTooLarge, got %v", err)
	}
}

func TestNewBytesCopiesInput(t *testing.T) {
	src := []byte("ab😀\n")
	c, err := NewBytes(src)
	if err != nil {
		t.Fatalf("unexpected NewBytes error: %v", err)
	}
	src[0] = 'X'
	if c.String() != "ab😀\n" {
		t.Fatalf("chunk should not alias source bytes, got %q", c.String())
	}
}

func TestSplitCutsAtRuneBoundaries(t *testing.T) {
	text := strings.Repeat("x", MaxBase-2) + "😀" + strings.Repeat("y", 70)
	chunks, err := Split(text)
	if err != nil {
		t.Fatalf("unexpected Split error: %v", err)
	}
	var b strings.Builder
	for _, c := range chunks {
		if c.Len() > MaxBase || c.IsEmpty() {
			t.Fatalf("unexpected chunk size %d", c.Len())
		}
		b.WriteString(c.String())
	}
	if b.String() != text {
		t.Fatalf("split chunks do not reassemble the input")
	}
	if chunks[0].Len() != MaxBase-2 {
		t.Fatalf("expected first cut before the emoji, got %d bytes", chunks[0].Len())
	}
	if _, err := Split(string([]byte{'a', 0xff})); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestByteOffsetAndSliceChars(t *testing.T) {
	c, err := New("ab😀cd")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	want := []int{0, 1, 2, 6, 7, 8}
	for char, off := range want {
		got, err := c.ByteOffset(char)
		if err != nil || got != off {
			t.Fatalf("ByteOffset(%d) = %d, %v; want %d", char, got, err, off)
		}
	}
	if _, err := c.ByteOffset(6); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	s, err := c.SliceChars(2, 4)
	if err != nil || s != "😀c" {
		t.Fatalf("SliceChars(2,4) = %q, %v", s, err)
	}
	if _, err := c.SliceChars(3, 2); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds for reversed range, got %v", err)
	}
	if c.CharsBefore(6) != 3 {
		t.Fatalf("expected 3 chars before byte 6, got %d", c.CharsBefore(6))
	}
}

func TestNextBreak(t *testing.T) {
	c, err := New("ab\rc\nd")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	if got := c.NextBreak(0); got != 2 {
		t.Fatalf("NextBreak(0) = %d, want 2", got)
	}
	if got := c.NextBreak(3); got != 4 {
		t.Fatalf("NextBreak(3) = %d, want 4", got)
	}
	if got := c.NextBreak(5); got != -1 {
		t.Fatalf("NextBreak(5) = %d, want -1", got)
	}
	if !c.IsCharBoundary(6) || c.IsCharBoundary(7) {
		t.Fatalf("unexpected boundary behavior at chunk end")
	}
}
