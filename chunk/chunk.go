package chunk

import (
	"math/bits"
	"unicode/utf8"
)

// Bitmap indexes byte-local properties inside a chunk.
//
// Bit i corresponds to byte offset i in chunk-local coordinates.
type Bitmap = uint64

const (
	// MaxBase is the maximum chunk payload length in bytes.
	MaxBase = 64
	// MinBase is the occupancy below which neighbouring chunks are merged.
	MinBase = MaxBase / 2
)

// Chunk stores a short run of UTF-8 text together with bitmaps for rune
// starts and line-break bytes, which makes character/byte coordinate math
// and delimiter search local bit operations.
//
// The chunk is immutable by convention: editing operations return new chunks.
type Chunk struct {
	chars    Bitmap // rune start offsets
	newlines Bitmap // '\n' offsets
	returns  Bitmap // '\r' offsets
	text     [MaxBase]byte
	n        uint8
}

// New creates a chunk from UTF-8 text.
//
// Returns an error if the text is not valid UTF-8 or exceeds MaxBase bytes.
func New(text string) (Chunk, error) {
	if !utf8.ValidString(text) {
		return Chunk{}, ErrInvalidUTF8
	}
	if len(text) > MaxBase {
		return Chunk{}, ErrChunkTooLarge
	}
	var c Chunk
	copy(c.text[:], text)
	c.n = uint8(len(text))
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			c.newlines |= bit(i)
		case '\r':
			c.returns |= bit(i)
		}
	}
	for i := range text {
		c.chars |= bit(i)
	}
	return c, nil
}

// NewBytes creates a chunk from UTF-8 bytes.
//
// Callers splitting raw input must cut at rune boundaries; byte slices
// starting or ending inside a multi-byte rune are rejected as invalid UTF-8.
func NewBytes(text []byte) (Chunk, error) {
	return New(string(text))
}

// Split cuts text into chunks of at most MaxBase bytes, cutting at rune
// boundaries only.
func Split(text string) ([]Chunk, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	chunks := make([]Chunk, 0, len(text)/MaxBase+1)
	for len(text) > 0 {
		cut := min(len(text), MaxBase)
		for cut < len(text) && !utf8.RuneStart(text[cut]) {
			cut--
		}
		c, err := New(text[:cut])
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
		text = text[cut:]
	}
	return chunks, nil
}

// Len returns the text length in bytes.
func (c Chunk) Len() int {
	return int(c.n)
}

// CharCount returns the number of runes in the chunk.
func (c Chunk) CharCount() int {
	return bits.OnesCount64(c.chars & prefixMask(c.Len()))
}

// IsEmpty reports whether the chunk has no bytes.
func (c Chunk) IsEmpty() bool {
	return c.n == 0
}

// String returns the chunk text.
func (c Chunk) String() string {
	return string(c.text[:c.n])
}

// Bytes returns a copied byte slice of the chunk text.
func (c Chunk) Bytes() []byte {
	return append([]byte(nil), c.text[:c.n]...)
}

// IsCharBoundary reports whether offset is a UTF-8 boundary inside this chunk.
func (c Chunk) IsCharBoundary(offset int) bool {
	if offset == c.Len() {
		return true
	}
	if offset < 0 || offset > c.Len() {
		return false
	}
	return c.chars&bit(offset) != 0
}

// ByteOffset maps a chunk-local character index to its byte offset.
// A character index equal to CharCount maps to Len.
func (c Chunk) ByteOffset(char int) (int, error) {
	if char < 0 || char > c.CharCount() {
		return 0, ErrIndexOutOfBounds
	}
	if char == c.CharCount() {
		return c.Len(), nil
	}
	starts := c.chars & prefixMask(c.Len())
	for ; char > 0; char-- {
		starts &= starts - 1 // drop lowest rune start
	}
	return bits.TrailingZeros64(starts), nil
}

// SliceChars returns the text of characters [i, j) in chunk-local
// character coordinates.
func (c Chunk) SliceChars(i, j int) (string, error) {
	if j < i {
		return "", ErrIndexOutOfBounds
	}
	from, err := c.ByteOffset(i)
	if err != nil {
		return "", err
	}
	to, err := c.ByteOffset(j)
	if err != nil {
		return "", err
	}
	return string(c.text[from:to]), nil
}

// NextBreak returns the byte offset of the first '\n' or '\r' at or after
// byte offset from, or -1 if there is none.
func (c Chunk) NextBreak(from int) int {
	if from < 0 {
		from = 0
	}
	breaks := (c.newlines | c.returns) & prefixMask(c.Len()) &^ prefixMask(from)
	if breaks == 0 {
		return -1
	}
	return bits.TrailingZeros64(breaks)
}

// ByteAt returns the byte at offset, which must be in range.
func (c Chunk) ByteAt(offset int) byte {
	return c.text[offset]
}

// CharsBefore counts the runes starting before byte offset.
func (c Chunk) CharsBefore(offset int) int {
	return bits.OnesCount64(c.chars & prefixMask(min(offset, c.Len())))
}

// --- Bitmap helpers --------------------------------------------------------

func bit(offset int) Bitmap {
	if offset < 0 || offset >= MaxBase {
		return 0
	}
	return Bitmap(1) << uint(offset)
}

func prefixMask(offset int) Bitmap {
	switch {
	case offset <= 0:
		return 0
	case offset >= MaxBase:
		return ^Bitmap(0)
	default:
		return (Bitmap(1) << uint(offset)) - 1
	}
}
