package textview

import "fmt"

// Range is a range of characters, starting at Location and spanning Length
// characters.
type Range struct {
	Location int
	Length   int
}

// End returns the first character position after the range.
func (r Range) End() int {
	return r.Location + r.Length
}

// IsEmpty reports whether the range spans no characters.
func (r Range) IsEmpty() bool {
	return r.Length == 0
}

// Contains reports whether position pos lies inside the range.
func (r Range) Contains(pos int) bool {
	return pos >= r.Location && pos < r.End()
}

func (r Range) String() string {
	return fmt.Sprintf("[%d…%d)", r.Location, r.End())
}
