package textview

import (
	"iter"
)

// Delimiters returns an iterator over the line delimiters of s, in
// character coordinates. "\r\n" is reported as a single delimiter of
// length 2, a lone '\r' or '\n' as a delimiter of length 1.
func Delimiters(s string) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		char := 0
		for i := 0; i < len(s); i++ {
			b := s[i]
			switch {
			case b == '\r' && i+1 < len(s) && s[i+1] == '\n':
				if !yield(Range{Location: char, Length: 2}) {
					return
				}
				i++
				char += 2
				continue
			case b == '\r' || b == '\n':
				if !yield(Range{Location: char, Length: 1}) {
					return
				}
			}
			if b < 0x80 || b >= 0xC0 { // rune start
				char++
			}
		}
	}
}
