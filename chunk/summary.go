package chunk

// Summary aggregates chunk-level text metrics for tree routing.
type Summary struct {
	Bytes int
	Chars int
}

// Summary returns aggregate metrics for this chunk.
func (c Chunk) Summary() Summary {
	return Summary{
		Bytes: c.Len(),
		Chars: c.CharCount(),
	}
}

// Monoid aggregates chunk summaries for tree nodes.
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() Summary { return Summary{} }

// Add combines two summaries.
func (Monoid) Add(left, right Summary) Summary {
	return Summary{
		Bytes: left.Bytes + right.Bytes,
		Chars: left.Chars + right.Chars,
	}
}

// ByteDimension seeks by byte count.
type ByteDimension struct{}

// Zero returns the byte origin.
func (ByteDimension) Zero() int { return 0 }

// Add accumulates bytes from summary into the dimension accumulator.
func (ByteDimension) Add(acc int, summary Summary) int {
	return acc + summary.Bytes
}

// Compare compares accumulated value to a seek target.
func (ByteDimension) Compare(acc int, target int) int {
	return compare(acc, target)
}

// CharDimension seeks by Unicode scalar value count.
type CharDimension struct{}

// Zero returns the character origin.
func (CharDimension) Zero() int { return 0 }

// Add accumulates character counts from summary.
func (CharDimension) Add(acc int, summary Summary) int {
	return acc + summary.Chars
}

// Compare compares accumulated value to a seek target.
func (CharDimension) Compare(acc int, target int) int {
	return compare(acc, target)
}

func compare(acc, target int) int {
	switch {
	case acc < target:
		return -1
	case acc > target:
		return 1
	default:
		return 0
	}
}
