package lines

import (
	"fmt"

	"github.com/npillmayer/lineindex/rbtree"
)

// LineData holds the per-line values of a document line.
//
// Clients must treat LineData as read-only; it is owned by the Manager.
type LineData struct {
	Length          int     // characters, including the delimiter
	DelimiterLength int     // 0, 1 or 2
	ByteCount       int     // UTF-8 bytes of the content, delimiter excluded
	Height          float64 // rendered height
}

// ContentLength returns the number of characters without the delimiter.
func (d *LineData) ContentLength() int {
	return d.Length - d.DelimiterLength
}

// Summary returns the tree weights of a line. Delimiters are ASCII, so the
// bytes a line covers in the document are its content bytes plus its
// delimiter length.
func (d *LineData) Summary() LineSummary {
	return LineSummary{
		Length: d.Length,
		Bytes:  d.ByteCount + d.DelimiterLength,
		Height: d.Height,
	}
}

func (d *LineData) String() string {
	return fmt.Sprintf("len=%d delim=%d bytes=%d h=%g", d.Length, d.DelimiterLength, d.ByteCount, d.Height)
}

// Line is a line of the document. A Line stays valid until it is removed by
// an edit; Line.ID() is its stable identity.
type Line = *rbtree.Node[*LineData, LineSummary]

// LineID is the stable identity of a line.
type LineID = rbtree.NodeID

// LineSummary aggregates line weights for tree nodes.
type LineSummary struct {
	Length int
	Bytes  int
	Height float64
}

// Monoid aggregates line summaries.
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() LineSummary { return LineSummary{} }

// Add combines two summaries.
func (Monoid) Add(left, right LineSummary) LineSummary {
	return LineSummary{
		Length: left.Length + right.Length,
		Bytes:  left.Bytes + right.Bytes,
		Height: left.Height + right.Height,
	}
}

// LengthDimension seeks by character offset.
type LengthDimension struct{}

// Zero returns the character origin.
func (LengthDimension) Zero() int { return 0 }

// Add accumulates line lengths.
func (LengthDimension) Add(acc int, s LineSummary) int { return acc + s.Length }

// Compare compares accumulated value to a seek target.
func (LengthDimension) Compare(acc, target int) int { return compare(acc, target) }

// ByteDimension seeks by byte offset.
type ByteDimension struct{}

// Zero returns the byte origin.
func (ByteDimension) Zero() int { return 0 }

// Add accumulates line byte counts.
func (ByteDimension) Add(acc int, s LineSummary) int { return acc + s.Bytes }

// Compare compares accumulated value to a seek target.
func (ByteDimension) Compare(acc, target int) int { return compare(acc, target) }

// HeightDimension seeks by vertical offset.
type HeightDimension struct{}

// Zero returns the top of the document.
func (HeightDimension) Zero() float64 { return 0 }

// Add accumulates line heights.
func (HeightDimension) Add(acc float64, s LineSummary) float64 { return acc + s.Height }

// Compare compares accumulated value to a seek target.
func (HeightDimension) Compare(acc, target float64) int { return compare(acc, target) }

func compare[K int | float64](acc, target K) int {
	switch {
	case acc < target:
		return -1
	case acc > target:
		return 1
	default:
		return 0
	}
}
