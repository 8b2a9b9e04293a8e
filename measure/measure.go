package measure

import (
	"strings"
	"sync"

	"github.com/npillmayer/lineindex/lines"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var setupGraphemes sync.Once

// Measurer measures lines for a fixed-width display.
type Measurer struct {
	RowHeight float64        // height of one display row; 0 selects the default line height
	WrapWidth int            // wrap at this many columns; 0 disables wrapping
	Context   *uax11.Context // width context; nil selects uax11.LatinContext
}

func (ms Measurer) normalized() Measurer {
	if ms.RowHeight <= 0 {
		ms.RowHeight = lines.DefaultEstimatedLineHeight
	}
	if ms.Context == nil {
		ms.Context = uax11.LatinContext
	}
	if ms.WrapWidth < 0 {
		ms.WrapWidth = 0
	}
	return ms
}

// Width returns the number of display columns of s.
func (ms Measurer) Width(s string) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	ms = ms.normalized()
	return uax11.StringWidth(grapheme.StringFromString(s), ms.Context)
}

// Rows returns the number of display rows s occupies. Every line occupies
// at least one row, even if it is empty.
//
// s is broken first-fit at line-break opportunities. A segment wider than
// a complete row is broken hard.
func (ms Measurer) Rows(s string) int {
	ms = ms.normalized()
	if ms.WrapWidth == 0 || s == "" {
		return 1
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(strings.NewReader(s))
	rows, left := 1, ms.WrapWidth
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		w := ms.Width(frag)
		fit := ms.Width(strings.TrimRight(frag, " \t")) // trailing space may hang
		if fit > left && left < ms.WrapWidth {
			rows++
			left = ms.WrapWidth
		}
		for fit > left {
			rows++
			fit -= left
			w -= left
			left = ms.WrapWidth
		}
		left = max(left-w, 0)
	}
	return rows
}

// Height returns the rendered height of a line with content s.
func (ms Measurer) Height(s string) float64 {
	ms = ms.normalized()
	return float64(ms.Rows(s)) * ms.RowHeight
}

// Apply measures every line of m and returns the number of lines whose
// height changed.
func (ms Measurer) Apply(m *lines.Manager) int {
	changed := 0
	for line := range m.Lines() {
		if m.SetHeight(line, ms.Height(m.Text(line))) {
			changed++
		}
	}
	tracer().Debugf("measure: %d of %d line heights changed", changed, m.LineCount())
	return changed
}

// ApplyChanges measures the lines which cs reports as inserted or edited,
// and returns the number of lines whose height changed.
func (ms Measurer) ApplyChanges(m *lines.Manager, cs *lines.ChangeSet) int {
	changed := 0
	for _, ids := range [][]lines.LineID{cs.Inserted(), cs.Edited()} {
		for _, id := range ids {
			line, ok := m.Lookup(id)
			if !ok {
				continue
			}
			if m.SetHeight(line, ms.Height(m.Text(line))) {
				changed++
			}
		}
	}
	return changed
}
