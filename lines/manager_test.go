package lines

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/lineindex/textview"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type shape struct {
	length, delimiter, bytes int
}

func setup(t *testing.T, s string) (*textview.Text, *Manager) {
	t.Helper()
	text, err := textview.FromString(s)
	if err != nil {
		t.Fatal(err)
	}
	m, err := New(text, Config{})
	if err != nil {
		t.Fatal(err)
	}
	m.Rebuild(s)
	if err := m.Check(); err != nil {
		t.Fatalf("after rebuild of %q: %v", s, err)
	}
	return text, m
}

func shapes(m *Manager) []shape {
	var s []shape
	for line := range m.Lines() {
		d := line.Item()
		s = append(s, shape{d.Length, d.DelimiterLength, d.ByteCount})
	}
	return s
}

func expectShapes(t *testing.T, m *Manager, want []shape) {
	t.Helper()
	got := shapes(m)
	if len(got) != len(want) {
		t.Fatalf("expected %d lines %v, have %d lines %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %v, have %v", i, want[i], got[i])
		}
	}
}

func insert(t *testing.T, text *textview.Text, m *Manager, s string, at int) *ChangeSet {
	t.Helper()
	if err := text.Insert(s, at); err != nil {
		t.Fatal(err)
	}
	cs := m.Insert(s, at)
	if err := m.Check(); err != nil {
		t.Fatalf("after inserting %q at %d: %v", s, at, err)
	}
	return cs
}

func remove(t *testing.T, text *textview.Text, m *Manager, r textview.Range) *ChangeSet {
	t.Helper()
	if err := text.Delete(r); err != nil {
		t.Fatal(err)
	}
	cs := m.Remove(r)
	if err := m.Check(); err != nil {
		t.Fatalf("after removing %v: %v", r, err)
	}
	return cs
}

func TestRebuildCountsInvalidBytes(t *testing.T) {
	text, _ := textview.FromString("")
	m, err := New(text, Config{})
	if err != nil {
		t.Fatal(err)
	}
	s := "a\xe2\x82\nb"
	m.Rebuild(s)
	expectShapes(t, m, []shape{{4, 1, 3}, {1, 0, 1}})
	if m.Len() != utf8.RuneCountInString(s) {
		t.Errorf("expected %d characters, have %d", utf8.RuneCountInString(s), m.Len())
	}
}

func TestNewManager(t *testing.T) {
	text, _ := textview.FromString("")
	m, err := New(text, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if m.LineCount() != 1 || m.Len() != 0 {
		t.Fatalf("expected a single empty line, have %d lines", m.LineCount())
	}
	if m.ContentHeight() != DefaultEstimatedLineHeight {
		t.Errorf("expected content height %g, have %g", DefaultEstimatedLineHeight, m.ContentHeight())
	}
	if _, err := New(nil, Config{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for missing view, got %v", err)
	}
	if _, err := New(text, Config{EstimatedLineHeight: math.NaN()}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for NaN height, got %v", err)
	}
}

func TestRebuild(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		text string
		want []shape
	}{
		{"", []shape{{0, 0, 0}}},
		{"abc", []shape{{3, 0, 3}}},
		{"a\nb", []shape{{2, 1, 1}, {1, 0, 1}}},
		{"a\r\nb\r", []shape{{3, 2, 1}, {2, 1, 1}, {0, 0, 0}}},
		{"\n\n", []shape{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}}},
		{"x\r\r\n", []shape{{2, 1, 1}, {2, 2, 0}, {0, 0, 0}}},
		{"Grüße\n世界", []shape{{6, 1, 7}, {2, 0, 6}}},
	}
	for _, tt := range tests {
		_, m := setup(t, tt.text)
		expectShapes(t, m, tt.want)
		if m.ByteLen() != len(tt.text) {
			t.Errorf("%q: expected %d bytes, have %d", tt.text, len(tt.text), m.ByteLen())
		}
	}
}

func TestInsertIntoCRLF(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text, m := setup(t, "ab\r\ncd")
	first := m.FirstLine()
	cs := insert(t, text, m, "X", 3)
	expectShapes(t, m, []shape{{3, 1, 2}, {2, 1, 1}, {2, 0, 2}})
	if len(cs.Inserted()) != 1 || len(cs.Removed()) != 0 {
		t.Errorf("expected one inserted line, have %v", cs)
	}
	if !cs.WasEdited(first.ID()) {
		t.Errorf("expected first line to be edited, have %v", cs)
	}
	if m.Text(m.tree.At(1)) != "X" {
		t.Errorf("expected second line to read X, have %q", m.Text(m.tree.At(1)))
	}
}

func TestInsertCRLFIntoCRLF(t *testing.T) {
	text, m := setup(t, "ab\r\ncd")
	insert(t, text, m, "\n", 3)
	expectShapes(t, m, []shape{{4, 2, 2}, {1, 1, 0}, {2, 0, 2}})
}

func TestInsertJoinsCRLF(t *testing.T) {
	text, m := setup(t, "ab\rcd")
	second, _ := m.LineAtRow(1)
	cs := insert(t, text, m, "\n", 3)
	expectShapes(t, m, []shape{{4, 2, 2}, {2, 0, 2}})
	if !cs.WasRemoved(second.ID()) {
		t.Errorf("expected the old second line to be removed, have %v", cs)
	}
	if len(cs.Inserted()) != 1 {
		t.Errorf("expected one inserted line, have %v", cs)
	}
	if second.Attached() {
		t.Errorf("expected the removed line to be detached")
	}
}

func TestInsertMultipleLines(t *testing.T) {
	text, m := setup(t, "abcd\nxy")
	cs := insert(t, text, m, "1\n2\r\n3\r", 2)
	// "ab1\n" "2\r\n" "3\r" "cd\n" "xy"
	expectShapes(t, m, []shape{{4, 1, 3}, {3, 2, 1}, {2, 1, 1}, {3, 1, 2}, {2, 0, 2}})
	if len(cs.Inserted()) != 3 {
		t.Errorf("expected three inserted lines, have %v", cs)
	}
	insert(t, text, m, "tail", m.Len())
	expectShapes(t, m, []shape{{4, 1, 3}, {3, 2, 1}, {2, 1, 1}, {3, 1, 2}, {6, 0, 6}})
	insert(t, text, m, "\n", m.Len())
	if m.LineCount() != 6 || m.LastLine().Item().Length != 0 {
		t.Errorf("expected a trailing empty line, have %v", shapes(m))
	}
}

func TestRemoveJoinsLines(t *testing.T) {
	text, m := setup(t, "ab\r\ncd")
	second, _ := m.LineAtRow(1)
	cs := remove(t, text, m, textview.Range{Location: 2, Length: 2})
	expectShapes(t, m, []shape{{4, 0, 4}})
	if !cs.WasRemoved(second.ID()) || !cs.WasEdited(m.FirstLine().ID()) {
		t.Errorf("unexpected change set %v", cs)
	}
}

func TestRemoveMergesCRLF(t *testing.T) {
	text, m := setup(t, "ab\rX\ncd")
	remove(t, text, m, textview.Range{Location: 3, Length: 1})
	expectShapes(t, m, []shape{{4, 2, 2}, {2, 0, 2}})
	text, m = setup(t, "ab\rX\nY\ncd")
	remove(t, text, m, textview.Range{Location: 3, Length: 3})
	expectShapes(t, m, []shape{{4, 2, 2}, {2, 0, 2}})
}

func TestRemoveInsideCRLF(t *testing.T) {
	text, m := setup(t, "ab\r\ncd")
	remove(t, text, m, textview.Range{Location: 3, Length: 1})
	expectShapes(t, m, []shape{{3, 1, 2}, {2, 0, 2}})
	text, m = setup(t, "ab\r\ncd")
	remove(t, text, m, textview.Range{Location: 3, Length: 3})
	expectShapes(t, m, []shape{{3, 1, 2}, {0, 0, 0}})
}

func TestRemoveAcrossSplitCRLF(t *testing.T) {
	at := func(loc, n int) textview.Range {
		return textview.Range{Location: loc, Length: n}
	}
	tests := []struct {
		name    string
		removes []textview.Range
		want    []shape
	}{
		{"split", []textview.Range{at(3, 1)}, []shape{{3, 1, 2}, {1, 1, 0}, {2, 0, 2}}},
		{"join", []textview.Range{at(3, 1), at(2, 2)}, []shape{{4, 0, 4}}},
		{"return", []textview.Range{at(3, 1), at(2, 1)}, []shape{{3, 1, 2}, {2, 0, 2}}},
		{"newline", []textview.Range{at(3, 1), at(3, 1)}, []shape{{3, 1, 2}, {2, 0, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// "ab\r" followed by "\n", which is left over from a "\r\n"
			text, m := setup(t, "ab\r\n\ncd")
			for _, r := range tt.removes {
				remove(t, text, m, r)
			}
			expectShapes(t, m, tt.want)
			expectContent(t, text, m)
		})
	}
}

func TestRemoveAcrossManyLines(t *testing.T) {
	text, m := setup(t, "one\ntwo\nthree\nfour\nfive")
	cs := remove(t, text, m, textview.Range{Location: 2, Length: 15})
	// "on" + "r\nfive"
	expectShapes(t, m, []shape{{4, 1, 3}, {4, 0, 4}})
	if len(cs.Removed()) != 3 {
		t.Errorf("expected three removed lines, have %v", cs)
	}
	remove(t, text, m, textview.Range{Location: 0, Length: m.Len()})
	expectShapes(t, m, []shape{{0, 0, 0}})
}

func TestEmptyEdits(t *testing.T) {
	text, m := setup(t, "a\nb")
	if cs := insert(t, text, m, "", 1); !cs.IsEmpty() {
		t.Errorf("expected empty change set, have %v", cs)
	}
	if cs := remove(t, text, m, textview.Range{Location: 1, Length: 0}); !cs.IsEmpty() {
		t.Errorf("expected empty change set, have %v", cs)
	}
}

func TestRandomEdits(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	alphabet := []rune("ab\r\n\r\nö")
	for _, seed := range []int64{2, 4711, 20211209} {
		rnd := rand.New(rand.NewSource(seed))
		text, m := setup(t, "")
		for step := 0; step < 800; step++ {
			if text.Len() == 0 || rnd.Intn(3) > 0 {
				ins := make([]rune, rnd.Intn(12)+1)
				for i := range ins {
					ins[i] = alphabet[rnd.Intn(len(alphabet))]
				}
				insert(t, text, m, string(ins), rnd.Intn(text.Len()+1))
			} else {
				loc := rnd.Intn(text.Len())
				l := rnd.Intn(text.Len()-loc) + 1
				remove(t, text, m, textview.Range{Location: loc, Length: l})
			}
			expectContent(t, text, m)
		}
	}
}

// expectContent checks that the lines cover the text in sequence, with
// character and byte offsets matching the text.
func expectContent(t *testing.T, text *textview.Text, m *Manager) {
	t.Helper()
	var b strings.Builder
	loc, bytes := 0, 0
	for line := range m.Lines() {
		if m.Location(line) != loc || m.ByteOffset(line) != bytes {
			t.Fatalf("line %d at %d|%d, expected %d|%d", m.Row(line), m.Location(line), m.ByteOffset(line), loc, bytes)
		}
		r := m.CharRange(line)
		piece := text.Substring(r)
		if m.Text(line) != piece[:len(piece)-line.Item().DelimiterLength] {
			t.Fatalf("line %d has text %q, expected content of %q", m.Row(line), m.Text(line), piece)
		}
		b.WriteString(piece)
		loc += r.Length
		bytes += len(piece)
	}
	if b.String() != text.String() {
		t.Fatalf("lines do not reproduce text %q", text.String())
	}
}

func TestQueries(t *testing.T) {
	_, m := setup(t, "Hello\nWörld\r\n\nend")
	rowOf := func(line Line, ok bool) int {
		if !ok {
			return -1
		}
		return m.Row(line)
	}
	for _, tt := range []struct{ at, row int }{
		{-1, -1}, {0, 0}, {5, 0}, {6, 1}, {12, 1}, {13, 2}, {14, 3}, {17, 3}, {18, -1},
	} {
		if row := rowOf(m.LineContainingCharacter(tt.at)); row != tt.row {
			t.Errorf("character %d: expected row %d, have %d", tt.at, tt.row, row)
		}
	}
	for _, tt := range []struct{ at, row int }{
		{0, 0}, {6, 1}, {13, 1}, {14, 2}, {15, 3}, {18, 3}, {19, -1},
	} {
		if row := rowOf(m.LineContainingByte(tt.at)); row != tt.row {
			t.Errorf("byte %d: expected row %d, have %d", tt.at, tt.row, row)
		}
	}
	for _, tt := range []struct {
		y   float64
		row int
	}{
		{0, 0}, {11.9, 0}, {12, 1}, {47.5, 3}, {48, 3}, {48.1, -1},
	} {
		if row := rowOf(m.LineContainingYOffset(tt.y)); row != tt.row {
			t.Errorf("y %g: expected row %d, have %d", tt.y, tt.row, row)
		}
	}
	if row := rowOf(m.LineAtRow(2)); row != 2 {
		t.Errorf("expected row 2, have %d", row)
	}
	if _, ok := m.LineAtRow(4); ok {
		t.Errorf("expected row 4 to be missing")
	}
	details, ok := m.Details(8)
	if !ok || details.StartLocation != 6 || details.TotalLength != 7 || details.Position != (LinePosition{1, 2}) {
		t.Errorf("unexpected details %+v", details)
	}
	if p, _ := m.Position(17); p != (LinePosition{3, 3}) {
		t.Errorf("expected position 3:3, have %v", p)
	}
	second, _ := m.LineAtRow(1)
	if m.Text(second) != "Wörld" || m.Location(second) != 6 || m.ByteOffset(second) != 6 {
		t.Errorf("unexpected second line %q at %d", m.Text(second), m.Location(second))
	}
	if r := m.CharRange(second); r != (textview.Range{Location: 6, Length: 7}) {
		t.Errorf("unexpected range %v", r)
	}
	last := m.LastLine()
	if m.ByteOffset(last) != 15 || m.YPosition(last) != 36 {
		t.Errorf("unexpected last line offsets %d, %g", m.ByteOffset(last), m.YPosition(last))
	}
	if n := len(m.LinesIn(textview.Range{Location: 3, Length: 12})); n != 4 {
		t.Errorf("expected 4 lines in range, have %d", n)
	}
	if n := len(m.LinesIn(textview.Range{Location: 7, Length: 1})); n != 1 {
		t.Errorf("expected 1 line in range, have %d", n)
	}
	if in := m.LinesIn(textview.Range{Location: 10, Length: 10}); len(in) != 1 || m.Row(in[0]) != 1 {
		t.Errorf("expected line containing the start of a range beyond the end, have %d lines", len(in))
	}
	if m.LinesIn(textview.Range{Location: 18, Length: 1}) != nil {
		t.Errorf("expected no lines for range starting beyond the end")
	}
}

func TestLinesInBeyondEnd(t *testing.T) {
	_, m := setup(t, "ab\ncd")
	in := m.LinesIn(textview.Range{Location: 4, Length: 10})
	if len(in) != 1 || m.Row(in[0]) != 1 {
		t.Fatalf("expected line \"cd\" only, have %d lines", len(in))
	}
	if in = m.LinesIn(textview.Range{Location: 1, Length: 4}); len(in) != 2 {
		t.Errorf("expected both lines for range up to the end, have %d", len(in))
	}
}

func TestSetHeight(t *testing.T) {
	_, m := setup(t, "a\nb\nc\nd")
	second, _ := m.LineAtRow(1)
	if !m.SetHeight(second, 20) {
		t.Fatalf("expected height change")
	}
	if m.SetHeight(second, 20+1e-12) {
		t.Errorf("expected change below epsilon to be ignored")
	}
	if m.ContentHeight() != 56 {
		t.Errorf("expected content height 56, have %g", m.ContentHeight())
	}
	if line, _ := m.LineContainingYOffset(31.9); line != second {
		t.Errorf("expected y=31.9 to hit second line")
	}
	if line, _ := m.LineContainingYOffset(32); m.Row(line) != 2 {
		t.Errorf("expected y=32 to hit third line, have row %d", m.Row(line))
	}
	if y := m.YPosition(m.LastLine()); y != 44 {
		t.Errorf("expected last line at y=44, have %g", y)
	}
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestZeroHeightLines(t *testing.T) {
	_, m := setup(t, "a\nb\nc")
	for line := range m.Lines() {
		m.SetHeight(line, 0)
	}
	if line, ok := m.LineContainingYOffset(0); !ok || m.Row(line) != 0 {
		t.Errorf("expected y=0 to hit the first of the empty lines, have row %d", m.Row(line))
	}
	second, _ := m.LineAtRow(1)
	m.SetHeight(second, 10)
	if line, ok := m.LineContainingYOffset(0); !ok || line != second {
		t.Errorf("expected y=0 to hit the first line with a height, have row %d", m.Row(line))
	}
	if line, ok := m.LineContainingYOffset(10); !ok || m.Row(line) != 2 {
		t.Errorf("expected y=10 to hit the empty line after it, have row %d", m.Row(line))
	}
}

func TestInitialLongestLine(t *testing.T) {
	text, m := setup(t, "a\nlongest line\nb")
	longest, ok := m.InitialLongestLine()
	if !ok || m.Row(longest) != 1 {
		t.Fatalf("expected longest line in row 1")
	}
	insert(t, text, m, "x", 0)
	if line, ok := m.InitialLongestLine(); !ok || line != longest {
		t.Fatalf("expected longest line to survive an unrelated edit")
	}
	cs := remove(t, text, m, textview.Range{Location: 2, Length: 13})
	if !cs.WasRemoved(longest.ID()) {
		t.Errorf("expected longest line to be removed, have %v", cs)
	}
	if _, ok := m.InitialLongestLine(); ok {
		t.Errorf("expected removed longest line to be gone")
	}
	if _, ok := m.Lookup(longest.ID()); ok {
		t.Errorf("expected lookup of removed line to fail")
	}
}
