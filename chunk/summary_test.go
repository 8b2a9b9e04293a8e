package chunk

import "testing"

func TestChunkSummaryCounts(t *testing.T) {
	c, err := New("a\n😀b")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	s := c.Summary()
	if s.Bytes != 7 || s.Chars != 4 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestSummaryMonoid(t *testing.T) {
	a := Summary{Bytes: 5, Chars: 3}
	b := Summary{Bytes: 4, Chars: 2}
	m := Monoid{}
	c := m.Add(a, b)
	if c.Bytes != 9 || c.Chars != 5 {
		t.Fatalf("unexpected monoid add result: %+v", c)
	}
	if z := m.Zero(); z != (Summary{}) {
		t.Fatalf("unexpected monoid zero value: %+v", z)
	}
}

func TestDimensions(t *testing.T) {
	s := Summary{Bytes: 7, Chars: 4}
	if got := (ByteDimension{}).Add(3, s); got != 10 {
		t.Fatalf("byte dimension add = %d", got)
	}
	if got := (CharDimension{}).Add(3, s); got != 7 {
		t.Fatalf("char dimension add = %d", got)
	}
	if (CharDimension{}).Compare(1, 2) >= 0 || (ByteDimension{}).Compare(2, 1) <= 0 {
		t.Fatalf("unexpected compare results")
	}
}
