package sortable

import "testing"

func TestLayoutProbe_StacksWithGap(t *testing.T) {
	s := NewSequence()
	a := s.Append("a", 3)
	b := s.Append("b", 5)
	c := s.Append("c", 2)
	p := &LayoutProbe{OriginTop: 2, OriginLeft: 4, Width: 30, Gap: 1}

	want := map[*Element]Rect{
		a: {Top: 2, Left: 4, Width: 30, Height: 3},
		b: {Top: 6, Left: 4, Width: 30, Height: 5},
		c: {Top: 12, Left: 4, Width: 30, Height: 2},
	}
	for e, r := range want {
		if got := p.RectOf(e); got != r {
			t.Fatalf("RectOf(%s): want %+v; got %+v", e.ID(), r, got)
		}
	}

	// Geometry is re-read, never cached.
	s.MoveBefore(c, a)
	if got := p.RectOf(c).Top; got != 2 {
		t.Fatalf("expected c at top after move; got %d", got)
	}
	if got := p.RectOf(a).Top; got != 5 {
		t.Fatalf("expected a below c; got %d", got)
	}
}

func TestLayoutProbe_DetachedIsZero(t *testing.T) {
	p := &LayoutProbe{OriginTop: 3, Width: 10}
	if r := p.RectOf(&Element{id: "x", height: 4}); !r.IsZero() {
		t.Fatalf("expected zero rect for detached element; got %+v", r)
	}
	if r := p.RectOf(nil); !r.IsZero() {
		t.Fatalf("expected zero rect for nil; got %+v", r)
	}
}

func TestHitTest(t *testing.T) {
	s := NewSequence()
	s.Append("a", 2)
	s.Append("b", 2)
	p := &LayoutProbe{OriginTop: 10, Gap: 1}

	cases := []struct {
		y    int
		want string
	}{
		{9, ""},
		{10, "a"},
		{11, "a"},
		{12, ""}, // gap
		{13, "b"},
		{14, "b"},
		{15, ""},
	}
	for _, tc := range cases {
		got := HitTest(s, p, tc.y)
		id := ""
		if got != nil {
			id = got.ID()
		}
		if id != tc.want {
			t.Fatalf("HitTest(y=%d): want %q; got %q", tc.y, tc.want, id)
		}
	}
}
