package sortable

// Rect is a geometry snapshot of an element in viewport cells.
type Rect struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Rect) Bottom() int { return r.Top + r.Height }

// Contains reports whether viewport row y falls inside r.
func (r Rect) Contains(y int) bool { return y >= r.Top && y < r.Bottom() }

func (r Rect) IsZero() bool { return r == Rect{} }

// Probe reads an element's current geometry.
type Probe interface {
	RectOf(e *Element) Rect
}

// LayoutProbe derives geometry from the sequence structure: elements are
// stacked top to bottom starting at Origin, separated by Gap rows.
//
// Nothing is cached. Every call walks the element's preceding siblings, so
// results reflect the latest structural move.
type LayoutProbe struct {
	OriginTop  int
	OriginLeft int
	Width      int
	Gap        int
}

func (p *LayoutProbe) RectOf(e *Element) Rect {
	if e == nil || !e.Attached() {
		return Rect{}
	}
	top := p.OriginTop
	for s := e.Prev(); s != nil; s = s.Prev() {
		top += s.Height() + p.Gap
	}
	return Rect{Top: top, Left: p.OriginLeft, Width: p.Width, Height: e.Height()}
}

// SetOrigin moves the list's content origin in the viewport.
func (p *LayoutProbe) SetOrigin(top, left int) {
	p.OriginTop = top
	p.OriginLeft = left
}

// HitTest returns the element of seq whose rect contains viewport row y.
// Rows in gaps or outside the list yield nil.
func HitTest(seq *Sequence, probe Probe, y int) *Element {
	for e := seq.Front(); e != nil; e = e.Next() {
		r := probe.RectOf(e)
		if r.Contains(y) {
			return e
		}
		if y < r.Top {
			return nil
		}
	}
	return nil
}
