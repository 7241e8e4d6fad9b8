package sortable

// Element is one orderable node of a Sequence.
//
// The element's place in its sequence is its only identity as far as the
// engine is concerned; ID exists so renderers can look up content.
type Element struct {
	id     string
	height int

	prev, next *Element
	seq        *Sequence

	motion Motion
}

func (e *Element) ID() string { return e.id }

// Height is the element's rendered height in rows.
func (e *Element) Height() int { return e.height }

// SetHeight records the rendered height. Renderers call this whenever the
// element's content or width changes.
func (e *Element) SetHeight(h int) {
	if h < 0 {
		h = 0
	}
	e.height = h
}

// Prev returns the immediately preceding sibling, or nil.
func (e *Element) Prev() *Element {
	if e.seq == nil {
		return nil
	}
	return e.prev
}

// Next returns the immediately following sibling, or nil.
func (e *Element) Next() *Element {
	if e.seq == nil {
		return nil
	}
	return e.next
}

// Attached reports whether the element currently belongs to a sequence.
func (e *Element) Attached() bool { return e.seq != nil }

// Motion exposes the element's visual offset state.
func (e *Element) Motion() *Motion { return &e.motion }

// Sequence is the ordered, top-to-bottom list of elements.
type Sequence struct {
	head, tail *Element
	n          int
}

func NewSequence() *Sequence { return &Sequence{} }

// Append adds a new element at the end of the sequence.
func (s *Sequence) Append(id string, height int) *Element {
	e := &Element{id: id}
	e.SetHeight(height)
	s.linkAfter(e, s.tail)
	return e
}

func (s *Sequence) Len() int        { return s.n }
func (s *Sequence) Front() *Element { return s.head }
func (s *Sequence) Back() *Element  { return s.tail }

// Contains reports whether e is attached to s.
func (s *Sequence) Contains(e *Element) bool { return e != nil && e.seq == s }

// Elements returns the elements in display order.
func (s *Sequence) Elements() []*Element {
	out := make([]*Element, 0, s.n)
	for e := s.head; e != nil; e = e.next {
		out = append(out, e)
	}
	return out
}

// IDs returns element IDs in display order.
func (s *Sequence) IDs() []string {
	out := make([]string, 0, s.n)
	for e := s.head; e != nil; e = e.next {
		out = append(out, e.id)
	}
	return out
}

// Find returns the element with the given ID, or nil.
func (s *Sequence) Find(id string) *Element {
	for e := s.head; e != nil; e = e.next {
		if e.id == id {
			return e
		}
	}
	return nil
}

// MoveBefore moves e so that it sits immediately before mark.
// Both must belong to s and be distinct; otherwise nothing happens.
func (s *Sequence) MoveBefore(e, mark *Element) {
	if !s.Contains(e) || !s.Contains(mark) || e == mark || mark.prev == e {
		return
	}
	s.unlink(e)
	s.linkAfter(e, mark.prev)
}

// MoveAfter moves e so that it sits immediately after mark.
// Both must belong to s and be distinct; otherwise nothing happens.
func (s *Sequence) MoveAfter(e, mark *Element) {
	if !s.Contains(e) || !s.Contains(mark) || e == mark || mark.next == e {
		return
	}
	s.unlink(e)
	s.linkAfter(e, mark)
}

// linkAfter inserts e after at; a nil at means the front of the sequence.
func (s *Sequence) linkAfter(e, at *Element) {
	e.seq = s
	e.prev = at
	if at == nil {
		e.next = s.head
		s.head = e
	} else {
		e.next = at.next
		at.next = e
	}
	if e.next != nil {
		e.next.prev = e
	} else {
		s.tail = e
	}
	s.n++
}

func (s *Sequence) unlink(e *Element) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		s.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		s.tail = e.prev
	}
	e.prev, e.next, e.seq = nil, nil, nil
	s.n--
}
