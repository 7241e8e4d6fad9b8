// Package sortable reorders a vertical list of elements by drag and drop and
// animates the elements that swap places.
package sortable

// State is the engine's drag state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Placement says on which side of the target the origin was reinserted.
type Placement int

const (
	Before Placement = iota
	After
)

func (p Placement) String() string {
	if p == After {
		return "after"
	}
	return "before"
}

// Session is the state of one drag, from drag-start to drag-end.
type Session struct {
	Origin *Element
	// Target is the element most recently entered during this drag.
	Target *Element

	OriginBefore Rect
	OriginAfter  Rect
	TargetBefore Rect
	TargetAfter  Rect
}

// Move describes one reorder performed by DragEnter.
type Move struct {
	Origin    *Element
	Target    *Element
	Diff      int
	Placement Placement

	OriginBefore Rect
	OriginAfter  Rect
	TargetBefore Rect
	TargetAfter  Rect
}

// Engine owns the drag session for one sequence. It is not safe for
// concurrent use; the host event loop serializes calls.
type Engine struct {
	seq      *Sequence
	probe    Probe
	animator Animator

	session *Session
}

// NewEngine returns an idle engine. A nil animator disables animation.
func NewEngine(seq *Sequence, probe Probe, animator Animator) *Engine {
	return &Engine{seq: seq, probe: probe, animator: animator}
}

func (e *Engine) State() State {
	if e.session == nil {
		return Idle
	}
	return Dragging
}

// Session returns a copy of the active session, or nil when idle.
func (e *Engine) Session() *Session {
	if e.session == nil {
		return nil
	}
	s := *e.session
	return &s
}

// Origin returns the element being dragged, or nil.
func (e *Engine) Origin() *Element {
	if e.session == nil {
		return nil
	}
	return e.session.Origin
}

// Target returns the element last entered in the active drag, or nil.
func (e *Engine) Target() *Element {
	if e.session == nil {
		return nil
	}
	return e.session.Target
}

func (e *Engine) SetAnimator(a Animator) { e.animator = a }

// DragStart begins a drag of x. Starting while a drag is active replaces
// the session. It returns false when x is not part of the sequence.
func (e *Engine) DragStart(x *Element) bool {
	if !e.seq.Contains(x) {
		return false
	}
	e.session = &Session{
		Origin:       x,
		OriginBefore: e.probe.RectOf(x),
	}
	return true
}

// DragEnter reacts to the pointer entering y. When a reorder happens the
// origin lands directly after y if it was above it, directly before y
// otherwise, and the returned Move describes the step.
//
// Entering the origin, a foreign element, or the element already entered
// last leaves the order unchanged. Entering the origin forgets the last
// target, so moving back onto it reverses the move.
func (e *Engine) DragEnter(y *Element) (Move, bool) {
	s := e.session
	if s == nil || y == nil || !e.seq.Contains(y) {
		return Move{}, false
	}
	if y == s.Origin {
		s.Target = nil
		return Move{}, false
	}
	if y == s.Target {
		return Move{}, false
	}
	s.Target = y
	origin := s.Origin

	s.TargetBefore = e.probe.RectOf(y)

	diff := IndexOf(y) - IndexOf(origin)
	placement := Before
	if diff > 0 {
		placement = After
		e.seq.MoveAfter(origin, y)
	} else {
		e.seq.MoveBefore(origin, y)
	}

	s.OriginAfter = e.probe.RectOf(origin)
	s.TargetAfter = e.probe.RectOf(y)

	mv := Move{
		Origin:       origin,
		Target:       y,
		Diff:         diff,
		Placement:    placement,
		OriginBefore: s.OriginBefore,
		OriginAfter:  s.OriginAfter,
		TargetBefore: s.TargetBefore,
		TargetAfter:  s.TargetAfter,
	}

	if e.animator != nil {
		e.animator.Animate(origin, y, s.OriginBefore, s.OriginAfter, s.TargetBefore, s.TargetAfter)
	}

	s.OriginBefore = s.OriginAfter
	return mv, true
}

// DragEnd finishes the active drag, if any.
func (e *Engine) DragEnd() {
	e.session = nil
}
