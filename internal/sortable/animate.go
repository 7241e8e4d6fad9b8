package sortable

import (
	"math"
	"time"
)

// Animator turns a completed structural swap into a visual transition.
type Animator interface {
	Animate(origin, target *Element, originBefore, originAfter, targetBefore, targetAfter Rect)
}

// Scheduler defers work to the host's next paint tick.
type Scheduler interface {
	Defer(fn func())
}

// Motion is an element's visual offset relative to its layout position,
// the terminal analogue of a CSS translateY with an optional transition.
type Motion struct {
	offset     int
	transition bool

	from     int
	start    time.Time
	duration time.Duration
}

// Jump sets the offset immediately with transitions disabled.
func (m *Motion) Jump(dy int) {
	m.offset = dy
	m.transition = false
	m.from = dy
	m.duration = 0
}

// Release enables the timed transition and retargets the offset to zero,
// starting from wherever the element is drawn at now.
func (m *Motion) Release(now time.Time, d time.Duration) {
	from := m.Offset(now)
	m.offset = 0
	m.transition = d > 0
	m.from = from
	m.start = now
	m.duration = d
}

// Declared returns the offset the element is heading to.
func (m *Motion) Declared() int { return m.offset }

func (m *Motion) TransitionEnabled() bool { return m.transition }

// Offset returns the visual offset in rows at now.
func (m *Motion) Offset(now time.Time) int {
	if !m.transition || m.duration <= 0 || m.from == m.offset {
		return m.offset
	}
	p := float64(now.Sub(m.start)) / float64(m.duration)
	if p >= 1 {
		return m.offset
	}
	if p < 0 {
		p = 0
	}
	v := float64(m.from) + float64(m.offset-m.from)*easeOutCubic(p)
	return int(math.Round(v))
}

// Animating reports whether the offset is still changing at now.
func (m *Motion) Animating(now time.Time) bool {
	if !m.transition || m.from == m.offset {
		return false
	}
	return now.Sub(m.start) < m.duration
}

func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// Transition is the two-phase slide: teleport each element back to where
// it was drawn before the move, then on the next tick release it to zero.
type Transition struct {
	Duration  time.Duration
	Scheduler Scheduler
	Now       func() time.Time
}

func (t *Transition) Animate(origin, target *Element, originBefore, originAfter, targetBefore, targetAfter Rect) {
	originDelta := originAfter.Top - originBefore.Top
	targetDelta := targetAfter.Top - targetBefore.Top

	origin.motion.Jump(-originDelta)
	target.motion.Jump(-targetDelta)

	release := func() {
		now := t.now()
		origin.motion.Release(now, t.Duration)
		target.motion.Release(now, t.Duration)
	}
	if t.Scheduler == nil {
		release()
		return
	}
	t.Scheduler.Defer(release)
}

func (t *Transition) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// Animating reports whether any element of seq is mid-transition at now.
func Animating(seq *Sequence, now time.Time) bool {
	for e := seq.Front(); e != nil; e = e.Next() {
		if e.motion.Animating(now) {
			return true
		}
	}
	return false
}
