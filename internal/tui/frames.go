package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg struct{}

// frameQueue defers work to the next frame message, after the current
// state has been painted by View.
type frameQueue struct {
	pending []func()
}

func (q *frameQueue) Defer(fn func()) { q.pending = append(q.pending, fn) }

func (q *frameQueue) Pending() bool { return len(q.pending) > 0 }

// Flush runs the deferred work queued before the call.
func (q *frameQueue) Flush() {
	fns := q.pending
	q.pending = nil
	for _, fn := range fns {
		fn()
	}
}

func tickFrame(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(time.Time) tea.Msg { return frameMsg{} })
}
