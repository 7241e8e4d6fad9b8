package tui

import (
	"errors"
	"strings"
	"testing"

	"dragsort/internal/model"
	"dragsort/internal/sortable"
	"dragsort/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var errTest = errors.New("boom")

func TestItemRenderer_RolesShareHeight(t *testing.T) {
	pad := 2
	r := newItemRenderer(store.Settings{
		Items: []model.Item{
			{ID: "x", Title: "Title", Body: "first paragraph\n\nsecond paragraph", Style: &model.Style{Border: "double", Padding: &pad}},
		},
		OriginStyle: model.Style{Bold: true, Foreground: &model.AdaptiveColor{Dark: "62"}},
		TargetStyle: model.Style{Background: &model.AdaptiveColor{Light: "255"}},
	})
	r.resize(40)

	h := lipgloss.Height(r.block("x", roleRest))
	for _, ro := range []role{roleOrigin, roleTarget} {
		if got := lipgloss.Height(r.block("x", ro)); got != h {
			t.Fatalf("role %d: want height %d; got %d", ro, h, got)
		}
	}
	if h < 4 {
		t.Fatalf("expected title and body inside the border; got height %d", h)
	}
	for _, line := range strings.Split(r.block("x", roleRest), "\n") {
		if w := ansi.StringWidth(line); w != 40 {
			t.Fatalf("want block width 40; got %d for %q", w, line)
		}
	}
}

func TestItemRenderer_ResizeClearsCache(t *testing.T) {
	r := newItemRenderer(store.Settings{Items: []model.Item{{ID: "x", Title: "T"}}})
	r.resize(30)
	a := r.block("x", roleRest)
	r.resize(50)
	b := r.block("x", roleRest)
	if lipgloss.Width(a) == lipgloss.Width(b) {
		t.Fatalf("expected width to follow resize")
	}
}

func TestItemRenderer_NoBorder(t *testing.T) {
	r := newItemRenderer(store.Settings{Items: []model.Item{{ID: "x", Title: "Plain", Style: &model.Style{Border: "none"}}}})
	r.resize(20)
	seq := sortable.NewSequence()
	seq.Append("x", 0)
	r.measure(seq)
	if h := seq.Front().Height(); h != 1 {
		t.Fatalf("want height 1 without border; got %d", h)
	}
}

func TestListHeight(t *testing.T) {
	seq := sortable.NewSequence()
	seq.Append("a", 3)
	seq.Append("b", 2)
	seq.Append("c", 4)
	if got := listHeight(seq, 2); got != 13 {
		t.Fatalf("want 13; got %d", got)
	}
	if got := listHeight(sortable.NewSequence(), 2); got != 0 {
		t.Fatalf("want 0 for empty list; got %d", got)
	}
}

func TestFrameQueue_FlushRunsOnlyQueuedWork(t *testing.T) {
	q := &frameQueue{}
	var ran []int
	q.Defer(func() {
		ran = append(ran, 1)
		q.Defer(func() { ran = append(ran, 2) })
	})
	q.Flush()
	if len(ran) != 1 || !q.Pending() {
		t.Fatalf("expected work queued during flush to wait for the next frame; ran=%v", ran)
	}
	q.Flush()
	if len(ran) != 2 || q.Pending() {
		t.Fatalf("expected second flush to drain; ran=%v", ran)
	}
}
