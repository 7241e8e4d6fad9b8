package tui

import (
	"strings"
	"time"

	"dragsort/internal/model"
	"dragsort/internal/sortable"
	"dragsort/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// role is how an item is drawn during a drag.
type role int

const (
	roleRest role = iota
	roleOrigin
	roleTarget
)

type blockKey struct {
	id   string
	role role
}

// itemRenderer renders item blocks and caches them per width.
type itemRenderer struct {
	settings store.Settings
	items    map[string]model.Item
	width    int
	blocks   map[blockKey]string
}

func newItemRenderer(settings store.Settings) *itemRenderer {
	r := &itemRenderer{
		settings: settings,
		items:    make(map[string]model.Item, len(settings.Items)),
		blocks:   map[blockKey]string{},
	}
	for _, it := range settings.Items {
		r.items[it.ID] = it
	}
	return r
}

func (r *itemRenderer) resize(width int) {
	if width == r.width {
		return
	}
	r.width = width
	r.blocks = map[blockKey]string{}
}

// block renders item id in the given role. Roles only change colors, so all
// roles of an item share one height.
func (r *itemRenderer) block(id string, ro role) string {
	k := blockKey{id: id, role: ro}
	if b, ok := r.blocks[k]; ok {
		return b
	}
	it := r.items[id]
	frame := frameStyle(it.Style, "rounded", 1)
	st := paint(frame, it.Style)
	switch ro {
	case roleOrigin:
		st = paint(st, &r.settings.OriginStyle)
	case roleTarget:
		st = paint(st, &r.settings.TargetStyle)
	}

	inner := max(r.width-frame.GetHorizontalFrameSize(), 1)
	var parts []string
	if it.Title != "" {
		parts = append(parts, lipgloss.NewStyle().Bold(true).Render(ansi.Truncate(it.Title, inner, "…")))
	}
	if body := renderBody(it.Body, inner); body != "" {
		parts = append(parts, body)
	}
	out := st.Width(max(r.width-frame.GetHorizontalBorderSize(), 1)).Render(strings.Join(parts, "\n"))
	r.blocks[k] = out
	return out
}

// measure records every element's rendered height in the sequence.
func (r *itemRenderer) measure(seq *sortable.Sequence) {
	for e := seq.Front(); e != nil; e = e.Next() {
		e.SetHeight(lipgloss.Height(r.block(e.ID(), roleRest)))
	}
}

// listHeight is the height of the laid-out list without offsets.
func listHeight(seq *sortable.Sequence, gap int) int {
	h := 0
	for e := seq.Front(); e != nil; e = e.Next() {
		h += e.Height()
		if e.Next() != nil {
			h += gap
		}
	}
	return h
}

// canvas draws the list at time now: each element at its layout row plus
// its visual offset, the dragged element last so it stays on top.
func (m appModel) canvas(now time.Time) string {
	height := listHeight(m.seq, m.settings.Gap)
	rows := make([]string, height)
	origin, target := m.engine.Origin(), m.engine.Target()

	draw := func(e *sortable.Element) {
		ro := roleRest
		switch e {
		case origin:
			ro = roleOrigin
		case target:
			ro = roleTarget
		}
		top := m.probe.RectOf(e).Top - m.probe.OriginTop + e.Motion().Offset(now)
		for i, line := range strings.Split(m.renderer.block(e.ID(), ro), "\n") {
			if y := top + i; y >= 0 && y < height {
				rows[y] = line
			}
		}
	}
	for e := m.seq.Front(); e != nil; e = e.Next() {
		if e != origin {
			draw(e)
		}
	}
	if origin != nil {
		draw(origin)
	}

	width := m.renderer.width
	for i, row := range rows {
		row = ansi.Truncate(row, width, "")
		if pad := width - ansi.StringWidth(row); pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
