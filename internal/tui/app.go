package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"dragsort/internal/model"
	"dragsort/internal/sortable"
	"dragsort/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// headerHeight is the number of rows above the list container.
const headerHeight = 2

const maxListWidth = 100

type appModel struct {
	settings store.Settings

	seq        *sortable.Sequence
	probe      *sortable.LayoutProbe
	engine     *sortable.Engine
	transition *sortable.Transition
	frames     *frameQueue
	renderer   *itemRenderer

	zones  *zone.Manager
	listID string

	container lipgloss.Style
	keys      keyMap
	help      help.Model

	width  int
	height int

	animate bool
	ticking bool
	// hovered is the element under the pointer during a drag; drag-enter
	// fires only when it changes.
	hovered *sortable.Element
	moves   int

	status    string
	statusErr bool

	now func() time.Time
}

func newAppModel(settings store.Settings) appModel {
	m := appModel{
		settings: settings,
		seq:      sortable.NewSequence(),
		probe:    &sortable.LayoutProbe{Gap: settings.Gap},
		frames:   &frameQueue{},
		renderer: newItemRenderer(settings),
		zones:    zone.New(),
		keys:     newKeyMap(),
		help:     help.New(),
		animate:  settings.Animation,
		now:      time.Now,
	}
	m.listID = m.zones.NewPrefix() + "list"
	cs := settings.ContainerStyle
	m.container = paint(frameStyle(&cs, "none", 1), &cs)

	for _, it := range settings.Items {
		m.seq.Append(it.ID, 1)
	}
	m.transition = &sortable.Transition{
		Duration:  settings.Duration,
		Scheduler: m.frames,
		Now:       time.Now,
	}
	m.engine = sortable.NewEngine(m.seq, m.probe, nil)
	if m.animate {
		m.engine.SetAnimator(m.transition)
	}
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case frameMsg:
		m.frames.Flush()
		if m.frames.Pending() || sortable.Animating(m.seq, m.now()) {
			return m, tickFrame(m.settings.FPS)
		}
		m.ticking = false
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("copied %d titles", msg.n), false)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			if m.engine.State() == sortable.Dragging {
				m.endDrag()
				m.setStatus("drag cancelled", false)
			}
		case key.Matches(msg, m.keys.Animate):
			m.animate = !m.animate
			if m.animate {
				m.engine.SetAnimator(m.transition)
				m.setStatus("animation on", false)
			} else {
				m.engine.SetAnimator(nil)
				m.setStatus("animation off", false)
			}
		case key.Matches(msg, m.keys.Copy):
			return m, copyOrderCmd(m.titles())
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// handleMouse maps terminal mouse events onto the drag protocol: left press
// starts a drag, motion into a different item enters it, release ends it.
func (m appModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.syncOrigin()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		el := m.hit(msg)
		if el == nil || !m.engine.DragStart(el) {
			return m, nil
		}
		m.hovered = el
		log.Printf("drag start %s index=%d", el.ID(), sortable.IndexOf(el))
		m.setStatus("", false)
		return m, nil

	case tea.MouseActionMotion:
		if m.engine.State() != sortable.Dragging {
			return m, nil
		}
		el := m.hit(msg)
		if el == m.hovered {
			return m, nil
		}
		m.hovered = el
		if el == nil {
			return m, nil
		}
		mv, ok := m.engine.DragEnter(el)
		if !ok {
			return m, nil
		}
		m.moves++
		log.Printf("drag enter %s: %s %s (diff=%d) top %d->%d",
			el.ID(), mv.Origin.ID(), mv.Placement, mv.Diff, mv.OriginBefore.Top, mv.OriginAfter.Top)
		return m, m.startFrames()

	case tea.MouseActionRelease:
		if m.engine.State() != sortable.Dragging {
			return m, nil
		}
		origin := m.engine.Origin()
		m.endDrag()
		log.Printf("drag end %s index=%d", origin.ID(), sortable.IndexOf(origin))
		m.setStatus(fmt.Sprintf("moved %q to position %d", m.renderer.items[origin.ID()].Title, sortable.IndexOf(origin)+1), false)
	}
	return m, nil
}

// hit returns the item under the pointer. Rows outside the list zone or
// below the clipped canvas hit nothing, like gaps.
func (m appModel) hit(msg tea.MouseMsg) *sortable.Element {
	if z := m.zones.Get(m.listID); z != nil && !z.IsZero() && !z.InBounds(msg) {
		return nil
	}
	if msg.Y >= m.probe.OriginTop+m.visibleRows() {
		return nil
	}
	return sortable.HitTest(m.seq, m.probe, msg.Y)
}

// visibleRows is the number of canvas rows View shows.
func (m appModel) visibleRows() int {
	footer := 1 + lipgloss.Height(m.help.View(m.keys))
	avail := m.height - headerHeight - footer - m.container.GetVerticalFrameSize()
	return max(min(listHeight(m.seq, m.settings.Gap), avail), 0)
}

func (m *appModel) endDrag() {
	m.engine.DragEnd()
	m.hovered = nil
}

// startFrames starts the frame loop unless it is already running.
func (m *appModel) startFrames() tea.Cmd {
	if m.ticking {
		return nil
	}
	if !m.frames.Pending() && !sortable.Animating(m.seq, m.now()) {
		return nil
	}
	m.ticking = true
	return tickFrame(m.settings.FPS)
}

func (m *appModel) relayout() {
	w := min(m.width, maxListWidth) - m.container.GetHorizontalFrameSize()
	w = max(w, 20)
	m.renderer.resize(w)
	m.renderer.measure(m.seq)
	m.probe.Width = w
	m.syncOrigin()
}

// syncOrigin places the probe at the list's on-screen position: the
// container's zone from the last render when available, otherwise the
// position implied by the layout.
func (m *appModel) syncOrigin() {
	if z := m.zones.Get(m.listID); z != nil && !z.IsZero() {
		m.probe.SetOrigin(z.StartY, z.StartX)
		return
	}
	m.probe.SetOrigin(
		headerHeight+m.container.GetBorderTopSize()+m.container.GetPaddingTop(),
		m.container.GetBorderLeftSize()+m.container.GetPaddingLeft(),
	)
}

func (m *appModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m appModel) titles() []string {
	out := make([]string, 0, m.seq.Len())
	for _, id := range m.seq.IDs() {
		out = append(out, m.renderer.items[id].Title)
	}
	return out
}

// Order reports the current order with fresh rank keys.
func (m appModel) Order() (model.Order, error) {
	ids := m.seq.IDs()
	ranks, err := store.RankSequence(len(ids))
	if err != nil {
		return model.Order{}, err
	}
	out := model.Order{Mount: m.settings.Mount, Moves: m.moves, Items: make([]model.OrderEntry, 0, len(ids))}
	for i, id := range ids {
		out.Items = append(out.Items, model.OrderEntry{
			Index: i,
			ID:    id,
			Title: m.renderer.items[id].Title,
			Rank:  ranks[i],
		})
	}
	return out, nil
}

func (m appModel) View() string {
	if m.width == 0 {
		return ""
	}

	header := lipgloss.NewStyle().Bold(true).Render("dragsort") +
		styleMuted().Render(fmt.Sprintf("  %s · %d items · %s", m.settings.Mount, m.seq.Len(), m.engine.State()))

	canvas := m.canvas(m.now())
	if rows := m.visibleRows(); rows < listHeight(m.seq, m.settings.Gap) {
		canvas = strings.Join(strings.Split(canvas, "\n")[:rows], "\n")
	}
	list := m.container.Render(m.zones.Mark(m.listID, canvas))

	return m.zones.Scan(strings.Join([]string{header, "", list, m.statusLine(), m.help.View(m.keys)}, "\n"))
}

func (m appModel) statusLine() string {
	if origin := m.engine.Origin(); origin != nil {
		title := m.renderer.items[origin.ID()].Title
		return lipgloss.NewStyle().Foreground(colorAccent).Render(
			fmt.Sprintf("dragging %q · position %d", title, sortable.IndexOf(origin)+1))
	}
	if m.status == "" {
		return styleMuted().Render("drag an item with the mouse to reorder")
	}
	if m.statusErr {
		return lipgloss.NewStyle().Foreground(colorErrorFg).Render(m.status)
	}
	return styleMuted().Render(m.status)
}
