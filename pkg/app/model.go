package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/clock-deck/pkg/config"
	"gitlab.com/tinyland/lab/clock-deck/pkg/cue"
	"gitlab.com/tinyland/lab/clock-deck/pkg/theme"
	"gitlab.com/tinyland/lab/clock-deck/pkg/view"
)

// flashDuration is how long a completion flash stays in the status bar.
const flashDuration = 5 * time.Second

// Model is the root bubbletea model: a registry of cards keyed by view,
// of which exactly one is active.
type Model struct {
	widgets  map[view.View]Widget
	order    []view.View
	active   view.View
	gen      uint64
	notifier *cue.Notifier
	zones    *zone.Manager

	width, height int
	ready         bool
	helpVisible   bool
	quitting      bool

	flash      string
	flashUntil time.Time
}

// NewModel builds the root model. The initial view comes from the config;
// widgets register under their parsed ID. Widgets whose ID does not parse
// as a view name are ignored. The zone manager is shared with any widget
// that marks clickable regions of its own; pass nil to get a private one.
func NewModel(cfg *config.Config, notifier *cue.Notifier, zones *zone.Manager, widgets ...Widget) Model {
	if zones == nil {
		zones = zone.New()
	}
	m := Model{
		widgets:  make(map[view.View]Widget, len(widgets)),
		order:    view.Order(),
		notifier: notifier,
		zones:    zones,
	}
	for _, w := range widgets {
		if v, ok := view.Parse(w.ID()); ok {
			m.widgets[v] = w
		}
	}
	if cfg != nil {
		if v, ok := view.Parse(cfg.Deck.StartView); ok {
			m.active = v
		}
	}
	return m
}

// Init activates the initial card and starts its tick chain.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if w := m.widgets[m.active]; w != nil {
		if c := w.Activate(); c != nil {
			cmds = append(cmds, c)
		}
		if d := w.TickInterval(); d > 0 {
			cmds = append(cmds, TickCmd(m.active, m.gen, d))
		}
	}
	return tea.Batch(cmds...)
}

// Update routes messages: window size and global keys first, ticks by
// (view, generation) tag, everything else to the active card.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickEvent:
		// A stale tag means the card this tick was armed for is gone;
		// dropping the event without re-arming releases its timer.
		if msg.View != m.active || msg.Gen != m.gen {
			return m, nil
		}
		if m.flash != "" && time.Now().After(m.flashUntil) {
			m.flash = ""
		}
		w := m.widgets[m.active]
		if w == nil {
			return m, nil
		}
		cmd := w.Update(msg)
		return m, tea.Batch(cmd, TickCmd(m.active, m.gen, w.TickInterval()))

	case CompletionEvent:
		m.flash = msg.Label
		m.flashUntil = time.Now().Add(flashDuration)
		m.notifier.Notify("clock-deck", msg.Label)
		return m, nil

	default:
		if w := m.widgets[m.active]; w != nil {
			return m, w.Update(msg)
		}
		return m, nil
	}
}

// handleKey applies the routing order: ctrl+c always quits; the active
// card gets the key next (a capturing text input consumes nearly
// everything); unconsumed keys hit the global bindings, then view
// selection.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if w := m.widgets[m.active]; w != nil {
		if cmd, handled := w.HandleKey(msg); handled {
			return m, cmd
		}
	}

	switch key {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.helpVisible = !m.helpVisible
		return m, nil
	case "tab":
		return m.cycle(1)
	case "shift+tab":
		return m.cycle(-1)
	}

	if v, ok := view.Lookup(key); ok {
		cmd := m.switchTo(v)
		return m, cmd
	}
	return m, nil
}

// handleMouse switches cards on header tab clicks and forwards everything
// else to the active card.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		for _, v := range m.order {
			if m.zones.Get("tab:" + v.String()).InBounds(msg) {
				cmd := m.switchTo(v)
				return m, cmd
			}
		}
	}
	if w := m.widgets[m.active]; w != nil {
		return m, w.Update(msg)
	}
	return m, nil
}

// cycle moves the active card forward or backward in deck order.
func (m *Model) cycle(dir int) (tea.Model, tea.Cmd) {
	idx := 0
	for i, v := range m.order {
		if v == m.active {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(m.order)) % len(m.order)
	cmd := m.switchTo(m.order[idx])
	return *m, cmd
}

// switchTo deactivates the current card, bumps the tick generation so the
// old card's pending tick is dropped, and activates the target.
func (m *Model) switchTo(v view.View) tea.Cmd {
	if v == m.active {
		return nil
	}
	if w := m.widgets[m.active]; w != nil {
		w.Deactivate()
	}
	m.active = v
	m.gen++
	var cmds []tea.Cmd
	if w := m.widgets[v]; w != nil {
		if c := w.Activate(); c != nil {
			cmds = append(cmds, c)
		}
		if d := w.TickInterval(); d > 0 {
			cmds = append(cmds, TickCmd(v, m.gen, d))
		}
	}
	return tea.Batch(cmds...)
}

// View renders the header tab bar, the active card in a bordered box,
// and the status bar. Output goes through the zone scanner so tab clicks
// resolve.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	th := theme.Current
	header := m.renderHeader(th)

	cardHeight := m.height - 2 // header + status bar
	if cardHeight < 2 {
		cardHeight = 2
	}

	var body string
	if m.helpVisible {
		body = m.renderHelp(th, m.width, cardHeight)
	} else {
		body = m.renderCard(th, m.width, cardHeight)
	}

	out := header + "\n" + body + "\n" + m.renderStatus(th)
	return m.zones.Scan(out)
}

func (m Model) renderHeader(th theme.Theme) string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(th.Accent))
	idleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.Dim))

	var tabs []string
	for i, v := range m.order {
		label := fmt.Sprintf(" %d:%s ", i+1, v.Title())
		if v == m.active {
			label = activeStyle.Render(label)
		} else {
			label = idleStyle.Render(label)
		}
		tabs = append(tabs, m.zones.Mark("tab:"+v.String(), label))
	}
	return strings.Join(tabs, "")
}

func (m Model) renderCard(th theme.Theme, width, height int) string {
	w := m.widgets[m.active]
	if w == nil {
		return strings.Repeat("\n", height-1)
	}
	interior := w.View(width-2, height-2)
	return componentsBox(interior, width, height, w.Title(), th.BorderFocus)
}

func (m Model) renderStatus(th theme.Theme) string {
	if m.flash != "" {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(th.StatusWarn)).
			Render(" " + m.flash)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.Dim)).
		Render(" tab: next card  1-5: select  ?: help  q: quit")
}

func (m Model) renderHelp(th theme.Theme, width, height int) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.HelpKey))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(th.HelpDesc))

	rows := [][2]string{
		{"tab / shift+tab", "next / previous card"},
		{"h a s t w, 1-5", "select card directly"},
		{"space", "start / stop (stopwatch, timer)"},
		{"l", "record lap (stopwatch)"},
		{"r", "reset (stopwatch, timer) / retry (weather)"},
		{"c", "custom duration (timer)"},
		{"d", "disarm (alarm)"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}
	var lines []string
	lines = append(lines, "")
	for _, row := range rows {
		lines = append(lines, "  "+keyStyle.Render(fmt.Sprintf("%-16s", row[0]))+" "+descStyle.Render(row[1]))
	}
	return componentsBox(strings.Join(lines, "\n"), width, height, "Help", th.BorderFocus)
}

// Accessors used by tests and main.

// ActiveView returns the currently displayed view.
func (m Model) ActiveView() view.View { return m.active }

// Generation returns the live tick chain's tag.
func (m Model) Generation() uint64 { return m.gen }

// Width returns the last seen terminal width.
func (m Model) Width() int { return m.width }

// Height returns the last seen terminal height.
func (m Model) Height() int { return m.height }

// HelpVisible reports whether the help overlay is up.
func (m Model) HelpVisible() bool { return m.helpVisible }

// Quitting reports whether the model is shutting down.
func (m Model) Quitting() bool { return m.quitting }

// Flash returns the current status flash message.
func (m Model) Flash() string { return m.flash }
