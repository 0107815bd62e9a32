package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/clock-deck/pkg/config"
	"gitlab.com/tinyland/lab/clock-deck/pkg/cue"
	"gitlab.com/tinyland/lab/clock-deck/pkg/view"
)

// --- helpers ---

// newTestModel builds a model with a placeholder card for every view,
// starting on Home.
func newTestModel() (Model, map[view.View]*PlaceholderWidget) {
	cards := map[view.View]*PlaceholderWidget{}
	var widgets []Widget
	for _, v := range view.Order() {
		w := NewPlaceholder(v.String(), v.Title(), time.Second)
		cards[v] = w
		widgets = append(widgets, w)
	}
	m := NewModel(config.DefaultConfig(), cue.NewNil(), nil, widgets...)
	return m, cards
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestInitActivatesStartViewAndTicks(t *testing.T) {
	m, cards := newTestModel()

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned nil, expected activation and tick commands")
	}
	if cards[view.Home].Activations != 1 {
		t.Errorf("home activations = %d, want 1", cards[view.Home].Activations)
	}
}

func TestTabCyclesDeckOrder(t *testing.T) {
	m, _ := newTestModel()

	m, _ = update(m, keyMsg("tab"))
	if got := m.ActiveView(); got != view.Alarm {
		t.Errorf("after tab, active = %v, want Alarm", got)
	}
	m, _ = update(m, keyMsg("shift+tab"))
	if got := m.ActiveView(); got != view.Home {
		t.Errorf("after shift+tab, active = %v, want Home", got)
	}
	// Backward from the first card wraps to the last.
	m, _ = update(m, keyMsg("shift+tab"))
	if got := m.ActiveView(); got != view.Weather {
		t.Errorf("after wrap, active = %v, want Weather", got)
	}
}

func TestSelectionKeySwitchesView(t *testing.T) {
	m, cards := newTestModel()
	m.Init()

	m, _ = update(m, keyMsg("t"))
	if got := m.ActiveView(); got != view.Timer {
		t.Errorf("after 't', active = %v, want Timer", got)
	}
	if cards[view.Home].Deactivations != 1 {
		t.Errorf("home deactivations = %d, want 1", cards[view.Home].Deactivations)
	}
	if cards[view.Timer].Activations != 1 {
		t.Errorf("timer activations = %d, want 1", cards[view.Timer].Activations)
	}
}

func TestSwitchBumpsGeneration(t *testing.T) {
	m, _ := newTestModel()

	gen := m.Generation()
	m, _ = update(m, keyMsg("s"))
	if m.Generation() != gen+1 {
		t.Errorf("generation = %d after switch, want %d", m.Generation(), gen+1)
	}
}

func TestSwitchToActiveViewIsNoOp(t *testing.T) {
	m, cards := newTestModel()
	m.Init()

	gen := m.Generation()
	m, _ = update(m, keyMsg("h"))
	if m.Generation() != gen {
		t.Error("selecting the active view must not bump the generation")
	}
	if cards[view.Home].Deactivations != 0 {
		t.Error("selecting the active view must not deactivate it")
	}
}

func TestCurrentTickDispatchesAndRearms(t *testing.T) {
	m, cards := newTestModel()

	_, cmd := update(m, TickEvent{View: view.Home, Gen: m.Generation(), Time: time.Now()})
	if cards[view.Home].Ticks != 1 {
		t.Errorf("home ticks = %d, want 1", cards[view.Home].Ticks)
	}
	if cmd == nil {
		t.Error("matching tick should re-arm the tick chain")
	}
}

func TestStaleTickDroppedWithoutRearm(t *testing.T) {
	m, cards := newTestModel()

	staleGen := m.Generation()
	m, _ = update(m, keyMsg("s")) // bumps generation, home deactivated

	_, cmd := update(m, TickEvent{View: view.Home, Gen: staleGen, Time: time.Now()})
	if cards[view.Home].Ticks != 0 {
		t.Error("stale tick reached the deactivated card")
	}
	if cmd != nil {
		t.Error("stale tick must not re-arm a timer")
	}
}

func TestWrongViewTickDropped(t *testing.T) {
	m, cards := newTestModel()

	_, cmd := update(m, TickEvent{View: view.Timer, Gen: m.Generation(), Time: time.Now()})
	if cards[view.Timer].Ticks != 0 {
		t.Error("tick for an inactive view was dispatched")
	}
	if cmd != nil {
		t.Error("tick for an inactive view must not re-arm")
	}
}

func TestCompletionEventSetsFlash(t *testing.T) {
	m, _ := newTestModel()

	m, _ = update(m, CompletionEvent{Source: view.Timer, Label: "Timer finished", At: time.Now()})
	if got := m.Flash(); got != "Timer finished" {
		t.Errorf("Flash() = %q, want %q", got, "Timer finished")
	}
}

func TestQQuits(t *testing.T) {
	m, _ := newTestModel()

	m, cmd := update(m, keyMsg("q"))
	if !m.Quitting() {
		t.Error("expected quitting=true after q")
	}
	if cmd == nil {
		t.Error("expected quit command after q")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel()

	m, cmd := update(m, keyMsg("ctrl+c"))
	if !m.Quitting() {
		t.Error("expected quitting=true after ctrl+c")
	}
	if cmd == nil {
		t.Error("expected quit command after ctrl+c")
	}
}

func TestQuestionMarkTogglesHelp(t *testing.T) {
	m, _ := newTestModel()

	m, _ = update(m, keyMsg("?"))
	if !m.HelpVisible() {
		t.Error("help should be visible after ?")
	}
	m, _ = update(m, keyMsg("?"))
	if m.HelpVisible() {
		t.Error("help should be hidden after second ?")
	}
}

func TestViewBeforeResize(t *testing.T) {
	m, _ := newTestModel()
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before resize = %q, want Initializing...", got)
	}
}

func TestViewAfterResizeShowsActiveCard(t *testing.T) {
	m, _ := newTestModel()

	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.Width() != 80 || m.Height() != 24 {
		t.Fatalf("size = %dx%d, want 80x24", m.Width(), m.Height())
	}
	out := m.View()
	if out == "" {
		t.Fatal("View() at 80x24 is empty")
	}
	if !strings.Contains(out, "Home") {
		t.Error("View() missing the active card title")
	}
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	m, _ := newTestModel()
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(m, keyMsg("q"))

	if got := m.View(); got != "" {
		t.Errorf("View() while quitting = %q, want empty", got)
	}
}

func TestKeyConsumedByWidgetSkipsSelection(t *testing.T) {
	// A card that consumes every key must block global view selection.
	greedy := &greedyWidget{PlaceholderWidget: *NewPlaceholder("home", "Home", time.Second)}
	m := NewModel(config.DefaultConfig(), cue.NewNil(), nil, greedy)

	m2, _ := m.Update(keyMsg("t"))
	if got := m2.(Model).ActiveView(); got != view.Home {
		t.Errorf("active = %v, want Home (key consumed by card)", got)
	}
}

// greedyWidget consumes every key.
type greedyWidget struct {
	PlaceholderWidget
}

func (w *greedyWidget) HandleKey(_ tea.KeyMsg) (tea.Cmd, bool) {
	return nil, true
}
