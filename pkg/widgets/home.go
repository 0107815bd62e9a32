package widgets

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/clock-deck/pkg/app"
	"gitlab.com/tinyland/lab/clock-deck/pkg/clock"
	"gitlab.com/tinyland/lab/clock-deck/pkg/clockfmt"
	"gitlab.com/tinyland/lab/clock-deck/pkg/components"
	"gitlab.com/tinyland/lab/clock-deck/pkg/sysstat"
	"gitlab.com/tinyland/lab/clock-deck/pkg/theme"
)

// hmStatsEvery is how many second-ticks pass between host stat refreshes.
const hmStatsEvery = 60

// HomeWidget is the idle card: big current time, date, host stats line
// and the deck hint.
type HomeWidget struct {
	clk      clock.Clock
	interval time.Duration

	now   time.Time
	stats *sysstat.Snapshot
	ticks int
}

// hmStatsMsg delivers a host stats reading from the collect command.
type hmStatsMsg struct {
	snap sysstat.Snapshot
	err  error
}

// NewHomeWidget creates the home card with the given refresh cadence.
func NewHomeWidget(clk clock.Clock, interval time.Duration) *HomeWidget {
	return &HomeWidget{clk: clk, interval: interval}
}

// ID returns the card identifier.
func (w *HomeWidget) ID() string { return "home" }

// Title returns the card title.
func (w *HomeWidget) Title() string { return "Home" }

// Activate samples the clock and kicks off a host stats collection.
func (w *HomeWidget) Activate() tea.Cmd {
	w.now = w.clk.Now()
	w.ticks = 0
	return hmCollectCmd
}

// Deactivate drops card state.
func (w *HomeWidget) Deactivate() {
	w.stats = nil
	w.ticks = 0
}

// TickInterval returns the 1s display cadence.
func (w *HomeWidget) TickInterval() time.Duration { return w.interval }

// Update resamples the clock each tick and refreshes host stats once a
// minute.
func (w *HomeWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.TickEvent:
		w.now = w.clk.Now()
		w.ticks++
		if w.ticks%hmStatsEvery == 0 {
			return hmCollectCmd
		}
	case hmStatsMsg:
		if msg.err == nil {
			snap := msg.snap
			w.stats = &snap
		}
	}
	return nil
}

// HandleKey consumes nothing; all keys fall through to the deck.
func (w *HomeWidget) HandleKey(_ tea.KeyMsg) (tea.Cmd, bool) {
	return nil, false
}

// View renders the clock card.
func (w *HomeWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current

	var lines []string
	lines = append(lines, bigTime(clockfmt.TimeOfDay(w.now), width)...)
	lines = append(lines, "", clockfmt.Date(w.now))
	if w.stats != nil {
		host := fmt.Sprintf("%s  up %s  load %.2f %.2f %.2f",
			w.stats.Hostname, w.stats.UptimeString(),
			w.stats.Load1, w.stats.Load5, w.stats.Load15)
		lines = append(lines, "", components.Dim(host))
	}
	lines = append(lines, "", components.Color(th.Dim)+"a alarm · s stopwatch · t timer · w weather\x1b[39m")

	return centerLines(lines, width, height)
}

// hmCollectCmd gathers one host stats snapshot off the update loop.
func hmCollectCmd() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	snap, err := sysstat.Collect(ctx)
	return hmStatsMsg{snap: snap, err: err}
}
