package widgets

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/clock-deck/pkg/clock"
	"gitlab.com/tinyland/lab/clock-deck/pkg/clockfmt"
	"gitlab.com/tinyland/lab/clock-deck/pkg/components"
	"gitlab.com/tinyland/lab/clock-deck/pkg/engine"
	"gitlab.com/tinyland/lab/clock-deck/pkg/theme"
)

// swMaxLapRows caps the visible lap table; older laps scroll off.
const swMaxLapRows = 8

// StopwatchWidget is the stopwatch card: a centisecond readout with lap
// capture, split times and a sparkline of recent splits.
type StopwatchWidget struct {
	clk      clock.Clock
	interval time.Duration

	eng *engine.Stopwatch
}

// NewStopwatchWidget creates the stopwatch card with the given refresh
// cadence.
func NewStopwatchWidget(clk clock.Clock, interval time.Duration) *StopwatchWidget {
	return &StopwatchWidget{clk: clk, interval: interval}
}

// ID returns the card identifier.
func (w *StopwatchWidget) ID() string { return "stopwatch" }

// Title returns the card title.
func (w *StopwatchWidget) Title() string { return "Stopwatch" }

// Activate builds a fresh engine at zero.
func (w *StopwatchWidget) Activate() tea.Cmd {
	w.eng = engine.NewStopwatch(w.clk)
	return nil
}

// Deactivate drops the engine and its laps.
func (w *StopwatchWidget) Deactivate() { w.eng = nil }

// TickInterval returns the centisecond refresh cadence.
func (w *StopwatchWidget) TickInterval() time.Duration { return w.interval }

// Update has nothing to do on ticks; the readout is recomputed from the
// clock at render time.
func (w *StopwatchWidget) Update(msg tea.Msg) tea.Cmd { return nil }

// HandleKey maps space to start/stop, l to lap and r to reset.
func (w *StopwatchWidget) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if w.eng == nil {
		return nil, false
	}
	switch msg.String() {
	case " ":
		if w.eng.Running() {
			w.eng.Stop()
		} else {
			w.eng.Start()
		}
		return nil, true
	case "l":
		if w.eng.Running() {
			w.eng.Lap()
		}
		return nil, true
	case "r":
		w.eng.Reset()
		return nil, true
	}
	return nil, false
}

// View renders the readout, lap table and split sparkline.
func (w *StopwatchWidget) View(width, height int) string {
	if width <= 0 || height <= 0 || w.eng == nil {
		return ""
	}
	th := theme.Current

	var lines []string
	lines = append(lines, bigTime(clockfmt.Stopwatch(w.eng.Elapsed()), width)...)
	lines = append(lines, "")

	if w.eng.Running() {
		lines = append(lines, components.Color(th.StatusOK)+"running\x1b[39m")
	} else {
		lines = append(lines, components.Dim("stopped"))
	}
	lines = append(lines, "")

	laps := w.eng.Laps()
	if len(laps) > 0 {
		splits := w.eng.Splits()
		lines = append(lines, components.Bold(fmt.Sprintf("%-5s %-10s %-10s", "lap", "split", "total")))
		for i, lap := range laps {
			if i == swMaxLapRows {
				lines = append(lines, components.Dim(fmt.Sprintf("… %d more", len(laps)-swMaxLapRows)))
				break
			}
			num := len(laps) - i
			lines = append(lines, fmt.Sprintf("%-5d %-10s %-10s",
				num, clockfmt.Stopwatch(splits[i]), clockfmt.Stopwatch(lap)))
		}
		if spark := swSplitSpark(splits, width-4); spark != "" {
			lines = append(lines, "", spark)
		}
	}

	lines = append(lines, "", components.Dim("space: start/stop   l: lap   r: reset"))
	return centerLines(lines, width, height)
}

// swSplitSpark plots split durations oldest to newest.
func swSplitSpark(splits []time.Duration, width int) string {
	if len(splits) < 2 || width < 2 {
		return ""
	}
	data := make([]float64, 0, len(splits))
	for i := len(splits) - 1; i >= 0; i-- {
		data = append(data, splits[i].Seconds())
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	return components.Sparkline(data, len(data), theme.Current.Accent)
}
