package widgets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/clock-deck/pkg/app"
	"gitlab.com/tinyland/lab/clock-deck/pkg/clock"
	"gitlab.com/tinyland/lab/clock-deck/pkg/clockfmt"
	"gitlab.com/tinyland/lab/clock-deck/pkg/components"
	"gitlab.com/tinyland/lab/clock-deck/pkg/engine"
	"gitlab.com/tinyland/lab/clock-deck/pkg/theme"
	"gitlab.com/tinyland/lab/clock-deck/pkg/view"
)

// TimerWidget is the countdown card. Presets come from config and are
// selectable by digit key or mouse click; c opens a free-form duration
// entry. Expiry rings the card until dismissed or reset.
type TimerWidget struct {
	clk      clock.Clock
	interval time.Duration
	presets  []time.Duration
	zones    *zone.Manager

	eng     *engine.Countdown
	input   textinput.Model
	editing bool
	ringing bool
	sel     int // preset index shown as selected, -1 for custom
}

// NewTimerWidget creates the countdown card. The zone manager must be
// the one the root model scans, or preset clicks will never land.
func NewTimerWidget(clk clock.Clock, interval time.Duration, presets []time.Duration, zones *zone.Manager) *TimerWidget {
	if zones == nil {
		zones = zone.New()
	}
	return &TimerWidget{clk: clk, interval: interval, presets: presets, zones: zones}
}

// ID returns the card identifier.
func (w *TimerWidget) ID() string { return "timer" }

// Title returns the card title.
func (w *TimerWidget) Title() string { return "Timer" }

// Activate builds a fresh engine configured to the first preset.
func (w *TimerWidget) Activate() tea.Cmd {
	w.eng = engine.NewCountdown(w.clk)
	w.ringing = false
	w.editing = false
	w.sel = 0
	if len(w.presets) > 0 {
		w.eng.Configure(w.presets[0])
	}
	return nil
}

// Deactivate drops the engine.
func (w *TimerWidget) Deactivate() {
	w.eng = nil
	w.ringing = false
	w.editing = false
}

// TickInterval returns the 1s sync cadence.
func (w *TimerWidget) TickInterval() time.Duration { return w.interval }

// Update syncs the engine on ticks and handles preset clicks.
func (w *TimerWidget) Update(msg tea.Msg) tea.Cmd {
	if w.eng == nil {
		return nil
	}
	switch msg := msg.(type) {
	case app.TickEvent:
		if w.eng.Sync() {
			w.ringing = true
			return app.CompletionCmd(view.Timer, "Timer finished")
		}
		return nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for i := range w.presets {
				if w.zones.Get(cdPresetZone(i)).InBounds(msg) {
					w.selectPreset(i)
					return nil
				}
			}
		}
		return nil
	default:
		if w.editing {
			var cmd tea.Cmd
			w.input, cmd = w.input.Update(msg)
			return cmd
		}
	}
	return nil
}

// HandleKey maps space to start/pause, r to reset, digits to presets and
// c to the custom entry. While editing, the input consumes everything but
// tab navigation.
func (w *TimerWidget) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if w.eng == nil {
		return nil, false
	}

	if w.editing {
		switch msg.Type {
		case tea.KeyTab, tea.KeyShiftTab:
			return nil, false
		case tea.KeyEnter:
			d, err := time.ParseDuration(w.input.Value())
			if err == nil && d > 0 {
				if w.eng.Configure(d) == nil {
					w.sel = -1
					w.editing = false
				}
			}
			return nil, true
		case tea.KeyEscape:
			w.editing = false
			return nil, true
		default:
			var cmd tea.Cmd
			w.input, cmd = w.input.Update(msg)
			return cmd, true
		}
	}

	switch msg.String() {
	case " ":
		if w.ringing {
			w.dismiss()
			return nil, true
		}
		if w.eng.Running() {
			w.eng.Stop()
		} else {
			w.eng.Start()
		}
		return nil, true
	case "r":
		w.ringing = false
		w.eng.Reset()
		return nil, true
	case "c":
		if !w.eng.Running() {
			w.editing = true
			w.input = cdNewInput()
			return textinput.Blink, true
		}
		return nil, true
	}

	if n, err := strconv.Atoi(msg.String()); err == nil {
		if n >= 1 && n <= len(w.presets) {
			w.selectPreset(n - 1)
		}
		// consume every digit while visible; none may leak into view
		// selection
		return nil, true
	}
	return nil, false
}

// selectPreset retargets the engine; a running countdown rejects the
// retarget and the keypress is a no-op.
func (w *TimerWidget) selectPreset(i int) {
	if w.ringing {
		w.dismiss()
	}
	if w.eng.Configure(w.presets[i]) == nil {
		w.sel = i
	}
}

func (w *TimerWidget) dismiss() {
	w.ringing = false
	w.eng.Reset()
}

// View renders the readout, progress gauge and preset row.
func (w *TimerWidget) View(width, height int) string {
	if width <= 0 || height <= 0 || w.eng == nil {
		return ""
	}
	th := theme.Current

	if w.ringing {
		lines := []string{
			components.Color(th.StatusError) + components.Bold("⏲  TIME'S UP") + "\x1b[39m",
			"",
		}
		lines = append(lines, bigTime(clockfmt.Countdown(0), width)...)
		lines = append(lines, "", components.Dim("space: dismiss   r: reset"))
		return centerLines(lines, width, height)
	}

	var lines []string
	lines = append(lines, bigTime(clockfmt.Countdown(w.eng.Remaining()), width)...)
	lines = append(lines, "")

	if total := w.eng.Total(); total > 0 {
		ratio := 1 - float64(w.eng.Remaining())/float64(total)
		gw := width - 8
		if gw > 40 {
			gw = 40
		}
		if gw >= 4 {
			lines = append(lines, components.Gauge(ratio, gw, th.Accent, th.Dim))
			lines = append(lines, "")
		}
	}

	switch w.eng.State() {
	case engine.CountdownRunning:
		lines = append(lines, components.Color(th.StatusOK)+"running\x1b[39m")
	default:
		lines = append(lines, components.Dim(w.eng.State().String()))
	}
	lines = append(lines, "")

	if w.editing {
		lines = append(lines, "Custom duration (e.g. 90s, 2m30s, 1h)")
		lines = append(lines, w.input.View())
	} else {
		lines = append(lines, w.presetRow())
		lines = append(lines, "")
		lines = append(lines, components.Dim("space: start/pause   r: reset   c: custom   1-"+strconv.Itoa(len(w.presets))+": preset"))
	}
	return centerLines(lines, width, height)
}

// presetRow renders the clickable preset chips.
func (w *TimerWidget) presetRow() string {
	th := theme.Current
	row := ""
	for i, p := range w.presets {
		label := fmt.Sprintf("[%d] %s", i+1, cdPresetLabel(p))
		if i == w.sel {
			label = components.Color(th.Accent) + components.Bold(label) + "\x1b[39m"
		} else {
			label = components.Dim(label)
		}
		if i > 0 {
			row += "  "
		}
		row += w.zones.Mark(cdPresetZone(i), label)
	}
	return row
}

func cdPresetZone(i int) string { return "cd:preset:" + strconv.Itoa(i) }

// cdPresetLabel formats a preset compactly: 5m, 90s, 1h30m.
func cdPresetLabel(d time.Duration) string {
	s := d.String()
	if strings.HasSuffix(s, "m0s") {
		s = strings.TrimSuffix(s, "0s")
	}
	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}
	return s
}

// cdNewInput builds the custom duration entry field.
func cdNewInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "2m30s"
	ti.CharLimit = 12
	ti.Width = 14
	ti.Focus()
	return ti
}
