package widgets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/clock-deck/pkg/app"
	"gitlab.com/tinyland/lab/clock-deck/pkg/clock"
	"gitlab.com/tinyland/lab/clock-deck/pkg/clockfmt"
	"gitlab.com/tinyland/lab/clock-deck/pkg/components"
	"gitlab.com/tinyland/lab/clock-deck/pkg/engine"
	"gitlab.com/tinyland/lab/clock-deck/pkg/theme"
	"gitlab.com/tinyland/lab/clock-deck/pkg/view"
)

// AlarmWidget is the time-of-day alarm card. While disarmed it shows an
// HH:MM input whose set control stays disabled until the value parses as
// a valid time of day; while armed it shows the target, a countdown line
// and the current time. Firing rings the card and disarms.
type AlarmWidget struct {
	clk      clock.Clock
	interval time.Duration

	eng     *engine.Alarm
	input   textinput.Model
	ringing bool
}

// NewAlarmWidget creates the alarm card with the given refresh cadence.
func NewAlarmWidget(clk clock.Clock, interval time.Duration) *AlarmWidget {
	return &AlarmWidget{clk: clk, interval: interval}
}

// ID returns the card identifier.
func (w *AlarmWidget) ID() string { return "alarm" }

// Title returns the card title.
func (w *AlarmWidget) Title() string { return "Alarm" }

// Activate builds a fresh engine and input.
func (w *AlarmWidget) Activate() tea.Cmd {
	w.eng = engine.NewAlarm(w.clk)
	w.ringing = false
	w.input = alNewInput()
	return textinput.Blink
}

// Deactivate drops the engine; a disarmed card is rebuilt on return.
func (w *AlarmWidget) Deactivate() {
	w.eng = nil
	w.ringing = false
}

// TickInterval returns the 1s check cadence.
func (w *AlarmWidget) TickInterval() time.Duration { return w.interval }

// Update checks the alarm each tick and feeds everything else to the
// input while editing.
func (w *AlarmWidget) Update(msg tea.Msg) tea.Cmd {
	if w.eng == nil {
		return nil
	}
	switch msg := msg.(type) {
	case app.TickEvent:
		if w.eng.Check() {
			w.ringing = true
			return app.CompletionCmd(view.Alarm, "Alarm ringing")
		}
		return nil
	default:
		if !w.eng.Armed() && !w.ringing {
			var cmd tea.Cmd
			w.input, cmd = w.input.Update(msg)
			return cmd
		}
	}
	return nil
}

// HandleKey routes keys by card state. While editing, the input consumes
// every key except tab navigation; enter arms only when the value parses,
// matching the disabled set control for invalid input.
func (w *AlarmWidget) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if w.eng == nil {
		return nil, false
	}

	if w.eng.Armed() || w.ringing {
		if msg.String() == "d" {
			w.eng.Disarm()
			w.ringing = false
			w.input = alNewInput()
			return textinput.Blink, true
		}
		return nil, false
	}

	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		return nil, false
	case tea.KeyEnter:
		hour, minute, ok := alParseTime(w.input.Value())
		if !ok {
			return nil, true // set control disabled for invalid input
		}
		if err := w.eng.Arm(hour, minute); err != nil {
			return nil, true
		}
		w.input.Blur()
		return nil, true
	case tea.KeyEscape:
		w.input.SetValue("")
		return nil, true
	default:
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return cmd, true
	}
}

// View renders the card for its three states.
func (w *AlarmWidget) View(width, height int) string {
	if width <= 0 || height <= 0 || w.eng == nil {
		return ""
	}
	th := theme.Current
	now := w.clk.Now()

	if w.ringing {
		lines := []string{
			components.Color(th.StatusError) + components.Bold("⏰  ALARM") + "\x1b[39m",
			"",
			clockfmt.TimeOfDay(now),
			"",
			components.Dim("d: dismiss"),
		}
		return centerLines(lines, width, height)
	}

	if w.eng.Armed() {
		hour, minute := w.eng.Target()
		var lines []string
		lines = append(lines, bigTime(fmt.Sprintf("%02d:%02d", hour, minute), width)...)
		lines = append(lines, "",
			fmt.Sprintf("rings in %s", alRingsIn(w.eng.Next().Sub(now))),
			"",
			components.Dim("now "+clockfmt.TimeOfDay(now)),
			"",
			components.Dim("d: disarm"))
		return centerLines(lines, width, height)
	}

	_, _, valid := alParseTime(w.input.Value())
	setHint := components.Dim("set disabled, enter a time as HH:MM")
	if valid {
		setHint = components.Color(th.StatusOK) + "enter: arm\x1b[39m"
	}
	lines := []string{
		"Set alarm time",
		"",
		w.input.View(),
		"",
		setHint,
	}
	return centerLines(lines, width, height)
}

// alNewInput builds the HH:MM entry field.
func alNewInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "HH:MM"
	ti.CharLimit = 5
	ti.Width = 7
	ti.Focus()
	return ti
}

// alParseTime parses "H:MM" or "HH:MM" into a valid time of day.
func alParseTime(s string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	if len(parts[1]) != 2 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// alRingsIn formats the time until the trigger as "7h 59m" / "12m 30s".
func alRingsIn(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d >= time.Hour {
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	}
	return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
}
