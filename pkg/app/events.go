// Package app provides the Bubbletea shell for the clock deck: the root
// model, the widget interface, the event types and the tick plumbing.
// Exactly one card is visible at a time; the active card's cadence drives
// a single live tick chain, tagged with the view and a generation counter
// so ticks from a card that was switched away are dropped rather than
// re-armed.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/clock-deck/pkg/view"
)

// TickEvent is the periodic refresh for the active card. View and Gen
// tag the tick chain it belongs to; the model drops events whose tags no
// longer match, which is what releases a card's timer on switch.
type TickEvent struct {
	View view.View
	Gen  uint64
	Time time.Time
}

// CompletionEvent is the one-shot signal a card emits when its engine
// fires: countdown expiry or alarm ring. The model turns it into a status
// flash and a best-effort cue; it never repeats within one start cycle.
type CompletionEvent struct {
	Source view.View
	Label  string
	At     time.Time
}

// CompletionCmd wraps a CompletionEvent as a command for widgets to
// return from their tick handling.
func CompletionCmd(source view.View, label string) tea.Cmd {
	return func() tea.Msg {
		return CompletionEvent{Source: source, Label: label, At: time.Now()}
	}
}
