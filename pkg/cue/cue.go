// Package cue emits the completion cue when a stopwatch lap target,
// countdown or alarm fires: a terminal bell plus a desktop notification
// via the OSC 777 escape. The cue is best-effort; terminals that ignore
// either sequence simply show nothing, and failures are never surfaced.
// Engines know nothing of this package; the app layer invokes it when it
// handles a completion event.
package cue

import "github.com/muesli/termenv"

// Notifier emits completion cues on a terminal output.
type Notifier struct {
	out *termenv.Output
}

// New returns a Notifier writing to out.
func New(out *termenv.Output) *Notifier {
	return &Notifier{out: out}
}

// NewNil returns a Notifier that emits nothing, for tests and banner mode.
func NewNil() *Notifier {
	return &Notifier{}
}

// Notify rings the terminal bell and emits a desktop notification.
// Best-effort; a nil or disabled notifier does nothing.
func (n *Notifier) Notify(title, body string) {
	if n == nil || n.out == nil {
		return
	}
	n.out.WriteString("\a")
	n.out.Notify(title, body)
}
