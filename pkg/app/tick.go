package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/clock-deck/pkg/view"
)

// TickCmd returns a Cmd that sends a TickEvent after d, tagged with the
// view and generation it was armed for.
func TickCmd(v view.View, gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{View: v, Gen: gen, Time: t}
	})
}
