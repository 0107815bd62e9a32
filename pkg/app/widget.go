package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Widget is one card in the deck. Implementations own their state
// exclusively; nothing is shared across cards.
//
// Lifecycle: Activate is called when the card becomes visible and may
// return a command (initial fetch, input blink). Deactivate is called
// when the user navigates away and must discard card-local state: a
// card switched away from and back starts fresh. Timer release is the
// model's job via the tick generation; Deactivate only drops state.
type Widget interface {
	// ID returns the widget's stable identifier.
	ID() string

	// Title returns the display title for the card header.
	Title() string

	// Activate prepares fresh state for display.
	Activate() tea.Cmd

	// Deactivate discards card-local state.
	Deactivate()

	// TickInterval is the card's refresh cadence. Zero means the card
	// needs no periodic refresh (event-driven only).
	TickInterval() time.Duration

	// Update handles non-key messages routed to the active card,
	// including its TickEvents and any card-local command results.
	Update(msg tea.Msg) tea.Cmd

	// HandleKey processes a key press. The handled result tells the
	// model whether the card consumed the key; unconsumed keys fall
	// through to the global bindings and view selection.
	HandleKey(msg tea.KeyMsg) (tea.Cmd, bool)

	// View renders the card's interior at the given dimensions.
	View(width, height int) string
}
