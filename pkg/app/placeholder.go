package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PlaceholderWidget is a minimal card that records its lifecycle calls
// and renders its ID and dimensions. It exists so the model's routing,
// switching and tick plumbing can be tested without real cards.
type PlaceholderWidget struct {
	id       string
	title    string
	interval time.Duration

	// Lifecycle counters, inspected by tests.
	Activations   int
	Deactivations int
	Ticks         int
}

// NewPlaceholder creates a PlaceholderWidget with the given id, title and
// tick cadence.
func NewPlaceholder(id, title string, interval time.Duration) *PlaceholderWidget {
	return &PlaceholderWidget{id: id, title: title, interval: interval}
}

// ID returns the widget's identifier.
func (w *PlaceholderWidget) ID() string { return w.id }

// Title returns the widget's display title.
func (w *PlaceholderWidget) Title() string { return w.title }

// Activate counts the activation.
func (w *PlaceholderWidget) Activate() tea.Cmd {
	w.Activations++
	return nil
}

// Deactivate counts the deactivation.
func (w *PlaceholderWidget) Deactivate() {
	w.Deactivations++
}

// TickInterval returns the configured cadence.
func (w *PlaceholderWidget) TickInterval() time.Duration { return w.interval }

// Update counts ticks and ignores everything else.
func (w *PlaceholderWidget) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(TickEvent); ok {
		w.Ticks++
	}
	return nil
}

// HandleKey consumes nothing.
func (w *PlaceholderWidget) HandleKey(_ tea.KeyMsg) (tea.Cmd, bool) {
	return nil, false
}

// View renders the id and the dimensions it was asked for.
func (w *PlaceholderWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return fmt.Sprintf("%s %dx%d", w.id, width, height)
}
