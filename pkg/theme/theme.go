// Package theme holds the color palettes for the deck. Themes are
// registered by name at init; Get falls back to the default palette for
// unknown names so a typo in config never breaks rendering.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the color palette one deck render uses.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#1e1e1e"
	Foreground string
	Dim        string // de-emphasized text
	Accent     string // highlights, active tab

	// Card colors
	Border      string
	BorderFocus string
	Title       string
	Digit       string // big-digit clock readout

	// Status colors
	StatusOK    string
	StatusWarn  string
	StatusError string

	// Gauge and chart colors
	GaugeFilled string
	GaugeEmpty  string
	ChartLine   string

	// Help overlay
	HelpKey  string
	HelpDesc string
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
	Current = thDefaultTheme()
}

// Get returns a named theme, falling back to default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
