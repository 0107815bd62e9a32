package widgets

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/clock-deck/pkg/cache"
	"gitlab.com/tinyland/lab/clock-deck/pkg/components"
	"gitlab.com/tinyland/lab/clock-deck/pkg/theme"
	"gitlab.com/tinyland/lab/clock-deck/pkg/weather"
)

const (
	wxCacheKey      = "weather.json"
	wxFetchTimeout  = 10 * time.Second
	wxLocateTimeout = 5 * time.Second
)

type wxState int

const (
	wxIdle wxState = iota
	wxLoading
	wxReady
	wxFailed
)

// wxResult carries a fetch outcome back into the update loop.
type wxResult struct {
	snap   weather.Snapshot
	cached bool
	err    error
}

// WeatherWidget is the weather card. It fetches once on activation,
// short-circuiting through the snapshot cache, and refetches only on an
// explicit r press. There is no periodic refresh.
type WeatherWidget struct {
	client   weather.Client
	locator  weather.Locator
	store    *cache.Store
	cacheTTL time.Duration

	state  wxState
	snap   weather.Snapshot
	cached bool
	err    error
}

// NewWeatherWidget creates the weather card. A nil client marks the
// service disabled; a nil store disables caching.
func NewWeatherWidget(client weather.Client, locator weather.Locator, store *cache.Store, cacheTTL time.Duration) *WeatherWidget {
	return &WeatherWidget{client: client, locator: locator, store: store, cacheTTL: cacheTTL}
}

// ID returns the card identifier.
func (w *WeatherWidget) ID() string { return "weather" }

// Title returns the card title.
func (w *WeatherWidget) Title() string { return "Weather" }

// Activate kicks off the initial fetch.
func (w *WeatherWidget) Activate() tea.Cmd {
	w.state = wxLoading
	w.snap = weather.Snapshot{}
	w.err = nil
	return w.fetchCmd(false)
}

// Deactivate drops the reading; the cache keeps it warm for next time.
func (w *WeatherWidget) Deactivate() {
	w.state = wxIdle
	w.snap = weather.Snapshot{}
	w.err = nil
}

// TickInterval is zero: the card is event-driven only.
func (w *WeatherWidget) TickInterval() time.Duration { return 0 }

// Update stores fetch results.
func (w *WeatherWidget) Update(msg tea.Msg) tea.Cmd {
	if res, ok := msg.(wxResult); ok {
		if res.err != nil {
			w.state = wxFailed
			w.err = res.err
		} else {
			w.state = wxReady
			w.snap = res.snap
			w.cached = res.cached
			w.err = nil
		}
	}
	return nil
}

// HandleKey refetches on r, bypassing the cache.
func (w *WeatherWidget) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "r" {
		w.state = wxLoading
		w.err = nil
		return w.fetchCmd(true), true
	}
	return nil, false
}

// fetchCmd resolves the position, fetches conditions and caches the
// result. With force false a fresh-enough cached snapshot short-circuits
// the whole chain.
func (w *WeatherWidget) fetchCmd(force bool) tea.Cmd {
	client, locator, store, ttl := w.client, w.locator, w.store, w.cacheTTL
	return func() tea.Msg {
		if client == nil {
			return wxResult{err: weather.ErrServiceDisabled}
		}
		if !force && store != nil {
			if snap, _, ok := cache.GetTyped[weather.Snapshot](store, wxCacheKey, ttl); ok {
				return wxResult{snap: snap, cached: true}
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), wxLocateTimeout)
		loc, err := locator.Locate(ctx)
		cancel()
		if err != nil {
			return wxResult{err: err}
		}

		ctx, cancel = context.WithTimeout(context.Background(), wxFetchTimeout)
		snap, err := client.Current(ctx, loc)
		cancel()
		if err != nil {
			return wxResult{err: err}
		}

		if store != nil {
			// cache write is best-effort
			_ = cache.PutTyped(store, wxCacheKey, snap)
		}
		return wxResult{snap: snap}
	}
}

// View renders the card for its states.
func (w *WeatherWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	th := theme.Current

	switch w.state {
	case wxLoading:
		return centerLines([]string{components.Dim("fetching weather…")}, width, height)
	case wxFailed:
		return centerLines([]string{
			components.Color(th.StatusError) + weather.UserMessage(w.err) + "\x1b[39m",
			"",
			components.Dim("press r to retry"),
		}, width, height)
	case wxReady:
		return centerLines(w.readyLines(th), width, height)
	default:
		return centerLines([]string{components.Dim("press r to fetch weather")}, width, height)
	}
}

func (w *WeatherWidget) readyLines(th theme.Theme) []string {
	s := w.snap
	lines := []string{
		components.Bold(s.City),
		"",
		fmt.Sprintf("%s  %.1f°C  %s", s.IconGlyph, s.TemperatureC, s.Condition),
		"",
		fmt.Sprintf("humidity %d%%   wind %.0f km/h", s.HumidityPct, s.WindSpeedKmh),
		"",
	}
	age := components.Dim("fetched " + s.FetchedAt.Format("15:04"))
	if w.cached {
		age = components.Dim("cached · fetched " + s.FetchedAt.Format("15:04"))
	}
	lines = append(lines, age)
	for _, src := range s.Attribution {
		lines = append(lines, components.Dim(src.Title+" <"+src.URI+">"))
	}
	lines = append(lines, "", components.Dim("r: refresh"))
	return lines
}
