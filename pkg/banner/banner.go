// Package banner provides the non-interactive, single-frame rendering of
// the deck: the big-digit clock, the date line and the last cached weather
// reading, composed for shell startup. The banner never touches the
// network; weather comes only from the snapshot cache, and a missing or
// stale cache entry simply drops the line.
package banner

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/clock-deck/pkg/cache"
	"gitlab.com/tinyland/lab/clock-deck/pkg/clock"
	"gitlab.com/tinyland/lab/clock-deck/pkg/clockfmt"
	"gitlab.com/tinyland/lab/clock-deck/pkg/components"
	"gitlab.com/tinyland/lab/clock-deck/pkg/theme"
	"gitlab.com/tinyland/lab/clock-deck/pkg/weather"
)

// bnDefaultWidth is used when no terminal width could be determined.
const bnDefaultWidth = 80

// bnWeatherCacheKey matches the key the weather card writes under.
const bnWeatherCacheKey = "weather.json"

// Options configures one banner render.
type Options struct {
	// Width is the target width in cells; zero falls back to 80.
	Width int

	// Color enables ANSI color output. Off, the banner is plain text.
	Color bool

	// Clock supplies the rendered instant.
	Clock clock.Clock

	// Store is the snapshot cache to read the weather line from. Nil
	// drops the weather line.
	Store *cache.Store

	// CacheTTL bounds how old a cached weather snapshot may be and
	// still appear. Zero shows any cached snapshot regardless of age.
	CacheTTL time.Duration
}

// Render produces the complete banner, newline-terminated.
func Render(opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = bnDefaultWidth
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.System()
	}
	now := clk.Now()
	th := theme.Current

	var lines []string
	lines = append(lines, bnClockLines(now, width, opts.Color, th)...)
	lines = append(lines, "", clockfmt.Date(now))
	if wx := bnWeatherLine(opts.Store, opts.CacheTTL, opts.Color, th); wx != "" {
		lines = append(lines, "", wx)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(components.PadCenter(components.Truncate(line, width), width))
		b.WriteByte('\n')
	}
	return b.String()
}

// bnClockLines renders the time in the big-digit font when the width
// allows, falling back to the plain readout.
func bnClockLines(now time.Time, width int, color bool, th theme.Theme) []string {
	s := clockfmt.TimeOfDay(now)
	if components.BigDigitsWidth(s) > width {
		if color {
			return []string{components.Color(th.Digit) + components.Bold(s) + "\x1b[39m"}
		}
		return []string{s}
	}
	rows := components.BigDigits(s)
	if color {
		c := components.Color(th.Digit)
		for i, row := range rows {
			rows[i] = c + row + "\x1b[39m"
		}
	}
	return rows
}

// bnWeatherLine formats the cached reading, or "" when there is none.
func bnWeatherLine(store *cache.Store, ttl time.Duration, color bool, th theme.Theme) string {
	if store == nil {
		return ""
	}
	snap, _, ok := cache.GetTyped[weather.Snapshot](store, bnWeatherCacheKey, ttl)
	if !ok {
		return ""
	}
	line := fmt.Sprintf("%s %s  %.1f°C  %s", snap.IconGlyph, snap.City, snap.TemperatureC, snap.Condition)
	if color {
		return components.Dim(line)
	}
	return line
}
