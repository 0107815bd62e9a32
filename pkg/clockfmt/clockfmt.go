// Package clockfmt formats durations and wall-clock instants for the deck
// widgets. All functions are total over non-negative inputs; negative
// durations are clamped to zero rather than producing a sign.
package clockfmt

import (
	"fmt"
	"time"
)

// Stopwatch formats an elapsed duration as "MM:SS.CC". Minutes and seconds
// are zero-padded to two digits; hundredths are truncated from the
// millisecond value, not rounded, so the readout never runs ahead of the
// clock. Minutes widen past two digits beyond 99:59.99.
func Stopwatch(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	minutes := ms / 60_000
	seconds := (ms % 60_000) / 1000
	hundredths := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, hundredths)
}

// Countdown formats a remaining duration as "HH:MM:SS" over whole seconds,
// each field zero-padded to two digits. Sub-second remainders are dropped.
func Countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// TimeOfDay formats a wall-clock instant as "HH:MM:SS" (24-hour).
func TimeOfDay(t time.Time) string {
	return t.Format("15:04:05")
}

// Date formats the date line shown under the home clock.
func Date(t time.Time) string {
	return t.Format("Mon Jan 2 2006")
}
