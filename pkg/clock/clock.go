// Package clock abstracts wall-clock access so the timing engines can be
// driven deterministically in tests. Production code injects System();
// engines derive elapsed/remaining time by subtraction from Now() and never
// accumulate per-tick increments, so a coarse Now-only interface is enough.
package clock

import "time"

// Clock is a source of the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
