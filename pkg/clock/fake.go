package clock

import "time"

// Fake is a manually advanced Clock for tests. It is not safe for
// concurrent use; the engines it drives are single-goroutine by design.
type Fake struct {
	now time.Time
}

// NewFake returns a Fake pinned to the given start instant.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the fake's current instant.
func (f *Fake) Now() time.Time {
	return f.now
}

// Advance moves the fake clock forward by d. Negative values are ignored.
func (f *Fake) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	f.now = f.now.Add(d)
}

// Set pins the fake clock to an absolute instant.
func (f *Fake) Set(t time.Time) {
	f.now = t
}
