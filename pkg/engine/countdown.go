package engine

import (
	"errors"
	"time"

	"gitlab.com/tinyland/lab/clock-deck/pkg/clock"
)

// ErrRunning is returned by operations that are only legal while a
// countdown is not running, such as retargeting the total duration.
var ErrRunning = errors.New("countdown is running")

// CountdownState enumerates the countdown engine's states.
type CountdownState int

const (
	// CountdownIdle means the countdown is configured but not ticking.
	CountdownIdle CountdownState = iota
	// CountdownRunning means a deadline is armed and remaining time is
	// being recomputed on each sync.
	CountdownRunning
	// CountdownExpired means the countdown reached zero and has fired.
	CountdownExpired
)

func (s CountdownState) String() string {
	switch s {
	case CountdownIdle:
		return "idle"
	case CountdownRunning:
		return "running"
	case CountdownExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Countdown tracks remaining time until an absolute deadline, with
// pause/resume, reset and retarget. The deadline is anchored once at
// Start; each Sync recomputes remaining from it, so a late tick shows
// the true remaining time instead of drifting.
type Countdown struct {
	clk       clock.Clock
	state     CountdownState
	total     time.Duration
	remaining time.Duration
	deadline  time.Time
}

// NewCountdown returns an idle countdown with zero total, driven by clk.
func NewCountdown(clk clock.Clock) *Countdown {
	return &Countdown{clk: clk}
}

// Configure sets the total duration and resets remaining to it. Returns
// ErrRunning while the countdown is running; retargeting is only
// permitted when stopped. Negative totals are clamped to zero.
func (c *Countdown) Configure(total time.Duration) error {
	if c.state == CountdownRunning {
		return ErrRunning
	}
	if total < 0 {
		total = 0
	}
	c.total = total
	c.remaining = total
	c.state = CountdownIdle
	return nil
}

// Start anchors the deadline at now + remaining and begins the countdown.
// No-op if already running or nothing remains.
func (c *Countdown) Start() {
	if c.state == CountdownRunning || c.remaining == 0 {
		return
	}
	c.deadline = c.clk.Now().Add(c.remaining)
	c.state = CountdownRunning
}

// Sync is the refresh-tick entry point. While running it recomputes
// remaining from the deadline, rounded to the nearest second and clamped
// at zero. It reports true exactly once per start cycle: on the sync that
// reaches zero, when the state moves to expired. In any other state it
// changes nothing and reports false.
func (c *Countdown) Sync() bool {
	if c.state != CountdownRunning {
		return false
	}
	c.remaining = c.remainingFromDeadline()
	if c.remaining == 0 {
		c.state = CountdownExpired
		return true
	}
	return false
}

// Stop pauses a running countdown, preserving the current remaining time
// so a later Start resumes instead of restarting. No-op unless running.
func (c *Countdown) Stop() {
	if c.state != CountdownRunning {
		return
	}
	c.remaining = c.remainingFromDeadline()
	c.state = CountdownIdle
}

// Reset returns to idle with the full configured total remaining.
func (c *Countdown) Reset() {
	c.state = CountdownIdle
	c.remaining = c.total
}

// Remaining returns the last synced remaining duration.
func (c *Countdown) Remaining() time.Duration {
	return c.remaining
}

// Total returns the configured total duration.
func (c *Countdown) Total() time.Duration {
	return c.total
}

// State returns the current engine state.
func (c *Countdown) State() CountdownState {
	return c.state
}

// Running reports whether the countdown is in the running state.
func (c *Countdown) Running() bool {
	return c.state == CountdownRunning
}

// Expired reports whether the countdown has fired.
func (c *Countdown) Expired() bool {
	return c.state == CountdownExpired
}

func (c *Countdown) remainingFromDeadline() time.Duration {
	rem := c.deadline.Sub(c.clk.Now()).Round(time.Second)
	if rem < 0 {
		rem = 0
	}
	return rem
}
