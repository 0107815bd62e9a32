package engine

import (
	"fmt"
	"time"

	"gitlab.com/tinyland/lab/clock-deck/pkg/clock"
)

// Alarm fires once when the wall clock crosses a user-set time of day.
// The trigger instant is the exact hh:mm:00 second. Rather than comparing
// the current second against zero on each poll, which silently skips the
// alarm when a tick is delayed past the matching second. Check instead keeps a
// cursor of the previous check instant and fires when the trigger instant
// falls inside (cursor, now]. The match stays second-exact; only the
// detection is made robust to tick jitter.
type Alarm struct {
	clk    clock.Clock
	hour   int
	minute int
	armed  bool
	cursor time.Time
}

// NewAlarm returns a disarmed alarm driven by clk.
func NewAlarm(clk clock.Clock) *Alarm {
	return &Alarm{clk: clk}
}

// Arm stores the target time of day and arms the alarm. The check cursor
// starts at the arm instant, so a target equal to the current minute fires
// at the next hh:mm:00 crossing, not retroactively.
func (a *Alarm) Arm(hour, minute int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("alarm hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("alarm minute %d out of range", minute)
	}
	a.hour = hour
	a.minute = minute
	a.armed = true
	a.cursor = a.clk.Now()
	return nil
}

// Disarm turns the alarm off without firing.
func (a *Alarm) Disarm() {
	a.armed = false
}

// Check is the refresh-tick entry point (~1/s). It reports true when the
// pending trigger instant was crossed since the previous check, and
// firing disarms the alarm: at most one firing per armed session. The
// cursor advances to now on every armed call.
func (a *Alarm) Check() bool {
	if !a.armed {
		return false
	}
	now := a.clk.Now()
	target := a.nextAfter(a.cursor)
	a.cursor = now
	if !target.After(now) {
		a.armed = false
		return true
	}
	return false
}

// Armed reports whether the alarm is armed.
func (a *Alarm) Armed() bool {
	return a.armed
}

// Target returns the armed time of day.
func (a *Alarm) Target() (hour, minute int) {
	return a.hour, a.minute
}

// Next returns the pending trigger instant: the first hh:mm:00 strictly
// after the check cursor. Meaningful only while armed.
func (a *Alarm) Next() time.Time {
	return a.nextAfter(a.cursor)
}

func (a *Alarm) nextAfter(t time.Time) time.Time {
	next := time.Date(t.Year(), t.Month(), t.Day(), a.hour, a.minute, 0, 0, t.Location())
	if !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
