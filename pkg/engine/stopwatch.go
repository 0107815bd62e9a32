// Package engine implements the three timing engines behind the deck
// widgets: stopwatch, countdown and alarm. Engines are presentation-free
// and single-goroutine (the bubbletea update loop owns them), so they
// carry no locks. Elapsed and remaining time are always derived by
// subtraction from an injected clock, never by accumulating tick
// increments, so timer jitter cannot drift the displayed value.
package engine

import (
	"time"

	"gitlab.com/tinyland/lab/clock-deck/pkg/clock"
)

// Stopwatch tracks elapsed time since a start instant with pause/resume,
// reset, and lap recording. States: stopped, running.
type Stopwatch struct {
	clk     clock.Clock
	running bool
	anchor  time.Time     // instant elapsed is measured from while running
	frozen  time.Duration // elapsed captured at the last Stop
	laps    []time.Duration // most recent first
}

// NewStopwatch returns a stopped, zeroed stopwatch driven by clk.
func NewStopwatch(clk clock.Clock) *Stopwatch {
	return &Stopwatch{clk: clk}
}

// Start begins or resumes timing. The anchor is backdated by the frozen
// value, so resuming continues from the accumulated elapsed time rather
// than restarting from zero. No-op while running.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.anchor = s.clk.Now().Add(-s.frozen)
	s.running = true
}

// Stop freezes the elapsed value. No-op while stopped.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.frozen = s.clk.Now().Sub(s.anchor)
	s.running = false
}

// Reset forces the stopped state with zero elapsed time and no laps.
// Allowed from either state.
func (s *Stopwatch) Reset() {
	s.running = false
	s.frozen = 0
	s.laps = nil
}

// Lap records the current elapsed time at the front of the lap list.
// No-op unless running.
func (s *Stopwatch) Lap() {
	if !s.running {
		return
	}
	s.laps = append([]time.Duration{s.Elapsed()}, s.laps...)
}

// Elapsed returns the authoritative elapsed time: now minus the anchor
// while running, the frozen value otherwise. Callers sample this on every
// refresh tick; the engine never increments a counter per tick.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.clk.Now().Sub(s.anchor)
	}
	return s.frozen
}

// Running reports whether the stopwatch is currently timing.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Laps returns a copy of the recorded laps, most recent first.
func (s *Stopwatch) Laps() []time.Duration {
	out := make([]time.Duration, len(s.laps))
	copy(out, s.laps)
	return out
}

// Splits returns the per-lap split times in the same most-recent-first
// order as Laps: splits[i] = laps[i] - laps[i+1], with the oldest lap's
// previous boundary defined as zero.
func (s *Stopwatch) Splits() []time.Duration {
	out := make([]time.Duration, len(s.laps))
	for i := range s.laps {
		if i == len(s.laps)-1 {
			out[i] = s.laps[i]
			continue
		}
		out[i] = s.laps[i] - s.laps[i+1]
	}
	return out
}
