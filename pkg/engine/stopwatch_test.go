package engine

import (
	"testing"
	"time"

	"gitlab.com/tinyland/lab/clock-deck/pkg/clock"
)

// --- helpers ---

func newTestStopwatch() (*Stopwatch, *clock.Fake) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewStopwatch(clk), clk
}

func TestStopwatchStartsAtZeroStopped(t *testing.T) {
	sw, _ := newTestStopwatch()

	if sw.Running() {
		t.Error("new stopwatch should not be running")
	}
	if got := sw.Elapsed(); got != 0 {
		t.Errorf("new stopwatch Elapsed() = %v, want 0", got)
	}
}

func TestStopwatchElapsedTracksClock(t *testing.T) {
	sw, clk := newTestStopwatch()

	sw.Start()
	// 50 display ticks at 10ms each.
	for i := 0; i < 50; i++ {
		clk.Advance(10 * time.Millisecond)
	}
	sw.Stop()

	if got := sw.Elapsed(); got != 500*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 500ms", got)
	}
}

func TestStopwatchStopFreezesValue(t *testing.T) {
	sw, clk := newTestStopwatch()

	sw.Start()
	clk.Advance(2 * time.Second)
	sw.Stop()
	clk.Advance(10 * time.Minute)

	if got := sw.Elapsed(); got != 2*time.Second {
		t.Errorf("Elapsed() after stop = %v, want 2s", got)
	}
}

func TestStopwatchResumePreservesElapsed(t *testing.T) {
	sw, clk := newTestStopwatch()

	sw.Start()
	clk.Advance(3 * time.Second)
	sw.Stop()
	clk.Advance(time.Hour) // paused time must not count

	sw.Start()
	clk.Advance(2 * time.Second)

	if got := sw.Elapsed(); got != 5*time.Second {
		t.Errorf("Elapsed() after resume = %v, want 5s", got)
	}
}

func TestStopwatchStartWhileRunningNoOp(t *testing.T) {
	sw, clk := newTestStopwatch()

	sw.Start()
	clk.Advance(4 * time.Second)
	sw.Start() // must not re-anchor

	if got := sw.Elapsed(); got != 4*time.Second {
		t.Errorf("Elapsed() = %v, want 4s after redundant Start", got)
	}
}

func TestStopwatchResetClearsEverything(t *testing.T) {
	sw, clk := newTestStopwatch()

	sw.Start()
	clk.Advance(time.Second)
	sw.Lap()
	clk.Advance(time.Second)
	sw.Lap()
	sw.Reset()

	if sw.Running() {
		t.Error("stopwatch should be stopped after Reset")
	}
	if got := sw.Elapsed(); got != 0 {
		t.Errorf("Elapsed() after Reset = %v, want 0", got)
	}
	if got := len(sw.Laps()); got != 0 {
		t.Errorf("len(Laps()) after Reset = %d, want 0", got)
	}
}

func TestStopwatchResetWhileStopped(t *testing.T) {
	sw, clk := newTestStopwatch()

	sw.Start()
	clk.Advance(time.Second)
	sw.Stop()
	sw.Reset()

	if got := sw.Elapsed(); got != 0 {
		t.Errorf("Elapsed() after Reset from stopped = %v, want 0", got)
	}
}

func TestStopwatchLapsMostRecentFirst(t *testing.T) {
	sw, clk := newTestStopwatch()

	sw.Start()
	clk.Advance(time.Second)
	sw.Lap()
	clk.Advance(2 * time.Second)
	sw.Lap()
	clk.Advance(500 * time.Millisecond)
	sw.Lap()

	laps := sw.Laps()
	if len(laps) != 3 {
		t.Fatalf("len(Laps()) = %d, want 3", len(laps))
	}
	want := []time.Duration{3500 * time.Millisecond, 3 * time.Second, time.Second}
	for i, w := range want {
		if laps[i] != w {
			t.Errorf("Laps()[%d] = %v, want %v", i, laps[i], w)
		}
	}
	// Descending: each entry >= the next.
	for i := 0; i < len(laps)-1; i++ {
		if laps[i] < laps[i+1] {
			t.Errorf("laps not descending at %d: %v < %v", i, laps[i], laps[i+1])
		}
	}
}

func TestStopwatchLapWhileStoppedNoOp(t *testing.T) {
	sw, clk := newTestStopwatch()

	sw.Lap()
	sw.Start()
	clk.Advance(time.Second)
	sw.Stop()
	sw.Lap()

	if got := len(sw.Laps()); got != 0 {
		t.Errorf("len(Laps()) = %d, want 0 when Lap only called while stopped", got)
	}
}

func TestStopwatchSplits(t *testing.T) {
	sw, clk := newTestStopwatch()

	sw.Start()
	clk.Advance(time.Second)
	sw.Lap() // 1s
	clk.Advance(2 * time.Second)
	sw.Lap() // 3s
	clk.Advance(500 * time.Millisecond)
	sw.Lap() // 3.5s

	splits := sw.Splits()
	want := []time.Duration{500 * time.Millisecond, 2 * time.Second, time.Second}
	if len(splits) != len(want) {
		t.Fatalf("len(Splits()) = %d, want %d", len(splits), len(want))
	}
	for i, w := range want {
		if splits[i] != w {
			t.Errorf("Splits()[%d] = %v, want %v", i, splits[i], w)
		}
	}
}

func TestStopwatchLapsReturnsCopy(t *testing.T) {
	sw, clk := newTestStopwatch()

	sw.Start()
	clk.Advance(time.Second)
	sw.Lap()

	laps := sw.Laps()
	laps[0] = 0
	if got := sw.Laps()[0]; got != time.Second {
		t.Errorf("mutating the returned slice changed engine state: %v", got)
	}
}
