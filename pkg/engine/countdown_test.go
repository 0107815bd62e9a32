package engine

import (
	"errors"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/clock-deck/pkg/clock"
)

// --- helpers ---

func newTestCountdown() (*Countdown, *clock.Fake) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewCountdown(clk), clk
}

// syncSeconds advances the clock one second at a time, calling Sync after
// each step, and returns how many syncs reported expiry.
func syncSeconds(cd *Countdown, clk *clock.Fake, n int) int {
	fired := 0
	for i := 0; i < n; i++ {
		clk.Advance(time.Second)
		if cd.Sync() {
			fired++
		}
	}
	return fired
}

func TestCountdownConfigureSetsRemaining(t *testing.T) {
	cd, _ := newTestCountdown()

	if err := cd.Configure(5 * time.Second); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if got := cd.Total(); got != 5*time.Second {
		t.Errorf("Total() = %v, want 5s", got)
	}
	if got := cd.Remaining(); got != 5*time.Second {
		t.Errorf("Remaining() = %v, want 5s", got)
	}
	if got := cd.State(); got != CountdownIdle {
		t.Errorf("State() = %v, want idle", got)
	}
}

func TestCountdownExpiresExactlyOnce(t *testing.T) {
	cd, clk := newTestCountdown()

	cd.Configure(5 * time.Second)
	cd.Start()

	fired := syncSeconds(cd, clk, 8)
	if fired != 1 {
		t.Errorf("expiry fired %d times, want exactly 1", fired)
	}
	if got := cd.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, want 0", got)
	}
	if !cd.Expired() {
		t.Error("countdown should report Expired after reaching zero")
	}
}

func TestCountdownPauseResumePreservesRemaining(t *testing.T) {
	cd, clk := newTestCountdown()

	cd.Configure(10 * time.Second)
	cd.Start()
	syncSeconds(cd, clk, 3)
	cd.Stop()

	if got := cd.Remaining(); got != 7*time.Second {
		t.Errorf("Remaining() after pause = %v, want 7s", got)
	}

	clk.Advance(time.Hour) // paused time must not count
	cd.Start()
	fired := syncSeconds(cd, clk, 7)
	if fired != 1 {
		t.Errorf("expiry after resume fired %d times, want 1", fired)
	}
}

func TestCountdownConfigureWhileRunningRejected(t *testing.T) {
	cd, _ := newTestCountdown()

	cd.Configure(10 * time.Second)
	cd.Start()

	err := cd.Configure(time.Minute)
	if !errors.Is(err, ErrRunning) {
		t.Errorf("Configure while running = %v, want ErrRunning", err)
	}
	if got := cd.Total(); got != 10*time.Second {
		t.Errorf("Total() changed to %v by rejected Configure", got)
	}
}

func TestCountdownStartWithZeroRemainingNoOp(t *testing.T) {
	cd, clk := newTestCountdown()

	cd.Configure(2 * time.Second)
	cd.Start()
	syncSeconds(cd, clk, 3)

	cd.Start()
	if cd.Running() {
		t.Error("Start with zero remaining should be a no-op")
	}
}

func TestCountdownResetRestoresTotal(t *testing.T) {
	cd, clk := newTestCountdown()

	cd.Configure(10 * time.Second)
	cd.Start()
	syncSeconds(cd, clk, 4)
	cd.Reset()

	if got := cd.State(); got != CountdownIdle {
		t.Errorf("State() after Reset = %v, want idle", got)
	}
	if got := cd.Remaining(); got != 10*time.Second {
		t.Errorf("Remaining() after Reset = %v, want 10s", got)
	}
}

func TestCountdownLateTickClampsToZero(t *testing.T) {
	cd, clk := newTestCountdown()

	cd.Configure(3 * time.Second)
	cd.Start()
	// One very late tick jumps past the deadline.
	clk.Advance(time.Minute)

	if !cd.Sync() {
		t.Error("late Sync past the deadline should report expiry")
	}
	if got := cd.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, want 0 (clamped)", got)
	}
}

func TestCountdownSyncRoundsToNearestSecond(t *testing.T) {
	cd, clk := newTestCountdown()

	cd.Configure(10 * time.Second)
	cd.Start()
	clk.Advance(2700 * time.Millisecond)
	cd.Sync()

	// 7.3s to the deadline rounds to 7s.
	if got := cd.Remaining(); got != 7*time.Second {
		t.Errorf("Remaining() = %v, want 7s", got)
	}
}

func TestCountdownRemainingOnlyDecreasesWhileRunning(t *testing.T) {
	cd, clk := newTestCountdown()

	cd.Configure(10 * time.Second)
	prev := cd.Remaining()
	cd.Start()
	for i := 0; i < 12; i++ {
		clk.Advance(time.Second)
		cd.Sync()
		if cd.Remaining() > prev {
			t.Fatalf("Remaining() increased from %v to %v", prev, cd.Remaining())
		}
		prev = cd.Remaining()
	}
}

func TestCountdownSyncWhileIdleNoOp(t *testing.T) {
	cd, clk := newTestCountdown()

	cd.Configure(5 * time.Second)
	clk.Advance(time.Minute)

	if cd.Sync() {
		t.Error("Sync while idle should not report expiry")
	}
	if got := cd.Remaining(); got != 5*time.Second {
		t.Errorf("Remaining() changed to %v by idle Sync", got)
	}
}

func TestCountdownNegativeTotalClamped(t *testing.T) {
	cd, _ := newTestCountdown()

	if err := cd.Configure(-time.Minute); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if got := cd.Total(); got != 0 {
		t.Errorf("Total() = %v, want 0", got)
	}
}
