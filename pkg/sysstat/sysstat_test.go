package sysstat

import (
	"context"
	"testing"
	"time"
)

func TestCollect(t *testing.T) {
	snap, err := Collect(context.Background())
	if err != nil {
		t.Skipf("host info unavailable in this environment: %v", err)
	}
	if snap.Hostname == "" {
		t.Error("Collect returned an empty hostname")
	}
	if snap.Uptime <= 0 {
		t.Errorf("Collect returned non-positive uptime %v", snap.Uptime)
	}
}

func TestUptimeString(t *testing.T) {
	cases := []struct {
		uptime time.Duration
		want   string
	}{
		{5 * time.Minute, "5m"},
		{4*time.Hour + 12*time.Minute, "4h 12m"},
		{3*24*time.Hour + 4*time.Hour, "3d 4h"},
		{0, "0m"},
	}
	for _, c := range cases {
		s := Snapshot{Uptime: c.uptime}
		if got := s.UptimeString(); got != c.want {
			t.Errorf("UptimeString(%v) = %q, want %q", c.uptime, got, c.want)
		}
	}
}
