// Package sysstat collects the one-line host stats shown on the home
// card: hostname, uptime and load averages. It uses gopsutil so the line
// works on both Darwin and Linux without /proc parsing.
package sysstat

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
)

// Snapshot is one reading of the host stats.
type Snapshot struct {
	Hostname string
	Uptime   time.Duration
	Load1    float64
	Load5    float64
	Load15   float64
}

// Collect gathers a Snapshot. Host info is required; load averages are
// best-effort and left zero where the platform does not report them.
func Collect(ctx context.Context) (Snapshot, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("sysstat: host info: %w", err)
	}
	snap := Snapshot{
		Hostname: info.Hostname,
		Uptime:   time.Duration(info.Uptime) * time.Second,
	}
	if avg, err := load.AvgWithContext(ctx); err == nil {
		snap.Load1 = avg.Load1
		snap.Load5 = avg.Load5
		snap.Load15 = avg.Load15
	}
	return snap, nil
}

// UptimeString renders the uptime as "3d 4h" / "4h 12m" / "12m".
func (s Snapshot) UptimeString() string {
	d := s.Uptime
	switch {
	case d >= 24*time.Hour:
		days := int(d.Hours()) / 24
		hours := int(d.Hours()) % 24
		return fmt.Sprintf("%dd %dh", days, hours)
	case d >= time.Hour:
		hours := int(d.Hours())
		minutes := int(d.Minutes()) % 60
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
}
