// Package widgets provides the five deck cards: home clock, alarm,
// stopwatch, countdown timer and weather. Each implements app.Widget and
// owns its engine state exclusively; fresh state is built on Activate and
// dropped on Deactivate, so a card switched away from and back starts
// clean. Helper functions carry a per-card prefix (hm, al, sw, cd, wx) to
// keep the package namespace readable.
package widgets

import (
	"strings"

	"gitlab.com/tinyland/lab/clock-deck/pkg/components"
	"gitlab.com/tinyland/lab/clock-deck/pkg/theme"
)

// centerLines centers a block of lines both ways within width x height.
func centerLines(lines []string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	topPad := (height - len(lines)) / 2
	if topPad < 0 {
		topPad = 0
	}
	out := make([]string, 0, height)
	for i := 0; i < topPad; i++ {
		out = append(out, "")
	}
	for _, line := range lines {
		if len(out) == height {
			break
		}
		out = append(out, components.PadCenter(components.Truncate(line, width), width))
	}
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// fitLines truncates and pads lines to exactly width x height.
func fitLines(lines []string, width, height int) string {
	out := make([]string, 0, height)
	for _, line := range lines {
		if len(out) == height {
			break
		}
		out = append(out, components.Truncate(line, width))
	}
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// bigTime renders a clock string in the big-digit font when it fits the
// width, falling back to the plain string bolded. Lines come back colored
// with the theme's digit color.
func bigTime(s string, width int) []string {
	th := theme.Current
	c := components.Color(th.Digit)
	reset := "\x1b[39m"
	if components.BigDigitsWidth(s) <= width {
		rows := components.BigDigits(s)
		for i, row := range rows {
			rows[i] = c + row + reset
		}
		return rows
	}
	return []string{c + components.Bold(s) + reset}
}
