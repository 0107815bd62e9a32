package components

import "strings"

// gaugeBlocks gives 8 fill levels per cell for sub-cell precision.
var gaugeBlocks = [9]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

// Gauge renders a horizontal progress bar of the given cell width for a
// ratio in [0, 1]. The filled and empty portions are colored with the
// given hex colors; empty strings leave them uncolored. Out-of-range
// ratios are clamped.
func Gauge(ratio float64, width int, filledColor, emptyColor string) string {
	if width <= 0 {
		return ""
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	cells := ratio * float64(width)
	full := int(cells)
	frac := int((cells - float64(full)) * 8)

	var b strings.Builder
	if c := Color(filledColor); c != "" {
		b.WriteString(c)
	}
	b.WriteString(strings.Repeat("█", full))
	rest := width - full
	if frac > 0 && rest > 0 {
		b.WriteRune(gaugeBlocks[frac])
		rest--
	}
	if c := Color(emptyColor); c != "" {
		b.WriteString(c)
	}
	b.WriteString(strings.Repeat("░", rest))
	b.WriteString("\x1b[39m")
	return b.String()
}
