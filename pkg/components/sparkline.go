package components

import "strings"

// sparkBlocks gives 8 vertical levels per cell.
var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders the last `width` points of data as a bar sparkline,
// auto-scaled to the data's min/max, colored with the given hex color.
// Empty data yields an empty string.
func Sparkline(data []float64, width int, color string) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	points := data
	if len(points) > width {
		points = points[len(points)-width:]
	}

	minY, maxY := points[0], points[0]
	for _, v := range points[1:] {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	var b strings.Builder
	if c := Color(color); c != "" {
		b.WriteString(c)
	}
	span := maxY - minY
	for _, v := range points {
		level := 0
		if span > 0 {
			level = int((v - minY) / span * 7)
		}
		if level < 0 {
			level = 0
		}
		if level > 7 {
			level = 7
		}
		b.WriteRune(sparkBlocks[level])
	}
	b.WriteString("\x1b[39m")
	return b.String()
}
