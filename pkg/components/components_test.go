package components

import (
	"strings"
	"testing"
)

func TestVisibleLenIgnoresEscapes(t *testing.T) {
	s := Color("#ff0000") + "abc" + Reset()
	if got := VisibleLen(s); got != 3 {
		t.Errorf("VisibleLen = %d, want 3", got)
	}
}

func TestPadRightAndLeft(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 5); got != "   ab" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight over width = %q, want unchanged", got)
	}
}

func TestPadCenterOddRemainderLeansRight(t *testing.T) {
	if got := PadCenter("ab", 5); got != " ab  " {
		t.Errorf("PadCenter = %q, want %q", got, " ab  ")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Errorf("Truncate at 0 = %q, want empty", got)
	}
	if got := TruncateWithTail("abcdef", 4, "…"); VisibleLen(got) != 4 {
		t.Errorf("TruncateWithTail width = %d, want 4", VisibleLen(got))
	}
}

func TestColorMalformedHex(t *testing.T) {
	for _, hex := range []string{"", "#fff", "zzzzzz", "#12345g"} {
		if got := Color(hex); got != "" {
			t.Errorf("Color(%q) = %q, want empty", hex, got)
		}
	}
	if got := Color("#ff5500"); got != "\x1b[38;2;255;85;0m" {
		t.Errorf("Color(#ff5500) = %q", got)
	}
}

func TestRenderBoxDimensions(t *testing.T) {
	out := RenderBox("hello\nworld", 20, 6, BoxStyle{Title: "Test"})
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("RenderBox produced %d lines, want 6", len(lines))
	}
	for i, line := range lines {
		if got := VisibleLen(line); got != 20 {
			t.Errorf("line %d width = %d, want 20", i, got)
		}
	}
	if !strings.Contains(lines[0], "Test") {
		t.Errorf("top border %q missing title", lines[0])
	}
	if !strings.Contains(out, "hello") {
		t.Error("box lost its content")
	}
}

func TestRenderBoxTooSmall(t *testing.T) {
	if got := RenderBox("x", 1, 5, BoxStyle{}); got != "" {
		t.Errorf("RenderBox at width 1 = %q, want empty", got)
	}
	if got := RenderBox("x", 10, 1, BoxStyle{}); got != "" {
		t.Errorf("RenderBox at height 1 = %q, want empty", got)
	}
}

func TestRenderBoxTruncatesLongLines(t *testing.T) {
	out := RenderBox(strings.Repeat("x", 100), 12, 3, BoxStyle{})
	for _, line := range strings.Split(out, "\n") {
		if got := VisibleLen(line); got != 12 {
			t.Errorf("line width = %d, want 12", got)
		}
	}
}

func TestBigDigitsShape(t *testing.T) {
	rows := BigDigits("07:30:00")
	if len(rows) != BigDigitRows {
		t.Fatalf("BigDigits produced %d rows, want %d", len(rows), BigDigitRows)
	}
	want := BigDigitsWidth("07:30:00")
	for i, row := range rows {
		if got := VisibleLen(row); got != want {
			t.Errorf("row %d width = %d, want %d", i, got, want)
		}
	}
}

func TestBigDigitsDistinguishesDigits(t *testing.T) {
	a := strings.Join(BigDigits("1"), "\n")
	b := strings.Join(BigDigits("8"), "\n")
	if a == b {
		t.Error("digits 1 and 8 render identically")
	}
}

func TestGaugeWidthAndFill(t *testing.T) {
	out := Gauge(0.5, 10, "", "")
	if got := VisibleLen(out); got != 10 {
		t.Errorf("Gauge width = %d, want 10", got)
	}
	if got := strings.Count(out, "█"); got != 5 {
		t.Errorf("Gauge half fill = %d full cells, want 5", got)
	}

	full := Gauge(1.0, 8, "", "")
	if got := strings.Count(full, "█"); got != 8 {
		t.Errorf("Gauge full = %d cells, want 8", got)
	}

	empty := Gauge(0, 8, "", "")
	if strings.Contains(empty, "█") {
		t.Error("Gauge at 0 contains filled cells")
	}
}

func TestGaugeClampsRatio(t *testing.T) {
	if got := VisibleLen(Gauge(3.7, 6, "", "")); got != 6 {
		t.Errorf("Gauge over-range width = %d, want 6", got)
	}
	if got := VisibleLen(Gauge(-1, 6, "", "")); got != 6 {
		t.Errorf("Gauge under-range width = %d, want 6", got)
	}
}

func TestSparklineWidth(t *testing.T) {
	data := []float64{1, 5, 3, 8, 2, 9, 4}
	out := Sparkline(data, 5, "")
	if got := VisibleLen(out); got != 5 {
		t.Errorf("Sparkline width = %d, want 5 (last 5 points)", got)
	}
	if Sparkline(nil, 5, "") != "" {
		t.Error("Sparkline of no data should be empty")
	}
}

func TestSparklineFlatData(t *testing.T) {
	out := Sparkline([]float64{4, 4, 4}, 10, "")
	if got := VisibleLen(out); got != 3 {
		t.Errorf("Sparkline width = %d, want 3", got)
	}
}
