package components

import "strings"

// BigDigitRows is the height of the big-digit font.
const BigDigitRows = 5

// bigFont is a 5-row block font for the characters a clock readout can
// contain. Digits are 3 cells wide; separators are 1.
var bigFont = map[rune][BigDigitRows]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {"  █", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
	'.': {" ", " ", " ", " ", "█"},
	' ': {" ", " ", " ", " ", " "},
}

// BigDigits renders a clock string ("07:30:00", "01:01.23") in the block
// font, one cell of spacing between characters. Characters outside the
// font fall back to a blank column, so callers should pass digit strings
// only. The result has exactly BigDigitRows lines.
func BigDigits(s string) []string {
	rows := make([]string, BigDigitRows)
	var parts [BigDigitRows][]string
	for _, r := range s {
		glyph, ok := bigFont[r]
		if !ok {
			glyph = bigFont[' ']
		}
		for i := 0; i < BigDigitRows; i++ {
			parts[i] = append(parts[i], glyph[i])
		}
	}
	for i := 0; i < BigDigitRows; i++ {
		rows[i] = strings.Join(parts[i], " ")
	}
	return rows
}

// BigDigitsWidth returns the rendered cell width of BigDigits(s) without
// rendering it, so callers can decide whether the big font fits.
func BigDigitsWidth(s string) int {
	if s == "" {
		return 0
	}
	w := 0
	n := 0
	for _, r := range s {
		glyph, ok := bigFont[r]
		if !ok {
			glyph = bigFont[' ']
		}
		w += len([]rune(glyph[0]))
		n++
	}
	return w + n - 1
}
