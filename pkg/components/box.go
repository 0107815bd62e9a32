package components

import "strings"

// BorderStyle selects the box-drawing character set.
type BorderStyle int

const (
	// BorderRounded uses single lines with rounded corners (default).
	BorderRounded BorderStyle = iota
	// BorderSingle uses square single-line corners.
	BorderSingle
)

// borderChars is the character set for one border style: corners in
// top-left, top-right, bottom-left, bottom-right order, then the
// horizontal and vertical lines.
type borderChars struct {
	tl, tr, bl, br, h, v string
}

var borders = map[BorderStyle]borderChars{
	BorderRounded: {"╭", "╮", "╰", "╯", "─", "│"},
	BorderSingle:  {"┌", "┐", "└", "┘", "─", "│"},
}

// BoxStyle controls the appearance of a rendered box.
type BoxStyle struct {
	Border BorderStyle
	Title  string // rendered into the top border when set
	FG     string // hex border color, e.g. "#3e3e3e"
}

// RenderBox wraps content in a border at the given outer dimensions.
// Content lines are truncated or padded to the interior width; missing
// lines are filled with blanks. Dimensions below the 2x2 minimum yield
// an empty string.
func RenderBox(content string, width, height int, style BoxStyle) string {
	if width < 2 || height < 2 {
		return ""
	}

	chars := borders[style.Border]
	pre, suf := "", ""
	if c := Color(style.FG); c != "" {
		pre, suf = c, "\x1b[39m"
	}

	interiorW := width - 2
	interiorH := height - 2

	top := chars.h
	if style.Title != "" && interiorW > 4 {
		title := TruncateWithTail(" "+style.Title+" ", interiorW-2, "")
		top = chars.h + title + strings.Repeat(chars.h, interiorW-1-VisibleLen(title))
	} else {
		top = strings.Repeat(chars.h, interiorW)
	}

	lines := strings.Split(content, "\n")
	var b strings.Builder
	b.WriteString(pre + chars.tl + top + chars.tr + suf + "\n")
	for i := 0; i < interiorH; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		line = Truncate(line, interiorW)
		line = PadRight(line, interiorW)
		b.WriteString(pre + chars.v + suf + line + pre + chars.v + suf + "\n")
	}
	b.WriteString(pre + chars.bl + strings.Repeat(chars.h, interiorW) + chars.br + suf)
	return b.String()
}
