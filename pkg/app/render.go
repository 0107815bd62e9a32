package app

import "gitlab.com/tinyland/lab/clock-deck/pkg/components"

// componentsBox wraps card content in the deck's standard rounded box.
func componentsBox(content string, width, height int, title, borderColor string) string {
	return components.RenderBox(content, width, height, components.BoxStyle{
		Border: components.BorderRounded,
		Title:  title,
		FG:     borderColor,
	})
}
