package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdash/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked cards so
// they visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card with a heading.
func Card(heading, content string, cw int) string {
	body := content
	if heading != "" {
		body = theme.Heading.Render(heading) + "\n" + content
	}
	return theme.Card.
		Width(cw).
		Render(body)
}

// HighlightCard is a Card with an accent border, used for calls to action.
func HighlightCard(heading, content string, cw int) string {
	body := content
	if heading != "" {
		body = theme.Earned.Render(heading) + "\n" + content
	}
	return theme.Card.
		BorderForeground(theme.Primary).
		Width(cw).
		Render(body)
}

// Button renders a one-line button, highlighted when selected.
func Button(label string, selected bool) string {
	if selected {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Primary).
			Padding(0, 2).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.BgCard).
		Padding(0, 2).
		Render(label)
}
