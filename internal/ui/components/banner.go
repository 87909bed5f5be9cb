package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Block letters, six rows each.
var glyphs = map[rune][6]string{
	'M': {
		"███╗   ███╗",
		"████╗ ████║",
		"██╔████╔██║",
		"██║╚██╔╝██║",
		"██║ ╚═╝ ██║",
		"╚═╝     ╚═╝",
	},
	'A': {
		" █████╗ ",
		"██╔══██╗",
		"███████║",
		"██╔══██║",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	'T': {
		"████████╗",
		"╚══██╔══╝",
		"   ██║   ",
		"   ██║   ",
		"   ██║   ",
		"   ╚═╝   ",
	},
	'H': {
		"██╗  ██╗",
		"██║  ██║",
		"███████║",
		"██╔══██║",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	'D': {
		"██████╗ ",
		"██╔══██╗",
		"██║  ██║",
		"██║  ██║",
		"██████╔╝",
		"╚═════╝ ",
	},
	'S': {
		"███████╗",
		"██╔════╝",
		"███████╗",
		"╚════██║",
		"███████║",
		"╚══════╝",
	},
}

// BlockText renders word in block letters. Unknown runes are skipped.
func BlockText(word string) string {
	var rows [6]strings.Builder
	for _, r := range strings.ToUpper(word) {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i].WriteString(g[i])
		}
	}
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

// Banner returns the MATHDASH title in style, falling back to spaced
// capitals when width is too narrow for the block letters.
func Banner(style lipgloss.Style, width int) string {
	full := BlockText("MATHDASH")
	if width < lipgloss.Width(full)+2 {
		return style.Render("M · A · T · H · D · A · S · H")
	}
	return style.Render(full)
}
