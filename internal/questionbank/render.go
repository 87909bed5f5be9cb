package questionbank

import (
	"regexp"
	"strings"
)

var (
	fracPattern  = regexp.MustCompile(`\\frac\{([^{}]*)\}\{([^{}]*)\}`)
	limPattern   = regexp.MustCompile(`\\lim_\{([^{}]*)\}`)
	supPattern   = regexp.MustCompile(`\^\{([^{}]*)\}`)
	latexSymbols = strings.NewReplacer(
		`^{\circ}`, "°",
		`\circ`, "°",
		`\theta`, "θ",
		`\to`, "→",
		`\sin`, "sin",
		`\cos`, "cos",
		`\tan`, "tan",
		`$`, "",
	)
)

// PlainPrompt renders the prompt's inline LaTeX as plain terminal text.
func (p Problem) PlainPrompt() string {
	s := p.Prompt
	s = fracPattern.ReplaceAllString(s, "$1/$2")
	s = limPattern.ReplaceAllString(s, "lim($1)")
	s = strings.ReplaceAll(s, `^{\circ}`, "°")
	s = supPattern.ReplaceAllString(s, "^$1")
	return latexSymbols.Replace(s)
}
