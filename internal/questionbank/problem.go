package questionbank

// Problem is a single practice question from the bank.
type Problem struct {
	Topic Topic

	// Kind is a descriptive label such as "solve" or "area". It plays no
	// part in grading.
	Kind string

	// Prompt is the question text. It may contain LaTeX markup.
	Prompt string

	// Answer is the canonical answer string.
	Answer string

	// Points is the reward for a correct answer. Always positive.
	Points int

	// Diagram names a descriptive asset, empty when the problem has none.
	Diagram string
}

// HasDiagram reports whether the problem references a diagram asset.
func (p Problem) HasDiagram() bool {
	return p.Diagram != ""
}
