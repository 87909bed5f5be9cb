package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdash/internal/ui/components"
	"github.com/abhisek/mathdash/internal/ui/layout"
	"github.com/abhisek/mathdash/internal/ui/theme"
)

func (s *PracticeScreen) renderPicker(width int) string {
	cw := components.ContentWidth(width)
	p := s.ctrl.Progress()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Title.Render("🧮 Choose a topic"), width))
	b.WriteString("\n\n")

	var rows []string
	for i, line := range strings.Split(strings.TrimRight(s.topics.View(), "\n"), "\n") {
		topic := s.topicAt(i)
		solved := theme.Hint.Render(fmt.Sprintf("  %d solved", p.ProblemsCompleted[topic]))
		rows = append(rows, line+solved)
	}
	b.WriteString(layout.Centered(components.Card("", strings.Join(rows, "\n"), cw), width))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(theme.Incorrect.Render(s.errMsg), width))
	}
	return b.String()
}

func (s *PracticeScreen) renderProblem(width int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")
	info := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("%s %s · %s", s.topic.Icon(), s.topic, s.problem.Kind))
	worth := theme.Earned.Render(fmt.Sprintf("worth %d points", s.problem.Points))
	b.WriteString(layout.Centered(info+"   "+worth, width))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(s.problem.PlainPrompt())
	b.WriteString(layout.Centered(components.Card("", prompt, cw), width))
	b.WriteString("\n")

	if s.problem.HasDiagram() {
		b.WriteString(layout.Centered(theme.Hint.Render("📎 diagram: "+s.problem.Diagram), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(layout.Centered("Answer: "+s.input.View(), width))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(theme.Incorrect.Render(s.errMsg), width))
	}
	return b.String()
}

func (s *PracticeScreen) renderFeedback(width int) string {
	r := s.result
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")
	if r.Correct() {
		b.WriteString(layout.Centered(theme.Correct.Render("🎉 Correct!"), width))
		b.WriteString("\n")
		b.WriteString(layout.Centered(theme.Earned.Render(fmt.Sprintf("+%d points", r.PointsAwarded)), width))
	} else {
		b.WriteString(layout.Centered(theme.Incorrect.Render("❌ Not quite"), width))
		b.WriteString("\n")
		b.WriteString(layout.Centered(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("The correct answer is: "+r.CorrectAnswer), width))
	}
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(theme.Hint.Render("Your answer: "+r.Submitted), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(theme.Hint.Render("press any key to continue"), width))
	return b.String()
}
