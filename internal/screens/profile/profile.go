package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdash/internal/dashboard"
	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/screen"
	"github.com/abhisek/mathdash/internal/ui/components"
	"github.com/abhisek/mathdash/internal/ui/layout"
	"github.com/abhisek/mathdash/internal/ui/theme"
)

type mode int

const (
	modeView mode = iota
	modeNaming
	modeGrade
	modeConfirmReset
)

type gradeChosenMsg struct {
	Grade progress.Grade
}

// ProfileScreen edits the learner's name and grade and resets progress.
type ProfileScreen struct {
	ctrl     *dashboard.Controller
	progress *progress.Progress
	mode     mode
	input    components.TextInput
	grades   components.Menu
	status   string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)
var _ screen.InputCapturer = (*ProfileScreen)(nil)

// New creates a ProfileScreen. A learner without a name starts at the
// name prompt.
func New(ctrl *dashboard.Controller) *ProfileScreen {
	s := &ProfileScreen{
		ctrl:  ctrl,
		input: components.NewTextInput("Your name...", 32),
	}
	var items []components.MenuItem
	for _, g := range progress.Grades() {
		items = append(items, components.MenuItem{
			Label: string(g),
			Action: func() tea.Cmd {
				return func() tea.Msg { return gradeChosenMsg{Grade: g} }
			},
		})
	}
	s.grades = components.NewMenu(items)
	s.refresh()
	if s.progress.StudentName == "" {
		s.mode = modeNaming
	}
	return s
}

func (s *ProfileScreen) refresh() {
	s.progress = s.ctrl.Progress()
}

func (s *ProfileScreen) Init() tea.Cmd {
	s.refresh()
	if s.mode == modeNaming {
		return s.input.Init()
	}
	return nil
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

// CapturingInput reports whether the name prompt or a confirmation is
// reading keys.
func (s *ProfileScreen) CapturingInput() bool {
	return s.mode != modeView
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeNaming:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save name"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeGrade:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Grade"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmReset:
		return []layout.KeyHint{
			{Key: "y", Description: "Erase everything"},
			{Key: "any key", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{{Key: "g", Description: "Change grade"}}
	if s.progress.StudentName == "" {
		hints = append(hints, layout.KeyHint{Key: "n", Description: "Set name"})
	}
	return append(hints,
		layout.KeyHint{Key: "r", Description: "Reset progress"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gradeChosenMsg:
		out, err := s.ctrl.SetGrade(context.Background(), msg.Grade)
		s.mode = modeView
		s.refresh()
		if err != nil {
			s.status = err.Error()
			return s, nil
		}
		s.status = "Grade set to " + string(msg.Grade)
		return s, screen.Notify(nil, screen.SaveWarning(out.SaveErr))

	case tea.KeyPressMsg:
		switch s.mode {
		case modeNaming:
			return s.updateNaming(msg)
		case modeGrade:
			if msg.String() == "esc" {
				s.mode = modeView
				return s, nil
			}
			var cmd tea.Cmd
			s.grades, cmd = s.grades.Update(msg)
			return s, cmd
		case modeConfirmReset:
			s.mode = modeView
			if msg.String() != "y" {
				s.status = "Reset cancelled"
				return s, nil
			}
			out, err := s.ctrl.Reset(context.Background())
			s.refresh()
			if err != nil {
				s.status = err.Error()
				return s, nil
			}
			s.status = "Progress reset. A fresh start!"
			return s, screen.Notify(nil, screen.SaveWarning(out.SaveErr))
		default:
			return s.updateView(msg)
		}
	}

	if s.mode == modeNaming {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ProfileScreen) updateView(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "g":
		s.mode = modeGrade
		s.status = ""
		for i, g := range progress.Grades() {
			if g == s.progress.Grade {
				s.grades.Select(i)
			}
		}
	case "n":
		if s.progress.StudentName == "" {
			s.mode = modeNaming
			s.status = ""
			s.input.Reset()
			return s, s.input.Init()
		}
	case "r":
		s.mode = modeConfirmReset
		s.status = ""
	}
	return s, nil
}

func (s *ProfileScreen) updateNaming(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeView
		s.input.Reset()
		return s, nil
	case "enter":
		out, err := s.ctrl.SetStudentName(context.Background(), s.input.Value())
		switch {
		case errors.Is(err, dashboard.ErrEmptyName):
			s.status = "Please type a name first"
			return s, nil
		case err != nil:
			s.mode = modeView
			s.status = err.Error()
			return s, nil
		}
		s.mode = modeView
		s.refresh()
		s.status = fmt.Sprintf("Nice to meet you, %s!", s.progress.StudentName)
		return s, screen.Notify(nil, screen.SaveWarning(out.SaveErr))
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ProfileScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var cards []string
	switch s.mode {
	case modeNaming:
		cards = append(cards, components.HighlightCard("👋 What should we call you?",
			s.input.View()+"\n\n"+theme.Hint.Render("Your name can only be set once."), cw))
	case modeGrade:
		cards = append(cards, components.HighlightCard("🎓 Choose your grade", s.grades.View(), cw))
	case modeConfirmReset:
		cards = append(cards, components.HighlightCard("⚠️  Reset all progress?",
			theme.Incorrect.Render("Points, streaks, achievements and history will be erased.\nYour name and grade are kept.")+"\n"+
				theme.Hint.Render("Press y to confirm, any other key to cancel."), cw))
	}
	cards = append(cards, s.renderDetails(cw))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(strings.Join(cards, "\n"), width))
	if s.status != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(theme.Hint.Render(s.status), width))
	}
	return b.String()
}

func (s *ProfileScreen) renderDetails(cw int) string {
	p := s.progress
	name := p.StudentName
	if name == "" {
		name = theme.Locked.Render("(not set)")
	}
	rows := []string{
		fmt.Sprintf("Name:          %s", name),
		fmt.Sprintf("Grade:         %s", p.Grade),
		fmt.Sprintf("Level:         %d", p.Level()),
		fmt.Sprintf("Points:        %d", p.Points),
		fmt.Sprintf("Streak:        %d days", p.DailyStreak),
		fmt.Sprintf("Solved:        %d", p.TotalCompleted()),
	}
	if path := s.ctrl.StorePath(); path != "" {
		rows = append(rows, "", theme.Hint.Render("Saved to "+path))
	}
	return components.Card("👤 Profile", strings.Join(rows, "\n"), cw)
}
