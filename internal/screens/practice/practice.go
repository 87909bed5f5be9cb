package practice

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdash/internal/dashboard"
	"github.com/abhisek/mathdash/internal/questionbank"
	"github.com/abhisek/mathdash/internal/quiz"
	"github.com/abhisek/mathdash/internal/screen"
	"github.com/abhisek/mathdash/internal/ui/components"
	"github.com/abhisek/mathdash/internal/ui/layout"
)

type mode int

const (
	modePicking   mode = iota // Choosing a topic; the quiz session is idle
	modeAnswering             // A problem is presented
	modeFeedback              // Showing the graded result
)

// topicChosenMsg is emitted by the topic menu.
type topicChosenMsg struct {
	Topic questionbank.Topic
}

// PracticeScreen runs the topic picker, problem and feedback loop.
type PracticeScreen struct {
	ctrl   *dashboard.Controller
	mode   mode
	topics components.Menu
	input  components.TextInput

	topic   questionbank.Topic
	problem questionbank.Problem
	result  *quiz.Result
	errMsg  string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.InputCapturer = (*PracticeScreen)(nil)

// New creates a PracticeScreen. A valid preselect topic starts with that
// topic highlighted in the picker.
func New(ctrl *dashboard.Controller, preselect questionbank.Topic) *PracticeScreen {
	s := &PracticeScreen{
		ctrl:  ctrl,
		input: components.NewTextInput("Type your answer...", 40),
	}
	s.topics = components.NewMenu(s.topicItems())
	if preselect.Valid() {
		s.selectTopic(preselect)
	}
	return s
}

func (s *PracticeScreen) topicItems() []components.MenuItem {
	var items []components.MenuItem
	for _, t := range questionbank.Topics() {
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s  %s", t.Icon(), t),
			Action: func() tea.Cmd {
				return func() tea.Msg { return topicChosenMsg{Topic: t} }
			},
		})
	}
	return items
}

func (s *PracticeScreen) selectTopic(t questionbank.Topic) {
	for i, topic := range questionbank.Topics() {
		if topic == t {
			s.topics.Select(i)
			return
		}
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	return "Math Practice"
}

// CapturingInput reports whether keys should go to the answer field.
func (s *PracticeScreen) CapturingInput() bool {
	return s.mode == modeAnswering
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeAnswering:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+N", Description: "New problem"},
			{Key: "Tab", Description: "Change topic"},
			{Key: "Esc", Description: "Back"},
		}
	case modeFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Topic"},
			{Key: "Enter", Description: "New problem"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topicChosenMsg:
		return s, s.present(msg.Topic)

	case tea.KeyPressMsg:
		switch s.mode {
		case modeFeedback:
			s.mode = modePicking
			s.result = nil
			s.selectTopic(s.topic)
			return s, nil

		case modeAnswering:
			switch msg.String() {
			case "enter":
				return s, s.submit()
			case "ctrl+n":
				return s, s.present(s.topic)
			case "tab":
				s.mode = modePicking
				return s, nil
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd

		default:
			var cmd tea.Cmd
			s.topics, cmd = s.topics.Update(msg)
			return s, cmd
		}
	}

	if s.mode == modeAnswering {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// present requests a new problem, replacing any unanswered one.
func (s *PracticeScreen) present(topic questionbank.Topic) tea.Cmd {
	p, err := s.ctrl.RequestNewProblem(topic)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	s.topic = topic
	s.problem = p
	s.mode = modeAnswering
	s.input.Reset()
	return s.input.Init()
}

func (s *PracticeScreen) submit() tea.Cmd {
	out, err := s.ctrl.SubmitAnswer(context.Background(), s.input.Value())
	if err != nil {
		if errors.Is(err, quiz.ErrNoActiveProblem) {
			s.mode = modePicking
		}
		s.errMsg = err.Error()
		return nil
	}
	s.result = out.Result
	s.input.Submit(out.Result.Correct())
	s.mode = modeFeedback
	return screen.Notify(out.Events, screen.SaveWarning(out.SaveErr))
}

func (s *PracticeScreen) View(width, height int) string {
	switch s.mode {
	case modeAnswering:
		return s.renderProblem(width)
	case modeFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderPicker(width)
	}
}

func (s *PracticeScreen) topicAt(i int) questionbank.Topic {
	topics := questionbank.Topics()
	if i < 0 || i >= len(topics) {
		return ""
	}
	return topics[i]
}
