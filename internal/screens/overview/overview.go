// Package overview renders the dashboard: today's challenge, quick stats
// and recent activity.
package overview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdash/internal/dashboard"
	"github.com/abhisek/mathdash/internal/gamification"
	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/questionbank"
	"github.com/abhisek/mathdash/internal/report"
	"github.com/abhisek/mathdash/internal/router"
	"github.com/abhisek/mathdash/internal/screen"
	"github.com/abhisek/mathdash/internal/ui/components"
	"github.com/abhisek/mathdash/internal/ui/layout"
	"github.com/abhisek/mathdash/internal/ui/theme"
)

// recentCount is the number of quiz entries shown on the dashboard.
const recentCount = 5

// PracticeFactory builds the practice screen for a preselected topic.
type PracticeFactory func(questionbank.Topic) screen.Screen

// OverviewScreen is the learner dashboard.
type OverviewScreen struct {
	ctrl      *dashboard.Controller
	practice  PracticeFactory
	progress  *progress.Progress
	challenge questionbank.DailyChallenge
	started   bool
	status    string
}

var _ screen.Screen = (*OverviewScreen)(nil)
var _ screen.KeyHintProvider = (*OverviewScreen)(nil)

// New creates an OverviewScreen. practice may be nil, which disables the
// shortcut into practice.
func New(ctrl *dashboard.Controller, practice PracticeFactory) *OverviewScreen {
	s := &OverviewScreen{ctrl: ctrl, practice: practice}
	s.refresh()
	return s
}

func (s *OverviewScreen) refresh() {
	s.progress = s.ctrl.Progress()
	s.challenge = s.ctrl.TodayChallenge()
	s.started = s.ctrl.ChallengeStartedToday()
}

func (s *OverviewScreen) Init() tea.Cmd {
	s.refresh()
	return nil
}

func (s *OverviewScreen) Title() string {
	return "Dashboard"
}

func (s *OverviewScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if !s.started {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Start challenge"})
	}
	if s.practice != nil {
		hints = append(hints, layout.KeyHint{Key: "P", Description: "Practice"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "c":
		return s, s.startChallenge()
	case "p":
		if s.practice == nil {
			return s, nil
		}
		topic, _ := s.challenge.PracticeTopic()
		return s, router.Push(s.practice(topic))
	}
	return s, nil
}

func (s *OverviewScreen) startChallenge() tea.Cmd {
	out, err := s.ctrl.StartDailyChallenge(context.Background())
	if err != nil {
		if errors.Is(err, gamification.ErrChallengeAlreadyStarted) {
			s.status = "You already started today's challenge. Come back tomorrow!"
		} else {
			s.status = err.Error()
		}
		return nil
	}
	s.status = fmt.Sprintf("Challenge started! +%d points", gamification.DailyChallengePoints)
	s.refresh()
	return screen.Notify(out.Events, screen.SaveWarning(out.SaveErr))
}

func (s *OverviewScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		s.renderChallenge(cw),
		s.renderStats(cw),
		s.renderRecent(cw),
	}
	if s.status != "" {
		sections = append(sections, theme.Hint.Render(s.status))
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString(layout.Centered(sec, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *OverviewScreen) renderChallenge(cw int) string {
	c := s.challenge
	var body strings.Builder
	fmt.Fprintf(&body, "Topic: %s\n", lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(c.Topic))
	fmt.Fprintf(&body, "Task:  %s\n", c.Task)
	if s.started {
		body.WriteString(theme.Correct.Render("✓ Started today"))
	} else {
		body.WriteString(theme.Hint.Render(fmt.Sprintf("Press C to start (+%d points)", gamification.DailyChallengePoints)))
	}
	heading := fmt.Sprintf("📅 Today's Challenge · %s", progress.DateOf(s.ctrl.Now()).Weekday())
	return components.HighlightCard(heading, body.String(), cw)
}

func (s *OverviewScreen) renderStats(cw int) string {
	sum := report.Summarize(s.progress)
	line := fmt.Sprintf("Level %d   ⭐ %d points   🔥 %d day streak   ✅ %d solved",
		sum.Level, sum.Points, sum.Streak, sum.ProblemsSolved)

	into := float64(sum.Points%progress.PointsPerLevel) / float64(progress.PointsPerLevel)
	bar := components.ProgressBar{
		Label:   fmt.Sprintf("Level %d", sum.Level+1),
		Percent: into,
		Width:   cw - 6,
		Value:   fmt.Sprintf("%d to go", sum.ToNextLevel),
	}

	var unlocked []string
	for _, id := range s.progress.Achievements {
		aid := gamification.AchievementID(id)
		unlocked = append(unlocked, aid.Icon()+" "+aid.DisplayName())
	}
	achievements := theme.Hint.Render("No achievements yet")
	if len(unlocked) > 0 {
		achievements = theme.Earned.Render(strings.Join(unlocked, "  "))
	}

	return components.Card("📈 Quick Stats", line+"\n"+bar.View()+"\n"+achievements, cw)
}

func (s *OverviewScreen) renderRecent(cw int) string {
	recent := report.RecentActivity(s.progress, recentCount)
	if len(recent) == 0 {
		return components.Card("🕑 Recent Activity", theme.Hint.Render("No activity yet. Start practicing!"), cw)
	}
	var lines []string
	for _, e := range recent {
		lines = append(lines, FormatEntry(e))
	}
	return components.Card("🕑 Recent Activity", strings.Join(lines, "\n"), cw)
}

// FormatEntry renders one quiz history line.
func FormatEntry(e progress.QuizEntry) string {
	icon := theme.Correct.Render("✅")
	if e.Outcome != progress.OutcomeCorrect {
		icon = theme.Incorrect.Render("❌")
	}
	return fmt.Sprintf("%s %s  %s (%s)  %s", icon, e.Time, e.Topic, e.Kind, e.Outcome)
}
