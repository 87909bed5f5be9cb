package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdash/internal/dashboard"
	"github.com/abhisek/mathdash/internal/progress"
	rpt "github.com/abhisek/mathdash/internal/report"
	"github.com/abhisek/mathdash/internal/screen"
	"github.com/abhisek/mathdash/internal/screens/overview"
	"github.com/abhisek/mathdash/internal/ui/components"
	"github.com/abhisek/mathdash/internal/ui/layout"
	"github.com/abhisek/mathdash/internal/ui/theme"
)

// maxDays is how many recent days the points chart shows.
const maxDays = 14

// ReportScreen shows the progress report: headline numbers, points over
// time, topic distribution and the activity timeline.
type ReportScreen struct {
	ctrl         *dashboard.Controller
	progress     *progress.Progress
	scrollOffset int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a ReportScreen.
func New(ctrl *dashboard.Controller) *ReportScreen {
	return &ReportScreen{ctrl: ctrl, progress: ctrl.Progress()}
}

func (s *ReportScreen) Init() tea.Cmd {
	s.progress = s.ctrl.Progress()
	return nil
}

func (s *ReportScreen) Title() string {
	return "Progress Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			s.scrollOffset++
		case "home", "g":
			s.scrollOffset = 0
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := s.progress

	sections := []string{
		renderSummary(rpt.Summarize(p), cw),
		renderPointsChart(rpt.PointsByDay(p), cw),
		renderDistribution(rpt.TopicDistribution(p), rpt.TopicAccuracy(p), cw),
		renderTimeline(rpt.RecentActivity(p, rpt.DefaultRecent), cw),
	}

	var lines []string
	for _, sec := range sections {
		lines = append(lines, strings.Split(layout.Centered(sec, width), "\n")...)
	}

	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.scrollOffset > maxOffset {
		s.scrollOffset = maxOffset
	}
	end := s.scrollOffset + height
	if end > len(lines) || height <= 0 {
		end = len(lines)
	}
	return strings.Join(lines[s.scrollOffset:end], "\n")
}

func renderSummary(sum rpt.Summary, cw int) string {
	metric := func(label string, value int) string {
		return lipgloss.NewStyle().Width((cw - 6) / 4).Align(lipgloss.Center).Render(
			theme.Earned.Render(fmt.Sprint(value)) + "\n" + theme.Hint.Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		metric("Problems Solved", sum.ProblemsSolved),
		metric("Topics Practiced", sum.TopicsPracticed),
		metric("Total Points", sum.Points),
		metric("Current Level", sum.Level),
	)
	return components.Card("📊 Overall", row, cw)
}

func renderPointsChart(days []rpt.DayPoints, cw int) string {
	if len(days) == 0 {
		return components.Card("⭐ Points Over Time",
			theme.Hint.Render("No points history yet. Complete math problems to start tracking!"), cw)
	}
	if len(days) > maxDays {
		days = days[len(days)-maxDays:]
	}
	peak := 0
	for _, d := range days {
		peak = max(peak, d.Total)
	}
	var rows []string
	for _, d := range days {
		pct := 0.0
		if peak > 0 {
			pct = float64(d.Total) / float64(peak)
		}
		bar := components.ProgressBar{
			Label:      d.Date.String(),
			LabelWidth: 10,
			Percent:    pct,
			Width:      cw - 6,
			Value:      fmt.Sprintf("%d (+%d)", d.Total, d.Gained),
			Color:      theme.Gold,
		}
		rows = append(rows, bar.View())
	}
	return components.Card("⭐ Points Over Time", strings.Join(rows, "\n"), cw)
}

func renderDistribution(dist []rpt.TopicShare, acc []rpt.Accuracy, cw int) string {
	solved := 0
	for _, d := range dist {
		solved += d.Count
	}
	if solved == 0 {
		return components.Card("📐 Topic Distribution",
			theme.Hint.Render("No math problems completed yet. Try Math Practice!"), cw)
	}
	var rows []string
	for i, d := range dist {
		value := fmt.Sprintf("%d · %d%%", d.Count, int(d.Share*100+0.5))
		if i < len(acc) && acc[i].Attempted > 0 {
			value += fmt.Sprintf(" · %d%% acc", int(acc[i].Rate()*100+0.5))
		}
		bar := components.ProgressBar{
			Label:      d.Topic.Icon() + " " + string(d.Topic),
			LabelWidth: 15,
			Percent:    d.Share,
			Width:      cw - 6,
			Value:      value,
		}
		rows = append(rows, bar.View())
	}
	return components.Card("📐 Topic Distribution", strings.Join(rows, "\n"), cw)
}

func renderTimeline(recent []progress.QuizEntry, cw int) string {
	if len(recent) == 0 {
		return components.Card("📅 Recent Activity Timeline",
			theme.Hint.Render("No recent math activities. Start practicing to see your timeline!"), cw)
	}
	var lines []string
	for _, e := range recent {
		lines = append(lines, overview.FormatEntry(e))
	}
	return components.Card("📅 Recent Activity Timeline", strings.Join(lines, "\n"), cw)
}
