package achievements

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdash/internal/dashboard"
	"github.com/abhisek/mathdash/internal/gamification"
	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/report"
	"github.com/abhisek/mathdash/internal/screen"
	"github.com/abhisek/mathdash/internal/ui/components"
	"github.com/abhisek/mathdash/internal/ui/layout"
	"github.com/abhisek/mathdash/internal/ui/theme"
)

// Tab is one page of the achievement screen.
type Tab int

const (
	TabBadges Tab = iota
	TabBoard
	TabTopics
)

var tabNames = []string{"🏅 Badges", "🏆 Board", "🎯 Topic Mastery"}

// AchievementsScreen shows unlocked badges, the milestone board and
// per-topic mastery.
type AchievementsScreen struct {
	ctrl     *dashboard.Controller
	progress *progress.Progress
	tab      Tab
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates an AchievementsScreen.
func New(ctrl *dashboard.Controller) *AchievementsScreen {
	return &AchievementsScreen{ctrl: ctrl, progress: ctrl.Progress()}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	s.progress = s.ctrl.Progress()
	return nil
}

func (s *AchievementsScreen) Title() string {
	return "Achievement Board"
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch page"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "right", "l":
			s.tab = (s.tab + 1) % Tab(len(tabNames))
		case "shift+tab", "left", "h":
			s.tab = (s.tab - 1 + Tab(len(tabNames))) % Tab(len(tabNames))
		}
	}
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == s.tab {
			tabs = append(tabs, theme.Selected.Render(name))
		} else {
			tabs = append(tabs, theme.Locked.Render(name))
		}
	}

	var body string
	switch s.tab {
	case TabBoard:
		body = renderBoard(s.progress, cw)
	case TabTopics:
		body = renderTopics(s.progress, cw)
	default:
		body = renderBadges(s.progress, cw)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(strings.Join(tabs, "     "), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(body, width))
	return b.String()
}

func renderBadges(p *progress.Progress, cw int) string {
	var rows []string
	for _, d := range gamification.Definitions() {
		name := fmt.Sprintf("%s %-16s", d.ID.Icon(), d.Name)
		if p.HasAchievement(string(d.ID)) {
			rows = append(rows, theme.Earned.Render(name)+"  "+theme.Correct.Render("✓ unlocked"))
		} else {
			rows = append(rows, theme.Locked.Render(name+"  "+d.Description()))
		}
	}
	header := theme.Hint.Render(fmt.Sprintf("%d of %d unlocked", len(p.Achievements), len(gamification.Definitions())))
	return components.Card("", header+"\n\n"+strings.Join(rows, "\n"), cw)
}

func renderBoard(p *progress.Progress, cw int) string {
	board := report.Board(p)

	var sections []string
	for _, c := range report.Categories() {
		lines := []string{theme.Heading.Render(c.Icon() + " " + string(c))}
		for _, m := range board {
			if m.Category != c {
				continue
			}
			if m.Earned {
				lines = append(lines, theme.Earned.Render("  ✅ "+m.Name))
			} else {
				lines = append(lines, theme.Locked.Render(fmt.Sprintf("  🔲 %s (%d to go)", m.Name, m.Remaining)))
			}
		}
		if goal := report.NextGoal(p, c); goal != "" {
			lines = append(lines, theme.Hint.Render("  "+goal))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return components.Card("", strings.Join(sections, "\n\n"), cw)
}

func renderTopics(p *progress.Progress, cw int) string {
	var rows []string
	for _, t := range report.TopicMastery(p) {
		switch t.Level {
		case report.MasteryExplorer:
			rows = append(rows, theme.Earned.Render("✅ "+t.Label()))
		case report.MasteryBeginner:
			bar := components.ProgressBar{
				Label:       "⏳ " + t.Label(),
				LabelWidth:  36,
				Percent:     float64(t.Solved) / float64(report.ExplorerThreshold),
				ShowPercent: true,
				Width:       cw - 6,
			}
			rows = append(rows, bar.View())
		default:
			rows = append(rows, theme.Locked.Render("🔲 "+t.Label()))
		}
	}
	return components.Card("", strings.Join(rows, "\n"), cw)
}
