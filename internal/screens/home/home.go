package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdash/internal/dashboard"
	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/questionbank"
	"github.com/abhisek/mathdash/internal/router"
	"github.com/abhisek/mathdash/internal/screen"
	"github.com/abhisek/mathdash/internal/screens/achievements"
	"github.com/abhisek/mathdash/internal/screens/overview"
	"github.com/abhisek/mathdash/internal/screens/practice"
	"github.com/abhisek/mathdash/internal/screens/profile"
	"github.com/abhisek/mathdash/internal/screens/report"
	"github.com/abhisek/mathdash/internal/ui/components"
	"github.com/abhisek/mathdash/internal/ui/layout"
	"github.com/abhisek/mathdash/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// HomeScreen is the main menu.
type HomeScreen struct {
	ctrl     *dashboard.Controller
	menu     components.Menu
	progress *progress.Progress
	mascot   MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(ctrl *dashboard.Controller) *HomeScreen {
	h := &HomeScreen{ctrl: ctrl}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "🏠 DASHBOARD", Action: func() tea.Cmd {
			return router.Push(overview.New(ctrl, h.practiceFactory()))
		}},
		{Label: "🧮 MATH PRACTICE", Action: func() tea.Cmd {
			return router.Push(practice.New(ctrl, ""))
		}},
		{Label: "📊 PROGRESS REPORT", Action: func() tea.Cmd {
			return router.Push(report.New(ctrl))
		}},
		{Label: "🏆 ACHIEVEMENTS", Action: func() tea.Cmd {
			return router.Push(achievements.New(ctrl))
		}},
		{Label: "👤 PROFILE", Action: func() tea.Cmd {
			return router.Push(profile.New(ctrl))
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	h.refresh()
	return h
}

func (h *HomeScreen) practiceFactory() func(questionbank.Topic) screen.Screen {
	return func(t questionbank.Topic) screen.Screen {
		return practice.New(h.ctrl, t)
	}
}

func (h *HomeScreen) refresh() {
	h.progress = h.ctrl.Progress()
	h.mascot = MascotFor(h.progress, progress.DateOf(h.ctrl.Now()))
}

// Init refreshes the greeting and mascot whenever home becomes active.
func (h *HomeScreen) Init() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(components.Banner(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true), cw)))

	if !compact {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Render(RenderMascot(h.mascot)))
	}

	sections = append(sections, h.renderGreeting(cw))
	sections = append(sections, h.renderMenu(cw, compact))

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) renderGreeting(cw int) string {
	name := h.progress.StudentName
	if name == "" {
		name = "Mathematician"
	}
	greet := theme.Title.Render(fmt.Sprintf("Welcome, %s! 👋", name))
	sub := theme.Subtitle.Render(fmt.Sprintf("%s · Level %d · %d problems solved",
		h.progress.Grade, h.progress.Level(), h.progress.TotalCompleted()))
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(greet + "\n" + sub)
}

func (h *HomeScreen) renderMenu(cw int, compact bool) string {
	var buttons []string
	for i, item := range h.menu.Items {
		selected := i == h.menu.Selected
		if compact {
			buttons = append(buttons, components.Button(item.Label, selected))
			continue
		}
		style := lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
		if selected {
			buttons = append(buttons, style.
				Bold(true).
				Foreground(theme.BgDark).
				Background(theme.Gold).
				BorderForeground(theme.Gold).
				Render("▸ "+item.Label))
		} else {
			buttons = append(buttons, style.
				Foreground(theme.Text).
				BorderForeground(theme.Border).
				Render(item.Label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}
