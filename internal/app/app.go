package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdash/internal/dashboard"
	"github.com/abhisek/mathdash/internal/gamification"
	"github.com/abhisek/mathdash/internal/router"
	"github.com/abhisek/mathdash/internal/screen"
	"github.com/abhisek/mathdash/internal/screens/home"
	"github.com/abhisek/mathdash/internal/screens/welcome"
	"github.com/abhisek/mathdash/internal/ui/layout"
)

// noticeDuration is how long celebrations and warnings stay on screen.
const noticeDuration = 4 * time.Second

// Options configures the dashboard program.
type Options struct {
	Controller *dashboard.Controller

	// Warning is shown in the footer at startup, e.g. after a corrupt
	// progress file was replaced with a fresh record.
	Warning string

	// SkipWelcome starts directly on the home screen.
	SkipWelcome bool
}

type noticeExpiredMsg struct {
	seq int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *dashboard.Controller
	router *router.Router
	width  int
	height int

	toasts []string
	status string
	seq    int
}

func newAppModel(opts Options) AppModel {
	ctrl := opts.Controller
	homeFactory := func() screen.Screen { return home.New(ctrl) }

	var root screen.Screen
	if opts.SkipWelcome {
		root = homeFactory()
	} else {
		root = welcome.New(ctrl.Progress().StudentName, homeFactory)
	}
	return AppModel{
		ctrl:   ctrl,
		router: router.New(root),
		status: opts.Warning,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.status != "" {
		cmds = append(cmds, expireAfter(m.seq))
	}
	return tea.Batch(cmds...)
}

func expireAfter(seq int) tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// celebrations picks the events worth a toast.
func celebrations(events []gamification.Event) []string {
	var lines []string
	for _, e := range events {
		switch e.Kind {
		case gamification.EventLevelUp, gamification.EventAchievementUnlocked:
			lines = append(lines, e.Message())
		}
	}
	return lines
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.NotifyMsg:
		m.seq++
		m.toasts = celebrations(msg.Events)
		if msg.Warning != "" {
			m.status = msg.Warning
		}
		if len(m.toasts) == 0 && m.status == "" {
			return m, nil
		}
		return m, expireAfter(m.seq)

	case noticeExpiredMsg:
		if msg.seq == m.seq {
			m.toasts = nil
			m.status = ""
		}
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "esc":
				if m.router.Depth() > 1 {
					return m, router.Pop()
				}
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "q", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	sum := m.ctrl.Summary()
	stats := layout.Stats{Level: sum.Level, Points: sum.Points, Streak: sum.Streak}
	header := layout.RenderHeader(m.router.Breadcrumb(), stats, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.status, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	toasts := layout.RenderToasts(m.toasts, m.width)
	if toasts != "" {
		contentHeight -= lipgloss.Height(toasts)
	}
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	if toasts != "" {
		content = toasts + "\n" + content
	}
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the dashboard and blocks until the learner quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
