package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdash/internal/router"
	"github.com/abhisek/mathdash/internal/screen"
	"github.com/abhisek/mathdash/internal/ui/components"
	"github.com/abhisek/mathdash/internal/ui/theme"
)

const (
	title        = "MATHDASH"
	tickInterval = 100 * time.Millisecond
	letterEvery  = 1 // ticks per revealed letter
	greetAfter   = 12
	hintAfter    = 16
)

// symbols scroll under the banner while it is revealed.
const symbols = "∑ π √ ∞ θ ∫ ≈ ± × ÷ Δ "

type tickMsg time.Time

// WelcomeScreen reveals the title letter by letter, greets the learner and
// hands over to home on any key.
type WelcomeScreen struct {
	name         string
	homeFactory  func() screen.Screen
	ticks        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. name is the learner's name and may be empty.
func New(name string, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{name: name, homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.ticks++
		if w.ticks >= hintAfter {
			// Fully drawn; stop ticking.
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

// revealed is the number of title letters currently visible.
func (w *WelcomeScreen) revealed() int {
	return min(w.ticks/letterEvery, len(title))
}

func (w *WelcomeScreen) greeting() string {
	if w.name == "" {
		return "Welcome to MathDash! Let's make math fun!"
	}
	return fmt.Sprintf("Welcome back, %s! Ready for today's challenge?", w.name)
}

func (w *WelcomeScreen) View(width, height int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var banner string
	switch n := w.revealed(); {
	case n == len(title):
		banner = components.Banner(style, width)
	case width < lipgloss.Width(components.BlockText(title))+2:
		banner = style.Render(title[:n])
	default:
		banner = style.Render(components.BlockText(title[:n]))
	}

	sections := []string{banner, ""}

	strip := []rune(strings.Repeat(symbols, 3))
	offset := (w.ticks * 2) % (len(strip) / 3)
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).
		Render(string(strip[offset:offset+33])))

	if w.ticks >= greetAfter {
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(w.greeting()))
	}
	if w.ticks >= hintAfter {
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
