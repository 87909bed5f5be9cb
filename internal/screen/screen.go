package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdash/internal/gamification"
	"github.com/abhisek/mathdash/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that are reading free text and
// want plain keys such as "q" and "esc" delivered to them.
type InputCapturer interface {
	CapturingInput() bool
}

// NotifyMsg asks the app to celebrate events and surface a warning.
type NotifyMsg struct {
	Events  []gamification.Event
	Warning string
}

// Notify returns a command emitting a NotifyMsg, or nil when there is
// nothing to show.
func Notify(events []gamification.Event, warning string) tea.Cmd {
	if len(events) == 0 && warning == "" {
		return nil
	}
	return func() tea.Msg {
		return NotifyMsg{Events: events, Warning: warning}
	}
}

// SaveWarning formats a persistence failure for the status line.
func SaveWarning(err error) string {
	if err == nil {
		return ""
	}
	return "warning: progress not saved: " + err.Error()
}
