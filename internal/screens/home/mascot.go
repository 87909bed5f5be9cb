package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdash/internal/progress"
	"github.com/abhisek/mathdash/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default blue
	MascotCelebrating                      // Gold, star eyes: practiced today
	MascotAlert                            // Orange, exclamation: streak at risk
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ±×÷ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ±×÷ │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ ±×÷ │
└─────┘`

// MascotFor picks the mascot mood from the learner's streak state.
func MascotFor(p *progress.Progress, today progress.Date) MascotVariant {
	if p.LastActivityDate == nil {
		return MascotIdle
	}
	last := *p.LastActivityDate
	switch {
	case last == today:
		return MascotCelebrating
	case last == today.AddDays(-1) && p.DailyStreak > 0:
		return MascotAlert
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Gold
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
