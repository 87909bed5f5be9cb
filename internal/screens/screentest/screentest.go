// Package screentest provides fixtures shared by the screen tests.
package screentest

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdash/internal/dashboard"
	"github.com/abhisek/mathdash/internal/progress"
)

// Monday is the fixed clock reading used by screen tests.
var Monday = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.Local)

// MemRepo is an in-memory store.Repo.
type MemRepo struct {
	Saved   *progress.Progress
	Saves   int
	FailErr error
}

func (r *MemRepo) Load(context.Context) (*progress.Progress, error) {
	if r.Saved == nil {
		return nil, nil
	}
	return r.Saved.Clone(), nil
}

func (r *MemRepo) Save(_ context.Context, p *progress.Progress) error {
	if r.FailErr != nil {
		return r.FailErr
	}
	r.Saves++
	r.Saved = p.Clone()
	return nil
}

func (r *MemRepo) Path() string { return "memory" }
func (r *MemRepo) Close() error { return nil }

// Controller returns a controller over p (nil for a fresh learner) with a
// fixed clock and seed.
func Controller(p *progress.Progress) (*dashboard.Controller, *MemRepo) {
	repo := &MemRepo{}
	c := dashboard.New(dashboard.Options{
		Repo:     repo,
		Progress: p,
		Clock:    func() time.Time { return Monday },
		Rand:     rand.New(rand.NewSource(7)),
	})
	return c, repo
}

// Key returns a printable key press.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Special returns a non-printable key press such as tea.KeyEnter.
func Special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Ctrl returns a ctrl-modified key press.
func Ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// Run executes cmd and returns its message, or nil for a nil command.
func Run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
