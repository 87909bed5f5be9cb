// Package router keeps the navigation stack of screens.
package router

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdash/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the active screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the active screen for Screen at the same depth.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// PopToRootMsg closes everything above the first screen.
type PopToRootMsg struct{}

// Push returns a command that opens s.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Pop returns a command that closes the active screen.
func Pop() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// Router owns the screen stack. The bottom screen is never removed.
type Router struct {
	screens []screen.Screen
}

// New returns a router rooted at root.
func New(root screen.Screen) *Router {
	return &Router{screens: []screen.Screen{root}}
}

// Depth is the number of open screens.
func (r *Router) Depth() int {
	return len(r.screens)
}

// Active is the screen on top.
func (r *Router) Active() screen.Screen {
	if len(r.screens) == 0 {
		return nil
	}
	return r.screens[len(r.screens)-1]
}

// Push opens s and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.screens = append(r.screens, s)
	return s.Init()
}

// Replace swaps the top screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.screens[len(r.screens)-1] = s
	return s.Init()
}

// Pop closes the top screen. The screen underneath runs Init again so it
// can pick up changes made while it was covered.
func (r *Router) Pop() tea.Cmd {
	return r.truncate(len(r.screens) - 1)
}

// PopToRoot closes every screen above the root.
func (r *Router) PopToRoot() tea.Cmd {
	return r.truncate(1)
}

func (r *Router) truncate(n int) tea.Cmd {
	if n < 1 || n >= len(r.screens) {
		return nil
	}
	clear(r.screens[n:])
	r.screens = r.screens[:n]
	return r.Active().Init()
}

// Breadcrumb joins the non-empty titles from root to top.
func (r *Router) Breadcrumb() string {
	var titles []string
	for _, s := range r.screens {
		if t := s.Title(); t != "" {
			titles = append(titles, t)
		}
	}
	return strings.Join(titles, " › ")
}

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case PopToRootMsg:
		return r.PopToRoot()
	}

	top := r.Active()
	if top == nil {
		return nil
	}
	next, cmd := top.Update(msg)
	r.screens[len(r.screens)-1] = next
	return cmd
}

// View draws the active screen.
func (r *Router) View(width, height int) string {
	if top := r.Active(); top != nil {
		return top.View(width, height)
	}
	return ""
}
