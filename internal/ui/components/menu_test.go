package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pickedMsg int

func testMenu() Menu {
	var items []MenuItem
	for i, label := range []string{"Algebra", "Geometry", "Calculus"} {
		items = append(items, MenuItem{
			Label:  label,
			Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg(i) } },
		})
	}
	return NewMenu(items)
}

func TestMenu_NavigationWraps(t *testing.T) {
	m := testMenu()

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 2 {
		t.Errorf("Selected = %d after up from top, want 2", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("Selected = %d after down from bottom, want 0", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if m.Selected != 1 {
		t.Errorf("Selected = %d after j, want 1", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	m := testMenu()
	m.Select(1)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	if got := cmd(); got != pickedMsg(1) {
		t.Errorf("action msg = %v, want 1", got)
	}
}

func TestMenu_NumberShortcut(t *testing.T) {
	m := testMenu()

	m, cmd := m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
	if cmd == nil || cmd() != pickedMsg(2) {
		t.Error("number key did not activate the row")
	}

	m, cmd = m.Update(tea.KeyPressMsg{Code: '7', Text: "7"})
	if cmd != nil || m.Selected != 2 {
		t.Error("out-of-range number should be ignored")
	}
}

func TestMenu_SelectIgnoresOutOfRange(t *testing.T) {
	m := testMenu()
	m.Select(5)
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenu_ViewNumbersRows(t *testing.T) {
	view := testMenu().View()
	for _, want := range []string{"▸ 1. Algebra", "2. Geometry", "3. Calculus"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
