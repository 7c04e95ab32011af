package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tabpager/internal/paging"
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestAppModel_QuitKeys(t *testing.T) {
	v, _, _ := newTestPager(t, 2, false)
	m := NewAppModel(v).AsTeaModel()

	if _, cmd := m.Update(keyMsg("q")); !isQuit(cmd) {
		t.Error("q on the tab strip should quit")
	}

	v.Update(FocusNextMsg{})
	if _, cmd := m.Update(keyMsg("q")); isQuit(cmd) {
		t.Error("q in page content should reach the page")
	}
	if _, cmd := m.Update(keyMsg("ctrl+c")); !isQuit(cmd) {
		t.Error("ctrl+c should always quit")
	}
}

func TestAppModel_DelegatesToPager(t *testing.T) {
	v, _, _ := newTestPager(t, 3, false)
	m := NewAppModel(v).AsTeaModel()

	m.Update(TapMsg{Index: 1})
	if req, ok := v.Coordinator().InFlight(); !ok || req.To != 1 {
		t.Errorf("expected transition to 1 in flight, got %v %v", req, ok)
	}
	if m.View() != v.View() {
		t.Error("app view should be the pager view")
	}
}

func TestAppModel_HelpOverlay(t *testing.T) {
	v, _, _ := newTestPager(t, 2, false)
	app := NewAppModel(v)
	m := app.AsTeaModel()
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	_, cmd := m.Update(keyMsg("?"))
	if cmd == nil {
		t.Fatal("? should be bound")
	}
	m.Update(cmd())
	if app.Overlays.Len() != 1 {
		t.Fatalf("expected help overlay, got %d overlays", app.Overlays.Len())
	}
	if out := m.View(); !strings.Contains(out, "Keys") || !strings.Contains(out, "next") {
		t.Errorf("help overlay missing bindings:\n%s", out)
	}

	// Keys go to the overlay, not the pager.
	m.Update(keyMsg("right"))
	if v.Coordinator().State() != paging.StateIdle {
		t.Error("pager should not see keys while the overlay is open")
	}
	if _, cmd := m.Update(keyMsg("q")); isQuit(cmd) {
		t.Error("q should close the overlay, not quit")
	}
	if app.Overlays.Len() != 0 {
		t.Error("expected overlay dismissed")
	}
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	if _, ok := s.Pop(); ok {
		t.Error("pop on empty stack")
	}
	if _, ok := s.UpdateTop(nil); ok {
		t.Error("update on empty stack")
	}
	s.Push(Overlay{View: NewHelpOverlay(), Dismiss: []string{"esc"}})
	top, ok := s.Peek()
	if !ok || !top.IsDismissKey("esc") || top.IsDismissKey("x") {
		t.Error("unexpected top overlay")
	}
	if _, ok := s.UpdateTop(keyMsg("x")); !ok {
		t.Error("expected top overlay updated")
	}
	s.Pop()
	if s.Len() != 0 {
		t.Errorf("Len = %d", s.Len())
	}
}
