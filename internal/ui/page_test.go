package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPage_ShowHideCollectsCommands(t *testing.T) {
	c := &stubContent{name: "a"}
	p := NewPage("A", c)

	if p.Label() != "A" {
		t.Errorf("Label = %q", p.Label())
	}
	p.Show()
	if !p.Visible() || p.Shows() != 1 || c.shown != 1 {
		t.Errorf("after Show: visible=%v shows=%d content shown=%d", p.Visible(), p.Shows(), c.shown)
	}
	p.Hide()
	if p.Visible() || c.hidden != 1 {
		t.Errorf("after Hide: visible=%v content hidden=%d", p.Visible(), c.hidden)
	}

	cmds := p.takeCmds()
	if len(cmds) != 2 {
		t.Fatalf("expected show and hide commands, got %d", len(cmds))
	}
	if msg, ok := cmds[0]().(stubShownMsg); !ok || msg.name != "a" {
		t.Errorf("show command produced %v", cmds[0]())
	}
	if len(p.takeCmds()) != 0 {
		t.Error("commands should be taken once")
	}
}

type plainContent struct{}

func (plainContent) Init() tea.Cmd                   { return nil }
func (plainContent) Update(tea.Msg) (View, tea.Cmd) { return plainContent{}, nil }
func (plainContent) View() string                    { return "plain" }

func TestPage_ContentWithoutHooks(t *testing.T) {
	p := NewPage("P", plainContent{})
	p.Show()
	p.Hide()
	if len(p.takeCmds()) != 0 {
		t.Error("content without hooks should queue no commands")
	}
	if p.Shows() != 1 {
		t.Errorf("Shows = %d", p.Shows())
	}
}
