package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root model: global keys and overlays around a single PagerView.
type AppModel struct {
	Pager    *PagerView
	Keys     *KeybindRegistry
	Overlays OverlayStack

	width, height int
}

// ShowHelpMsg opens the key help overlay.
type ShowHelpMsg struct{}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Pager.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case ShowHelpMsg:
		a.Overlays.Push(Overlay{
			View:    NewHelpOverlay(a.Keys, a.Pager.stripKeys, a.Pager.contentKeys),
			Dismiss: []string{"esc", "?", "q"},
		})
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Overlays take keys first.
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if a.globalKey(msg) {
			consumed, cmd := a.Keys.Handle(msg)
			if consumed {
				return a, cmd
			}
		}
	}
	next, cmd := a.Pager.Update(msg)
	if p, ok := next.(*PagerView); ok {
		a.Pager = p
	}
	return a, cmd
}

// globalKey reports whether msg is an app binding. Plain keys only count while the
// tab strip has focus so page content can take text input.
func (a *appModelAdapter) globalKey(msg tea.KeyMsg) bool {
	if a.Keys == nil || a.Keys.Lookup(msg.String()) == nil {
		return false
	}
	return msg.Type != tea.KeyRunes || a.Pager.Focused() == PanelTabs
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	top, ok := a.Overlays.Peek()
	if !ok {
		return a.Pager.View()
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
}

// NewAppModel creates the root model for pager.
func NewAppModel(pager *PagerView) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("?", func() tea.Msg { return ShowHelpMsg{} }, "help")
	return &AppModel{Pager: pager, Keys: reg}
}

// AsTeaModel returns a tea.Model for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
