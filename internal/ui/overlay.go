package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay is a popup view drawn over the pager, closed by one of its dismiss keys.
type Overlay struct {
	View    View
	Dismiss []string // Keys that dismiss (e.g. "esc", "?")
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return slices.Contains(o.Dismiss, key)
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// overlayBox frames overlay content.
var overlayBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(ColorHighlight)).
	Padding(1, 2)

// HelpOverlay lists every binding of the given registries in full-help columns.
type HelpOverlay struct {
	registries []*KeybindRegistry
}

// NewHelpOverlay creates a help overlay for registries.
func NewHelpOverlay(registries ...*KeybindRegistry) *HelpOverlay {
	return &HelpOverlay{registries: registries}
}

// Init implements View.
func (h *HelpOverlay) Init() tea.Cmd { return nil }

// Update implements View.
func (h *HelpOverlay) Update(tea.Msg) (View, tea.Cmd) { return h, nil }

// View implements View.
func (h *HelpOverlay) View() string {
	m := help.New()
	var cols [][]key.Binding
	for _, r := range h.registries {
		if full := NewKeyMap(r).FullHelp(); len(full) > 0 {
			cols = append(cols, full...)
		}
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("Keys"),
		"",
		m.FullHelpView(cols),
		"",
		Styles.Hint.Render("esc or ? to close"),
	)
	return overlayBox.Render(body)
}
