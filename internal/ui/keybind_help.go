package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp renders the one-line help bar for the registries, truncated to width.
func RenderKeybindHelp(width int, registries ...*KeybindRegistry) string {
	helpModel := help.New()
	helpModel.Width = width
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	var bindings []key.Binding
	for _, r := range registries {
		if r != nil {
			bindings = append(bindings, r.Bindings()...)
		}
	}
	return helpModel.ShortHelpView(bindings)
}
