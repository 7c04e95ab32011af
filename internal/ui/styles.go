package ui

import (
	"github.com/charmbracelet/lipgloss"

	"tabpager/internal/paging"
)

// Theme colors used outside the configurable strip.
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focus markers
	ColorDanger    = "196" // Red - for dropped-event notices
	ColorMuted     = "241" // Gray - for dimmed text, hints
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title  lipgloss.Style // Bold accent color - for page titles
	Muted  lipgloss.Style // Dimmed text (muted color)
	Hint   lipgloss.Style // Help/hint text (muted color)
	Error  lipgloss.Style // Dropped-event notices
	Focus  lipgloss.Style // Focus marker
	Status lipgloss.Style // Status indicators (accent color)
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Focus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}

// StripStyles are derived from a paging.Theme for the tab strip.
type StripStyles struct {
	Tab       lipgloss.Style
	Selected  lipgloss.Style
	Indicator lipgloss.Style
	Strip     lipgloss.Style
}

// NewStripStyles builds strip styles from theme. Empty colors fall back to the terminal default.
func NewStripStyles(theme paging.Theme) StripStyles {
	s := StripStyles{
		Tab:       lipgloss.NewStyle().Bold(theme.Bold),
		Selected:  lipgloss.NewStyle().Bold(theme.Bold),
		Indicator: lipgloss.NewStyle(),
		Strip:     lipgloss.NewStyle(),
	}
	if theme.TextColor != "" {
		s.Tab = s.Tab.Foreground(lipgloss.Color(theme.TextColor))
	}
	if theme.SelectedTextColor != "" {
		s.Selected = s.Selected.Foreground(lipgloss.Color(theme.SelectedTextColor))
	}
	if theme.IndicatorColor != "" {
		s.Indicator = s.Indicator.Foreground(lipgloss.Color(theme.IndicatorColor))
	}
	if theme.BackgroundColor != "" {
		bg := lipgloss.Color(theme.BackgroundColor)
		s.Tab = s.Tab.Background(bg)
		s.Selected = s.Selected.Background(bg)
		s.Indicator = s.Indicator.Background(bg)
		s.Strip = s.Strip.Background(bg)
	}
	return s
}
