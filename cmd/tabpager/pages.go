package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabpager/internal/paging"
	"tabpager/internal/ui"
)

// demoPages returns the pages shown by the command.
func demoPages(activity *activityPage) []*ui.Page {
	return []*ui.Page{
		ui.NewPage("Red", newColorPage("Red", "160")),
		ui.NewPage("Gray", newColorPage("Gray", "240")),
		ui.NewPage("Blue", newColorPage("Blue", "27")),
		ui.NewPage("Notes", newNotesPage()),
		ui.NewPage("Activity", activity),
	}
}

// colorPage fills its area with a background color.
type colorPage struct {
	name          string
	color         string
	width, height int
}

func newColorPage(name, color string) *colorPage {
	return &colorPage{name: name, color: color}
}

func (p *colorPage) Init() tea.Cmd { return nil }

func (p *colorPage) Update(tea.Msg) (ui.View, tea.Cmd) { return p, nil }

func (p *colorPage) SetSize(width, height int) { p.width, p.height = width, height }

func (p *colorPage) View() string {
	return lipgloss.NewStyle().
		Width(p.width).
		Height(p.height).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(p.color)).
		Foreground(lipgloss.Color("255")).
		Bold(true).
		Render(p.name)
}

// notesPage collects lines of text. Its input is focused only while the page is shown.
type notesPage struct {
	input textinput.Model
	notes []string
	width int
}

func newNotesPage() *notesPage {
	ti := textinput.New()
	ti.Placeholder = "type a note, enter to add"
	ti.CharLimit = 200
	return &notesPage{input: ti}
}

func (p *notesPage) Init() tea.Cmd { return nil }

func (p *notesPage) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		if v := strings.TrimSpace(p.input.Value()); v != "" {
			p.notes = append(p.notes, v)
		}
		p.input.Reset()
		return p, nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *notesPage) SetSize(width, _ int) {
	p.width = width
	p.input.Width = max(width-4, 1)
}

func (p *notesPage) OnShow() tea.Cmd {
	return p.input.Focus()
}

func (p *notesPage) OnHide() tea.Cmd {
	p.input.Blur()
	return nil
}

func (p *notesPage) OnFocus() tea.Cmd {
	return p.input.Focus()
}

func (p *notesPage) OnBlur() tea.Cmd {
	p.input.Blur()
	return nil
}

func (p *notesPage) View() string {
	var b strings.Builder
	b.WriteString(ui.Styles.Title.Render("Notes"))
	b.WriteString("\n\n")
	if len(p.notes) == 0 {
		b.WriteString(ui.Styles.Muted.Render("nothing yet; tab into the page to type"))
		b.WriteString("\n")
	}
	for _, n := range p.notes {
		b.WriteString("• " + n + "\n")
	}
	b.WriteString("\n")
	b.WriteString(p.input.View())
	return b.String()
}

// maxActivity bounds the activity log.
const maxActivity = 200

// activityPage lists coordinator activity, newest last.
type activityPage struct {
	lines  []string
	height int
}

var _ paging.Observer = (*activityPage)(nil)

func newActivityPage() *activityPage {
	return &activityPage{}
}

func (p *activityPage) OnTransitionRequested(req paging.TransitionRequest) {
	p.add(req.String())
}

func (p *activityPage) OnCommitted(c paging.Commit) {
	p.add(fmt.Sprintf("commit %d->%d (%s)", c.Previous, c.Next, c.Source))
}

func (p *activityPage) OnDropped(ev paging.Event, reason error) {
	if errors.Is(reason, paging.ErrTrackingSuppressed) {
		return
	}
	p.add(fmt.Sprintf("dropped %s: %v", ev, reason))
}

func (p *activityPage) add(line string) {
	p.lines = append(p.lines, line)
	if over := len(p.lines) - maxActivity; over > 0 {
		p.lines = p.lines[over:]
	}
}

func (p *activityPage) Init() tea.Cmd { return nil }

func (p *activityPage) Update(tea.Msg) (ui.View, tea.Cmd) { return p, nil }

func (p *activityPage) SetSize(_, height int) { p.height = height }

func (p *activityPage) View() string {
	lines := p.lines
	if p.height > 1 && len(lines) > p.height-1 {
		lines = lines[len(lines)-(p.height-1):]
	}
	return ui.Styles.Title.Render("Activity") + "\n" + ui.Styles.Muted.Render(strings.Join(lines, "\n"))
}
