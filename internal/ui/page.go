package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tabpager/internal/paging"
)

// Shower is implemented by page contents that react to becoming visible.
type Shower interface {
	OnShow() tea.Cmd
}

// Hider is implemented by page contents that react to being hidden.
type Hider interface {
	OnHide() tea.Cmd
}

// Editor is implemented by page contents holding an input that gains and loses focus
// while the page stays shown.
type Editor interface {
	OnFocus() tea.Cmd
	OnBlur() tea.Cmd
}

// Page adapts a content View to paging.Page. Commands returned by the content's
// show/hide hooks are collected and run by the pager after the event that fired them.
type Page struct {
	Title   string
	Content View

	visible bool
	shows   int
	cmds    []tea.Cmd
}

// Ensure Page implements paging.Page.
var _ paging.Page = (*Page)(nil)

// NewPage creates a page labelled title.
func NewPage(title string, content View) *Page {
	return &Page{Title: title, Content: content}
}

// Label implements paging.Page.
func (p *Page) Label() string { return p.Title }

// Show implements paging.Page.
func (p *Page) Show() {
	p.visible = true
	p.shows++
	if s, ok := p.Content.(Shower); ok {
		p.cmds = append(p.cmds, s.OnShow())
	}
}

// Hide implements paging.Page.
func (p *Page) Hide() {
	p.visible = false
	if h, ok := p.Content.(Hider); ok {
		p.cmds = append(p.cmds, h.OnHide())
	}
}

// BeginEditing gives the content's input focus.
func (p *Page) BeginEditing() {
	if e, ok := p.Content.(Editor); ok {
		p.cmds = append(p.cmds, e.OnFocus())
	}
}

// EndEditing takes focus away from the content's input.
func (p *Page) EndEditing() {
	if e, ok := p.Content.(Editor); ok {
		p.cmds = append(p.cmds, e.OnBlur())
	}
}

// Visible reports whether the page is the shown page.
func (p *Page) Visible() bool { return p.visible }

// Shows returns how many times the page has been shown.
func (p *Page) Shows() int { return p.shows }

func (p *Page) takeCmds() []tea.Cmd {
	cmds := p.cmds
	p.cmds = nil
	return cmds
}
