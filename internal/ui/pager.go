package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/harmonica"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tabpager/internal/paging"
	"tabpager/internal/ui/textutil"
)

const (
	indicatorGlyph = "━"
	dragStep       = 0.25 // pages per drag key or wheel notch
)

// PagerView is the terminal Renderer for a paging.Coordinator: it draws the tab strip,
// the indicator and the paged content, animates requested transitions and turns
// keyboard and mouse input into coordinator events.
type PagerView struct {
	coord  *paging.Coordinator
	pages  []*Page
	layout PagerLayout
	focus  *FocusManager
	styles StripStyles
	theme  paging.Theme
	anim   AnimationConfig
	spring harmonica.Spring

	stripKeys   *KeybindRegistry
	contentKeys *KeybindRegistry

	width, height int
	sized         bool

	viewport axis // content offset in columns
	bar      axis // indicator offset in columns
	barWidth float64
	jumpBar  bool

	inFlight *paging.TransitionRequest
	settleTo int
	dragGen  int
	ticking  bool
	lastErr  error
}

// Ensure PagerView implements View and paging.Renderer.
var (
	_ View            = (*PagerView)(nil)
	_ paging.Renderer = (*PagerView)(nil)
)

// NewPagerView creates the renderer and configures its coordinator with pages.
// opts are passed to paging.New (observers, ID generators).
func NewPagerView(pages []*Page, initialIndex int, cfg paging.Config, anim AnimationConfig, opts ...paging.Option) (*PagerView, error) {
	v := &PagerView{
		pages:    pages,
		layout:   PagerLayout{StripHeight: stripHeight(cfg.Theme)},
		styles:   NewStripStyles(cfg.Theme),
		theme:    cfg.Theme,
		anim:     anim,
		spring:   anim.spring(),
		settleTo: paging.NoIndex,
	}
	v.focus = NewFocusManager(v.layout.FocusOrder())
	v.focus.OnChange = v.focusChanged
	v.stripKeys, v.contentKeys = v.defaultKeys()
	v.coord = paging.New(v, opts...)

	pp := make([]paging.Page, len(pages))
	for i, p := range pages {
		pp[i] = p
	}
	if err := v.coord.Configure(pp, initialIndex, cfg); err != nil {
		return nil, err
	}
	return v, nil
}

// stripHeight is the label row plus the indicator rows, at least TotalHeight.
func stripHeight(theme paging.Theme) int {
	return max(theme.TotalHeight, 1+max(theme.IndicatorHeight, 1))
}

func (v *PagerView) defaultKeys() (strip, content *KeybindRegistry) {
	msg := func(m tea.Msg) tea.Cmd { return func() tea.Msg { return m } }

	strip = NewKeybindRegistry()
	strip.BindWithDesc("left", msg(StepMsg{Delta: -1}), "prev")
	strip.BindWithDesc("h", msg(StepMsg{Delta: -1}), "prev")
	strip.BindWithDesc("right", msg(StepMsg{Delta: 1}), "next")
	strip.BindWithDesc("l", msg(StepMsg{Delta: 1}), "next")
	for i := 1; i <= min(len(v.pages), 9); i++ {
		strip.BindWithDesc(strconv.Itoa(i), msg(TapMsg{Index: i - 1}), "jump")
	}
	strip.BindWithDesc("[", msg(DragMsg{Pages: -dragStep}), "drag")
	strip.BindWithDesc("]", msg(DragMsg{Pages: dragStep}), "drag")
	strip.BindWithDesc("tab", msg(FocusNextMsg{}), "focus page")

	content = NewKeybindRegistry()
	content.BindWithDesc("esc", msg(FocusMsg{Panel: PanelTabs}), "focus tabs")
	content.BindWithDesc("tab", msg(FocusNextMsg{}), "focus tabs")
	return strip, content
}

// Coordinator returns the coordinator this view renders.
func (v *PagerView) Coordinator() *paging.Coordinator {
	return v.coord
}

// Focused returns the ID of the focused panel.
func (v *PagerView) Focused() string {
	return v.focus.Current
}

// Pages returns the configured pages.
func (v *PagerView) Pages() []*Page {
	return v.pages
}

// Offset returns the viewport offset in columns.
func (v *PagerView) Offset() float64 {
	return v.viewport.pos
}

// IndicatorOffset returns the drawn indicator offset in columns.
func (v *PagerView) IndicatorOffset() float64 {
	return v.bar.pos
}

// Animating reports whether frames are still needed.
func (v *PagerView) Animating() bool {
	return v.inFlight != nil || v.settleTo != paging.NoIndex || !v.viewport.atRest() || !v.bar.atRest()
}

// Err returns the last error from a user action, cleared on the next input.
func (v *PagerView) Err() error {
	return v.lastErr
}

// RequestTransition implements paging.Renderer.
func (v *PagerView) RequestTransition(req paging.TransitionRequest) {
	target := float64(req.To * v.width)
	if !req.Animated {
		v.viewport.jump(target)
		return
	}
	v.inFlight = &req
	if !v.sized {
		v.viewport.jump(target)
		return
	}
	v.settleTo = paging.NoIndex
	v.viewport.target = target
}

// UpdateIndicator implements paging.Renderer.
func (v *PagerView) UpdateIndicator(ind paging.Indicator) {
	v.barWidth = ind.Width
	if !v.sized || v.jumpBar {
		v.bar.jump(ind.Offset)
		return
	}
	v.bar.target = ind.Offset
}

// Init implements View.
func (v *PagerView) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range v.pages {
		if p.Content != nil {
			cmds = append(cmds, p.Content.Init())
		}
	}
	cmds = append(cmds, v.pageCmds()...)
	return tea.Batch(cmds...)
}

// Update implements View.
func (v *PagerView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg.Width, msg.Height)
	case frameMsg:
		v.ticking = false
		v.onFrame()
	case settleMsg:
		v.settle(msg.gen)
	case TapMsg:
		v.record(v.coord.TabTapped(msg.Index))
	case StepMsg:
		v.step(msg.Delta)
	case DragMsg:
		cmds = append(cmds, v.drag(msg.Pages))
	case FocusMsg:
		v.focus.SetFocus(msg.Panel)
	case FocusNextMsg:
		v.focus.Next()
	case tea.MouseMsg:
		v.lastErr = nil
		cmds = append(cmds, v.mouse(msg))
	case tea.KeyMsg:
		v.lastErr = nil
		if consumed, cmd := v.activeKeys().Handle(msg); consumed {
			cmds = append(cmds, cmd)
		} else if v.focus.Is(PanelContent) {
			cmds = append(cmds, v.updateContent(msg))
		}
	default:
		cmds = append(cmds, v.updateContent(msg))
	}
	cmds = append(cmds, v.pageCmds()...)
	cmds = append(cmds, v.schedule())
	return v, tea.Batch(cmds...)
}

func (v *PagerView) activeKeys() *KeybindRegistry {
	if v.focus.Is(PanelContent) {
		return v.contentKeys
	}
	return v.stripKeys
}

func (v *PagerView) resize(width, height int) {
	v.width, v.height = width, height
	v.sized = true
	v.settleTo = paging.NoIndex

	// Keep the selected page aligned; page width changed, so offsets are recomputed.
	sel, _ := v.coord.Selected()
	v.viewport.jump(float64(sel * width))
	if v.inFlight != nil {
		v.viewport.target = float64(v.inFlight.To * width)
	}
	v.jumpBar = true
	v.record(v.coord.ViewportResized(float64(width)))
	v.jumpBar = false

	ch := v.layout.ContentHeight(height)
	for _, p := range v.pages {
		if s, ok := p.Content.(Sizer); ok {
			s.SetSize(width, ch)
		}
	}
}

func (v *PagerView) onFrame() {
	moving := !v.viewport.atRest()
	v.viewport.step(v.spring)
	v.bar.step(v.spring)
	if moving && v.width > 0 {
		v.track(v.viewport.pos / float64(v.width))
	}
	if !v.viewport.atRest() {
		return
	}
	if req := v.inFlight; req != nil {
		v.inFlight = nil
		v.record(v.coord.TransitionCompleted(v.pageAt()))
		return
	}
	if page := v.settleTo; page != paging.NoIndex {
		v.settleTo = paging.NoIndex
		v.record(v.coord.ViewportSettled(page))
	}
}

// track reports live scroll progress; the coordinator decides whether the indicator follows.
func (v *PagerView) track(fractionalPage float64) {
	v.jumpBar = true
	v.record(v.coord.ViewportScrolled(fractionalPage))
	v.jumpBar = false
}

func (v *PagerView) drag(pages float64) tea.Cmd {
	if !v.sized || v.width == 0 {
		return nil
	}
	v.endEditing()
	if v.inFlight != nil {
		// The user grabbed the viewport mid-animation: abandon the request where it is.
		v.inFlight = nil
		v.record(v.coord.TransitionCancelled(v.pageAt()))
	}
	last := float64((len(v.pages) - 1) * v.width)
	v.viewport.jump(math.Max(0, math.Min(v.viewport.pos+pages*float64(v.width), last)))
	v.settleTo = paging.NoIndex
	v.track(v.viewport.pos / float64(v.width))
	v.dragGen++
	return settleCmd(v.anim.SettleDelay, v.dragGen)
}

// endEditing blurs the shown page's input and returns focus to the tab strip.
func (v *PagerView) endEditing() {
	if v.focus.Is(PanelContent) {
		v.focus.SetFocus(PanelTabs)
		return
	}
	if p := v.selectedPage(); p != nil {
		p.EndEditing()
	}
}

func (v *PagerView) focusChanged(from, to string) {
	p := v.selectedPage()
	if p == nil {
		return
	}
	switch {
	case to == PanelContent:
		p.BeginEditing()
	case from == PanelContent:
		p.EndEditing()
	}
}

func (v *PagerView) selectedPage() *Page {
	if v.coord == nil {
		return nil
	}
	sel, ok := v.coord.Selected()
	if !ok {
		return nil
	}
	return v.pages[sel]
}

func (v *PagerView) settle(gen int) {
	if gen != v.dragGen || !v.sized || v.inFlight != nil {
		return
	}
	page := v.pageAt()
	v.settleTo = page
	v.viewport.target = float64(page * v.width)
}

func (v *PagerView) step(delta int) {
	next := v.target() + delta
	if next < 0 || next >= len(v.pages) {
		return
	}
	v.record(v.coord.TabTapped(next))
}

// target is the page the user is heading to: the queued one, else the in-flight one,
// else the committed one.
func (v *PagerView) target() int {
	if p, ok := v.coord.Pending(); ok {
		return p
	}
	if req, ok := v.coord.InFlight(); ok {
		return req.To
	}
	sel, _ := v.coord.Selected()
	return sel
}

func (v *PagerView) pageAt() int {
	if v.width == 0 {
		sel, _ := v.coord.Selected()
		return sel
	}
	page := int(math.Round(v.viewport.pos / float64(v.width)))
	return max(0, min(page, len(v.pages)-1))
}

func (v *PagerView) mouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return v.drag(-dragStep)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return v.drag(dragStep)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}
	switch v.layout.PanelAt(msg.X, msg.Y, v.width, v.height) {
	case PanelTabs:
		v.focus.SetFocus(PanelTabs)
		if i := textutil.CellAt(msg.X, v.width, len(v.pages)); i >= 0 {
			v.record(v.coord.TabTapped(i))
		}
	case PanelContent:
		v.focus.SetFocus(PanelContent)
	}
	return nil
}

func (v *PagerView) updateContent(msg tea.Msg) tea.Cmd {
	p := v.selectedPage()
	if p == nil || p.Content == nil {
		return nil
	}
	content, cmd := p.Content.Update(msg)
	p.Content = content
	return cmd
}

func (v *PagerView) pageCmds() []tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range v.pages {
		cmds = append(cmds, p.takeCmds()...)
	}
	return cmds
}

func (v *PagerView) schedule() tea.Cmd {
	if v.ticking || !v.Animating() {
		return nil
	}
	v.ticking = true
	return frameCmd(v.anim.frame())
}

func (v *PagerView) record(err error) {
	if err != nil {
		v.lastErr = err
	}
}

// View implements View.
func (v *PagerView) View() string {
	if !v.sized || v.width <= 0 {
		return ""
	}
	content := renderViewport(v.renderPage, len(v.pages), v.width, v.layout.ContentHeight(v.height), v.viewport.pos)
	return lipgloss.JoinVertical(lipgloss.Left, v.renderStrip(), content, v.renderStatus())
}

func (v *PagerView) renderPage(i int) string {
	if v.pages[i].Content == nil {
		return ""
	}
	return v.pages[i].Content.View()
}

// highlighted is the tab drawn as selected: the in-flight target while animating.
func (v *PagerView) highlighted() int {
	if v.inFlight != nil {
		return v.inFlight.To
	}
	sel, _ := v.coord.Selected()
	return sel
}

func (v *PagerView) renderStrip() string {
	var labels strings.Builder
	hl := v.highlighted()
	for i, w := range textutil.Cells(v.width, len(v.pages)) {
		style := v.styles.Tab
		if i == hl {
			style = v.styles.Selected
		}
		labels.WriteString(style.Render(textutil.Center(v.pages[i].Title, w)))
	}

	rows := []string{labels.String()}
	indicatorRows := max(v.theme.IndicatorHeight, 1)
	blank := v.styles.Strip.Render(strings.Repeat(" ", v.width))
	for range v.layout.StripHeight - 1 - indicatorRows {
		rows = append(rows, blank)
	}
	bar := v.renderIndicator()
	for range indicatorRows {
		rows = append(rows, bar)
	}
	return strings.Join(rows, "\n")
}

func (v *PagerView) renderIndicator() string {
	offset := max(0, min(int(math.Round(v.bar.pos)), v.width))
	width := max(0, min(int(math.Round(v.barWidth)), v.width-offset))
	rest := v.width - offset - width
	return v.styles.Strip.Render(strings.Repeat(" ", offset)) +
		v.styles.Indicator.Render(strings.Repeat(indicatorGlyph, width)) +
		v.styles.Strip.Render(strings.Repeat(" ", rest))
}

func (v *PagerView) renderStatus() string {
	line := Styles.Focus.Render("["+v.focus.Current+"]") + " " + RenderKeybindHelp(v.width, v.activeKeys())
	if v.lastErr != nil {
		line = Styles.Error.Render(v.lastErr.Error()) + "  " + line
	}
	return ansi.Truncate(line, v.width, textutil.TruncateEllipsis)
}

// HelpBindings returns the bindings active for the focused panel.
func (v *PagerView) HelpBindings() []key.Binding {
	return v.activeKeys().Bindings()
}
