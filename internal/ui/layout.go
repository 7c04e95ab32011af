package ui

// Panel IDs of the pager layout, also used as focus targets.
const (
	PanelTabs    = "tabs"
	PanelContent = "content"
	PanelHelp    = "help"
)

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// PagerLayout stacks the tab strip, the paged content and a one-line help bar.
type PagerLayout struct {
	StripHeight int
}

// Ensure PagerLayout implements Layout.
var _ Layout = PagerLayout{}

// Panels implements Layout.
func (l PagerLayout) Panels() []Panel {
	strip := max(l.StripHeight, 1)
	return []Panel{
		{ID: PanelTabs, Bounds: func(w, h int) (int, int, int, int) {
			return 0, 0, w, min(strip, h)
		}},
		{ID: PanelContent, Bounds: func(w, h int) (int, int, int, int) {
			return 0, strip, w, max(h-strip-1, 0)
		}},
		{ID: PanelHelp, Bounds: func(w, h int) (int, int, int, int) {
			return 0, max(h-1, 0), w, min(h, 1)
		}},
	}
}

// FocusOrder implements Layout.
func (l PagerLayout) FocusOrder() []string {
	return []string{PanelTabs, PanelContent}
}

// ContentHeight returns the rows left for page content on a screen of height rows.
func (l PagerLayout) ContentHeight(height int) int {
	return max(height-max(l.StripHeight, 1)-1, 0)
}

// PanelAt returns the ID of the panel containing (x, y), or "".
func (l PagerLayout) PanelAt(x, y, width, height int) string {
	for _, p := range l.Panels() {
		if p.Contains(x, y, width, height) {
			return p.ID
		}
	}
	return ""
}
