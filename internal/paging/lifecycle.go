package paging

// LifecycleNotifier fires Show/Hide on pages as the committed index changes.
// It remembers which page is shown so no-op commits never repeat a hook.
type LifecycleNotifier struct {
	pages []Page
	shown int
}

// NewLifecycleNotifier creates a notifier with no page shown.
func NewLifecycleNotifier(pages []Page) *LifecycleNotifier {
	return &LifecycleNotifier{pages: pages, shown: NoIndex}
}

// IndexCommitted hides previous when it differs from next and is shown, then shows
// next unless it already is.
func (n *LifecycleNotifier) IndexCommitted(previous, next int) {
	if previous != next && previous == n.shown && n.valid(previous) {
		page := n.pages[previous]
		safeCall(page.Hide)
		n.shown = NoIndex
	}
	if next != n.shown && n.valid(next) {
		page := n.pages[next]
		safeCall(page.Show)
		n.shown = next
	}
}

// Shown returns the index of the page currently shown, or NoIndex.
func (n *LifecycleNotifier) Shown() int {
	return n.shown
}

func (n *LifecycleNotifier) valid(i int) bool {
	return i >= 0 && i < len(n.pages)
}
