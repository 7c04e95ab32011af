package ui

// TapMsg selects the tab at Index, as if it were clicked.
type TapMsg struct {
	Index int
}

// StepMsg moves the selection Delta tabs from the current target.
type StepMsg struct {
	Delta int
}

// DragMsg scrolls the viewport by Pages (fractional) page widths, as a user drag would.
type DragMsg struct {
	Pages float64
}

// FocusMsg focuses the panel with the given ID.
type FocusMsg struct {
	Panel string
}

// FocusNextMsg rotates focus between the tab strip and the content.
type FocusNextMsg struct{}
