package paging

import "fmt"

// NoIndex marks an absent index (nothing committed yet, or no origin page).
const NoIndex = -1

// SelectionState holds the committed page index. The Coordinator is its only writer.
type SelectionState struct {
	selected  int
	pageCount int
}

// NewSelectionState returns an empty selection over pageCount pages.
func NewSelectionState(pageCount int) (*SelectionState, error) {
	if pageCount <= 0 {
		return nil, fmt.Errorf("selection over %d pages: %w", pageCount, ErrInvalidPageCount)
	}
	return &SelectionState{selected: NoIndex, pageCount: pageCount}, nil
}

// Set commits index. Out-of-range values leave the state untouched.
func (s *SelectionState) Set(index int) error {
	if !s.Contains(index) {
		return fmt.Errorf("select %d of %d: %w", index, s.pageCount, ErrInvalidIndex)
	}
	s.selected = index
	return nil
}

// Current returns the committed index; ok is false before the first commit.
func (s *SelectionState) Current() (index int, ok bool) {
	if s.selected == NoIndex {
		return NoIndex, false
	}
	return s.selected, true
}

// PageCount returns the number of pages.
func (s *SelectionState) PageCount() int {
	return s.pageCount
}

// Contains reports whether index is a valid page index.
func (s *SelectionState) Contains(index int) bool {
	return index >= 0 && index < s.pageCount
}
