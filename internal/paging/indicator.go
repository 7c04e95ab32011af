package paging

import "fmt"

// Indicator is the highlight bar geometry in strip coordinates.
type Indicator struct {
	Offset float64
	Width  float64
}

// Center returns the horizontal center of the bar.
func (i Indicator) Center() float64 {
	return i.Offset + i.Width/2
}

// Position maps a fractional page to indicator geometry:
// width = stripWidth / pageCount, offset = width * fractionalPage.
func Position(pageCount int, stripWidth, fractionalPage float64) (Indicator, error) {
	if pageCount <= 0 {
		return Indicator{}, fmt.Errorf("indicator for %d pages: %w", pageCount, ErrInvalidPageCount)
	}
	width := stripWidth / float64(pageCount)
	return Indicator{Offset: width * fractionalPage, Width: width}, nil
}

// Slot returns the resting geometry for a discrete page index.
func Slot(pageCount int, stripWidth float64, index int) (Indicator, error) {
	return Position(pageCount, stripWidth, float64(index))
}
