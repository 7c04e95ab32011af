// Package textutil provides unicode-aware text and column utilities for the tab strip.
package textutil

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= VisualWidth(TruncateEllipsis) {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// Center pads s on both sides to width columns; the odd column goes right.
func Center(s string, width int) string {
	s = Truncate(s, width)
	gap := width - VisualWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return runewidth.FillLeft("", left) + s + runewidth.FillRight("", gap-left)
}

// Cells splits total columns into n integer cells whose widths sum to total.
// Cell boundaries are the rounded multiples of total/n, so cell i starts at
// round(i*total/n).
func Cells(total, n int) []int {
	if n <= 0 || total <= 0 {
		return nil
	}
	cells := make([]int, n)
	prev := 0
	for i := range n {
		next := int(math.Round(float64((i+1)*total) / float64(n)))
		cells[i] = next - prev
		prev = next
	}
	return cells
}

// CellAt returns the index of the cell containing column x, or -1 when outside.
func CellAt(x, total, n int) int {
	if x < 0 || x >= total || n <= 0 {
		return -1
	}
	start := 0
	for i, w := range Cells(total, n) {
		if x < start+w {
			return i
		}
		start += w
	}
	return -1
}
