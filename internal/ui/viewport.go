package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// block renders content into exactly width x height cells.
func block(content string, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	rendered := lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(content)
	lines := strings.Split(rendered, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w < width {
			lines[i] = l + strings.Repeat(" ", width-w)
		}
	}
	return lines[:height]
}

// renderViewport lays the pages side by side, each width columns wide, and returns the
// width x height window starting offset columns in. Only the (at most two) pages
// intersecting the window are rendered.
func renderViewport(render func(i int) string, pages, width, height int, offset float64) string {
	if pages <= 0 || width <= 0 || height <= 0 {
		return ""
	}
	off := int(math.Round(offset))
	off = max(0, min(off, (pages-1)*width))
	first, shift := off/width, off%width

	left := block(render(first), width, height)
	var right []string
	if shift > 0 && first+1 < pages {
		right = block(render(first+1), width, height)
	}

	rows := make([]string, height)
	for r := range height {
		row := ansi.Cut(left[r], shift, width)
		if right != nil {
			row += ansi.Cut(right[r], 0, shift)
		}
		rows[r] = row
	}
	return strings.Join(rows, "\n")
}
