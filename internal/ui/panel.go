package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel is a bounded region of the screen.
type Panel struct {
	ID     string
	Bounds BoundsFunc
}

// Contains reports whether cell (x, y) lies inside the panel for a width x height screen.
func (p Panel) Contains(x, y, width, height int) bool {
	px, py, pw, ph := p.Bounds(width, height)
	return x >= px && x < px+pw && y >= py && y < py+ph
}
