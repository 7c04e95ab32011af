package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Red", 10, "Red"},
		{"Overview", 5, "Over…"},
		{"Overview", 1, "…"},
		{"Overview", 0, ""},
		{"日本語", 4, "日…"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width), "%q@%d", tt.in, tt.width)
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  Red  ", Center("Red", 7))
	assert.Equal(t, " Red  ", Center("Red", 6))
	assert.Equal(t, "Re…", Center("Reddish", 3))
}

func TestCells(t *testing.T) {
	assert.Equal(t, []int{3, 4, 3}, Cells(10, 3))
	assert.Equal(t, []int{30, 30, 30}, Cells(90, 3))
	assert.Nil(t, Cells(0, 3))
	assert.Nil(t, Cells(10, 0))

	sum := 0
	for _, w := range Cells(101, 7) {
		sum += w
	}
	assert.Equal(t, 101, sum)
}

func TestCellAt(t *testing.T) {
	assert.Equal(t, 0, CellAt(0, 10, 3))
	assert.Equal(t, 0, CellAt(2, 10, 3))
	assert.Equal(t, 1, CellAt(3, 10, 3))
	assert.Equal(t, 2, CellAt(9, 10, 3))
	assert.Equal(t, -1, CellAt(10, 10, 3))
	assert.Equal(t, -1, CellAt(-1, 10, 3))
}
