package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectionState_RejectsEmpty(t *testing.T) {
	_, err := NewSelectionState(0)
	require.ErrorIs(t, err, ErrInvalidPageCount)

	_, err = NewSelectionState(-3)
	require.ErrorIs(t, err, ErrInvalidPageCount)
}

func TestSelectionState_SetAndCurrent(t *testing.T) {
	s, err := NewSelectionState(3)
	require.NoError(t, err)

	idx, ok := s.Current()
	assert.False(t, ok, "nothing committed yet")
	assert.Equal(t, NoIndex, idx)

	require.NoError(t, s.Set(2))
	idx, ok = s.Current()
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestSelectionState_SetOutOfRange(t *testing.T) {
	s, err := NewSelectionState(3)
	require.NoError(t, err)
	require.NoError(t, s.Set(1))

	for _, index := range []int{-1, 3, 100} {
		err := s.Set(index)
		assert.ErrorIs(t, err, ErrInvalidIndex, "index %d", index)
	}
	idx, _ := s.Current()
	assert.Equal(t, 1, idx, "failed Set must not change the selection")
}
