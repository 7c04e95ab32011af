package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleNotifier_FirstCommitShowsOnly(t *testing.T) {
	pages, log := newPages(3)
	n := NewLifecycleNotifier(pages)

	n.IndexCommitted(NoIndex, 1)
	assert.Equal(t, []string{"show(1)"}, log.calls)
	assert.Equal(t, 1, n.Shown())
}

func TestLifecycleNotifier_HideThenShow(t *testing.T) {
	pages, log := newPages(3)
	n := NewLifecycleNotifier(pages)
	n.IndexCommitted(NoIndex, 0)
	log.calls = nil

	n.IndexCommitted(0, 2)
	assert.Equal(t, []string{"hide(0)", "show(2)"}, log.calls)
}

func TestLifecycleNotifier_NoOpCommit(t *testing.T) {
	pages, log := newPages(2)
	n := NewLifecycleNotifier(pages)
	n.IndexCommitted(NoIndex, 1)
	log.calls = nil

	n.IndexCommitted(1, 1)
	assert.Empty(t, log.calls)
}

func TestLifecycleNotifier_HideOnlyWhenShown(t *testing.T) {
	pages, log := newPages(3)
	n := NewLifecycleNotifier(pages)

	// Page 0 was never shown, so there is nothing to hide.
	n.IndexCommitted(0, 2)
	assert.Equal(t, []string{"show(2)"}, log.calls)
}

func TestLifecycleNotifier_RecoversPanickingHook(t *testing.T) {
	log := &hookLog{}
	pages := []Page{
		&recordingPage{index: 0, log: log, panic: true},
		&recordingPage{index: 1, log: log},
	}
	n := NewLifecycleNotifier(pages)

	assert.NotPanics(t, func() { n.IndexCommitted(NoIndex, 0) })
	assert.Equal(t, 0, n.Shown())
	n.IndexCommitted(0, 1)
	assert.Equal(t, []string{"show(0)", "hide(0)", "show(1)"}, log.calls)
}
