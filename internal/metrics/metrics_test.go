package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabpager/internal/paging"
)

func TestCollector_CountsRequestsAndCommits(t *testing.T) {
	c := NewCollector()
	id := uuid.New()

	c.OnTransitionRequested(paging.TransitionRequest{ID: id, From: 0, To: 2, Animated: true})
	c.OnTransitionRequested(paging.TransitionRequest{ID: uuid.New(), From: 2, To: 1})
	c.OnCommitted(paging.Commit{RequestID: id, Previous: 0, Next: 2, Source: paging.SourceTap})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.requested.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requested.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.commits.WithLabelValues("tap")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.selected))
	assert.Empty(t, c.started, "commit clears the start time")
}

func TestCollector_TransitionDuration(t *testing.T) {
	c := NewCollector()
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }
	id := uuid.New()

	c.OnTransitionRequested(paging.TransitionRequest{ID: id, To: 1, Animated: true})
	c.now = func() time.Time { return base.Add(300 * time.Millisecond) }
	c.OnCommitted(paging.Commit{RequestID: id, Next: 1, Source: paging.SourceTap})

	assert.Equal(t, 1, testutil.CollectAndCount(c.duration))
}

func TestCollector_Dropped(t *testing.T) {
	c := NewCollector()
	c.OnDropped(paging.TabTapped{Index: 7}, paging.ErrInvalidIndex)
	c.OnDropped(paging.ViewportScrolled{}, paging.ErrTrackingSuppressed)
	c.OnDropped(paging.ViewportScrolled{}, paging.ErrTrackingSuppressed)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.dropped.WithLabelValues("tab_tapped")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.dropped.WithLabelValues("viewport_scrolled")))
}

func TestCollector_WithCoordinator(t *testing.T) {
	c := NewCollector()
	coord := paging.New(nopRenderer{}, paging.WithObserver(c))
	pages := []paging.Page{stubPage("a"), stubPage("b"), stubPage("c")}
	require.NoError(t, coord.Configure(pages, 0, paging.Config{StripWidth: 30}))
	require.NoError(t, coord.ViewportSettled(2))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.commits.WithLabelValues("initial")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.commits.WithLabelValues("settle")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.selected))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.OnCommitted(paging.Commit{Next: 1, Source: paging.SourceInitial})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "tabpager_selected_index 1"))
}

type nopRenderer struct{}

func (nopRenderer) RequestTransition(paging.TransitionRequest) {}
func (nopRenderer) UpdateIndicator(paging.Indicator)           {}

type stubPage string

func (p stubPage) Label() string { return string(p) }
func (stubPage) Show()           {}
func (stubPage) Hide()           {}
