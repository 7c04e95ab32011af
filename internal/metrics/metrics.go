// Package metrics exposes coordinator activity as Prometheus metrics.
//
// Metrics:
//   - tabpager_transitions_requested_total{animated} (Counter): requests issued to the Renderer
//   - tabpager_commits_total{source} (Counter): committed selections by cause
//   - tabpager_events_dropped_total{event} (Counter): events dropped or suppressed
//   - tabpager_selected_index (Gauge): the committed page index
//   - tabpager_transition_duration_seconds (Histogram): request to commit latency for animated requests
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tabpager/internal/paging"
)

// Collector records coordinator activity on its own registry.
type Collector struct {
	registry *prometheus.Registry
	now      func() time.Time
	started  map[uuid.UUID]time.Time

	requested *prometheus.CounterVec
	commits   *prometheus.CounterVec
	dropped   *prometheus.CounterVec
	selected  prometheus.Gauge
	duration  prometheus.Histogram
}

// Ensure Collector implements paging.Observer.
var _ paging.Observer = (*Collector)(nil)

// NewCollector creates a collector with a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		now:      time.Now,
		started:  make(map[uuid.UUID]time.Time),
		requested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tabpager_transitions_requested_total",
			Help: "Transition requests issued to the renderer",
		}, []string{"animated"}),
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tabpager_commits_total",
			Help: "Committed selection changes by source",
		}, []string{"source"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tabpager_events_dropped_total",
			Help: "Renderer events dropped or suppressed",
		}, []string{"event"}),
		selected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tabpager_selected_index",
			Help: "Currently committed page index",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tabpager_transition_duration_seconds",
			Help:    "Time from an animated request to its commit",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2},
		}),
	}
	c.registry.MustRegister(c.requested, c.commits, c.dropped, c.selected, c.duration)
	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) OnTransitionRequested(req paging.TransitionRequest) {
	c.requested.WithLabelValues(strconv.FormatBool(req.Animated)).Inc()
	if req.Animated {
		c.started[req.ID] = c.now()
	}
}

func (c *Collector) OnCommitted(commit paging.Commit) {
	c.commits.WithLabelValues(string(commit.Source)).Inc()
	c.selected.Set(float64(commit.Next))
	if start, ok := c.started[commit.RequestID]; ok {
		c.duration.Observe(c.now().Sub(start).Seconds())
		delete(c.started, commit.RequestID)
	}
}

func (c *Collector) OnDropped(ev paging.Event, _ error) {
	c.dropped.WithLabelValues(eventName(ev)).Inc()
}

// eventName strips the arguments from an event's String form: "tab_tapped(3)" -> "tab_tapped".
func eventName(ev paging.Event) string {
	s := ev.String()
	if i := strings.IndexByte(s, '('); i >= 0 {
		return s[:i]
	}
	return s
}
