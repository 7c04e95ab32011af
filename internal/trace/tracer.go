// Package trace records one OpenTelemetry span per page transition.
package trace

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"tabpager/internal/paging"
)

// InstrumentationName is the tracer name used for transition spans.
const InstrumentationName = "tabpager/paging"

// TransitionTracer opens a span when a transition is requested and ends it on commit.
// Dropped events become span events on whichever transition is open.
type TransitionTracer struct {
	tracer oteltrace.Tracer
	open   map[uuid.UUID]oteltrace.Span
	last   uuid.UUID
}

// Ensure TransitionTracer implements paging.Observer.
var _ paging.Observer = (*TransitionTracer)(nil)

// NewTransitionTracer creates a tracer from provider.
func NewTransitionTracer(provider oteltrace.TracerProvider) *TransitionTracer {
	return &TransitionTracer{
		tracer: provider.Tracer(InstrumentationName),
		open:   make(map[uuid.UUID]oteltrace.Span),
	}
}

func (t *TransitionTracer) OnTransitionRequested(req paging.TransitionRequest) {
	_, span := t.tracer.Start(context.Background(), "tabpager.transition",
		oteltrace.WithAttributes(
			attribute.String("tabpager.request.id", req.ID.String()),
			attribute.Int("tabpager.from", req.From),
			attribute.Int("tabpager.to", req.To),
			attribute.Bool("tabpager.animated", req.Animated),
		),
	)
	t.open[req.ID] = span
	t.last = req.ID
}

func (t *TransitionTracer) OnCommitted(c paging.Commit) {
	span, ok := t.open[c.RequestID]
	if !ok {
		return
	}
	span.SetAttributes(
		attribute.Int("tabpager.reached", c.Next),
		attribute.String("tabpager.source", string(c.Source)),
	)
	span.End()
	delete(t.open, c.RequestID)
}

func (t *TransitionTracer) OnDropped(ev paging.Event, reason error) {
	span, ok := t.open[t.last]
	if !ok {
		return
	}
	span.AddEvent("event dropped", oteltrace.WithAttributes(
		attribute.String("tabpager.event", ev.String()),
		attribute.String("tabpager.reason", reason.Error()),
	))
}

// Open returns the number of spans awaiting a commit.
func (t *TransitionTracer) Open() int {
	return len(t.open)
}
