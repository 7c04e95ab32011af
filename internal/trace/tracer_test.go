package trace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"tabpager/internal/paging"
)

type nopRenderer struct{}

func (nopRenderer) RequestTransition(paging.TransitionRequest) {}
func (nopRenderer) UpdateIndicator(paging.Indicator)           {}

type stubPage string

func (p stubPage) Label() string { return string(p) }
func (stubPage) Show()           {}
func (stubPage) Hide()           {}

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return rec, tp
}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestTransitionTracer_SpanPerTransition(t *testing.T) {
	rec, tp := newRecorder(t)
	tracer := NewTransitionTracer(tp)
	c := paging.New(nopRenderer{}, paging.WithObserver(tracer))
	pages := []paging.Page{stubPage("a"), stubPage("b"), stubPage("c")}

	require.NoError(t, c.Configure(pages, 0, paging.Config{HandlesViewportExternally: true}))
	require.NoError(t, c.TabTapped(2))
	assert.Equal(t, 1, tracer.Open(), "animated request stays open until completion")
	require.NoError(t, c.ViewportScrolled(0.5))
	require.NoError(t, c.TransitionCompleted(2))
	assert.Equal(t, 0, tracer.Open())

	ended := rec.Ended()
	require.Len(t, ended, 2)
	tap := ended[1]
	assert.Equal(t, "tabpager.transition", tap.Name())
	attrs := attrMap(tap.Attributes())
	assert.Equal(t, int64(0), attrs["tabpager.from"].AsInt64())
	assert.Equal(t, int64(2), attrs["tabpager.to"].AsInt64())
	assert.True(t, attrs["tabpager.animated"].AsBool())
	assert.Equal(t, "tap", attrs["tabpager.source"].AsString())
	require.Len(t, tap.Events(), 1)
	assert.Equal(t, "event dropped", tap.Events()[0].Name)
}

func TestTransitionTracer_DropWithoutOpenSpan(t *testing.T) {
	_, tp := newRecorder(t)
	tracer := NewTransitionTracer(tp)
	assert.NotPanics(t, func() {
		tracer.OnDropped(paging.TabTapped{Index: 3}, paging.ErrInvalidIndex)
		tracer.OnCommitted(paging.Commit{Next: 1})
	})
}

func TestNewOTLPProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	tp, err := NewOTLPProvider(context.Background())
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestNewOTLPProvider_Enabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	t.Setenv("OTEL_SERVICE_NAME", "tabpager-test")
	tp, err := NewOTLPProvider(context.Background())
	require.NoError(t, err)
	require.NotNil(t, tp)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, tp.Shutdown(ctx))
}
