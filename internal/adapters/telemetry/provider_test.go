package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/edgetabs/internal/adapters/telemetry"
	"go.trai.ch/edgetabs/internal/core/domain"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	tracer := telemetry.NewOTelTracer(tp, "test-tracer")
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })
	return sr, tracer
}

func TestOTelTracer_Attributes(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "window.resolve")
	span.SetAttribute("window", domain.WindowHandle(0x10).String())
	span.SetAttribute("layout", domain.LayoutVertical)
	span.SetAttribute("tabs", 4)
	span.SetAttribute("healed", true)
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("titles", []string{"a", "b"})
	span.SetAttribute("other", struct{ N int }{N: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "window.resolve", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("window", "0x10"),
		attribute.String("layout", "vertical"),
		attribute.Int("tabs", 4),
		attribute.Bool("healed", true),
		attribute.Float64("ratio", 0.5),
		attribute.StringSlice("titles", []string{"a", "b"}),
		attribute.String("other", "{1}"),
	}, spans[0].Attributes())
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "results.compute")
	span.RecordError(errors.New("enumeration failed"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "enumeration failed", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestOTelTracer_Nesting(t *testing.T) {
	sr, tracer := setupRecorder(t)

	ctx, parent := tracer.Start(context.Background(), "query")
	_, child := tracer.Start(ctx, "results.compute")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestOTelTracer_ShutdownWithoutSDK(t *testing.T) {
	tracer := telemetry.NewOTelTracer(noop.NewTracerProvider(), "noop")
	_, span := tracer.Start(context.Background(), "query")
	span.End()
	assert.NoError(t, tracer.Shutdown(context.Background()))
}
