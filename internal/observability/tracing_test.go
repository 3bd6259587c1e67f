package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/cory-johannsen/glyphspeak/internal/config"
)

func TestInitTracing_Disabled(t *testing.T) {
	tp, err := InitTracing(context.Background(), config.TracingConfig{})
	require.NoError(t, err)
	assert.False(t, tp.Enabled())
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestNewTracerProvider_RecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := NewTracerProvider(
		config.TracingConfig{ServiceName: "glyphspeak-test", SampleRatio: 1},
		sdktrace.WithSyncer(exporter),
	)
	defer tp.Shutdown(context.Background())

	_, span := tp.Tracer("test").Start(context.Background(), "describe.respond")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "describe.respond", spans[0].Name)

	var service string
	for _, kv := range spans[0].Resource.Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "glyphspeak-test", service)
}

func TestNewTracerProvider_ZeroRatioDropsRoots(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := NewTracerProvider(
		config.TracingConfig{ServiceName: "glyphspeak-test", SampleRatio: 0},
		sdktrace.WithSyncer(exporter),
	)
	defer tp.Shutdown(context.Background())

	_, span := tp.Tracer("test").Start(context.Background(), "dropped")
	span.End()
	assert.Empty(t, exporter.GetSpans())
}
