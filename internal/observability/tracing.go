package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/cory-johannsen/glyphspeak/internal/config"
)

// TracerProvider owns the process tracer provider when tracing is enabled.
type TracerProvider struct {
	provider *sdktrace.TracerProvider
}

// InitTracing installs an OTLP/HTTP exporting tracer provider as the global
// provider. When tracing is disabled the global no-op provider is left alone.
//
// Precondition: cfg has passed config validation.
// Postcondition: Returns a TracerProvider whose Shutdown flushes pending spans.
func InitTracing(ctx context.Context, cfg config.TracingConfig) (*TracerProvider, error) {
	if !cfg.Enabled {
		return &TracerProvider{}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
		otlptracehttp.WithCompression(otlptracehttp.GzipCompression),
		otlptracehttp.WithTimeout(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	tp := NewTracerProvider(cfg, sdktrace.WithBatcher(exporter,
		sdktrace.WithBatchTimeout(5*time.Second),
	))
	otel.SetTracerProvider(tp)
	return &TracerProvider{provider: tp}, nil
}

// NewTracerProvider builds an SDK provider carrying the service resource and
// the configured sampler, exporting through opts.
func NewTracerProvider(cfg config.TracingConfig, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	res := resource.NewWithAttributes("",
		attribute.String("service.name", cfg.ServiceName),
	)
	opts = append(opts,
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	return sdktrace.NewTracerProvider(opts...)
}

// Enabled reports whether spans are exported.
func (tp *TracerProvider) Enabled() bool {
	return tp.provider != nil
}

// Shutdown flushes and stops the exporter.
func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	if tp.provider == nil {
		return nil
	}
	return tp.provider.Shutdown(ctx)
}
