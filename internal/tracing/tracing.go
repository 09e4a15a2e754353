// Package tracing wires the OpenTelemetry tracer provider. When no OTLP
// endpoint is configured the returned tracer is a no-op, so handlers can
// always start spans unconditionally.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Tracing owns the tracer provider lifecycle.
type Tracing struct {
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
}

// New sets up tracing for the given service. An empty endpoint disables
// span export entirely.
func New(ctx context.Context, serviceName, endpoint string) (*Tracing, error) {
	if endpoint == "" {
		return &Tracing{tracer: noop.NewTracerProvider().Tracer(serviceName)}, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)

	return &Tracing{
		tracer:   provider.Tracer(serviceName),
		provider: provider,
	}, nil
}

// Tracer returns the tracer handlers should start spans from.
func (t *Tracing) Tracer() trace.Tracer {
	return t.tracer
}

// Shutdown flushes any buffered spans.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}

	return t.provider.Shutdown(ctx)
}
