// Package tracing installs the process-wide OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ErrUnknownExporter is returned for an unsupported TRACE_EXPORTER value
var ErrUnknownExporter = errors.New("unknown trace exporter")

// ShutdownFunc flushes and stops the tracer provider
type ShutdownFunc func(ctx context.Context) error

// Setup installs a tracer provider for exporter ("none" or "stdout"). With
// "none" the global no-op provider stays in place.
func Setup(serviceName, exporter string) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	var spanExporter sdktrace.SpanExporter
	switch exporter {
	case "", "none":
		return noop, nil
	case "stdout":
		var err error
		spanExporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return noop, fmt.Errorf("create exporter: %w", err)
		}
	default:
		return noop, fmt.Errorf("%w: %s", ErrUnknownExporter, exporter)
	}

	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}
