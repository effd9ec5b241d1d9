// Package telemetry sets up OpenTelemetry tracing of external commands and polling loops.
package telemetry

import (
	"context"
	"runtime"
	"time"

	"github.com/nais/boshprobe/pkg/version"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	otrace "go.opentelemetry.io/otel/trace"
)

// Spans are exported in batches at most this far apart.
const batchTimeout = 5 * time.Second

const instrumentationName = "github.com/nais/boshprobe"

// Singleton instance of the default tracer provider.
// Access the tracer with `Tracer()`.
var tracer *trace.TracerProvider

// Initialize the OpenTelemetry library.
//
// You MUST call `Shutdown()` on the tracer provider before exiting,
// lest traces are not sent to the collector.
func New(ctx context.Context, serviceName string, collectorEndpointURL string) (*trace.TracerProvider, error) {
	prop := newPropagator()
	otel.SetTextMapPropagator(prop)

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.OSName(runtime.GOOS),
		semconv.ServiceVersion(version.Version()),
	)

	tracerProvider, err := newTraceProvider(ctx, res, collectorEndpointURL)
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(tracerProvider)

	tracer = tracerProvider

	return tracerProvider, nil
}

// Returns the top-level tracer.
//
// Library code calls this unconditionally, so when `New()` has not been called
// the globally registered provider is used. Unless someone registered one,
// that is a no-op provider and spans are discarded.
func Tracer() otrace.Tracer {
	if tracer == nil {
		return otel.Tracer(instrumentationName)
	}
	return tracer.Tracer(instrumentationName)
}

func CommandAttributes(commandID, commandLine string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("command.id", commandID),
		attribute.String("command.line", commandLine),
	}
}

func BoshAttributes(deployment, instance string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("bosh.deployment", deployment),
	}
	if len(instance) > 0 {
		attrs = append(attrs, attribute.String("bosh.instance", instance))
	}
	return attrs
}

func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newTraceProvider(ctx context.Context, res *resource.Resource, endpointURL string) (*trace.TracerProvider, error) {
	traceExporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpointURL))
	if err != nil {
		return nil, err
	}

	traceProvider := trace.NewTracerProvider(
		trace.WithBatcher(traceExporter,
			trace.WithBatchTimeout(batchTimeout)),
		trace.WithResource(res),
	)

	return traceProvider, nil
}
