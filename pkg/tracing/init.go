package tracing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const shutdownTimeout = 5 * time.Second

var ErrDialAddrEmpty = errors.New("tracing enabled, but tracing address empty")

// Sampler returns a sampler for sample percent of traces. Values outside
// 1..99 sample everything.
func Sampler(sample int) trace.Sampler {
	if sample > 0 && sample < 100 {
		return trace.TraceIDRatioBased(float64(sample) / 100)
	}

	return trace.AlwaysSample()
}

func NewTraceProvider(ctx context.Context, serviceName, serviceVersion string, sample int, opts ...otlptracegrpc.Option) (*trace.TracerProvider, *otlptrace.Exporter, error) {
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		)),
		trace.WithBatcher(exporter),
		trace.WithSampler(Sampler(sample)),
	)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetTracerProvider(tp)

	return tp, exporter, nil
}

// Enable installs a global OTLP/gRPC tracer provider and returns its cleanup.
func Enable(logger *slog.Logger, serviceName, serviceVersion, dialAddr string, sample int) (func(), error) {
	if dialAddr == "" {
		return nil, ErrDialAddrEmpty
	}

	tp, exporter, err := NewTraceProvider(context.Background(), serviceName, serviceVersion, sample, otlptracegrpc.WithEndpointURL(dialAddr), otlptracegrpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("failed to create trace provider: %v", err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := tp.Shutdown(ctx)
		if err != nil {
			logger.Error("Failed to shutdown tracing provider", slog.String("err", err.Error()))
		}

		err = exporter.Shutdown(ctx)
		if err != nil {
			logger.Error("Failed to shutdown exporter", slog.String("err", err.Error()))
		}
	}

	return cleanup, nil
}
