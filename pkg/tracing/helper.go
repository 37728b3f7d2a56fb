package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/powledger/powledger"

// StartTracing starts a span when tracing is enabled. The returned span is nil otherwise.
func StartTracing(ctx context.Context, spanName string, tracingEnabled bool, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	if !tracingEnabled {
		return ctx, nil
	}

	var opts []trace.SpanStartOption
	if len(attributes) > 0 {
		opts = append(opts, trace.WithAttributes(attributes...))
	}

	return otel.Tracer(instrumentationName).Start(ctx, spanName, opts...)
}

// EndTracing records err on span and ends it. A nil span is ignored.
func EndTracing(span trace.Span, err error) {
	if span == nil {
		return
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
