package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"userapp/internal/core/port"
)

// NoOpTelemetry implements Telemetry with no operations - useful for testing or when telemetry is disabled
type NoOpTelemetry struct{}

func NewNoOpTelemetry() port.Telemetry {
	return &NoOpTelemetry{}
}

// A span taken from an empty context is a non-recording span, so ending it
// never touches the caller's span.
func (p *NoOpTelemetry) StartRepositorySpan(ctx context.Context, operation string, entity string, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	return ctx, trace.SpanFromContext(context.Background())
}

func (p *NoOpTelemetry) StartServiceSpan(ctx context.Context, service string, operation string, attrs []attribute.KeyValue) (context.Context, trace.Span) {
	return ctx, trace.SpanFromContext(context.Background())
}

func (p *NoOpTelemetry) RecordRepositoryOperation(ctx context.Context, operation string, entity string, duration time.Duration, err error) {
	// No operation
}

func (p *NoOpTelemetry) RecordServiceOperation(ctx context.Context, service string, operation string, duration time.Duration, err error) {
	// No operation
}
