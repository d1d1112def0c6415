package ports

import "context"

// Span represents an in-flight traced operation.
type Span interface {
	// End completes the span.
	End()
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// Tracer creates spans around batch flushes and dispatch attempts. The
// default implementation is a no-op; an OTel-backed tracer is swapped in
// when telemetry is enabled.
type Tracer interface {
	// Start creates a new span with the given name.
	Start(ctx context.Context, name string) (context.Context, Span)
}
