// Package telemetry carries per-request trace ids through the context.
package telemetry

import (
	"context"

	"github.com/jrazmi/taskd/sdk/cryptids"
)

type telKey int

const (
	traceIDKey telKey = iota + 1
)

// NoTrace is reported when a context carries no trace id.
const NoTrace = "--------NOTRACE--------"

// Telemetry stamps contexts with trace ids.
type Telemetry struct{}

// NewTelemetry creates a new telemetry instance
func NewTelemetry() Telemetry {
	return Telemetry{}
}

// SetTraceID stores a freshly generated trace id in ctx.
func (t Telemetry) SetTraceID(ctx context.Context) context.Context {
	tid, err := cryptids.GenerateID()
	if err != nil {
		return context.WithValue(ctx, traceIDKey, NoTrace)
	}
	return context.WithValue(ctx, traceIDKey, tid)
}

// GetTraceID returns the trace id stored in ctx, or NoTrace.
func (t Telemetry) GetTraceID(ctx context.Context) string {
	v, ok := ctx.Value(traceIDKey).(string)
	if !ok {
		return NoTrace
	}
	return v
}

// TraceID returns the trace id stored in ctx, or "" when there is none.
// It matches logger.TraceIDFn.
func TraceID(ctx context.Context) string {
	v, _ := ctx.Value(traceIDKey).(string)
	return v
}
