// Package tracing defines the tracing boundary the instrumentation writes
// spans to. Concrete tracing SDKs are plugged in through a TracerProvider,
// see the oteltracing package for OpenTelemetry.
package tracing

import (
	"context"

	"github.com/renovate-bot/awsinstr-go"
)

// SpanKind indicates the nature of the work being performed.
type SpanKind int

// Enumeration of SpanKind.
const (
	SpanKindInternal SpanKind = iota
	SpanKindClient
	SpanKindServer
	SpanKindProducer
	SpanKindConsumer
)

// String returns the lower case name of the span kind.
func (k SpanKind) String() string {
	switch k {
	case SpanKindInternal:
		return "internal"
	case SpanKindClient:
		return "client"
	case SpanKindServer:
		return "server"
	case SpanKindProducer:
		return "producer"
	case SpanKindConsumer:
		return "consumer"
	default:
		return "unknown"
	}
}

// SpanStatus records the "success" state of an observed span.
type SpanStatus int

// Enumeration of SpanStatus.
const (
	SpanStatusUnset SpanStatus = iota
	SpanStatusOK
	SpanStatusError
)

// TracerProvider is the entry point for creating client traces.
type TracerProvider interface {
	Tracer(scope string, opts ...TracerOption) Tracer
}

// TracerOption applies configuration to a tracer.
type TracerOption func(o *TracerOptions)

// TracerOptions represent configuration for tracers.
type TracerOptions struct {
	Version string
}

// Tracer is the entry point for creating observed client Spans.
//
// Spans created by tracers propagate by existing on the Context. Consumers of
// the API can use [GetSpan] to pull the active Span from a Context.
//
// Creation of child Spans is implicit through Context persistence. If
// CreateSpan is called with a Context that holds a Span, the result will be a
// child of that Span, unless SpanOptions.NewRoot is set.
type Tracer interface {
	StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// SpanOption applies configuration to a span.
type SpanOption func(o *SpanOptions)

// SpanOptions represent configuration for span events.
type SpanOptions struct {
	Kind       SpanKind
	Attributes awsinstr.Attributes

	// NewRoot starts the span as the root of a new trace. The span active on
	// the Context, if any, is recorded as a link rather than a parent.
	NewRoot bool
}

// Span records a conceptually individual unit of work that takes place in a
// client operation.
type Span interface {
	Name() string
	Context() SpanContext
	SetProperty(k string, v interface{})
	SetStatus(status SpanStatus)
	RecordError(err error)
	End()
}

// SpanContext uniquely identifies a Span.
type SpanContext struct {
	TraceID  string
	SpanID   string
	IsRemote bool
}

// IsValid is true when a span has nonzero trace and span IDs.
func (ctx *SpanContext) IsValid() bool {
	return len(ctx.TraceID) != 0 && len(ctx.SpanID) != 0
}

type spanKey struct{}

// GetSpan returns the active trace Span on the context.
//
// The boolean in the return indicates whether a Span was actually in the
// context, but a no-op implementation will be returned if not, so callers
// can generally disregard the boolean unless they wish to explicitly confirm
// presence/absence of a Span.
func GetSpan(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(spanKey{}).(Span)
	if !ok {
		return nopSpan{}, false
	}
	return span, true
}

// WithSpan sets the active trace Span on the context.
func WithSpan(parent context.Context, span Span) context.Context {
	return context.WithValue(parent, spanKey{}, span)
}
