// Package extension defines the per-service classification contract and the
// registry that maps service identifiers to their extension.
//
// An Extension inspects a normalized request and decides the span kind, the
// resource attributes and whether the call is incoming work. Extensions must
// be stateless: the same request and configuration always produce the same
// RequestMetadata, and concurrent calls to the same service share the
// extension value without coordination.
package extension

import (
	"context"

	"github.com/renovate-bot/awsinstr-go"
	"github.com/renovate-bot/awsinstr-go/request"
	"github.com/renovate-bot/awsinstr-go/tracing"
)

// RequestMetadata is the classification of a single call.
type RequestMetadata struct {
	// IsIncoming is true when the call is the point where the process
	// receives work, such as dequeuing messages. Incoming calls start a new
	// trace linked to the ambient span instead of continuing it.
	IsIncoming bool

	SpanKind       tracing.SpanKind
	SpanAttributes awsinstr.Attributes
}

// DefaultRequestMetadata returns the classification used for services
// without an extension, and in place of a failed hook: an outgoing client
// call without attributes.
func DefaultRequestMetadata() RequestMetadata {
	return RequestMetadata{
		SpanKind: tracing.SpanKindClient,
	}
}

// Response is the outcome of the underlying call, passed to response hooks.
type Response struct {
	// Output is the normalized operation output. It is empty when the call
	// failed.
	Output request.Document

	// Err is the error returned by the underlying call, if any.
	Err error

	// RequestID is the service assigned request id, if known.
	RequestID string
}

// Extension classifies requests for a single service.
type Extension interface {
	// RequestPreSpanHook returns the classification for req. It must not
	// modify req or cfg, and must be deterministic for a given input.
	RequestPreSpanHook(req request.Normalized, cfg Config) RequestMetadata
}

// ResponseHooker is implemented by extensions that record attributes from
// the operation's response before the span ends.
type ResponseHooker interface {
	ResponseHook(req request.Normalized, resp Response, span tracing.Span, cfg Config)
}

// PostSpanHooker is implemented by extensions that need to observe the
// request after its span has started, with the span active on ctx.
type PostSpanHooker interface {
	RequestPostSpanHook(ctx context.Context, req request.Normalized)
}

// ExtensionFunc adapts a function to the Extension interface.
type ExtensionFunc func(req request.Normalized, cfg Config) RequestMetadata

// RequestPreSpanHook calls fn.
func (fn ExtensionFunc) RequestPreSpanHook(req request.Normalized, cfg Config) RequestMetadata {
	return fn(req, cfg)
}

type defaultExtension struct{}

// Default returns the extension used for unregistered services. It
// classifies every call with DefaultRequestMetadata.
func Default() Extension {
	return defaultExtension{}
}

func (defaultExtension) RequestPreSpanHook(request.Normalized, Config) RequestMetadata {
	return DefaultRequestMetadata()
}
