package oteltracing

import (
	"context"

	"github.com/renovate-bot/awsinstr-go/tracing"
	otelcodes "go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Adapt wraps a concrete OpenTelemetry SDK TracerProvider to support the
// tracing boundary used by the dispatcher.
func Adapt(provider oteltrace.TracerProvider) tracing.TracerProvider {
	return &tracerProvider{provider}
}

type tracerProvider struct {
	otel oteltrace.TracerProvider
}

var _ tracing.TracerProvider = (*tracerProvider)(nil)

func (p *tracerProvider) Tracer(scope string, opts ...tracing.TracerOption) tracing.Tracer {
	var options tracing.TracerOptions
	for _, opt := range opts {
		opt(&options)
	}

	var otelOpts []oteltrace.TracerOption
	if len(options.Version) != 0 {
		otelOpts = append(otelOpts, oteltrace.WithInstrumentationVersion(options.Version))
	}
	return &tracer{otel: p.otel.Tracer(scope, otelOpts...)}
}

type tracer struct {
	otel oteltrace.Tracer
}

var _ tracing.Tracer = (*tracer)(nil)

func (t *tracer) StartSpan(ctx context.Context, name string, opts ...tracing.SpanOption) (
	context.Context, tracing.Span,
) {
	var options tracing.SpanOptions
	for _, opt := range opts {
		opt(&options)
	}

	otelOpts := []oteltrace.SpanStartOption{
		oteltrace.WithSpanKind(toOTELSpanKind(options.Kind)),
		oteltrace.WithAttributes(toOTELAttributes(options.Attributes)...),
	}
	if options.NewRoot {
		otelOpts = append(otelOpts, oteltrace.WithNewRoot())
		if parent := oteltrace.SpanContextFromContext(ctx); parent.IsValid() {
			otelOpts = append(otelOpts, oteltrace.WithLinks(oteltrace.Link{SpanContext: parent}))
		}
	}

	ctx, otelSpan := t.otel.Start(ctx, name, otelOpts...)
	s := &span{otel: otelSpan, name: name}
	return tracing.WithSpan(ctx, s), s
}

type span struct {
	otel oteltrace.Span
	name string
}

var _ tracing.Span = (*span)(nil)

func (s *span) Name() string {
	return s.name
}

func (s *span) Context() tracing.SpanContext {
	sc := s.otel.SpanContext()
	return tracing.SpanContext{
		TraceID:  sc.TraceID().String(),
		SpanID:   sc.SpanID().String(),
		IsRemote: sc.IsRemote(),
	}
}

func (s *span) SetProperty(k string, v interface{}) {
	s.otel.SetAttributes(toOTELKeyValue(k, v))
}

func (s *span) SetStatus(status tracing.SpanStatus) {
	s.otel.SetStatus(toOTELSpanStatus(status), "")
}

func (s *span) RecordError(err error) {
	if err == nil {
		return
	}
	s.otel.RecordError(err)
	s.otel.SetStatus(otelcodes.Error, err.Error())
}

func (s *span) End() {
	s.otel.End()
}

func toOTELSpanKind(v tracing.SpanKind) oteltrace.SpanKind {
	switch v {
	case tracing.SpanKindClient:
		return oteltrace.SpanKindClient
	case tracing.SpanKindServer:
		return oteltrace.SpanKindServer
	case tracing.SpanKindProducer:
		return oteltrace.SpanKindProducer
	case tracing.SpanKindConsumer:
		return oteltrace.SpanKindConsumer
	default:
		return oteltrace.SpanKindInternal
	}
}

func toOTELSpanStatus(v tracing.SpanStatus) otelcodes.Code {
	switch v {
	case tracing.SpanStatusOK:
		return otelcodes.Ok
	case tracing.SpanStatusError:
		return otelcodes.Error
	default:
		return otelcodes.Unset
	}
}
