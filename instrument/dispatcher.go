package instrument

import (
	"context"
	"time"

	"github.com/renovate-bot/awsinstr-go"
	"github.com/renovate-bot/awsinstr-go/extension"
	"github.com/renovate-bot/awsinstr-go/extension/services"
	"github.com/renovate-bot/awsinstr-go/logging"
	"github.com/renovate-bot/awsinstr-go/middleware"
	"github.com/renovate-bot/awsinstr-go/request"
	"github.com/renovate-bot/awsinstr-go/tracing"
	"go.opentelemetry.io/otel/metric/noop"
)

// ScopeName is the instrumentation scope of the spans started by a
// Dispatcher.
const ScopeName = "github.com/renovate-bot/awsinstr-go/instrument"

// Attribute keys recorded on every span.
const (
	AttrRPCSystem   = "rpc.system"
	AttrRPCService  = "rpc.service"
	AttrRPCMethod   = "rpc.method"
	AttrCloudRegion = "cloud.region"
	AttrRequestID   = "aws.request_id"

	rpcSystem = "aws-api"
)

// Call describes an intercepted operation.
type Call struct {
	ServiceID     string
	OperationName string

	// Region is the region the operation is sent to, if known.
	Region string

	// Params is the operation's raw input.
	Params interface{}

	// RequestID, if set, is called after the invocation completes to
	// retrieve the service assigned request id.
	RequestID func() string
}

// InvokeFunc performs the underlying operation. ctx carries the call's span.
type InvokeFunc func(ctx context.Context) (interface{}, error)

// Dispatcher classifies and traces operation calls. A Dispatcher is safe for
// concurrent use; it holds no per-call state.
type Dispatcher struct {
	options Options
	tracer  tracing.Tracer
	metrics *callMetrics
}

// New returns a Dispatcher configured by optFns.
func New(optFns ...func(*Options)) *Dispatcher {
	var options Options
	for _, fn := range optFns {
		fn(&options)
	}
	options = options.Copy()

	if options.TracerProvider == nil {
		options.TracerProvider = tracing.NopTracerProvider{}
	}
	if options.MeterProvider == nil {
		options.MeterProvider = noop.NewMeterProvider()
	}
	if options.Registry == nil {
		r, err := services.NewRegistry()
		if err != nil {
			r, _ = extension.NewRegistry(nil)
		}
		options.Registry = r
	}

	return &Dispatcher{
		options: options,
		tracer:  options.TracerProvider.Tracer(ScopeName),
		metrics: newCallMetrics(options.MeterProvider),
	}
}

// InstrumentCall runs invoke under a span classified for call. The output
// and error of invoke are returned unchanged. The span is ended exactly once
// after invoke returns, fails, panics or is cancelled.
func (d *Dispatcher) InstrumentCall(ctx context.Context, call Call, invoke InvokeFunc) (interface{}, error) {
	cfg := d.options.Config
	logger := d.logger(ctx)

	req := request.Normalize(call.ServiceID, call.OperationName, call.Region, call.Params)
	ext := d.options.Registry.Resolve(call.ServiceID)
	hooks := !cfg.SuppressRequestHooks && !cfg.ServiceSuppressed(call.ServiceID)

	md := extension.DefaultRequestMetadata()
	if hooks {
		md = d.requestPreSpanHook(ctx, ext, req, logger)
	}

	attrs := baseAttributes(req).Merge(md.SpanAttributes.Filter(cfg.AttributeAllowed))
	ctx, span := d.tracer.StartSpan(ctx, spanName(req), func(o *tracing.SpanOptions) {
		o.Kind = md.SpanKind
		o.Attributes = attrs
		o.NewRoot = md.IsIncoming
	})
	defer span.End()

	if h, ok := ext.(extension.PostSpanHooker); ok && hooks {
		d.guard(ctx, logger, "post-span", req, func() {
			h.RequestPostSpanHook(ctx, req)
		})
	}

	start := time.Now()
	out, err := invoke(ctx)
	d.metrics.recordCall(ctx, req, time.Since(start), err)

	var requestID string
	if call.RequestID != nil {
		d.guard(ctx, logger, "request id", req, func() {
			requestID = call.RequestID()
		})
	}
	if len(requestID) != 0 {
		span.SetProperty(AttrRequestID, requestID)
	}

	if h, ok := ext.(extension.ResponseHooker); ok && hooks && !cfg.SuppressResponseHooks {
		resp := extension.Response{Err: err, RequestID: requestID}
		if err == nil {
			resp.Output = request.NewDocument(out)
		}
		d.guard(ctx, logger, "response", req, func() {
			h.ResponseHook(req, resp, &hookSpan{span: span, cfg: cfg}, cfg.Copy())
		})
	}

	if err != nil {
		span.RecordError(err)
	}

	return out, err
}

func (d *Dispatcher) requestPreSpanHook(
	ctx context.Context, ext extension.Extension, req request.Normalized, logger logging.Logger,
) (
	md extension.RequestMetadata,
) {
	ok := d.guard(ctx, logger, "pre-span", req, func() {
		md = ext.RequestPreSpanHook(req, d.options.Config.Copy())
	})
	if !ok {
		return extension.DefaultRequestMetadata()
	}
	return md
}

func (d *Dispatcher) logger(ctx context.Context) logging.Logger {
	if d.options.Logger != nil {
		return logging.WithContext(ctx, d.options.Logger)
	}
	return middleware.GetLogger(ctx)
}

// guard runs fn, recovering from a panic. Returns false if fn panicked.
func (d *Dispatcher) guard(
	ctx context.Context, logger logging.Logger, hook string, req request.Normalized, fn func(),
) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			logger.Logf(logging.Debug, "%s hook failed for %s, %v", hook, spanName(req), r)
			d.metrics.recordHookFailure(ctx, req, hook)
		}
	}()

	fn()
	return true
}

func spanName(req request.Normalized) string {
	service, operation := req.ServiceID(), req.OperationName()
	if len(service) == 0 {
		service = "AWS"
	}
	if len(operation) == 0 {
		operation = "Unknown"
	}
	return service + "." + operation
}

func baseAttributes(req request.Normalized) awsinstr.Attributes {
	region, hasRegion := req.Region()
	return awsinstr.NewAttributes(
		awsinstr.Attr(AttrRPCSystem, rpcSystem),
		awsinstr.Attr(AttrRPCService, req.ServiceID()),
		awsinstr.Attr(AttrRPCMethod, req.OperationName()),
		awsinstr.OptionalAttr(AttrCloudRegion, region, hasRegion),
	)
}

// hookSpan is the view of a span handed to response hooks. Properties are
// filtered by the attribute allow list. Hooks cannot mark the span as failed
// or end it; error status is reserved for the underlying call's error.
type hookSpan struct {
	span tracing.Span
	cfg  extension.Config
}

var _ tracing.Span = (*hookSpan)(nil)

func (s *hookSpan) Name() string                 { return s.span.Name() }
func (s *hookSpan) Context() tracing.SpanContext { return s.span.Context() }

func (s *hookSpan) SetProperty(k string, v interface{}) {
	if s.cfg.AttributeAllowed(k) {
		s.span.SetProperty(k, v)
	}
}

func (s *hookSpan) SetStatus(status tracing.SpanStatus) {
	if status == tracing.SpanStatusError {
		return
	}
	s.span.SetStatus(status)
}

func (s *hookSpan) RecordError(error) {}

func (s *hookSpan) End() {}
