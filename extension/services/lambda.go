package services

import (
	"github.com/renovate-bot/awsinstr-go"
	"github.com/renovate-bot/awsinstr-go/extension"
	"github.com/renovate-bot/awsinstr-go/request"
	"github.com/renovate-bot/awsinstr-go/tracing"
)

const lambdaProvider = "aws"

// Lambda classifies Lambda calls. Invoke is recorded as a call to a function
// as a service.
type Lambda struct{}

var _ extension.ResponseHooker = Lambda{}

// RequestPreSpanHook records the invoked function.
func (Lambda) RequestPreSpanHook(req request.Normalized, _ extension.Config) extension.RequestMetadata {
	md := extension.RequestMetadata{SpanKind: tracing.SpanKindClient}
	if req.OperationName() != "Invoke" {
		return md
	}

	name, hasName := req.Input().String("FunctionName")
	region, hasRegion := req.Region()
	md.SpanAttributes = awsinstr.NewAttributes(
		awsinstr.OptionalAttr(AttrFaaSInvokedName, name, hasName),
		awsinstr.Attr(AttrFaaSInvokedProvider, lambdaProvider),
		awsinstr.OptionalAttr(AttrFaaSInvokedRegion, region, hasRegion),
	)
	return md
}

// ResponseHook records the invocation's request id as the execution id.
func (Lambda) ResponseHook(req request.Normalized, resp extension.Response, span tracing.Span, _ extension.Config) {
	if req.OperationName() != "Invoke" {
		return
	}
	setProperties(span.SetProperty,
		awsinstr.OptionalAttr(AttrFaaSExecution, resp.RequestID, len(resp.RequestID) != 0),
	)
}
