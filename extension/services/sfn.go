package services

import (
	"github.com/renovate-bot/awsinstr-go"
	"github.com/renovate-bot/awsinstr-go/extension"
	"github.com/renovate-bot/awsinstr-go/request"
	"github.com/renovate-bot/awsinstr-go/tracing"
)

// StepFunctions classifies Step Functions calls as client spans.
type StepFunctions struct{}

// RequestPreSpanHook records the state machine and activity addressed.
func (StepFunctions) RequestPreSpanHook(req request.Normalized, _ extension.Config) extension.RequestMetadata {
	in := req.Input()
	return extension.RequestMetadata{
		SpanKind: tracing.SpanKindClient,
		SpanAttributes: awsinstr.NewAttributes(
			stringAttr(in, AttrStepFunctionsStateMachineARN, "StateMachineArn"),
			stringAttr(in, AttrStepFunctionsActivityARN, "ActivityArn"),
		),
	}
}
