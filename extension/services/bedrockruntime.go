package services

import (
	"github.com/renovate-bot/awsinstr-go"
	"github.com/renovate-bot/awsinstr-go/extension"
	"github.com/renovate-bot/awsinstr-go/request"
	"github.com/renovate-bot/awsinstr-go/tracing"
)

const bedrockSystem = "aws.bedrock"

// BedrockRuntime classifies Bedrock Runtime model invocations as generative
// AI client spans.
type BedrockRuntime struct{}

var _ extension.ResponseHooker = BedrockRuntime{}

// RequestPreSpanHook records the model and the inference configuration of
// Converse requests.
func (BedrockRuntime) RequestPreSpanHook(req request.Normalized, _ extension.Config) extension.RequestMetadata {
	in := req.Input()
	return extension.RequestMetadata{
		SpanKind: tracing.SpanKindClient,
		SpanAttributes: awsinstr.NewAttributes(
			awsinstr.Attr(AttrGenAISystem, bedrockSystem),
			stringAttr(in, AttrGenAIRequestModel, "ModelId"),
			intAttr(in, AttrGenAIRequestMaxTokens, "InferenceConfig.MaxTokens"),
			floatAttr(in, AttrGenAIRequestTemperature, "InferenceConfig.Temperature"),
			floatAttr(in, AttrGenAIRequestTopP, "InferenceConfig.TopP"),
		),
	}
}

// ResponseHook records token usage and the stop reason of Converse
// responses.
func (BedrockRuntime) ResponseHook(_ request.Normalized, resp extension.Response, span tracing.Span, _ extension.Config) {
	reason, hasReason := resp.Output.String("StopReason")
	setProperties(span.SetProperty,
		intAttr(resp.Output, AttrGenAIUsageInputTokens, "Usage.InputTokens"),
		intAttr(resp.Output, AttrGenAIUsageOutputTokens, "Usage.OutputTokens"),
		awsinstr.OptionalAttr(AttrGenAIResponseFinishReasons, []string{reason}, hasReason),
	)
}
