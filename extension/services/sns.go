package services

import (
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/renovate-bot/awsinstr-go"
	"github.com/renovate-bot/awsinstr-go/extension"
	"github.com/renovate-bot/awsinstr-go/request"
	"github.com/renovate-bot/awsinstr-go/tracing"
)

const (
	snsMessagingSystem = "aws_sns"

	// phoneNumberDestination replaces the destination name of SMS
	// publishes so phone numbers are not recorded.
	phoneNumberDestination = "phone_number"
)

// SNS classifies Simple Notification Service calls. Publishing is a PRODUCER
// span; topic management calls are CLIENT spans.
type SNS struct{}

var _ extension.ResponseHooker = SNS{}

// RequestPreSpanHook records the topic and destination of the call.
func (SNS) RequestPreSpanHook(req request.Normalized, _ extension.Config) extension.RequestMetadata {
	in := req.Input()
	md := extension.RequestMetadata{SpanKind: tracing.SpanKindClient}

	var operation string
	switch req.OperationName() {
	case "Publish", "PublishBatch":
		md.SpanKind = tracing.SpanKindProducer
		operation = "publish"
	}

	var destination string
	if v, ok := in.String("TopicArn"); ok {
		destination = arnResource(v)
	} else if v, ok := in.String("TargetArn"); ok {
		destination = arnResource(v)
	} else if _, ok := in.String("PhoneNumber"); ok {
		destination = phoneNumberDestination
	}

	md.SpanAttributes = awsinstr.NewAttributes(
		awsinstr.Attr(AttrMessagingSystem, snsMessagingSystem),
		awsinstr.OptionalAttr(AttrMessagingOperation, operation, len(operation) != 0),
		stringAttr(in, AttrSNSTopicARN, "TopicArn"),
		awsinstr.OptionalAttr(AttrMessagingDestinationName, destination, len(destination) != 0),
	)
	return md
}

// ResponseHook records the published message id.
func (SNS) ResponseHook(req request.Normalized, resp extension.Response, span tracing.Span, _ extension.Config) {
	if req.OperationName() != "Publish" {
		return
	}
	setProperties(span.SetProperty, stringAttr(resp.Output, AttrMessagingMessageID, "MessageId"))
}

// arnResource returns the resource part of an ARN, or "" if v is not an
// ARN.
func arnResource(v string) string {
	parsed, err := arn.Parse(v)
	if err != nil {
		return ""
	}
	return parsed.Resource
}
