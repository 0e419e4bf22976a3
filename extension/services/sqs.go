package services

import (
	"strings"

	"github.com/renovate-bot/awsinstr-go"
	"github.com/renovate-bot/awsinstr-go/extension"
	"github.com/renovate-bot/awsinstr-go/request"
	"github.com/renovate-bot/awsinstr-go/tracing"
)

const sqsMessagingSystem = "aws_sqs"

// SQS classifies Simple Queue Service calls. Sends are PRODUCER spans,
// ReceiveMessage is a CONSUMER span for incoming work.
type SQS struct{}

var _ extension.ResponseHooker = SQS{}

// RequestPreSpanHook records the queue and the messaging operation.
func (SQS) RequestPreSpanHook(req request.Normalized, _ extension.Config) extension.RequestMetadata {
	in := req.Input()
	md := extension.RequestMetadata{SpanKind: tracing.SpanKindClient}

	var operation string
	switch req.OperationName() {
	case "SendMessage", "SendMessageBatch":
		md.SpanKind = tracing.SpanKindProducer
		operation = "publish"
	case "ReceiveMessage":
		md.SpanKind = tracing.SpanKindConsumer
		md.IsIncoming = true
		operation = "receive"
	}

	queueURL, hasURL := in.String("QueueUrl")
	queueName, hasName := queueNameFromURL(queueURL)

	kvs := []awsinstr.KeyValue{
		awsinstr.Attr(AttrMessagingSystem, sqsMessagingSystem),
		awsinstr.OptionalAttr(AttrMessagingOperation, operation, len(operation) != 0),
		awsinstr.OptionalAttr(AttrMessagingURL, queueURL, hasURL),
		awsinstr.OptionalAttr(AttrMessagingDestinationName, queueName, hasName),
	}
	if req.OperationName() == "SendMessageBatch" {
		kvs = append(kvs, intAttr(in, AttrMessagingBatchCount, "length(Entries)"))
	}

	md.SpanAttributes = awsinstr.NewAttributes(kvs...)
	return md
}

// ResponseHook records the sent message id, or the number of messages
// received.
func (SQS) ResponseHook(req request.Normalized, resp extension.Response, span tracing.Span, _ extension.Config) {
	switch req.OperationName() {
	case "SendMessage":
		setProperties(span.SetProperty, stringAttr(resp.Output, AttrMessagingMessageID, "MessageId"))
	case "ReceiveMessage":
		if resp.Err != nil {
			return
		}
		// an empty receive omits Messages
		n, _ := resp.Output.Int("length(Messages)")
		setProperties(span.SetProperty, awsinstr.Attr(AttrMessagingBatchCount, n))
	}
}

// queueNameFromURL returns the last path segment of an SQS queue URL.
func queueNameFromURL(queueURL string) (string, bool) {
	queueURL = strings.TrimRight(queueURL, "/")
	i := strings.LastIndex(queueURL, "/")
	if i < 0 || i == len(queueURL)-1 {
		return "", false
	}
	return queueURL[i+1:], true
}
