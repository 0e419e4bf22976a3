package services

import (
	"github.com/renovate-bot/awsinstr-go"
	"github.com/renovate-bot/awsinstr-go/extension"
	"github.com/renovate-bot/awsinstr-go/request"
	"github.com/renovate-bot/awsinstr-go/tracing"
)

// Kinesis classifies Kinesis Data Streams calls. Writing to a stream is an
// outbound client call; records are consumed by other processes through
// their own polling, so no call is treated as incoming here.
type Kinesis struct{}

// RequestPreSpanHook records the target stream name.
func (Kinesis) RequestPreSpanHook(req request.Normalized, _ extension.Config) extension.RequestMetadata {
	return extension.RequestMetadata{
		SpanKind: tracing.SpanKindClient,
		SpanAttributes: awsinstr.NewAttributes(
			stringAttr(req.Input(), AttrKinesisStreamName, "StreamName"),
		),
	}
}
