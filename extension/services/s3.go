package services

import (
	"github.com/renovate-bot/awsinstr-go"
	"github.com/renovate-bot/awsinstr-go/extension"
	"github.com/renovate-bot/awsinstr-go/request"
	"github.com/renovate-bot/awsinstr-go/tracing"
)

// S3 classifies Simple Storage Service calls as client spans.
type S3 struct{}

// RequestPreSpanHook records the bucket and object key.
func (S3) RequestPreSpanHook(req request.Normalized, _ extension.Config) extension.RequestMetadata {
	in := req.Input()
	return extension.RequestMetadata{
		SpanKind: tracing.SpanKindClient,
		SpanAttributes: awsinstr.NewAttributes(
			stringAttr(in, AttrS3Bucket, "Bucket"),
			stringAttr(in, AttrS3Key, "Key"),
			stringAttr(in, AttrS3CopySource, "CopySource"),
		),
	}
}
