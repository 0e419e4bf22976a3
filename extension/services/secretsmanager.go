package services

import (
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/renovate-bot/awsinstr-go"
	"github.com/renovate-bot/awsinstr-go/extension"
	"github.com/renovate-bot/awsinstr-go/request"
	"github.com/renovate-bot/awsinstr-go/tracing"
)

// SecretsManager classifies Secrets Manager calls as client spans. Only
// secret ARNs are recorded, never secret names passed as ids.
type SecretsManager struct{}

var _ extension.ResponseHooker = SecretsManager{}

// RequestPreSpanHook records the secret ARN when the secret is addressed by
// ARN.
func (SecretsManager) RequestPreSpanHook(req request.Normalized, _ extension.Config) extension.RequestMetadata {
	id, ok := req.Input().String("SecretId")
	return extension.RequestMetadata{
		SpanKind: tracing.SpanKindClient,
		SpanAttributes: awsinstr.NewAttributes(
			awsinstr.OptionalAttr(AttrSecretsManagerSecretARN, id, ok && arn.IsARN(id)),
		),
	}
}

// ResponseHook records the secret ARN returned by the service.
func (SecretsManager) ResponseHook(_ request.Normalized, resp extension.Response, span tracing.Span, _ extension.Config) {
	setProperties(span.SetProperty, stringAttr(resp.Output, AttrSecretsManagerSecretARN, "ARN"))
}
