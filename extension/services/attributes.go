package services

import (
	"github.com/renovate-bot/awsinstr-go"
	"github.com/renovate-bot/awsinstr-go/request"
)

// Attribute keys recorded by the service extensions.
const (
	AttrKinesisStreamName = "aws.kinesis.stream.name"

	AttrMessagingSystem          = "messaging.system"
	AttrMessagingOperation       = "messaging.operation"
	AttrMessagingDestinationName = "messaging.destination.name"
	AttrMessagingURL             = "messaging.url"
	AttrMessagingMessageID       = "messaging.message.id"
	AttrMessagingBatchCount      = "messaging.batch.message_count"
	AttrSNSTopicARN              = "aws.sns.topic.arn"

	AttrDBSystem               = "db.system"
	AttrDBOperation            = "db.operation"
	AttrDynamoDBTableNames     = "aws.dynamodb.table_names"
	AttrDynamoDBIndexName      = "aws.dynamodb.index_name"
	AttrDynamoDBConsistentRead = "aws.dynamodb.consistent_read"
	AttrDynamoDBLimit          = "aws.dynamodb.limit"
	AttrDynamoDBProjection     = "aws.dynamodb.projection"
	AttrDynamoDBSelect         = "aws.dynamodb.select"
	AttrDynamoDBScanForward    = "aws.dynamodb.scan_forward"
	AttrDynamoDBSegment        = "aws.dynamodb.segment"
	AttrDynamoDBTotalSegments  = "aws.dynamodb.total_segments"
	AttrDynamoDBCount          = "aws.dynamodb.count"
	AttrDynamoDBScannedCount   = "aws.dynamodb.scanned_count"

	AttrS3Bucket     = "aws.s3.bucket"
	AttrS3Key        = "aws.s3.key"
	AttrS3CopySource = "aws.s3.copy_source"

	AttrFaaSInvokedName     = "faas.invoked_name"
	AttrFaaSInvokedProvider = "faas.invoked_provider"
	AttrFaaSInvokedRegion   = "faas.invoked_region"
	AttrFaaSExecution       = "faas.execution"

	AttrStepFunctionsStateMachineARN = "aws.step_functions.state_machine.arn"
	AttrStepFunctionsActivityARN     = "aws.step_functions.activity.arn"

	AttrSecretsManagerSecretARN = "aws.secretsmanager.secret.arn"

	AttrGenAISystem                = "gen_ai.system"
	AttrGenAIRequestModel          = "gen_ai.request.model"
	AttrGenAIRequestMaxTokens      = "gen_ai.request.max_tokens"
	AttrGenAIRequestTemperature    = "gen_ai.request.temperature"
	AttrGenAIRequestTopP           = "gen_ai.request.top_p"
	AttrGenAIUsageInputTokens      = "gen_ai.usage.input_tokens"
	AttrGenAIUsageOutputTokens     = "gen_ai.usage.output_tokens"
	AttrGenAIResponseFinishReasons = "gen_ai.response.finish_reasons"
)

func stringAttr(doc request.Document, key, expr string) awsinstr.KeyValue {
	v, ok := doc.String(expr)
	return awsinstr.OptionalAttr(key, v, ok)
}

func intAttr(doc request.Document, key, expr string) awsinstr.KeyValue {
	v, ok := doc.Int(expr)
	return awsinstr.OptionalAttr(key, v, ok)
}

func boolAttr(doc request.Document, key, expr string) awsinstr.KeyValue {
	v, ok := doc.Bool(expr)
	return awsinstr.OptionalAttr(key, v, ok)
}

func floatAttr(doc request.Document, key, expr string) awsinstr.KeyValue {
	v, ok := doc.Lookup(expr)
	if !ok {
		return awsinstr.OptionalAttr(key, 0.0, false)
	}
	f, ok := v.(float64)
	return awsinstr.OptionalAttr(key, f, ok)
}

// setProperties records the present key values on set.
func setProperties(set func(k string, v interface{}), kvs ...awsinstr.KeyValue) {
	awsinstr.NewAttributes(kvs...).Range(func(k string, v interface{}) bool {
		set(k, v)
		return true
	})
}
