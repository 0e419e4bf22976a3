package services

import (
	"sort"

	"github.com/renovate-bot/awsinstr-go"
	"github.com/renovate-bot/awsinstr-go/extension"
	"github.com/renovate-bot/awsinstr-go/request"
	"github.com/renovate-bot/awsinstr-go/tracing"
)

const dynamoDBSystem = "dynamodb"

// DynamoDB classifies DynamoDB calls as database client spans.
type DynamoDB struct{}

var _ extension.ResponseHooker = DynamoDB{}

// RequestPreSpanHook records the tables addressed by the call and the query
// options that shape it.
func (DynamoDB) RequestPreSpanHook(req request.Normalized, _ extension.Config) extension.RequestMetadata {
	in := req.Input()
	tables, hasTables := dynamoDBTableNames(in)

	return extension.RequestMetadata{
		SpanKind: tracing.SpanKindClient,
		SpanAttributes: awsinstr.NewAttributes(
			awsinstr.Attr(AttrDBSystem, dynamoDBSystem),
			awsinstr.Attr(AttrDBOperation, req.OperationName()),
			awsinstr.OptionalAttr(AttrDynamoDBTableNames, tables, hasTables),
			stringAttr(in, AttrDynamoDBIndexName, "IndexName"),
			boolAttr(in, AttrDynamoDBConsistentRead, "ConsistentRead"),
			intAttr(in, AttrDynamoDBLimit, "Limit"),
			stringAttr(in, AttrDynamoDBProjection, "ProjectionExpression"),
			stringAttr(in, AttrDynamoDBSelect, "Select"),
			boolAttr(in, AttrDynamoDBScanForward, "ScanIndexForward"),
			intAttr(in, AttrDynamoDBSegment, "Segment"),
			intAttr(in, AttrDynamoDBTotalSegments, "TotalSegments"),
		),
	}
}

// ResponseHook records the item counts of queries and scans.
func (DynamoDB) ResponseHook(_ request.Normalized, resp extension.Response, span tracing.Span, _ extension.Config) {
	setProperties(span.SetProperty,
		intAttr(resp.Output, AttrDynamoDBCount, "Count"),
		intAttr(resp.Output, AttrDynamoDBScannedCount, "ScannedCount"),
	)
}

// dynamoDBTableNames returns the sorted, distinct table names of a request.
// Single table operations name it in TableName, batch operations key
// RequestItems by table, and transactions name it in each item's action.
func dynamoDBTableNames(in request.Document) ([]string, bool) {
	if name, ok := in.String("TableName"); ok {
		return []string{name}, true
	}

	names, ok := in.Strings("keys(RequestItems)")
	if !ok {
		names, ok = transactTableNames(in)
	}
	if !ok {
		return nil, false
	}

	sort.Strings(names)
	distinct := names[:1]
	for _, n := range names[1:] {
		if n != distinct[len(distinct)-1] {
			distinct = append(distinct, n)
		}
	}
	return distinct, true
}

// transactTableNames collects the TableName of each action in a
// transaction's TransactItems. Each item holds exactly one action, e.g. Put
// or Get.
func transactTableNames(in request.Document) ([]string, bool) {
	v, ok := in.Lookup("TransactItems")
	if !ok {
		return nil, false
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, false
	}

	var names []string
	for _, item := range items {
		actions, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		for _, action := range actions {
			fields, ok := action.(map[string]interface{})
			if !ok {
				continue
			}
			if name, ok := fields["TableName"].(string); ok && len(name) != 0 {
				names = append(names, name)
			}
		}
	}
	return names, len(names) != 0
}
