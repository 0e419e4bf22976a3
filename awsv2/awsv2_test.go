package awsv2

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	smithymiddleware "github.com/aws/smithy-go/middleware"
	"github.com/google/go-cmp/cmp"
	"github.com/renovate-bot/awsinstr-go/extension/services"
	"github.com/renovate-bot/awsinstr-go/instrument"
	"github.com/renovate-bot/awsinstr-go/tracing/oteltracing"
	otelattribute "go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func newDispatcher() (*tracetest.SpanRecorder, *instrument.Dispatcher) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	return sr, instrument.New(func(o *instrument.Options) {
		o.TracerProvider = oteltracing.Adapt(tp)
	})
}

func withOperation(ctx context.Context, service, operation, region string) context.Context {
	ctx = awsmiddleware.SetServiceID(ctx, service)
	ctx = awsmiddleware.SetOperationName(ctx, operation)
	return awsmiddleware.SetRegion(ctx, region)
}

func attributeMap(kvs []otelattribute.KeyValue) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value.AsInterface()
	}
	return m
}

func TestHandleInitializeConverse(t *testing.T) {
	sr, d := newDispatcher()
	ctx := withOperation(context.Background(), "Bedrock Runtime", "Converse", "us-west-2")

	in := &bedrockruntime.ConverseInput{
		ModelId: aws.String("anthropic.claude-3-sonnet"),
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(512),
			Temperature: aws.Float32(0.5),
		},
		Messages: []types.Message{{
			Role:    types.ConversationRoleUser,
			Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: "hello"}},
		}},
	}

	out, _, err := Middleware(d).HandleInitialize(ctx, smithymiddleware.InitializeInput{Parameters: in},
		smithymiddleware.InitializeHandlerFunc(func(ctx context.Context, in smithymiddleware.InitializeInput) (
			smithymiddleware.InitializeOutput, smithymiddleware.Metadata, error,
		) {
			if !oteltrace.SpanContextFromContext(ctx).IsValid() {
				t.Errorf("expect span on the context of the next handler")
			}
			var md smithymiddleware.Metadata
			awsmiddleware.SetRequestIDMetadata(&md, "req-abc")
			return smithymiddleware.InitializeOutput{Result: &bedrockruntime.ConverseOutput{
				StopReason: types.StopReasonEndTurn,
				Usage: &types.TokenUsage{
					InputTokens:  aws.Int32(12),
					OutputTokens: aws.Int32(30),
					TotalTokens:  aws.Int32(42),
				},
			}}, md, nil
		}))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if _, ok := out.Result.(*bedrockruntime.ConverseOutput); !ok {
		t.Errorf("expect converse output, got %T", out.Result)
	}

	spans := sr.Ended()
	if e, a := 1, len(spans); e != a {
		t.Fatalf("expect %v span, got %v", e, a)
	}
	span := spans[0]
	if e, a := "Bedrock Runtime.Converse", span.Name(); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := oteltrace.SpanKindClient, span.SpanKind(); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	expect := map[string]interface{}{
		instrument.AttrRPCSystem:                "aws-api",
		instrument.AttrRPCService:               "Bedrock Runtime",
		instrument.AttrRPCMethod:                "Converse",
		instrument.AttrCloudRegion:              "us-west-2",
		instrument.AttrRequestID:                "req-abc",
		services.AttrGenAISystem:                "aws.bedrock",
		services.AttrGenAIRequestModel:          "anthropic.claude-3-sonnet",
		services.AttrGenAIRequestMaxTokens:      int64(512),
		services.AttrGenAIRequestTemperature:    0.5,
		services.AttrGenAIUsageInputTokens:      int64(12),
		services.AttrGenAIUsageOutputTokens:     int64(30),
		services.AttrGenAIResponseFinishReasons: []string{"end_turn"},
	}
	if diff := cmp.Diff(expect, attributeMap(span.Attributes())); len(diff) != 0 {
		t.Errorf("attributes mismatch (-expect +actual):\n%s", diff)
	}
}

func TestAppendMiddlewares(t *testing.T) {
	sr, d := newDispatcher()

	var apiOptions []func(*smithymiddleware.Stack) error
	AppendMiddlewares(&apiOptions, d)

	stack := smithymiddleware.NewStack("PutRecord", func() interface{} { return struct{}{} })
	for _, fn := range apiOptions {
		if err := fn(stack); err != nil {
			t.Fatalf("expect no error, got %v", err)
		}
	}
	if _, ok := stack.Initialize.Get(instrument.MiddlewareID); !ok {
		t.Fatalf("expect %v middleware in initialize step", instrument.MiddlewareID)
	}

	expectErr := errors.New("ResourceNotFoundException")
	ctx := withOperation(context.Background(), "Kinesis", "PutRecord", "eu-central-1")
	_, _, err := smithymiddleware.DecorateHandler(
		smithymiddleware.HandlerFunc(func(context.Context, interface{}) (interface{}, smithymiddleware.Metadata, error) {
			return nil, smithymiddleware.Metadata{}, expectErr
		}), stack,
	).Handle(ctx, map[string]interface{}{"StreamName": "orders-stream"})
	if !errors.Is(err, expectErr) {
		t.Errorf("expect %v, got %v", expectErr, err)
	}

	spans := sr.Ended()
	if e, a := 1, len(spans); e != a {
		t.Fatalf("expect %v span, got %v", e, a)
	}
	span := spans[0]
	if e, a := otelcodes.Error, span.Status().Code; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := "orders-stream", attributeMap(span.Attributes())[services.AttrKinesisStreamName]; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if _, ok := attributeMap(span.Attributes())[instrument.AttrRequestID]; ok {
		t.Errorf("expect no request id without response metadata")
	}
}
