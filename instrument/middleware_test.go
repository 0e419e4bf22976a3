package instrument

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/renovate-bot/awsinstr-go/extension/services"
	"github.com/renovate-bot/awsinstr-go/middleware"
	"github.com/renovate-bot/awsinstr-go/tracing"
)

func TestMiddleware(t *testing.T) {
	tp := &mockTracerProvider{}
	d := newDispatcher(t, tp)

	stack := middleware.NewStack("kinesis stack")
	if err := stack.Initialize.Add(middleware.InitializeMiddlewareFunc("other",
		func(ctx context.Context, in middleware.InitializeInput, next middleware.InitializeHandler) (
			middleware.InitializeOutput, error,
		) {
			if _, ok := tracing.GetSpan(ctx); !ok {
				t.Errorf("expect span active for later middleware")
			}
			return next.HandleInitialize(ctx, in)
		}), middleware.After); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if err := d.AddMiddleware(stack); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if diff := cmp.Diff([]string{"kinesis stack", "Initialize stack step", MiddlewareID, "other"}, stack.List()); len(diff) != 0 {
		t.Errorf("stack mismatch (-expect +actual):\n%s", diff)
	}

	ctx := middleware.SetServiceID(context.Background(), "Kinesis")
	ctx = middleware.SetOperationName(ctx, "PutRecord")
	ctx = middleware.SetRegion(ctx, "eu-west-1")

	out, err := middleware.Invoke(ctx, stack, &putRecordInput{StreamName: ptr("orders-stream")},
		middleware.HandlerFunc(func(ctx context.Context, in interface{}) (interface{}, error) {
			if diff := cmp.Diff([]string{stack.ID(), "Initialize stack step", MiddlewareID, "other"},
				middleware.GetMiddlewareIDs(ctx)); len(diff) != 0 {
				t.Errorf("middleware ids mismatch (-expect +actual):\n%s", diff)
			}
			return &putRecordOutput{SequenceNumber: ptr("7")}, nil
		}))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "7", *out.(*putRecordOutput).SequenceNumber; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	spans := tp.Spans()
	if e, a := 1, len(spans); e != a {
		t.Fatalf("expect %v span, got %v", e, a)
	}
	s := spans[0]
	if e, a := "Kinesis.PutRecord", s.name; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	expect := map[string]interface{}{
		AttrRPCSystem:                  "aws-api",
		AttrRPCService:                 "Kinesis",
		AttrRPCMethod:                  "PutRecord",
		AttrCloudRegion:                "eu-west-1",
		services.AttrKinesisStreamName: "orders-stream",
	}
	if diff := cmp.Diff(expect, s.props); len(diff) != 0 {
		t.Errorf("attributes mismatch (-expect +actual):\n%s", diff)
	}
}

func TestMiddlewareError(t *testing.T) {
	tp := &mockTracerProvider{}
	d := newDispatcher(t, tp)

	stack := middleware.NewStack("stack")
	if err := d.AddMiddleware(stack); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expectErr := errors.New("AccessDenied")
	_, err := middleware.Invoke(context.Background(), stack, nil,
		middleware.HandlerFunc(func(context.Context, interface{}) (interface{}, error) {
			return nil, expectErr
		}))
	if !errors.Is(err, expectErr) {
		t.Errorf("expect %v, got %v", expectErr, err)
	}

	s := tp.Spans()[0]
	if e, a := "AWS.Unknown", s.name; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := tracing.SpanStatusError, s.status; e != a {
		t.Errorf("expect status %v, got %v", e, a)
	}
}
