package middleware

import (
	"context"
	"fmt"
	"reflect"
	"testing"
)

var _ Handler = (HandlerFunc)(nil)
var _ Handler = (decoratedHandler{})

type passMiddleware string

func (m passMiddleware) ID() string { return string(m) }

func (m passMiddleware) HandleMiddleware(ctx context.Context, input interface{}, next Handler) (
	output interface{}, err error,
) {
	return next.Handle(ctx, input)
}

func TestDecorateHandlerRecordsIDs(t *testing.T) {
	var seen []string
	terminal := HandlerFunc(func(ctx context.Context, input interface{}) (interface{}, error) {
		seen = GetMiddlewareIDs(ctx)
		return input, nil
	})

	h := DecorateHandler(terminal,
		passMiddleware("ServiceMetadata"),
		passMiddleware("Instrument"),
		passMiddleware("Validation"),
	)
	out, err := h.Handle(context.Background(), "input")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "input", out; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	expect := []string{"ServiceMetadata", "Instrument", "Validation"}
	if e, a := expect, seen; !reflect.DeepEqual(e, a) {
		t.Errorf("expect %v, got %v", e, a)
	}

	if _, err := DecorateHandler(terminal).Handle(context.Background(), nil); err != nil {
		t.Errorf("expect undecorated handler to pass through, got %v", err)
	}
}

func TestInvoke(t *testing.T) {
	stack := NewStack("Kinesis.PutRecord")
	stack.Initialize.Add(InitializeMiddlewareFunc("upper", func(ctx context.Context, in InitializeInput, next InitializeHandler) (
		InitializeOutput, error,
	) {
		in.Parameters = fmt.Sprintf("<%v>", in.Parameters)
		return next.HandleInitialize(ctx, in)
	}), After)

	handler := HandlerFunc(func(ctx context.Context, input interface{}) (interface{}, error) {
		if e, a := []string{"Kinesis.PutRecord", "Initialize stack step", "upper"}, GetMiddlewareIDs(ctx); !reflect.DeepEqual(e, a) {
			t.Errorf("expect middleware %v, got %v", e, a)
		}
		return input, nil
	})

	out, err := Invoke(context.Background(), stack, "params", handler)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "<params>", out; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	if _, err := Invoke(context.Background(), nil, "params", handler); err == nil {
		t.Errorf("expect error for nil stack")
	}
}

func TestInvokeError(t *testing.T) {
	stack := NewStack("op")
	expectErr := fmt.Errorf("handler failed")

	out, err := Invoke(context.Background(), stack, nil, HandlerFunc(func(context.Context, interface{}) (interface{}, error) {
		return "partial", expectErr
	}))
	if err != expectErr {
		t.Errorf("expect %v, got %v", expectErr, err)
	}
	if e, a := "partial", out; e != a {
		t.Errorf("expect output passed through with error, got %v", a)
	}
}

func TestStackString(t *testing.T) {
	stack := NewStack("fooStack")
	stack.Initialize.Add(mockInitializeMiddleware("first"), After)
	stack.Initialize.Add(mockInitializeMiddleware("second"), After)

	expect := "fooStack\n\tInitialize stack step\n\t\tfirst\n\t\tsecond\n"
	if e, a := expect, stack.String(); e != a {
		t.Errorf("expect\n%q\ngot\n%q", e, a)
	}

	expectList := []string{"fooStack", "Initialize stack step", "first", "second"}
	if e, a := expectList, stack.List(); !reflect.DeepEqual(e, a) {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	ctx = SetServiceID(ctx, "Kinesis")
	ctx = SetOperationName(ctx, "PutRecord")
	ctx = SetRegion(ctx, "us-west-2")

	if e, a := "Kinesis", GetServiceID(ctx); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := "PutRecord", GetOperationName(ctx); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := "us-west-2", GetRegion(ctx); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if v := GetRegion(context.Background()); len(v) != 0 {
		t.Errorf("expect no region, got %v", v)
	}
}
