package tracing

import (
	"context"
	"testing"
)

func TestSpanKindString(t *testing.T) {
	for _, tt := range []struct {
		In     SpanKind
		Expect string
	}{
		{SpanKindInternal, "internal"},
		{SpanKindClient, "client"},
		{SpanKindServer, "server"},
		{SpanKindProducer, "producer"},
		{SpanKindConsumer, "consumer"},
		{SpanKind(-1), "unknown"},
	} {
		if e, a := tt.Expect, tt.In.String(); e != a {
			t.Errorf("expect %v, got %v", e, a)
		}
	}
}

func TestGetSpan(t *testing.T) {
	span, ok := GetSpan(context.Background())
	if ok {
		t.Errorf("expect no span on empty context")
	}
	if span == nil {
		t.Fatalf("expect nop span, got nil")
	}

	_, nop := NopTracerProvider{}.Tracer("test").StartSpan(context.Background(), "op")
	ctx := WithSpan(context.Background(), nop)
	if _, ok := GetSpan(ctx); !ok {
		t.Errorf("expect span on context")
	}
}

func TestSpanContextIsValid(t *testing.T) {
	if sc := (SpanContext{}); sc.IsValid() {
		t.Errorf("expect zero span context invalid")
	}
	if sc := (SpanContext{TraceID: "a", SpanID: "b"}); !sc.IsValid() {
		t.Errorf("expect span context valid")
	}
}
