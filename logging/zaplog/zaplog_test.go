package zaplog

import (
	"context"
	"testing"

	"github.com/renovate-bot/awsinstr-go/logging"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogfLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := New(zap.New(core))

	logger.Logf(logging.Debug, "hook %s failed", "pre-span")
	logger.Logf(logging.Warn, "unknown service")
	logger.Logf("", "other")

	entries := logs.AllUntimed()
	if e, a := 3, len(entries); e != a {
		t.Fatalf("expect %v entries, got %v", e, a)
	}
	for i, tt := range []struct {
		Level   zapcore.Level
		Message string
	}{
		{zapcore.DebugLevel, "hook pre-span failed"},
		{zapcore.WarnLevel, "unknown service"},
		{zapcore.InfoLevel, "other"},
	} {
		if e, a := tt.Level, entries[i].Level; e != a {
			t.Errorf("%d: expect level %v, got %v", i, e, a)
		}
		if e, a := tt.Message, entries[i].Message; e != a {
			t.Errorf("%d: expect message %q, got %q", i, e, a)
		}
	}
}

func TestWithContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := New(zap.New(core))

	if got := logger.WithContext(context.Background()); got != logger {
		t.Errorf("expect same logger without span context")
	}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{1},
		SpanID:  trace.SpanID{2},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	logging.WithContext(ctx, logger).Logf(logging.Debug, "inside span")

	fields := logs.AllUntimed()[0].ContextMap()
	if e, a := sc.TraceID().String(), fields["trace_id"]; e != a {
		t.Errorf("expect trace id %v, got %v", e, a)
	}
	if e, a := sc.SpanID().String(), fields["span_id"]; e != a {
		t.Errorf("expect span id %v, got %v", e, a)
	}
}

func TestNilLogger(t *testing.T) {
	New(nil).Logf(logging.Debug, "discarded")
}
