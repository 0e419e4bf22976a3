package logging

import (
	"bytes"
	"context"
	"log"
	"testing"
)

type ctxKey struct{}

type recordingLogger struct {
	entries []string
	ctxVal  interface{}
}

func (r *recordingLogger) Logf(c Classification, format string, v ...interface{}) {
	r.entries = append(r.entries, string(c)+" "+format)
}

func (r *recordingLogger) WithContext(ctx context.Context) Logger {
	return &recordingLogger{ctxVal: ctx.Value(ctxKey{})}
}

func TestStandardLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := StandardLogger{Logger: log.New(&buf, "", 0)}

	logger.Logf(Debug, "hook failed for %s", "Kinesis")
	logger.Logf("", "plain")

	if e, a := "DEBUG hook failed for Kinesis\nplain\n", buf.String(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestWithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey{}, "value")

	rl := &recordingLogger{}
	got := WithContext(ctx, rl)
	if e, a := "value", got.(*recordingLogger).ctxVal; e != a {
		t.Errorf("expect context logger to see %v, got %v", e, a)
	}

	var noop Logger = Noop{}
	if got := WithContext(ctx, noop); got != noop {
		t.Errorf("expect non context logger returned as is, got %T", got)
	}
}

func TestLoggerFunc(t *testing.T) {
	var got Classification
	var logger Logger = LoggerFunc(func(c Classification, format string, v ...interface{}) {
		got = c
	})
	logger.Logf(Warn, "x")
	if e, a := Warn, got; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}
