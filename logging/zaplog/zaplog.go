// Package zaplog adapts a zap logger to the logging.Logger interface.
package zaplog

import (
	"context"

	"github.com/renovate-bot/awsinstr-go/logging"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger writes instrumentation log entries to a zap.Logger. Debug entries
// map to zap's debug level, Warn to warn, anything else to info.
type Logger struct {
	logger *zap.Logger
}

var (
	_ logging.Logger        = (*Logger)(nil)
	_ logging.ContextLogger = (*Logger)(nil)
)

// New returns a Logger writing to l. A nil l discards all entries.
func New(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &Logger{logger: l.WithOptions(zap.AddCallerSkip(1))}
}

// Logf formats the entry and writes it at the level matching the
// classification.
func (l *Logger) Logf(classification logging.Classification, format string, v ...interface{}) {
	s := l.logger.Sugar()
	switch classification {
	case logging.Debug:
		s.Debugf(format, v...)
	case logging.Warn:
		s.Warnf(format, v...)
	default:
		s.Infof(format, v...)
	}
}

// WithContext returns a Logger that tags entries with the trace and span
// ids of the span active on ctx, if any.
func (l *Logger) WithContext(ctx context.Context) logging.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return l
	}
	return &Logger{logger: l.logger.With(
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)}
}
