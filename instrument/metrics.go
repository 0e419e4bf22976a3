package instrument

import (
	"context"
	"time"

	"github.com/renovate-bot/awsinstr-go/request"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric names recorded by a Dispatcher.
const (
	MetricCallDuration = "aws.client.call.duration"
	MetricCallErrors   = "aws.client.call.errors"
	MetricHookFailures = "aws.client.hook.failures"
)

type callMetrics struct {
	duration     metric.Float64Histogram
	errors       metric.Int64Counter
	hookFailures metric.Int64Counter
}

// newCallMetrics creates the dispatcher's instruments. An instrument that
// cannot be created is replaced by a no-op instrument.
func newCallMetrics(mp metric.MeterProvider) *callMetrics {
	meter := mp.Meter(ScopeName)
	nop := noop.Meter{}

	duration, err := meter.Float64Histogram(MetricCallDuration,
		metric.WithUnit("s"),
		metric.WithDescription("Duration of AWS operation calls"),
	)
	if err != nil {
		duration, _ = nop.Float64Histogram(MetricCallDuration)
	}

	errors, err := meter.Int64Counter(MetricCallErrors,
		metric.WithDescription("Number of AWS operation calls that returned an error"),
	)
	if err != nil {
		errors, _ = nop.Int64Counter(MetricCallErrors)
	}

	hookFailures, err := meter.Int64Counter(MetricHookFailures,
		metric.WithDescription("Number of service extension hooks that panicked"),
	)
	if err != nil {
		hookFailures, _ = nop.Int64Counter(MetricHookFailures)
	}

	return &callMetrics{
		duration:     duration,
		errors:       errors,
		hookFailures: hookFailures,
	}
}

func callAttributes(req request.Normalized) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String(AttrRPCService, req.ServiceID()),
		attribute.String(AttrRPCMethod, req.OperationName()),
	)
}

func (m *callMetrics) recordCall(ctx context.Context, req request.Normalized, elapsed time.Duration, err error) {
	attrs := callAttributes(req)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
	if err != nil {
		m.errors.Add(ctx, 1, attrs)
	}
}

func (m *callMetrics) recordHookFailure(ctx context.Context, req request.Normalized, hook string) {
	m.hookFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrRPCService, req.ServiceID()),
		attribute.String(AttrRPCMethod, req.OperationName()),
		attribute.String("hook", hook),
	))
}
