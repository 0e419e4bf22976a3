package instrument

import (
	"github.com/renovate-bot/awsinstr-go/extension"
	"github.com/renovate-bot/awsinstr-go/logging"
	"github.com/renovate-bot/awsinstr-go/tracing"
	"go.opentelemetry.io/otel/metric"
)

// Options configures a Dispatcher.
type Options struct {
	// TracerProvider creates the tracer spans are started with. Defaults to
	// tracing.NopTracerProvider.
	TracerProvider tracing.TracerProvider

	// MeterProvider creates the meter call durations, errors and hook
	// failures are recorded with. Defaults to a no-op provider.
	MeterProvider metric.MeterProvider

	// Registry resolves the extension for each service. Defaults to the
	// registry of the services package.
	Registry *extension.Registry

	// Config is handed to every extension hook.
	Config extension.Config

	// Logger receives hook failures. When nil, the logger on the call's
	// context is used, see middleware.SetLogger.
	Logger logging.Logger
}

// Copy returns a copy of the options whose slices are not shared with o.
func (o Options) Copy() Options {
	to := o
	to.Config = o.Config.Copy()
	return to
}
