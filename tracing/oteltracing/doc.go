// Package oteltracing implements a tracing adapter for the OTEL Go SDK.
//
// # Usage
//
// Callers use the [Adapt] API in this package to wrap a concrete OTEL SDK
// TracerProvider, then hand the result to the dispatcher.
//
// The following example instruments the AWS SDK for Kinesis:
//
//	import (
//		"github.com/aws/aws-sdk-go-v2/config"
//		"github.com/aws/aws-sdk-go-v2/service/kinesis"
//		"github.com/renovate-bot/awsinstr-go/awsv2"
//		"github.com/renovate-bot/awsinstr-go/instrument"
//		"github.com/renovate-bot/awsinstr-go/tracing/oteltracing"
//		"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
//		"go.opentelemetry.io/otel/sdk/trace"
//	)
//
//	func main() {
//		exporter, err := stdouttrace.New()
//		if err != nil {
//			panic(err)
//		}
//
//		cfg, err := config.LoadDefaultConfig(context.Background())
//		if err != nil {
//			panic(err)
//		}
//
//		provider := trace.NewTracerProvider(trace.WithBatcher(exporter))
//		d := instrument.New(func(o *instrument.Options) {
//			o.TracerProvider = oteltracing.Adapt(provider)
//		})
//		awsv2.AppendMiddlewares(&cfg.APIOptions, d)
//		svc := kinesis.NewFromConfig(cfg)
//		// ...
//	}
//
// # OTEL Attributes
//
// This adapter supports all attribute types used in the OTEL SDK (including
// their slice-of variants):
//   - bool
//   - int
//   - int64
//   - float64
//   - string
//
// Values of any other type are recorded as strings, through String() when
// the value implements fmt.Stringer and through %#v otherwise.
package oteltracing
