// Package awsv2 attaches a Dispatcher to clients of the AWS SDK for Go v2.
//
// The dispatcher is added to the initialize step of every operation's
// middleware stack:
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//		return err
//	}
//	awsv2.AppendMiddlewares(&cfg.APIOptions, instrument.New(func(o *instrument.Options) {
//		o.TracerProvider = oteltracing.Adapt(otel.GetTracerProvider())
//	}))
//	client := kinesis.NewFromConfig(cfg)
package awsv2

import (
	"context"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	smithymiddleware "github.com/aws/smithy-go/middleware"
	"github.com/renovate-bot/awsinstr-go/instrument"
)

// AppendMiddlewares appends a stack mutator to apiOptions which routes every
// operation through d.
func AppendMiddlewares(apiOptions *[]func(*smithymiddleware.Stack) error, d *instrument.Dispatcher) {
	*apiOptions = append(*apiOptions, func(stack *smithymiddleware.Stack) error {
		return AddMiddleware(stack, d)
	})
}

// AddMiddleware adds d after the operation's existing initialize middleware,
// once the SDK has recorded the service and operation on the context.
func AddMiddleware(stack *smithymiddleware.Stack, d *instrument.Dispatcher) error {
	return stack.Initialize.Add(Middleware(d), smithymiddleware.After)
}

// Middleware returns the initialize middleware routing operations through d.
func Middleware(d *instrument.Dispatcher) smithymiddleware.InitializeMiddleware {
	m := initializeMiddleware{dispatcher: d}
	return smithymiddleware.InitializeMiddlewareFunc(instrument.MiddlewareID, m.HandleInitialize)
}

type initializeMiddleware struct {
	dispatcher *instrument.Dispatcher
}

func (m initializeMiddleware) HandleInitialize(
	ctx context.Context, in smithymiddleware.InitializeInput, next smithymiddleware.InitializeHandler,
) (
	out smithymiddleware.InitializeOutput, metadata smithymiddleware.Metadata, err error,
) {
	call := instrument.Call{
		ServiceID:     awsmiddleware.GetServiceID(ctx),
		OperationName: awsmiddleware.GetOperationName(ctx),
		Region:        awsmiddleware.GetRegion(ctx),
		Params:        in.Parameters,
		RequestID: func() string {
			id, _ := awsmiddleware.GetRequestIDMetadata(metadata)
			return id
		},
	}

	_, err = m.dispatcher.InstrumentCall(ctx, call, func(ctx context.Context) (interface{}, error) {
		var err error
		out, metadata, err = next.HandleInitialize(ctx, in)
		return out.Result, err
	})
	return out, metadata, err
}
