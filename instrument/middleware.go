package instrument

import (
	"context"

	"github.com/renovate-bot/awsinstr-go/middleware"
)

// MiddlewareID is the ID of the dispatcher's initialize middleware.
const MiddlewareID = "Instrument"

// Middleware returns an initialize middleware that routes the operation
// through the dispatcher. The service id, operation name and region are read
// from the context, see middleware.SetServiceID.
func (d *Dispatcher) Middleware() middleware.InitializeMiddleware {
	return middleware.InitializeMiddlewareFunc(MiddlewareID, d.handleInitialize)
}

// AddMiddleware adds the dispatcher to the front of the stack's initialize
// step, so that the span covers all other middleware.
func (d *Dispatcher) AddMiddleware(stack *middleware.Stack) error {
	return stack.Initialize.Add(d.Middleware(), middleware.Before)
}

func (d *Dispatcher) handleInitialize(ctx context.Context, in middleware.InitializeInput, next middleware.InitializeHandler) (
	out middleware.InitializeOutput, err error,
) {
	call := Call{
		ServiceID:     middleware.GetServiceID(ctx),
		OperationName: middleware.GetOperationName(ctx),
		Region:        middleware.GetRegion(ctx),
		Params:        in.Parameters,
	}

	_, err = d.InstrumentCall(ctx, call, func(ctx context.Context) (interface{}, error) {
		var err error
		out, err = next.HandleInitialize(ctx, in)
		return out.Result, err
	})
	return out, err
}
