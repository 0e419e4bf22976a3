package middleware

import (
	"context"

	"github.com/renovate-bot/awsinstr-go/logging"
)

type (
	serviceIDKey     struct{}
	operationNameKey struct{}
	regionKey        struct{}
	loggerKey        struct{}
	middlewareIDsKey struct{}
)

// GetServiceID retrieves the service id of the operation being invoked.
func GetServiceID(ctx context.Context) (v string) {
	v, _ = ctx.Value(serviceIDKey{}).(string)
	return v
}

// SetServiceID sets the service id of the operation being invoked.
func SetServiceID(ctx context.Context, value string) context.Context {
	return context.WithValue(ctx, serviceIDKey{}, value)
}

// GetOperationName retrieves the name of the operation being invoked.
func GetOperationName(ctx context.Context) (v string) {
	v, _ = ctx.Value(operationNameKey{}).(string)
	return v
}

// SetOperationName sets the name of the operation being invoked.
func SetOperationName(ctx context.Context, value string) context.Context {
	return context.WithValue(ctx, operationNameKey{}, value)
}

// GetRegion retrieves the region the operation is sent to.
func GetRegion(ctx context.Context) (v string) {
	v, _ = ctx.Value(regionKey{}).(string)
	return v
}

// SetRegion sets the region the operation is sent to.
func SetRegion(ctx context.Context, value string) context.Context {
	return context.WithValue(ctx, regionKey{}, value)
}

// GetLogger takes a context to retrieve a Logger from. If no logger is present on the context a logging.Noop logger
// is returned. If the logger retrieved from context supports the ContextLogger interface, the context will be passed
// to the WithContext method and the resulting logger will be returned. Otherwise the stored logger is returned as is.
func GetLogger(ctx context.Context) logging.Logger {
	logger, ok := ctx.Value(loggerKey{}).(logging.Logger)
	if !ok || logger == nil {
		return logging.Noop{}
	}

	return logging.WithContext(ctx, logger)
}

// SetLogger sets the provided logger value on the provided ctx.
func SetLogger(ctx context.Context, logger logging.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetMiddlewareIDs returns the IDs of the middleware the context has passed
// through, in invocation order.
func GetMiddlewareIDs(ctx context.Context) []string {
	v, _ := ctx.Value(middlewareIDsKey{}).([]string)
	return v
}

// AddMiddlewareID records that the context has passed through the
// middleware identified by id.
func AddMiddlewareID(ctx context.Context, id string) context.Context {
	ids := GetMiddlewareIDs(ctx)
	next := make([]string, len(ids), len(ids)+1)
	copy(next, ids)
	return context.WithValue(ctx, middlewareIDsKey{}, append(next, id))
}
