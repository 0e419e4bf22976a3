// Package request normalizes the parameters of an intercepted operation into
// a uniform, read-only shape that service extensions inspect.
//
// Normalization never fails. Parameters that cannot be converted are treated
// as absent, so a malformed input yields an empty document rather than an
// error surfaced to the caller of the operation.
//
// Fields are addressed with JMESPath expressions against the normalized
// document, using the Go field names of the SDK's input and output shapes:
//
//	name, ok := req.Input().String("StreamName")
//	tables, ok := req.Input().Strings("keys(RequestItems)")
package request
