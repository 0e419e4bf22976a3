// Package awsinstr classifies outgoing AWS SDK calls into tracing spans.
//
// Each intercepted operation is normalized into a uniform request record,
// matched against a per-service extension that decides the span kind and the
// resource attributes to record, and then executed under a span started from
// that classification. Classification never alters the underlying call: hook
// failures fall back to a default classification and the call's own output
// and error are returned unchanged.
//
// The root package holds the immutable attribute set shared by the
// extension, instrument and tracing packages. See the instrument package for
// the dispatcher, and the awsv2 package for wiring into aws-sdk-go-v2
// clients.
package awsinstr
