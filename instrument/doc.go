// Package instrument implements the dispatcher that turns each intercepted
// operation call into a span classified by the service's extension.
//
// The dispatcher is fail-open. A panicking extension hook is logged at debug
// level and replaced with the default classification; the underlying call
// always runs, and its output and error are returned to the caller unchanged.
package instrument
