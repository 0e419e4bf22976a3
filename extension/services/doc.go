// Package services provides the extensions for the AWS services whose calls
// carry more than the default client classification.
//
// Extensions for messaging services classify sends as PRODUCER spans and
// receives as CONSUMER spans marked incoming. All other services are CLIENT.
// Attributes are recorded only for request fields that are present and
// non-empty.
package services
