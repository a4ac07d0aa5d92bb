// Package errs defines the HTTP error taxonomy returned by handlers.
//
// Every failure that reaches a client is an *HTTPError: validation (400),
// not found (404), or a store failure (500) with a generic message. The
// global error handler serializes it into the failure envelope.
package errs
