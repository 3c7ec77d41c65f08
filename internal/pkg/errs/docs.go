// Package errs provides the typed errors shared by the domain, application and adapter layers.
//
// Every type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange,
// ErrObjectNotFound) with a struct carrying the offending parameter and an optional cause.
// Unwrap returns the sentinel, so callers classify failures with errors.Is and the HTTP
// adapter maps them to status codes without string matching.
package errs
