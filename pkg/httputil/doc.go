// Package httputil provides the response envelope, JSON/query parsing
// helpers, and shared HTTP middleware (request id, logging, panic recovery,
// CORS).
//
// The envelope invariant: success=true implies no error field, success=false
// implies no data field. Error is a string for plain failures or a
// field-error map for validation failures.
package httputil
