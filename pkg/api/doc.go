// Package api assembles the SpoolTrack HTTP surface.
//
// Every resource type gets the same five endpoints (list, create, get,
// update, delete) served by one resourceHandler per resource. Each request
// runs the fixed pipeline: authenticate (session middleware) -> authorize
// (rbac gate) -> parse body -> validate (schemas) -> delegate (tracking
// service) -> envelope. The pipeline is terminal at the first failure, and
// the status mapping is uniform: 401 no session, 403 wrong role, 400
// validation with field errors, 404 with a resource-specific message,
// 500 for anything downstream (including unparseable JSON bodies, which the
// original behavior classifies as unexpected rather than client error).
package api
