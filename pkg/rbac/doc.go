// Package rbac implements the authorization gate that every SpoolTrack
// request passes through.
//
// # Model
//
// A Permission is a (resource, action) pair. The policy Table maps each pair
// to an Entry: a role set, "any authenticated caller", or "anonymous
// allowed". The Gate consults the table per request and returns an
// allow/deny Decision with a reason. Pairs with no entry are denied by
// default, so forgetting to register a policy fails closed.
//
// # Defaults
//
//	read           any authenticated caller
//	create/update  admin, manager
//	delete         admin (spool delete also allows manager)
//
// # Deliberate non-features
//
// There is no decision cache and no revocation list. Authorization is
// recomputed per request from the live session and the static table, so a
// role change or session revocation takes effect on the very next request.
package rbac
