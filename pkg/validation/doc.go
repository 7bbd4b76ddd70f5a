// Package validation holds the declarative payload schemas for every
// resource type.
//
// Each resource defines a create schema (domain-required fields mandatory,
// optional fields defaulted) and an update schema derived from it (every
// field optional, same constraints). Validation is all-or-nothing: a payload
// either normalizes completely or produces a field-error map and no output.
// Unknown payload fields are dropped, never rejected. Validation performs no
// I/O; malformed JSON never reaches this package.
package validation
