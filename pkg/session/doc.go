// Package session establishes the caller identity for each request.
//
// Tokens are opaque (st_ prefix plus 32 random bytes, base64url) and stored
// by SHA-256 hash only. The Store interface has two implementations: a
// Redis-backed store for production and an in-memory store for dev mode and
// tests. Sessions are looked up live on every request; nothing in the
// service caches the caller, so a revoked session loses access on the very
// next request.
package session
