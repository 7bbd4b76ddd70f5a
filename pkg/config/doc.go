// Package config loads application configuration from SPOOLTRACK_*
// environment variables with sensible dev-mode defaults (sqlite database,
// in-memory sessions). Production deployments set the postgres driver and a
// Redis address; Validate enforces that pairing.
package config
