// Package tracking holds the domain records and the SQL-backed resource
// services the request handlers delegate to.
//
// Each resource type (project, work order, personnel, shipment, spool,
// inventory item) gets its own service implementing the Service interface:
// create, get-by-id, list-with-filter, partial update, delete. Services
// receive normalized payloads from pkg/validation and return typed records
// or ErrNotFound. Updates build a dynamic SET clause from the fields present
// in the payload; absent fields are left untouched (last-write-wins is
// delegated to the database, no row locking here).
//
// Queries use $N placeholders, which both lib/pq and mattn/go-sqlite3
// accept, so the same statements serve production postgres and the sqlite
// dev/test backend.
package tracking
