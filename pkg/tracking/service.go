package tracking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// ListFilter carries the optional list-endpoint filters. At most one filter
// is honored per request; each service applies the fixed precedence
// lowStock > category > status > query > none. The precedence is a design
// choice fixed by conditional order and must not be reordered.
type ListFilter struct {
	LowStock bool
	Category string
	Status   string
	Query    string
}

// Service is the per-resource data-access collaborator the request handlers
// delegate to. Create and Update receive normalized payloads from the
// validators; Get, Update and Delete return ErrNotFound for missing ids.
type Service interface {
	Create(ctx context.Context, fields map[string]interface{}) (interface{}, error)
	Get(ctx context.Context, id string) (interface{}, error)
	List(ctx context.Context, filter ListFilter) (interface{}, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (interface{}, error)
	Delete(ctx context.Context, id string) error
}

// fieldString reads a normalized payload string. Values always carry the
// type the validators accepted, so the assertion cannot fail on validated
// payloads.
func fieldString(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

// fieldFloat reads a normalized payload number
func fieldFloat(fields map[string]interface{}, key string) float64 {
	if v, ok := fields[key].(float64); ok {
		return v
	}
	return 0
}

// buildUpdate assembles a dynamic UPDATE statement from the present payload
// fields. columns maps payload field names to database columns; only mapped
// fields participate. updated_at is always set, so an empty payload is a
// valid no-op touch.
func buildUpdate(table string, id string, fields map[string]interface{}, columns map[string]string) (string, []interface{}) {
	// Deterministic column order keeps statements stable for tests and logs.
	names := make([]string, 0, len(fields))
	for name := range fields {
		if _, ok := columns[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	assignments := []string{"updated_at = $1"}
	args := []interface{}{time.Now().UTC()}

	for _, name := range names {
		args = append(args, fields[name])
		assignments = append(assignments, fmt.Sprintf("%s = $%d", columns[name], len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(assignments, ", "), len(args))

	return query, args
}

// execDelete runs a delete and maps zero affected rows to ErrNotFound
func execDelete(ctx context.Context, db *sql.DB, table, id string) error {
	result, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// execUpdate runs an update and maps zero affected rows to ErrNotFound
func execUpdate(ctx context.Context, db *sql.DB, query string, args []interface{}) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
