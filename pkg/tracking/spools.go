package tracking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SpoolService provides CRUD over the spools table
type SpoolService struct {
	db *sql.DB
}

// NewSpoolService creates a spool service
func NewSpoolService(db *sql.DB) *SpoolService {
	return &SpoolService{db: db}
}

const spoolColumns = `id, spool_number, work_order_id, material, diameter_inches, status, drawing_number, created_at, updated_at`

var spoolUpdateColumns = map[string]string{
	"spoolNumber":    "spool_number",
	"workOrderId":    "work_order_id",
	"material":       "material",
	"diameterInches": "diameter_inches",
	"status":         "status",
	"drawingNumber":  "drawing_number",
}

// Create inserts a new spool from a normalized payload
func (s *SpoolService) Create(ctx context.Context, fields map[string]interface{}) (interface{}, error) {
	now := time.Now().UTC()
	sp := &Spool{
		ID:             uuid.NewString(),
		SpoolNumber:    fieldString(fields, "spoolNumber"),
		WorkOrderID:    fieldString(fields, "workOrderId"),
		Material:       fieldString(fields, "material"),
		DiameterInches: fieldFloat(fields, "diameterInches"),
		Status:         fieldString(fields, "status"),
		DrawingNumber:  fieldString(fields, "drawingNumber"),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	query := `INSERT INTO spools (` + spoolColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := s.db.ExecContext(ctx, query,
		sp.ID, sp.SpoolNumber, sp.WorkOrderID, sp.Material, sp.DiameterInches, sp.Status, sp.DrawingNumber, sp.CreatedAt, sp.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create spool: %w", err)
	}

	return sp, nil
}

// Get fetches a spool by id
func (s *SpoolService) Get(ctx context.Context, id string) (interface{}, error) {
	return s.get(ctx, id)
}

func (s *SpoolService) get(ctx context.Context, id string) (*Spool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+spoolColumns+` FROM spools WHERE id = $1`, id)
	return scanSpool(row)
}

// List returns spools, honoring at most one filter: status, then free-text
// search on number, material and drawing number, then the full collection.
func (s *SpoolService) List(ctx context.Context, filter ListFilter) (interface{}, error) {
	query := `SELECT ` + spoolColumns + ` FROM spools`
	var args []interface{}

	switch {
	case filter.Status != "":
		query += ` WHERE status = $1`
		args = append(args, filter.Status)
	case filter.Query != "":
		query += ` WHERE spool_number LIKE $1 OR material LIKE $1 OR drawing_number LIKE $1`
		args = append(args, "%"+filter.Query+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list spools: %w", err)
	}
	defer rows.Close()

	spools := make([]*Spool, 0)
	for rows.Next() {
		sp, err := scanSpool(rows)
		if err != nil {
			return nil, err
		}
		spools = append(spools, sp)
	}
	return spools, rows.Err()
}

// Update applies the present payload fields and returns the updated record
func (s *SpoolService) Update(ctx context.Context, id string, fields map[string]interface{}) (interface{}, error) {
	query, args := buildUpdate("spools", id, fields, spoolUpdateColumns)
	if err := execUpdate(ctx, s.db, query, args); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// Delete removes a spool by id
func (s *SpoolService) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, s.db, "spools", id)
}

func scanSpool(scanner interface{ Scan(dest ...interface{}) error }) (*Spool, error) {
	var sp Spool
	err := scanner.Scan(
		&sp.ID, &sp.SpoolNumber, &sp.WorkOrderID, &sp.Material, &sp.DiameterInches, &sp.Status, &sp.DrawingNumber, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan spool: %w", err)
	}
	return &sp, nil
}
