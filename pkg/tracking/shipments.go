package tracking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ShipmentService provides CRUD over the shipments table
type ShipmentService struct {
	db *sql.DB
}

// NewShipmentService creates a shipment service
func NewShipmentService(db *sql.DB) *ShipmentService {
	return &ShipmentService{db: db}
}

const shipmentColumns = `id, shipment_number, destination, status, carrier, shipped_at, work_order_id, created_at, updated_at`

var shipmentUpdateColumns = map[string]string{
	"shipmentNumber": "shipment_number",
	"destination":    "destination",
	"status":         "status",
	"carrier":        "carrier",
	"shippedAt":      "shipped_at",
	"workOrderId":    "work_order_id",
}

// Create inserts a new shipment from a normalized payload
func (s *ShipmentService) Create(ctx context.Context, fields map[string]interface{}) (interface{}, error) {
	now := time.Now().UTC()
	sh := &Shipment{
		ID:             uuid.NewString(),
		ShipmentNumber: fieldString(fields, "shipmentNumber"),
		Destination:    fieldString(fields, "destination"),
		Status:         fieldString(fields, "status"),
		Carrier:        fieldString(fields, "carrier"),
		ShippedAt:      fieldString(fields, "shippedAt"),
		WorkOrderID:    fieldString(fields, "workOrderId"),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	query := `INSERT INTO shipments (` + shipmentColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := s.db.ExecContext(ctx, query,
		sh.ID, sh.ShipmentNumber, sh.Destination, sh.Status, sh.Carrier, sh.ShippedAt, sh.WorkOrderID, sh.CreatedAt, sh.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create shipment: %w", err)
	}

	return sh, nil
}

// Get fetches a shipment by id
func (s *ShipmentService) Get(ctx context.Context, id string) (interface{}, error) {
	return s.get(ctx, id)
}

func (s *ShipmentService) get(ctx context.Context, id string) (*Shipment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id = $1`, id)
	return scanShipment(row)
}

// List returns shipments, honoring at most one filter: status, then
// free-text search on number and destination, then the full collection.
func (s *ShipmentService) List(ctx context.Context, filter ListFilter) (interface{}, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments`
	var args []interface{}

	switch {
	case filter.Status != "":
		query += ` WHERE status = $1`
		args = append(args, filter.Status)
	case filter.Query != "":
		query += ` WHERE shipment_number LIKE $1 OR destination LIKE $1`
		args = append(args, "%"+filter.Query+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	defer rows.Close()

	shipments := make([]*Shipment, 0)
	for rows.Next() {
		sh, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, sh)
	}
	return shipments, rows.Err()
}

// Update applies the present payload fields and returns the updated record
func (s *ShipmentService) Update(ctx context.Context, id string, fields map[string]interface{}) (interface{}, error) {
	query, args := buildUpdate("shipments", id, fields, shipmentUpdateColumns)
	if err := execUpdate(ctx, s.db, query, args); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// Delete removes a shipment by id
func (s *ShipmentService) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, s.db, "shipments", id)
}

func scanShipment(scanner interface{ Scan(dest ...interface{}) error }) (*Shipment, error) {
	var sh Shipment
	err := scanner.Scan(
		&sh.ID, &sh.ShipmentNumber, &sh.Destination, &sh.Status, &sh.Carrier, &sh.ShippedAt, &sh.WorkOrderID, &sh.CreatedAt, &sh.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan shipment: %w", err)
	}
	return &sh, nil
}
