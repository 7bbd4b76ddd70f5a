package tracking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WorkOrderService provides CRUD over the work_orders table
type WorkOrderService struct {
	db *sql.DB
}

// NewWorkOrderService creates a work-order service
func NewWorkOrderService(db *sql.DB) *WorkOrderService {
	return &WorkOrderService{db: db}
}

const workOrderColumns = `id, order_number, project_id, status, priority, due_date, notes, created_at, updated_at`

var workOrderUpdateColumns = map[string]string{
	"orderNumber": "order_number",
	"projectId":   "project_id",
	"status":      "status",
	"priority":    "priority",
	"dueDate":     "due_date",
	"notes":       "notes",
}

// Create inserts a new work order from a normalized payload
func (s *WorkOrderService) Create(ctx context.Context, fields map[string]interface{}) (interface{}, error) {
	now := time.Now().UTC()
	wo := &WorkOrder{
		ID:          uuid.NewString(),
		OrderNumber: fieldString(fields, "orderNumber"),
		ProjectID:   fieldString(fields, "projectId"),
		Status:      fieldString(fields, "status"),
		Priority:    fieldString(fields, "priority"),
		DueDate:     fieldString(fields, "dueDate"),
		Notes:       fieldString(fields, "notes"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `INSERT INTO work_orders (` + workOrderColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := s.db.ExecContext(ctx, query,
		wo.ID, wo.OrderNumber, wo.ProjectID, wo.Status, wo.Priority, wo.DueDate, wo.Notes, wo.CreatedAt, wo.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}

	return wo, nil
}

// Get fetches a work order by id
func (s *WorkOrderService) Get(ctx context.Context, id string) (interface{}, error) {
	return s.get(ctx, id)
}

func (s *WorkOrderService) get(ctx context.Context, id string) (*WorkOrder, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+workOrderColumns+` FROM work_orders WHERE id = $1`, id)
	return scanWorkOrder(row)
}

// List returns work orders, honoring at most one filter: status, then
// free-text search on the order number, then the full collection.
func (s *WorkOrderService) List(ctx context.Context, filter ListFilter) (interface{}, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders`
	var args []interface{}

	switch {
	case filter.Status != "":
		query += ` WHERE status = $1`
		args = append(args, filter.Status)
	case filter.Query != "":
		query += ` WHERE order_number LIKE $1 OR notes LIKE $1`
		args = append(args, "%"+filter.Query+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*WorkOrder, 0)
	for rows.Next() {
		wo, err := scanWorkOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, wo)
	}
	return orders, rows.Err()
}

// Update applies the present payload fields and returns the updated record
func (s *WorkOrderService) Update(ctx context.Context, id string, fields map[string]interface{}) (interface{}, error) {
	query, args := buildUpdate("work_orders", id, fields, workOrderUpdateColumns)
	if err := execUpdate(ctx, s.db, query, args); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// Delete removes a work order by id
func (s *WorkOrderService) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, s.db, "work_orders", id)
}

func scanWorkOrder(scanner interface{ Scan(dest ...interface{}) error }) (*WorkOrder, error) {
	var wo WorkOrder
	err := scanner.Scan(
		&wo.ID, &wo.OrderNumber, &wo.ProjectID, &wo.Status, &wo.Priority, &wo.DueDate, &wo.Notes, &wo.CreatedAt, &wo.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan work order: %w", err)
	}
	return &wo, nil
}
