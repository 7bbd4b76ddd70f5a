package tracking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InventoryService provides CRUD over the inventory_items table
type InventoryService struct {
	db *sql.DB
}

// NewInventoryService creates an inventory service
func NewInventoryService(db *sql.DB) *InventoryService {
	return &InventoryService{db: db}
}

const inventoryColumns = `id, name, category, quantity, unit, min_quantity, location, created_at, updated_at`

var inventoryUpdateColumns = map[string]string{
	"name":        "name",
	"category":    "category",
	"quantity":    "quantity",
	"unit":        "unit",
	"minQuantity": "min_quantity",
	"location":    "location",
}

// Create inserts a new inventory item from a normalized payload
func (s *InventoryService) Create(ctx context.Context, fields map[string]interface{}) (interface{}, error) {
	now := time.Now().UTC()
	item := &InventoryItem{
		ID:          uuid.NewString(),
		Name:        fieldString(fields, "name"),
		Category:    fieldString(fields, "category"),
		Quantity:    fieldFloat(fields, "quantity"),
		Unit:        fieldString(fields, "unit"),
		MinQuantity: fieldFloat(fields, "minQuantity"),
		Location:    fieldString(fields, "location"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `INSERT INTO inventory_items (` + inventoryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := s.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Category, item.Quantity, item.Unit, item.MinQuantity, item.Location, item.CreatedAt, item.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	return item, nil
}

// Get fetches an inventory item by id
func (s *InventoryService) Get(ctx context.Context, id string) (interface{}, error) {
	return s.get(ctx, id)
}

func (s *InventoryService) get(ctx context.Context, id string) (*InventoryItem, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE id = $1`, id)
	return scanInventoryItem(row)
}

// List returns inventory items, honoring at most one filter in fixed
// precedence: the low-stock flag wins over category, category over free-text
// search, and with no filters the full collection is returned. The order of
// these cases is a preserved design decision; do not make it commutative.
func (s *InventoryService) List(ctx context.Context, filter ListFilter) (interface{}, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items`
	var args []interface{}

	switch {
	case filter.LowStock:
		query += ` WHERE quantity <= min_quantity`
	case filter.Category != "":
		query += ` WHERE category = $1`
		args = append(args, filter.Category)
	case filter.Query != "":
		query += ` WHERE name LIKE $1 OR category LIKE $1 OR location LIKE $1`
		args = append(args, "%"+filter.Query+"%")
	}
	query += ` ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	items := make([]*InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update applies the present payload fields and returns the updated record
func (s *InventoryService) Update(ctx context.Context, id string, fields map[string]interface{}) (interface{}, error) {
	query, args := buildUpdate("inventory_items", id, fields, inventoryUpdateColumns)
	if err := execUpdate(ctx, s.db, query, args); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// Delete removes an inventory item by id
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, s.db, "inventory_items", id)
}

func scanInventoryItem(scanner interface{ Scan(dest ...interface{}) error }) (*InventoryItem, error) {
	var item InventoryItem
	err := scanner.Scan(
		&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit, &item.MinQuantity, &item.Location, &item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan inventory item: %w", err)
	}
	return &item, nil
}
