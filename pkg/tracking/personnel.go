package tracking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PersonnelService provides CRUD over the personnel table
type PersonnelService struct {
	db *sql.DB
}

// NewPersonnelService creates a personnel service
func NewPersonnelService(db *sql.DB) *PersonnelService {
	return &PersonnelService{db: db}
}

const personnelColumns = `id, first_name, last_name, title, phone, hired_at, created_at, updated_at`

var personnelUpdateColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"title":     "title",
	"phone":     "phone",
	"hiredAt":   "hired_at",
}

// Create inserts a new personnel record from a normalized payload
func (s *PersonnelService) Create(ctx context.Context, fields map[string]interface{}) (interface{}, error) {
	now := time.Now().UTC()
	p := &Personnel{
		ID:        uuid.NewString(),
		FirstName: fieldString(fields, "firstName"),
		LastName:  fieldString(fields, "lastName"),
		Title:     fieldString(fields, "title"),
		Phone:     fieldString(fields, "phone"),
		HiredAt:   fieldString(fields, "hiredAt"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `INSERT INTO personnel (` + personnelColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := s.db.ExecContext(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Title, p.Phone, p.HiredAt, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create personnel record: %w", err)
	}

	return p, nil
}

// Get fetches a personnel record by id
func (s *PersonnelService) Get(ctx context.Context, id string) (interface{}, error) {
	return s.get(ctx, id)
}

func (s *PersonnelService) get(ctx context.Context, id string) (*Personnel, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+personnelColumns+` FROM personnel WHERE id = $1`, id)
	return scanPersonnel(row)
}

// List returns personnel, honoring free-text search on names and title
func (s *PersonnelService) List(ctx context.Context, filter ListFilter) (interface{}, error) {
	query := `SELECT ` + personnelColumns + ` FROM personnel`
	var args []interface{}

	if filter.Query != "" {
		query += ` WHERE first_name LIKE $1 OR last_name LIKE $1 OR title LIKE $1`
		args = append(args, "%"+filter.Query+"%")
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}
	defer rows.Close()

	people := make([]*Personnel, 0)
	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

// Update applies the present payload fields and returns the updated record
func (s *PersonnelService) Update(ctx context.Context, id string, fields map[string]interface{}) (interface{}, error) {
	query, args := buildUpdate("personnel", id, fields, personnelUpdateColumns)
	if err := execUpdate(ctx, s.db, query, args); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// Delete removes a personnel record by id
func (s *PersonnelService) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, s.db, "personnel", id)
}

func scanPersonnel(scanner interface{ Scan(dest ...interface{}) error }) (*Personnel, error) {
	var p Personnel
	err := scanner.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Title, &p.Phone, &p.HiredAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan personnel record: %w", err)
	}
	return &p, nil
}
