package tracking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProjectService provides CRUD over the projects table
type ProjectService struct {
	db *sql.DB
}

// NewProjectService creates a project service
func NewProjectService(db *sql.DB) *ProjectService {
	return &ProjectService{db: db}
}

const projectColumns = `id, name, client, status, start_date, end_date, description, created_at, updated_at`

var projectUpdateColumns = map[string]string{
	"name":        "name",
	"client":      "client",
	"status":      "status",
	"startDate":   "start_date",
	"endDate":     "end_date",
	"description": "description",
}

// Create inserts a new project from a normalized payload
func (s *ProjectService) Create(ctx context.Context, fields map[string]interface{}) (interface{}, error) {
	now := time.Now().UTC()
	p := &Project{
		ID:          uuid.NewString(),
		Name:        fieldString(fields, "name"),
		Client:      fieldString(fields, "client"),
		Status:      fieldString(fields, "status"),
		StartDate:   fieldString(fields, "startDate"),
		EndDate:     fieldString(fields, "endDate"),
		Description: fieldString(fields, "description"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `INSERT INTO projects (` + projectColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := s.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Client, p.Status, p.StartDate, p.EndDate, p.Description, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// Get fetches a project by id
func (s *ProjectService) Get(ctx context.Context, id string) (interface{}, error) {
	return s.get(ctx, id)
}

func (s *ProjectService) get(ctx context.Context, id string) (*Project, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

// List returns projects, honoring at most one filter: status, then free-text
// search on name and client, then the full collection.
func (s *ProjectService) List(ctx context.Context, filter ListFilter) (interface{}, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	var args []interface{}

	switch {
	case filter.Status != "":
		query += ` WHERE status = $1`
		args = append(args, filter.Status)
	case filter.Query != "":
		query += ` WHERE name LIKE $1 OR client LIKE $1`
		args = append(args, "%"+filter.Query+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Update applies the present payload fields and returns the updated record
func (s *ProjectService) Update(ctx context.Context, id string, fields map[string]interface{}) (interface{}, error) {
	query, args := buildUpdate("projects", id, fields, projectUpdateColumns)
	if err := execUpdate(ctx, s.db, query, args); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// Delete removes a project by id
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, s.db, "projects", id)
}

func scanProject(scanner interface{ Scan(dest ...interface{}) error }) (*Project, error) {
	var p Project
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Client, &p.Status, &p.StartDate, &p.EndDate, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	return &p, nil
}
