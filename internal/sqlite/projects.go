package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/scobrodev/logbook/pkg/types"
)

// CreateProject inserts a project. Color defaults to the standard
// project swatch when nil.
func (s *Store) CreateProject(name string, description, color *string) (*types.Project, error) {
	if name == "" {
		return nil, types.ErrInvalidData
	}

	now := time.Now().UTC()
	project := &types.Project{
		ID:          newID(),
		Name:        name,
		Description: description,
		Color:       types.DefaultProjectColor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if color != nil {
		project.Color = *color
	}

	_, err := s.db.Exec(
		"INSERT INTO projects (id, name, description, color, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		project.ID, project.Name, project.Description, project.Color, formatTime(now), formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return project, nil
}

// GetAllProjects returns every project ordered by name.
func (s *Store) GetAllProjects() ([]types.Project, error) {
	rows, err := s.db.Query(
		"SELECT id, name, description, color, created_at, updated_at FROM projects ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		project, err := hydrateProject(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrate project: %w", err)
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// UpdateProject applies the supplied fields and refreshes updated_at
// even when no other field changes. Returns ErrNotFound for an unknown
// id.
func (s *Store) UpdateProject(req types.UpdateProjectRequest) (*types.Project, error) {
	if req.ID == "" {
		return nil, types.ErrInvalidID
	}

	set := "updated_at = ?"
	args := []any{formatTime(time.Now().UTC())}
	if req.Name != nil {
		set += ", name = ?"
		args = append(args, *req.Name)
	}
	if req.Description != nil {
		set += ", description = ?"
		args = append(args, *req.Description)
	}
	if req.Color != nil {
		set += ", color = ?"
		args = append(args, *req.Color)
	}
	args = append(args, req.ID)

	if _, err := s.db.Exec("UPDATE projects SET "+set+" WHERE id = ?", args...); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	row := s.db.QueryRow(
		"SELECT id, name, description, color, created_at, updated_at FROM projects WHERE id = ?",
		req.ID,
	)
	project, err := hydrateProject(row.Scan)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reread project: %w", err)
	}
	return project, nil
}

// DeleteProject removes a project. Entry items referring to it by name
// are untouched: the project field is denormalized free text, not a
// foreign key. Deleting a missing id is not an error.
func (s *Store) DeleteProject(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, err := s.db.Exec("DELETE FROM projects WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func hydrateProject(scan func(dest ...any) error) (*types.Project, error) {
	var p types.Project
	var createdAt, updatedAt string
	if err := scan(&p.ID, &p.Name, &p.Description, &p.Color, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
