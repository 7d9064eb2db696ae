package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/scobrodev/logbook/pkg/types"
)

// GetOrCreateTag looks a tag up by its unique name and creates it with
// the default color on first use. Idempotent under the command-level
// serialization: repeated calls with the same name return the same row.
func (s *Store) GetOrCreateTag(name string) (*types.Tag, error) {
	return getOrCreateTag(s.db, name)
}

func getOrCreateTag(q execer, name string) (*types.Tag, error) {
	if name == "" {
		return nil, types.ErrInvalidData
	}

	row := q.QueryRow(
		"SELECT id, name, description, color, category, created_at, updated_at FROM tags WHERE name = ?",
		name,
	)
	tag, err := hydrateTag(row.Scan)
	if err == nil {
		return tag, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("find tag: %w", err)
	}

	return createTag(q, name, nil, nil, nil)
}

// CreateTag inserts a tag with explicit metadata. Color defaults to the
// standard tag swatch when nil.
func (s *Store) CreateTag(name string, description, color, category *string) (*types.Tag, error) {
	return createTag(s.db, name, description, color, category)
}

func createTag(q execer, name string, description, color, category *string) (*types.Tag, error) {
	if name == "" {
		return nil, types.ErrInvalidData
	}

	now := time.Now().UTC()
	tag := &types.Tag{
		ID:          newID(),
		Name:        name,
		Description: description,
		Color:       types.DefaultTagColor,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if color != nil {
		tag.Color = *color
	}

	_, err := q.Exec(
		"INSERT INTO tags (id, name, description, color, category, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		tag.ID, tag.Name, tag.Description, tag.Color, tag.Category, formatTime(now), formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert tag: %w", err)
	}
	return tag, nil
}

// GetAllTags returns every tag ordered by name.
func (s *Store) GetAllTags() ([]types.Tag, error) {
	rows, err := s.db.Query(
		"SELECT id, name, description, color, category, created_at, updated_at FROM tags ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("fetch tags: %w", err)
	}
	defer rows.Close()

	var tags []types.Tag
	for rows.Next() {
		tag, err := hydrateTag(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrate tag: %w", err)
		}
		tags = append(tags, *tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}

// UpdateTag applies the supplied fields and refreshes updated_at even
// when no other field changes. Returns ErrNotFound for an unknown id.
func (s *Store) UpdateTag(req types.UpdateTagRequest) (*types.Tag, error) {
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
	if req.Category != nil {
		set += ", category = ?"
		args = append(args, *req.Category)
	}
	args = append(args, req.ID)

	if _, err := s.db.Exec("UPDATE tags SET "+set+" WHERE id = ?", args...); err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}

	// Re-read so the caller sees the persisted row; zero rows here is
	// how a missing id surfaces.
	row := s.db.QueryRow(
		"SELECT id, name, description, color, category, created_at, updated_at FROM tags WHERE id = ?",
		req.ID,
	)
	tag, err := hydrateTag(row.Scan)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reread tag: %w", err)
	}
	return tag, nil
}

// DeleteTag removes a tag; join rows referencing it cascade away.
// Deleting a missing id is not an error.
func (s *Store) DeleteTag(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, err := s.db.Exec("DELETE FROM tags WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

func hydrateTag(scan func(dest ...any) error) (*types.Tag, error) {
	var t types.Tag
	var createdAt, updatedAt string
	if err := scan(&t.ID, &t.Name, &t.Description, &t.Color, &t.Category, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
