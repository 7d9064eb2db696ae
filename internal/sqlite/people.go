package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/scobrodev/logbook/pkg/types"
)

// GetOrCreatePerson looks a person up by unique name, creating the row
// on first use. Same idempotence contract as GetOrCreateTag.
func (s *Store) GetOrCreatePerson(name string) (*types.Person, error) {
	return getOrCreatePerson(s.db, name)
}

func getOrCreatePerson(q execer, name string) (*types.Person, error) {
	if name == "" {
		return nil, types.ErrInvalidData
	}

	var p types.Person
	var createdAt string
	err := q.QueryRow(
		"SELECT id, name, created_at FROM people WHERE name = ?", name,
	).Scan(&p.ID, &p.Name, &createdAt)
	if err == nil {
		if p.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("find person: %w", err)
	}

	now := time.Now().UTC()
	p = types.Person{ID: newID(), Name: name, CreatedAt: now}
	_, err = q.Exec(
		"INSERT INTO people (id, name, created_at) VALUES (?, ?, ?)",
		p.ID, p.Name, formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert person: %w", err)
	}
	return &p, nil
}

// GetAllPeople returns every person ordered by name.
func (s *Store) GetAllPeople() ([]types.Person, error) {
	rows, err := s.db.Query("SELECT id, name, created_at FROM people ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("fetch people: %w", err)
	}
	defer rows.Close()

	var people []types.Person
	for rows.Next() {
		var p types.Person
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("hydrate person: %w", err)
		}
		if p.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate people: %w", err)
	}
	return people, nil
}
