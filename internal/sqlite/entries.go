package sqlite

import (
	"fmt"
	"time"

	"github.com/scobrodev/logbook/pkg/types"
)

// CreateEntry inserts a new entry with the caller-supplied event time.
func (s *Store) CreateEntry(timestamp time.Time) (*types.Entry, error) {
	return createEntry(s.db, timestamp)
}

func createEntry(q execer, timestamp time.Time) (*types.Entry, error) {
	now := time.Now().UTC()
	entry := &types.Entry{
		ID:        newID(),
		Timestamp: timestamp.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := q.Exec(
		"INSERT INTO entries (id, timestamp, created_at, updated_at) VALUES (?, ?, ?, ?)",
		entry.ID, formatTime(entry.Timestamp), formatTime(now), formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}
	return entry, nil
}

// CreateEntryWithItems creates an entry together with its items, their
// tag and person links (names resolved via get-or-create), and their
// jira refs, all inside one transaction. Partial failure rolls the
// whole command back.
func (s *Store) CreateEntryWithItems(timestamp time.Time, items []types.CreateItemRequest) (*types.Entry, []types.EntryItem, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	entry, err := createEntry(tx, timestamp)
	if err != nil {
		return nil, nil, err
	}

	created := make([]types.EntryItem, 0, len(items))
	for _, req := range items {
		item, err := createEntryItem(tx, entry.ID, req.ItemType, req.Content, req.Project)
		if err != nil {
			return nil, nil, err
		}

		for _, name := range req.Tags {
			tag, err := getOrCreateTag(tx, name)
			if err != nil {
				return nil, nil, err
			}
			if err := linkItemTag(tx, item.ID, tag.ID); err != nil {
				return nil, nil, err
			}
		}
		for _, name := range req.People {
			person, err := getOrCreatePerson(tx, name)
			if err != nil {
				return nil, nil, err
			}
			if err := linkItemPerson(tx, item.ID, person.ID); err != nil {
				return nil, nil, err
			}
		}
		for _, key := range req.Jira {
			if _, err := createJiraRef(tx, item.ID, key); err != nil {
				return nil, nil, err
			}
		}

		created = append(created, *item)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing entry: %w", err)
	}
	return entry, created, nil
}

// DeleteEntry removes an entry and, through the cascade rules, all its
// items, their jira refs, and their join rows. Deleting a missing id is
// not an error.
func (s *Store) DeleteEntry(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}
