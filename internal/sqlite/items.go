package sqlite

import (
	"fmt"
	"time"

	"github.com/scobrodev/logbook/pkg/types"
)

// CreateEntryItem inserts an item under an existing entry. Returns
// ErrParentNotFound if the entry does not exist.
func (s *Store) CreateEntryItem(entryID, itemType, content string, project *string) (*types.EntryItem, error) {
	return createEntryItem(s.db, entryID, itemType, content, project)
}

func createEntryItem(q execer, entryID, itemType, content string, project *string) (*types.EntryItem, error) {
	exists, err := rowExists(q, "entries", "id", entryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("entry %s: %w", entryID, types.ErrParentNotFound)
	}

	now := time.Now().UTC()
	item := &types.EntryItem{
		ID:        newID(),
		EntryID:   entryID,
		ItemType:  itemType,
		Content:   content,
		Project:   project,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = q.Exec(
		"INSERT INTO entry_items (id, entry_id, item_type, content, project, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		item.ID, entryID, itemType, content, project, formatTime(now), formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert entry item: %w", err)
	}
	return item, nil
}

// UpdateEntryItem applies a partial update to an item and replaces its
// relation sets where the request supplies them, all inside one
// transaction. Returns ErrNotFound if the item does not exist.
func (s *Store) UpdateEntryItem(itemID string, updates types.UpdateEntryItemRequest) error {
	if itemID == "" {
		return types.ErrInvalidID
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := rowExists(tx, "entry_items", "id", itemID)
	if err != nil {
		return err
	}
	if !exists {
		return types.ErrNotFound
	}

	now := formatTime(time.Now().UTC())

	if updates.Content != nil {
		if _, err := tx.Exec("UPDATE entry_items SET content = ?, updated_at = ? WHERE id = ?", *updates.Content, now, itemID); err != nil {
			return fmt.Errorf("update item content: %w", err)
		}
	}
	if updates.Project != nil {
		if _, err := tx.Exec("UPDATE entry_items SET project = ?, updated_at = ? WHERE id = ?", *updates.Project, now, itemID); err != nil {
			return fmt.Errorf("update item project: %w", err)
		}
	}

	// Replace-set semantics: a present array clears the existing
	// relations of that kind and relinks the new set.
	if updates.Tags != nil {
		if err := removeItemTags(tx, itemID); err != nil {
			return err
		}
		for _, name := range *updates.Tags {
			tag, err := getOrCreateTag(tx, name)
			if err != nil {
				return err
			}
			if err := linkItemTag(tx, itemID, tag.ID); err != nil {
				return err
			}
		}
	}
	if updates.People != nil {
		if err := removeItemPeople(tx, itemID); err != nil {
			return err
		}
		for _, name := range *updates.People {
			person, err := getOrCreatePerson(tx, name)
			if err != nil {
				return err
			}
			if err := linkItemPerson(tx, itemID, person.ID); err != nil {
				return err
			}
		}
	}
	if updates.Jira != nil {
		if err := removeItemJiraRefs(tx, itemID); err != nil {
			return err
		}
		for _, key := range *updates.Jira {
			if _, err := createJiraRef(tx, itemID, key); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing item update: %w", err)
	}
	return nil
}

// UpdateItemContent rewrites an item's content and refreshes
// updated_at. Returns ErrNotFound for an unknown id.
func (s *Store) UpdateItemContent(itemID, content string) error {
	return s.updateItemField(itemID, "content", content)
}

// UpdateItemProject rewrites an item's denormalized project name.
// Returns ErrNotFound for an unknown id.
func (s *Store) UpdateItemProject(itemID string, project *string) error {
	return s.updateItemField(itemID, "project", project)
}

func (s *Store) updateItemField(itemID, column string, value any) error {
	if itemID == "" {
		return types.ErrInvalidID
	}
	res, err := s.db.Exec(
		"UPDATE entry_items SET "+column+" = ?, updated_at = ? WHERE id = ?",
		value, formatTime(time.Now().UTC()), itemID,
	)
	if err != nil {
		return fmt.Errorf("update item %s: %w", column, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item %s: %w", column, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeleteEntryItem removes an item; cascades delete its jira refs and
// join rows, and any meeting action pointing at it keeps its row with
// entry_item_id nulled. Deleting a missing id is not an error.
func (s *Store) DeleteEntryItem(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, err := s.db.Exec("DELETE FROM entry_items WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete entry item: %w", err)
	}
	return nil
}

// hydrateEntryItem scans one entry_items row.
func hydrateEntryItem(scan func(dest ...any) error) (*types.EntryItem, error) {
	var it types.EntryItem
	var createdAt, updatedAt string
	if err := scan(&it.ID, &it.EntryID, &it.ItemType, &it.Content, &it.Project, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if it.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if it.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}
