package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/scobrodev/logbook/pkg/types"
)

// AllEntriesWithItems reassembles every entry tree: entries ordered by
// event timestamp descending, items within an entry by creation time
// ascending, and each item's tags, people, and jira refs fetched
// independently. The per-item fan-out is deliberate; at logbook scale
// it beats the complexity of a batched join.
func (s *Store) AllEntriesWithItems() ([]types.EntryWithItems, error) {
	rows, err := s.db.Query(
		"SELECT id, timestamp, created_at, updated_at FROM entries ORDER BY timestamp DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("fetch entries: %w", err)
	}
	defer rows.Close()

	var entries []types.Entry
	for rows.Next() {
		entry, err := hydrateEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrate entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	result := make([]types.EntryWithItems, 0, len(entries))
	for _, entry := range entries {
		items, err := s.entryItemsWithRelations(entry.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, types.EntryWithItems{Entry: entry, Items: items})
	}
	return result, nil
}

// EntryWithItemsByItem resolves the entry owning the given item and
// aggregates it. Used to read back a fresh, consistent view right
// after a partial item update. Returns ErrNotFound for an unknown item.
func (s *Store) EntryWithItemsByItem(itemID string) (*types.EntryWithItems, error) {
	if itemID == "" {
		return nil, types.ErrInvalidID
	}

	var entryID string
	err := s.db.QueryRow("SELECT entry_id FROM entry_items WHERE id = ?", itemID).Scan(&entryID)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve item entry: %w", err)
	}

	row := s.db.QueryRow(
		"SELECT id, timestamp, created_at, updated_at FROM entries WHERE id = ?", entryID,
	)
	entry, err := hydrateEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("hydrate entry: %w", err)
	}

	// Only the requested item, still with full relations.
	row = s.db.QueryRow(
		"SELECT id, entry_id, item_type, content, project, created_at, updated_at FROM entry_items WHERE id = ?",
		itemID,
	)
	item, err := hydrateEntryItem(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("hydrate entry item: %w", err)
	}

	withRel, err := s.itemWithRelations(*item)
	if err != nil {
		return nil, err
	}

	return &types.EntryWithItems{
		Entry: *entry,
		Items: []types.ItemWithRelations{withRel},
	}, nil
}

// entryItemsWithRelations loads an entry's items in creation order and
// attaches their relations.
func (s *Store) entryItemsWithRelations(entryID string) ([]types.ItemWithRelations, error) {
	rows, err := s.db.Query(
		"SELECT id, entry_id, item_type, content, project, created_at, updated_at FROM entry_items WHERE entry_id = ? ORDER BY created_at",
		entryID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch entry items: %w", err)
	}
	defer rows.Close()

	var items []types.EntryItem
	for rows.Next() {
		item, err := hydrateEntryItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrate entry item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entry items: %w", err)
	}

	result := make([]types.ItemWithRelations, 0, len(items))
	for _, item := range items {
		withRel, err := s.itemWithRelations(item)
		if err != nil {
			return nil, err
		}
		result = append(result, withRel)
	}
	return result, nil
}

func (s *Store) itemWithRelations(item types.EntryItem) (types.ItemWithRelations, error) {
	tags, err := itemTags(s.db, item.ID)
	if err != nil {
		return types.ItemWithRelations{}, err
	}
	people, err := itemPeople(s.db, item.ID)
	if err != nil {
		return types.ItemWithRelations{}, err
	}
	refs, err := itemJiraRefs(s.db, item.ID)
	if err != nil {
		return types.ItemWithRelations{}, err
	}
	return types.ItemWithRelations{Item: item, Tags: tags, People: people, JiraRefs: refs}, nil
}

func hydrateEntry(scan func(dest ...any) error) (*types.Entry, error) {
	var e types.Entry
	var timestamp, createdAt, updatedAt string
	if err := scan(&e.ID, &timestamp, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if e.Timestamp, err = parseTime(timestamp); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
