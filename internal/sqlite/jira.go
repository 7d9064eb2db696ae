package sqlite

import (
	"fmt"
	"time"

	"github.com/scobrodev/logbook/pkg/types"
)

// CreateJiraRef attaches an issue key to an item. There is no dedup: an
// item may carry the same key more than once. Returns ErrParentNotFound
// if the item does not exist.
func (s *Store) CreateJiraRef(itemID, jiraKey string) (*types.JiraRef, error) {
	return createJiraRef(s.db, itemID, jiraKey)
}

func createJiraRef(q execer, itemID, jiraKey string) (*types.JiraRef, error) {
	exists, err := rowExists(q, "entry_items", "id", itemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("entry item %s: %w", itemID, types.ErrParentNotFound)
	}

	now := time.Now().UTC()
	ref := &types.JiraRef{
		ID:          newID(),
		EntryItemID: itemID,
		JiraKey:     jiraKey,
		CreatedAt:   now,
	}
	_, err = q.Exec(
		"INSERT INTO jira_refs (id, entry_item_id, jira_key, created_at) VALUES (?, ?, ?, ?)",
		ref.ID, itemID, jiraKey, formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert jira ref: %w", err)
	}
	return ref, nil
}

// RemoveItemJiraRefs unconditionally clears all jira refs of an item.
func (s *Store) RemoveItemJiraRefs(itemID string) error {
	return removeItemJiraRefs(s.db, itemID)
}

func removeItemJiraRefs(q execer, itemID string) error {
	if _, err := q.Exec("DELETE FROM jira_refs WHERE entry_item_id = ?", itemID); err != nil {
		return fmt.Errorf("remove jira refs: %w", err)
	}
	return nil
}
