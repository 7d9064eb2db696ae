package sqlite

import (
	"fmt"

	"github.com/scobrodev/logbook/pkg/types"
)

// LinkItemTag records the (item, tag) pair in the join table. The
// insert is a set union: linking an already-linked pair is a no-op and
// never produces a duplicate row.
func (s *Store) LinkItemTag(itemID, tagID string) error {
	return linkItemTag(s.db, itemID, tagID)
}

func linkItemTag(q execer, itemID, tagID string) error {
	_, err := q.Exec(
		"INSERT OR IGNORE INTO item_tags (entry_item_id, tag_id) VALUES (?, ?)",
		itemID, tagID,
	)
	if err != nil {
		return fmt.Errorf("link tag: %w", err)
	}
	return nil
}

// LinkItemPerson records the (item, person) pair, with the same
// idempotent set-union semantics as LinkItemTag.
func (s *Store) LinkItemPerson(itemID, personID string) error {
	return linkItemPerson(s.db, itemID, personID)
}

func linkItemPerson(q execer, itemID, personID string) error {
	_, err := q.Exec(
		"INSERT OR IGNORE INTO item_people (entry_item_id, person_id) VALUES (?, ?)",
		itemID, personID,
	)
	if err != nil {
		return fmt.Errorf("link person: %w", err)
	}
	return nil
}

// RemoveItemTags unconditionally clears all tag links of an item. The
// tags themselves are never deleted by untagging.
func (s *Store) RemoveItemTags(itemID string) error {
	return removeItemTags(s.db, itemID)
}

func removeItemTags(q execer, itemID string) error {
	if _, err := q.Exec("DELETE FROM item_tags WHERE entry_item_id = ?", itemID); err != nil {
		return fmt.Errorf("remove tag links: %w", err)
	}
	return nil
}

// RemoveItemPeople unconditionally clears all person links of an item.
func (s *Store) RemoveItemPeople(itemID string) error {
	return removeItemPeople(s.db, itemID)
}

func removeItemPeople(q execer, itemID string) error {
	if _, err := q.Exec("DELETE FROM item_people WHERE entry_item_id = ?", itemID); err != nil {
		return fmt.Errorf("remove person links: %w", err)
	}
	return nil
}

// ItemTags returns the tags linked to an item.
func (s *Store) ItemTags(itemID string) ([]types.Tag, error) {
	return itemTags(s.db, itemID)
}

func itemTags(q execer, itemID string) ([]types.Tag, error) {
	rows, err := q.Query(
		`SELECT t.id, t.name, t.description, t.color, t.category, t.created_at, t.updated_at
		 FROM tags t
		 JOIN item_tags it ON t.id = it.tag_id
		 WHERE it.entry_item_id = ?
		 ORDER BY t.name`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch item tags: %w", err)
	}
	defer rows.Close()

	var tags []types.Tag
	for rows.Next() {
		tag, err := hydrateTag(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrate item tag: %w", err)
		}
		tags = append(tags, *tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item tags: %w", err)
	}
	return tags, nil
}

// ItemPeople returns the people linked to an item.
func (s *Store) ItemPeople(itemID string) ([]types.Person, error) {
	return itemPeople(s.db, itemID)
}

func itemPeople(q execer, itemID string) ([]types.Person, error) {
	rows, err := q.Query(
		`SELECT p.id, p.name, p.created_at
		 FROM people p
		 JOIN item_people ip ON p.id = ip.person_id
		 WHERE ip.entry_item_id = ?
		 ORDER BY p.name`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch item people: %w", err)
	}
	defer rows.Close()

	var people []types.Person
	for rows.Next() {
		var p types.Person
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("hydrate item person: %w", err)
		}
		if p.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item people: %w", err)
	}
	return people, nil
}

// ItemJiraRefs returns the jira refs attached to an item, oldest first.
func (s *Store) ItemJiraRefs(itemID string) ([]types.JiraRef, error) {
	return itemJiraRefs(s.db, itemID)
}

func itemJiraRefs(q execer, itemID string) ([]types.JiraRef, error) {
	rows, err := q.Query(
		"SELECT id, entry_item_id, jira_key, created_at FROM jira_refs WHERE entry_item_id = ? ORDER BY created_at",
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch jira refs: %w", err)
	}
	defer rows.Close()

	var refs []types.JiraRef
	for rows.Next() {
		var r types.JiraRef
		var createdAt string
		if err := rows.Scan(&r.ID, &r.EntryItemID, &r.JiraKey, &createdAt); err != nil {
			return nil, fmt.Errorf("hydrate jira ref: %w", err)
		}
		if r.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		refs = append(refs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jira refs: %w", err)
	}
	return refs, nil
}
