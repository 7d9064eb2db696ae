// Package command implements the synchronous command surface of the
// logbook. One call is one logical operation; a single mutex serializes
// every store access, which is what makes multi-step commands
// (get-or-create-then-link, remove-then-relink) safe without
// cross-command coordination.
package command

import (
	"fmt"
	"sync"
	"time"

	"github.com/scobrodev/logbook/internal/export"
	"github.com/scobrodev/logbook/internal/sqlite"
	"github.com/scobrodev/logbook/pkg/types"
)

// Service dispatches commands against the store. All methods are safe
// for concurrent use; they execute one at a time.
type Service struct {
	mu    sync.Mutex
	store *sqlite.Store
}

// NewService wraps an opened store.
func NewService(store *sqlite.Store) *Service {
	return &Service{store: store}
}

// CreateEntry creates an entry with its items, tags, people, and jira
// refs in one command. The timestamp must be a valid RFC 3339 string;
// nothing is written otherwise.
func (s *Service) CreateEntry(req types.CreateEntryRequest) (*types.EntryResponse, error) {
	timestamp, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidTimestamp, req.Timestamp)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, items, err := s.store.CreateEntryWithItems(timestamp, req.Items)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	resp := &types.EntryResponse{
		ID:        entry.ID,
		Timestamp: entry.Timestamp.Format(time.RFC3339),
		Items:     make([]types.ItemResponse, 0, len(items)),
	}
	for i, item := range items {
		resp.Items = append(resp.Items, types.ItemResponse{
			ID:       item.ID,
			ItemType: item.ItemType,
			Content:  item.Content,
			Project:  item.Project,
			Tags:     req.Items[i].Tags,
			Jira:     req.Items[i].Jira,
			People:   req.Items[i].People,
		})
	}
	return resp, nil
}

// GetAllEntries returns the full aggregation, entries ordered by event
// timestamp descending.
func (s *Service) GetAllEntries() ([]types.EntryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.AllEntriesWithItems()
	if err != nil {
		return nil, fmt.Errorf("get entries: %w", err)
	}

	result := make([]types.EntryResponse, 0, len(entries))
	for _, ew := range entries {
		result = append(result, entryResponse(ew))
	}
	return result, nil
}

// UpdateEntryItem applies a partial update; tag, jira, and people
// arrays, when present, fully replace the existing set. Returns the
// fresh view of the item read back after the update.
func (s *Service) UpdateEntryItem(itemID string, updates types.UpdateEntryItemRequest) (*types.ItemResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.UpdateEntryItem(itemID, updates); err != nil {
		return nil, fmt.Errorf("update entry item: %w", err)
	}

	ew, err := s.store.EntryWithItemsByItem(itemID)
	if err != nil {
		return nil, fmt.Errorf("reread entry item: %w", err)
	}
	if len(ew.Items) == 0 {
		return nil, types.ErrNotFound
	}
	resp := itemResponse(ew.Items[0])
	return &resp, nil
}

// DeleteEntry removes an entry and all its descendants.
func (s *Service) DeleteEntry(entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteEntry(entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// DeleteEntryItem removes a single item and its relations.
func (s *Service) DeleteEntryItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteEntryItem(itemID); err != nil {
		return fmt.Errorf("delete entry item: %w", err)
	}
	return nil
}

// ExportCSV renders every entry as CSV text.
func (s *Service) ExportCSV() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.AllEntriesWithItems()
	if err != nil {
		return "", fmt.Errorf("export csv: %w", err)
	}
	return export.CSV(entries), nil
}

// ExportMarkdown renders every entry as a Markdown document.
func (s *Service) ExportMarkdown() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.AllEntriesWithItems()
	if err != nil {
		return "", fmt.Errorf("export markdown: %w", err)
	}
	return export.Markdown(entries), nil
}

// entryResponse flattens an aggregated entry to its external view.
func entryResponse(ew types.EntryWithItems) types.EntryResponse {
	items := make([]types.ItemResponse, 0, len(ew.Items))
	for _, iw := range ew.Items {
		items = append(items, itemResponse(iw))
	}
	return types.EntryResponse{
		ID:        ew.Entry.ID,
		Timestamp: ew.Entry.Timestamp.Format(time.RFC3339),
		Items:     items,
	}
}

// itemResponse flattens an item's relations to display names.
func itemResponse(iw types.ItemWithRelations) types.ItemResponse {
	tags := make([]string, 0, len(iw.Tags))
	for _, t := range iw.Tags {
		tags = append(tags, t.Name)
	}
	jira := make([]string, 0, len(iw.JiraRefs))
	for _, r := range iw.JiraRefs {
		jira = append(jira, r.JiraKey)
	}
	people := make([]string, 0, len(iw.People))
	for _, p := range iw.People {
		people = append(people, p.Name)
	}
	return types.ItemResponse{
		ID:       iw.Item.ID,
		ItemType: iw.Item.ItemType,
		Content:  iw.Item.Content,
		Project:  iw.Item.Project,
		Tags:     tags,
		Jira:     jira,
		People:   people,
	}
}

// parseOptionalTime parses an optional RFC 3339 string. Unparsable
// values are treated as absent, not rejected.
func parseOptionalTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// formatOptionalTime renders an optional timestamp for a response.
func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
