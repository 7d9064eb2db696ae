package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scobrodev/logbook/internal/sqlite"
	"github.com/scobrodev/logbook/pkg/types"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := sqlite.Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewService(store)
}

func TestCreateEntry(t *testing.T) {
	service := newTestService(t)

	resp, err := service.CreateEntry(types.CreateEntryRequest{
		Timestamp: "2024-01-01T09:00:00Z",
		Items: []types.CreateItemRequest{{
			ItemType: types.ItemTypeNote,
			Content:  "stand-up",
			Tags:     []string{"team-a"},
			People:   []string{"alice"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T09:00:00Z", resp.Timestamp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, []string{"team-a"}, resp.Items[0].Tags)
	assert.Equal(t, []string{"alice"}, resp.Items[0].People)

	// Read back through the aggregation path.
	entries, err := service.GetAllEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, resp.ID, entries[0].ID)
	require.Len(t, entries[0].Items, 1)
	assert.Equal(t, "stand-up", entries[0].Items[0].Content)
	assert.Equal(t, []string{"team-a"}, entries[0].Items[0].Tags)
}

func TestCreateEntry_InvalidTimestamp(t *testing.T) {
	service := newTestService(t)

	_, err := service.CreateEntry(types.CreateEntryRequest{
		Timestamp: "yesterday-ish",
		Items:     []types.CreateItemRequest{{ItemType: types.ItemTypeNote, Content: "x"}},
	})
	assert.ErrorIs(t, err, types.ErrInvalidTimestamp)

	// Nothing may be written on a rejected timestamp.
	entries, err := service.GetAllEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetAllEntries_NewestFirst(t *testing.T) {
	service := newTestService(t)

	for _, ts := range []string{"2024-01-01T09:00:00Z", "2024-06-01T09:00:00Z"} {
		_, err := service.CreateEntry(types.CreateEntryRequest{Timestamp: ts})
		require.NoError(t, err)
	}

	entries, err := service.GetAllEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-06-01T09:00:00Z", entries[0].Timestamp)
	assert.Equal(t, "2024-01-01T09:00:00Z", entries[1].Timestamp)
}

func TestUpdateEntryItem_ReplaceTags(t *testing.T) {
	service := newTestService(t)

	resp, err := service.CreateEntry(types.CreateEntryRequest{
		Timestamp: "2024-01-01T09:00:00Z",
		Items: []types.CreateItemRequest{{
			ItemType: types.ItemTypeNote,
			Content:  "stand-up",
			Tags:     []string{"alpha", "beta"},
		}},
	})
	require.NoError(t, err)
	itemID := resp.Items[0].ID

	newSet := []string{"beta", "gamma"}
	item, err := service.UpdateEntryItem(itemID, types.UpdateEntryItemRequest{Tags: &newSet})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"beta", "gamma"}, item.Tags)
}

func TestUpdateEntryItem_ClearTags(t *testing.T) {
	service := newTestService(t)

	resp, err := service.CreateEntry(types.CreateEntryRequest{
		Timestamp: "2024-01-01T09:00:00Z",
		Items: []types.CreateItemRequest{{
			ItemType: types.ItemTypeNote,
			Content:  "stand-up",
			Tags:     []string{"alpha"},
		}},
	})
	require.NoError(t, err)
	itemID := resp.Items[0].ID

	empty := []string{}
	item, err := service.UpdateEntryItem(itemID, types.UpdateEntryItemRequest{Tags: &empty})
	require.NoError(t, err)
	assert.Empty(t, item.Tags)

	// Clearing the link set does not delete the tag itself.
	tags, err := service.GetAllTags()
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestUpdateEntryItem_NotFound(t *testing.T) {
	service := newTestService(t)

	content := "x"
	_, err := service.UpdateEntryItem("no-such-item", types.UpdateEntryItemRequest{Content: &content})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteEntry(t *testing.T) {
	service := newTestService(t)

	resp, err := service.CreateEntry(types.CreateEntryRequest{
		Timestamp: "2024-01-01T09:00:00Z",
		Items:     []types.CreateItemRequest{{ItemType: types.ItemTypeNote, Content: "x"}},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteEntry(resp.ID))
	require.NoError(t, service.DeleteEntry(resp.ID), "repeat delete is a no-op")

	entries, err := service.GetAllEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportCSV(t *testing.T) {
	service := newTestService(t)

	project := "platform"
	_, err := service.CreateEntry(types.CreateEntryRequest{
		Timestamp: "2024-03-15T09:30:00Z",
		Items: []types.CreateItemRequest{{
			ItemType: types.ItemTypeNote,
			Content:  "stand-up",
			Project:  &project,
			Tags:     []string{"team-a"},
		}},
	})
	require.NoError(t, err)

	out, err := service.ExportCSV()
	require.NoError(t, err)
	assert.Contains(t, out, "Date,Time,Type,Content,Project,Tags,Jira,People\n")
	assert.Contains(t, out, `2024-03-15,09:30:00,Note,"stand-up","platform","team-a"`)
}

func TestExportMarkdown(t *testing.T) {
	service := newTestService(t)

	_, err := service.CreateEntry(types.CreateEntryRequest{
		Timestamp: "2024-03-15T09:30:00Z",
		Items:     []types.CreateItemRequest{{ItemType: types.ItemTypeDecision, Content: "use sqlite"}},
	})
	require.NoError(t, err)

	out, err := service.ExportMarkdown()
	require.NoError(t, err)
	assert.Contains(t, out, "# Logbook Export")
	assert.Contains(t, out, "## 2024-03-15 09:30:00")
	assert.Contains(t, out, "### 🔵 Decision\nuse sqlite")
}
