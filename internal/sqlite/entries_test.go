package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scobrodev/logbook/pkg/types"
)

func TestCreateEntryWithItems(t *testing.T) {
	store := newTestStore(t)

	project := "platform"
	entry, items, err := store.CreateEntryWithItems(
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		[]types.CreateItemRequest{{
			ItemType: types.ItemTypeNote,
			Content:  "daily stand-up",
			Project:  &project,
			Tags:     []string{"team-a", "sync"},
			Jira:     []string{"PLAT-42"},
			People:   []string{"alice"},
		}},
	)
	require.NoError(t, err)
	require.Len(t, items, 1)

	entries, err := store.AllEntriesWithItems()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].Entry.ID)

	require.Len(t, entries[0].Items, 1)
	item := entries[0].Items[0]
	assert.Equal(t, "daily stand-up", item.Item.Content)
	require.NotNil(t, item.Item.Project)
	assert.Equal(t, "platform", *item.Item.Project)

	require.Len(t, item.Tags, 2)
	// Tags come back ordered by name.
	assert.Equal(t, "sync", item.Tags[0].Name)
	assert.Equal(t, "team-a", item.Tags[1].Name)

	require.Len(t, item.People, 1)
	assert.Equal(t, "alice", item.People[0].Name)

	require.Len(t, item.JiraRefs, 1)
	assert.Equal(t, "PLAT-42", item.JiraRefs[0].JiraKey)
}

func TestCreateEntryWithItems_ReusesTagRows(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.CreateEntryWithItems(time.Now(), []types.CreateItemRequest{
		{ItemType: types.ItemTypeNote, Content: "first", Tags: []string{"infra"}},
	})
	require.NoError(t, err)
	_, _, err = store.CreateEntryWithItems(time.Now(), []types.CreateItemRequest{
		{ItemType: types.ItemTypeNote, Content: "second", Tags: []string{"infra"}},
	})
	require.NoError(t, err)

	tags, err := store.GetAllTags()
	require.NoError(t, err)
	assert.Len(t, tags, 1, "same tag name must not create a second row")
}

func TestAllEntriesWithItems_NewestFirst(t *testing.T) {
	store := newTestStore(t)

	old, err := store.CreateEntry(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	recent, err := store.CreateEntry(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	entries, err := store.AllEntriesWithItems()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, recent.ID, entries[0].Entry.ID)
	assert.Equal(t, old.ID, entries[1].Entry.ID)
}

func TestDeleteEntry_Cascades(t *testing.T) {
	store := newTestStore(t)

	entry, items, err := store.CreateEntryWithItems(time.Now(), []types.CreateItemRequest{
		{ItemType: types.ItemTypeAction, Content: "ship it", Tags: []string{"release"}, Jira: []string{"REL-1"}},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, store.DeleteEntry(entry.ID))

	entries, err := store.AllEntriesWithItems()
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Item rows, join rows, and jira refs must cascade away.
	for _, table := range []string{"entry_items", "item_tags", "jira_refs"} {
		var count int
		require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
		assert.Zero(t, count, "orphan rows left in %s", table)
	}

	// The tag itself survives; only the association goes.
	tags, err := store.GetAllTags()
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestDeleteEntry_MissingIsNoop(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.DeleteEntry("no-such-entry"))
}

func TestDeleteEntry_EmptyID(t *testing.T) {
	store := newTestStore(t)
	assert.ErrorIs(t, store.DeleteEntry(""), types.ErrInvalidID)
}
