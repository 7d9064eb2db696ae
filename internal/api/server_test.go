package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scobrodev/logbook/internal/command"
	"github.com/scobrodev/logbook/internal/sqlite"
	"github.com/scobrodev/logbook/pkg/types"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := sqlite.Open(types.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	server := httptest.NewServer(New(command.NewService(store), "").Handler())
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	var body map[string]string
	resp := doJSON(t, http.MethodGet, server.URL+"/health", nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestEntryEndpoints(t *testing.T) {
	server := newTestServer(t)

	var created types.EntryResponse
	resp := doJSON(t, http.MethodPost, server.URL+"/entries", types.CreateEntryRequest{
		Timestamp: "2024-01-01T09:00:00Z",
		Items: []types.CreateItemRequest{{
			ItemType: types.ItemTypeNote,
			Content:  "stand-up",
			Tags:     []string{"team-a"},
		}},
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, created.Items, 1)

	var entries []types.EntryResponse
	resp = doJSON(t, http.MethodGet, server.URL+"/entries", nil, &entries)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, entries, 1)
	assert.Equal(t, created.ID, entries[0].ID)

	resp = doJSON(t, http.MethodDelete, server.URL+"/entries/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, server.URL+"/entries", nil, &entries)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, entries)
}

func TestCreateEntry_BadTimestamp(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/entries", types.CreateEntryRequest{
		Timestamp: "not-a-time",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateItem(t *testing.T) {
	server := newTestServer(t)

	var created types.EntryResponse
	doJSON(t, http.MethodPost, server.URL+"/entries", types.CreateEntryRequest{
		Timestamp: "2024-01-01T09:00:00Z",
		Items:     []types.CreateItemRequest{{ItemType: types.ItemTypeNote, Content: "draft"}},
	}, &created)
	itemID := created.Items[0].ID

	content := "final"
	var item types.ItemResponse
	resp := doJSON(t, http.MethodPatch, server.URL+"/entries/items/"+itemID,
		types.UpdateEntryItemRequest{Content: &content}, &item)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "final", item.Content)
}

func TestUpdateItem_NotFound(t *testing.T) {
	server := newTestServer(t)

	content := "x"
	resp := doJSON(t, http.MethodPatch, server.URL+"/entries/items/no-such-item",
		types.UpdateEntryItemRequest{Content: &content}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProjectEndpoints(t *testing.T) {
	server := newTestServer(t)

	var created types.ProjectResponse
	resp := doJSON(t, http.MethodPost, server.URL+"/projects",
		types.CreateProjectRequest{Name: "platform"}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	name := "platform-core"
	var updated types.ProjectResponse
	resp = doJSON(t, http.MethodPatch, server.URL+"/projects/"+created.ID,
		types.UpdateProjectRequest{Name: &name}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "platform-core", updated.Name)

	resp = doJSON(t, http.MethodDelete, server.URL+"/projects/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestMeetingEndpoints(t *testing.T) {
	server := newTestServer(t)

	var meeting types.MeetingResponse
	resp := doJSON(t, http.MethodPost, server.URL+"/meetings",
		types.CreateMeetingRequest{Title: "kickoff"}, &meeting)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var attendee types.AttendeeResponse
	resp = doJSON(t, http.MethodPost, server.URL+"/meetings/"+meeting.ID+"/attendees",
		types.AddAttendeeRequest{Name: "alice"}, &attendee)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, meeting.ID, attendee.MeetingID)

	var attendees []types.AttendeeResponse
	resp = doJSON(t, http.MethodGet, server.URL+"/meetings/"+meeting.ID+"/attendees", nil, &attendees)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, attendees, 1)

	resp = doJSON(t, http.MethodPost, server.URL+"/meetings/no-such-meeting/actions",
		types.CreateActionRequest{Title: "write minutes"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExportEndpoints(t *testing.T) {
	server := newTestServer(t)

	doJSON(t, http.MethodPost, server.URL+"/entries", types.CreateEntryRequest{
		Timestamp: "2024-03-15T09:30:00Z",
		Items:     []types.CreateItemRequest{{ItemType: types.ItemTypeNote, Content: "stand-up"}},
	}, nil)

	resp, err := http.Get(server.URL + "/export/csv")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	resp, err = http.Get(server.URL + "/export/markdown")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/entries", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
