package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scobrodev/logbook/pkg/types"
)

func sampleEntry(content string, project *string, tags, jira, people []string) types.EntryWithItems {
	ts := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	tagRows := make([]types.Tag, len(tags))
	for i, name := range tags {
		tagRows[i] = types.Tag{ID: name, Name: name}
	}
	jiraRows := make([]types.JiraRef, len(jira))
	for i, key := range jira {
		jiraRows[i] = types.JiraRef{ID: key, JiraKey: key}
	}
	peopleRows := make([]types.Person, len(people))
	for i, name := range people {
		peopleRows[i] = types.Person{ID: name, Name: name}
	}

	return types.EntryWithItems{
		Entry: types.Entry{ID: "e1", Timestamp: ts},
		Items: []types.ItemWithRelations{{
			Item: types.EntryItem{
				ID:       "i1",
				EntryID:  "e1",
				ItemType: types.ItemTypeNote,
				Content:  content,
				Project:  project,
			},
			Tags:     tagRows,
			JiraRefs: jiraRows,
			People:   peopleRows,
		}},
	}
}

func TestCSV_Header(t *testing.T) {
	out := CSV(nil)
	assert.Equal(t, "Date,Time,Type,Content,Project,Tags,Jira,People\n", out)
}

func TestCSV_Row(t *testing.T) {
	project := "platform"
	out := CSV([]types.EntryWithItems{
		sampleEntry("stand-up", &project, []string{"team-a"}, []string{"PLAT-1"}, []string{"alice"}),
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `2024-03-15,09:30:00,Note,"stand-up","platform","team-a","PLAT-1","alice"`, lines[1])
}

func TestCSV_MultiValueFields(t *testing.T) {
	out := CSV([]types.EntryWithItems{
		sampleEntry("x", nil, []string{"a", "b"}, nil, []string{"alice", "bob"}),
	})
	assert.Contains(t, out, `"a;b"`)
	assert.Contains(t, out, `"alice;bob"`)
}

func TestCSV_EmptyProject(t *testing.T) {
	out := CSV([]types.EntryWithItems{sampleEntry("x", nil, nil, nil, nil)})
	assert.Contains(t, out, `,"x","",`)
}

func TestCSV_RoundTripsThroughReader(t *testing.T) {
	project := `has "quotes", commas`
	content := "line one\nline two"
	out := CSV([]types.EntryWithItems{
		sampleEntry(content, &project, []string{"team-a"}, nil, nil),
	})

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	require.Len(t, row, 8)
	assert.Equal(t, content, row[3])
	assert.Equal(t, project, row[4])
	assert.Equal(t, "team-a", row[5])
}
