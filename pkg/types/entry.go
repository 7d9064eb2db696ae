package types

import "time"

// Well-known item types. ItemType is free-form; these are the values
// the export formatters recognize.
const (
	ItemTypeNote     = "Note"
	ItemTypeAction   = "Action"
	ItemTypeDecision = "Decision"
	ItemTypeMeeting  = "Meeting"
)

// Entry is a timestamped container for one or more logbook items.
// Timestamp is the caller-supplied event time; CreatedAt and UpdatedAt
// track the row itself.
type Entry struct {
	ID        string
	Timestamp time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryItem is a single typed note, action, decision, or meeting
// reference within an entry. Project is a denormalized free-text name,
// not a foreign key into the projects table.
type EntryItem struct {
	ID        string
	EntryID   string
	ItemType  string
	Content   string
	Project   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemWithRelations is an entry item together with its linked tags,
// people, and jira references.
type ItemWithRelations struct {
	Item     EntryItem
	Tags     []Tag
	People   []Person
	JiraRefs []JiraRef
}

// EntryWithItems is the fully aggregated view of an entry: the entry
// row plus its items, each with relations attached. Items are ordered
// by creation time ascending.
type EntryWithItems struct {
	Entry Entry
	Items []ItemWithRelations
}
