package types

import "time"

// Default swatch colors applied when a tag or project is created
// without an explicit color.
const (
	DefaultTagColor     = "#3B82F6"
	DefaultProjectColor = "#10B981"
)

// Tag is a label attached to entry items. Name is globally unique;
// tags are created on first use via get-or-create.
type Tag struct {
	ID          string
	Name        string
	Description *string
	Color       string
	Category    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Person is a name attached to entry items. Name is globally unique
// and there is no mutable metadata beyond it.
type Person struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// JiraRef attaches an external issue key to an entry item. There is no
// uniqueness constraint; an item may carry the same key twice.
type JiraRef struct {
	ID          string
	EntryItemID string
	JiraKey     string
	CreatedAt   time.Time
}
