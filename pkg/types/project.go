package types

import "time"

// Project is an independent categorization entity. EntryItem.Project
// refers to projects by name only; deleting a Project does not touch
// any entry item.
type Project struct {
	ID          string
	Name        string
	Description *string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
