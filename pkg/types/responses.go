package types

// EntryResponse is the external view of an entry with its items.
// Timestamps are RFC 3339 strings.
type EntryResponse struct {
	ID        string         `json:"id"`
	Timestamp string         `json:"timestamp"`
	Items     []ItemResponse `json:"items"`
}

// ItemResponse flattens an item's relations to their display names:
// tag names, jira keys, and person names.
type ItemResponse struct {
	ID       string   `json:"id"`
	ItemType string   `json:"item_type"`
	Content  string   `json:"content"`
	Project  *string  `json:"project,omitempty"`
	Tags     []string `json:"tags"`
	Jira     []string `json:"jira"`
	People   []string `json:"people"`
}

// ProjectResponse is the external view of a project.
type ProjectResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       string  `json:"color"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// TagResponse is the external view of a tag.
type TagResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       string  `json:"color"`
	Category    *string `json:"category,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// MeetingResponse is the external view of a meeting.
type MeetingResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	Location    *string `json:"location,omitempty"`
	MeetingType string  `json:"meeting_type"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// AttendeeResponse is the external view of a meeting attendee.
type AttendeeResponse struct {
	ID        string  `json:"id"`
	MeetingID string  `json:"meeting_id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Role      string  `json:"role"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// ActionResponse is the external view of a meeting action.
type ActionResponse struct {
	ID          string  `json:"id"`
	MeetingID   string  `json:"meeting_id"`
	EntryItemID *string `json:"entry_item_id,omitempty"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Assignee    *string `json:"assignee,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
