package types

// CreateEntryRequest creates an entry together with its items and
// their relations in one command. Timestamp must be an RFC 3339
// date-time string.
type CreateEntryRequest struct {
	Timestamp string              `json:"timestamp"`
	Items     []CreateItemRequest `json:"items"`
}

// CreateItemRequest describes one item inside a CreateEntryRequest.
// Tags and People are names resolved via get-or-create; Jira entries
// are attached verbatim.
type CreateItemRequest struct {
	ItemType string   `json:"item_type"`
	Content  string   `json:"content"`
	Project  *string  `json:"project,omitempty"`
	Tags     []string `json:"tags"`
	Jira     []string `json:"jira"`
	People   []string `json:"people"`
}

// UpdateEntryItemRequest is a partial update: only non-nil fields are
// applied. Tags, Jira, and People, when present, fully replace the
// item's existing set.
type UpdateEntryItemRequest struct {
	Content *string   `json:"content,omitempty"`
	Project *string   `json:"project,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
	Jira    *[]string `json:"jira,omitempty"`
	People  *[]string `json:"people,omitempty"`
}

// CreateProjectRequest creates a project. Color defaults to the
// standard project swatch when nil.
type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// UpdateProjectRequest is a partial project update.
type UpdateProjectRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// CreateTagRequest creates a tag explicitly (as opposed to the
// get-or-create path used when linking items).
type CreateTagRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// UpdateTagRequest is a partial tag update.
type UpdateTagRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// CreateMeetingRequest creates a meeting. StartTime and EndTime are
// optional RFC 3339 strings; values that fail to parse are treated as
// absent rather than rejected.
type CreateMeetingRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	Location    *string `json:"location,omitempty"`
	MeetingType *string `json:"meeting_type,omitempty"`
}

// AddAttendeeRequest adds a participant to a meeting.
type AddAttendeeRequest struct {
	MeetingID string  `json:"meeting_id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Role      *string `json:"role,omitempty"`
}

// CreateActionRequest records an action item on a meeting. DueDate is
// an optional RFC 3339 string with the same drop-if-unparsable
// behavior as meeting times.
type CreateActionRequest struct {
	MeetingID   string  `json:"meeting_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Assignee    *string `json:"assignee,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}
