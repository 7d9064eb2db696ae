package types

import "time"

// Defaults applied on creation when the caller omits the field.
const (
	DefaultMeetingType    = "meeting"
	DefaultMeetingStatus  = "scheduled"
	DefaultAttendeeRole   = "attendee"
	DefaultAttendeeStatus = "invited"
	DefaultActionStatus   = "open"
	DefaultActionPriority = "medium"
)

// Meeting owns its attendees and actions; deleting a meeting removes
// both.
type Meeting struct {
	ID          string
	Title       string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Location    *string
	MeetingType string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MeetingAttendee is a participant record on a meeting.
type MeetingAttendee struct {
	ID        string
	MeetingID string
	Name      string
	Email     *string
	Role      string
	Status    string
	CreatedAt time.Time
}

// MeetingAction is an action item raised in a meeting. EntryItemID
// optionally points at the logbook item that tracks it; the reference
// is nulled, not deleted, when that item goes away.
type MeetingAction struct {
	ID          string
	MeetingID   string
	EntryItemID *string
	Title       string
	Description *string
	Assignee    *string
	DueDate     *time.Time
	Status      string
	Priority    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
