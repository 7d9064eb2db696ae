package sqlite

import (
	"fmt"
	"time"

	"github.com/scobrodev/logbook/pkg/types"
)

// CreateMeeting inserts a meeting. Type and status receive their
// defaults when the caller omits them.
func (s *Store) CreateMeeting(title string, description *string, startTime, endTime *time.Time, location, meetingType *string) (*types.Meeting, error) {
	if title == "" {
		return nil, types.ErrInvalidData
	}

	now := time.Now().UTC()
	meeting := &types.Meeting{
		ID:          newID(),
		Title:       title,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    location,
		MeetingType: types.DefaultMeetingType,
		Status:      types.DefaultMeetingStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if meetingType != nil {
		meeting.MeetingType = *meetingType
	}

	_, err := s.db.Exec(
		`INSERT INTO meetings (id, title, description, start_time, end_time, location, meeting_type, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meeting.ID, meeting.Title, meeting.Description,
		formatTimePtr(startTime), formatTimePtr(endTime),
		meeting.Location, meeting.MeetingType, meeting.Status,
		formatTime(now), formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert meeting: %w", err)
	}
	return meeting, nil
}

// GetAllMeetings returns every meeting, most recently created first.
func (s *Store) GetAllMeetings() ([]types.Meeting, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, start_time, end_time, location, meeting_type, status, created_at, updated_at
		 FROM meetings ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch meetings: %w", err)
	}
	defer rows.Close()

	var meetings []types.Meeting
	for rows.Next() {
		var m types.Meeting
		var startTime, endTime *string
		var createdAt, updatedAt string
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &startTime, &endTime, &m.Location, &m.MeetingType, &m.Status, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("hydrate meeting: %w", err)
		}
		if m.StartTime, err = parseTimePtr(startTime); err != nil {
			return nil, err
		}
		if m.EndTime, err = parseTimePtr(endTime); err != nil {
			return nil, err
		}
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if m.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meetings: %w", err)
	}
	return meetings, nil
}

// DeleteMeeting removes a meeting and, through the cascade rules, its
// attendees and actions. Deleting a missing id is not an error.
func (s *Store) DeleteMeeting(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, err := s.db.Exec("DELETE FROM meetings WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	return nil
}

// AddMeetingAttendee records a participant on an existing meeting.
// Role and status receive their defaults when omitted. Returns
// ErrParentNotFound if the meeting does not exist.
func (s *Store) AddMeetingAttendee(meetingID, name string, email, role *string) (*types.MeetingAttendee, error) {
	exists, err := rowExists(s.db, "meetings", "id", meetingID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("meeting %s: %w", meetingID, types.ErrParentNotFound)
	}

	now := time.Now().UTC()
	attendee := &types.MeetingAttendee{
		ID:        newID(),
		MeetingID: meetingID,
		Name:      name,
		Email:     email,
		Role:      types.DefaultAttendeeRole,
		Status:    types.DefaultAttendeeStatus,
		CreatedAt: now,
	}
	if role != nil {
		attendee.Role = *role
	}

	_, err = s.db.Exec(
		"INSERT INTO meeting_attendees (id, meeting_id, name, email, role, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		attendee.ID, meetingID, attendee.Name, attendee.Email, attendee.Role, attendee.Status, formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert attendee: %w", err)
	}
	return attendee, nil
}

// GetMeetingAttendees returns a meeting's attendees, oldest first.
func (s *Store) GetMeetingAttendees(meetingID string) ([]types.MeetingAttendee, error) {
	rows, err := s.db.Query(
		"SELECT id, meeting_id, name, email, role, status, created_at FROM meeting_attendees WHERE meeting_id = ? ORDER BY created_at",
		meetingID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch attendees: %w", err)
	}
	defer rows.Close()

	var attendees []types.MeetingAttendee
	for rows.Next() {
		var a types.MeetingAttendee
		var createdAt string
		if err := rows.Scan(&a.ID, &a.MeetingID, &a.Name, &a.Email, &a.Role, &a.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("hydrate attendee: %w", err)
		}
		if a.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendees: %w", err)
	}
	return attendees, nil
}

// CreateMeetingAction records an action item on an existing meeting.
// Status and priority receive their defaults when omitted. Returns
// ErrParentNotFound if the meeting does not exist.
func (s *Store) CreateMeetingAction(meetingID, title string, description, assignee *string, dueDate *time.Time, priority *string) (*types.MeetingAction, error) {
	exists, err := rowExists(s.db, "meetings", "id", meetingID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("meeting %s: %w", meetingID, types.ErrParentNotFound)
	}

	now := time.Now().UTC()
	action := &types.MeetingAction{
		ID:          newID(),
		MeetingID:   meetingID,
		Title:       title,
		Description: description,
		Assignee:    assignee,
		DueDate:     dueDate,
		Status:      types.DefaultActionStatus,
		Priority:    types.DefaultActionPriority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if priority != nil {
		action.Priority = *priority
	}

	_, err = s.db.Exec(
		`INSERT INTO meeting_actions (id, meeting_id, entry_item_id, title, description, assignee, due_date, status, priority, created_at, updated_at)
		 VALUES (?, ?, NULL, ?, ?, ?, ?, ?, ?, ?, ?)`,
		action.ID, meetingID, action.Title, action.Description, action.Assignee,
		formatTimePtr(dueDate), action.Status, action.Priority,
		formatTime(now), formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert action: %w", err)
	}
	return action, nil
}

// GetMeetingActions returns a meeting's actions, oldest first.
func (s *Store) GetMeetingActions(meetingID string) ([]types.MeetingAction, error) {
	rows, err := s.db.Query(
		`SELECT id, meeting_id, entry_item_id, title, description, assignee, due_date, status, priority, created_at, updated_at
		 FROM meeting_actions WHERE meeting_id = ? ORDER BY created_at`,
		meetingID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch actions: %w", err)
	}
	defer rows.Close()

	var actions []types.MeetingAction
	for rows.Next() {
		var a types.MeetingAction
		var dueDate *string
		var createdAt, updatedAt string
		if err := rows.Scan(&a.ID, &a.MeetingID, &a.EntryItemID, &a.Title, &a.Description, &a.Assignee, &dueDate, &a.Status, &a.Priority, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("hydrate action: %w", err)
		}
		if a.DueDate, err = parseTimePtr(dueDate); err != nil {
			return nil, err
		}
		if a.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate actions: %w", err)
	}
	return actions, nil
}

// LinkActionToItem points a meeting action at the logbook item that
// tracks it. Returns ErrNotFound if the action does not exist and
// ErrParentNotFound if the item does not.
func (s *Store) LinkActionToItem(actionID, itemID string) error {
	exists, err := rowExists(s.db, "entry_items", "id", itemID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("entry item %s: %w", itemID, types.ErrParentNotFound)
	}

	res, err := s.db.Exec(
		"UPDATE meeting_actions SET entry_item_id = ?, updated_at = ? WHERE id = ?",
		itemID, formatTime(time.Now().UTC()), actionID,
	)
	if err != nil {
		return fmt.Errorf("link action to item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("link action to item: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
