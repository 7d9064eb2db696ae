package command

import (
	"fmt"
	"time"

	"github.com/scobrodev/logbook/pkg/types"
)

// CreateMeeting creates a meeting. Optional start and end times that
// fail to parse are silently treated as absent.
func (s *Service) CreateMeeting(req types.CreateMeetingRequest) (*types.MeetingResponse, error) {
	startTime := parseOptionalTime(req.StartTime)
	endTime := parseOptionalTime(req.EndTime)

	s.mu.Lock()
	defer s.mu.Unlock()

	meeting, err := s.store.CreateMeeting(req.Title, req.Description, startTime, endTime, req.Location, req.MeetingType)
	if err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}
	resp := meetingResponse(*meeting)
	return &resp, nil
}

// GetAllMeetings lists every meeting.
func (s *Service) GetAllMeetings() ([]types.MeetingResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meetings, err := s.store.GetAllMeetings()
	if err != nil {
		return nil, fmt.Errorf("get meetings: %w", err)
	}
	result := make([]types.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		result = append(result, meetingResponse(m))
	}
	return result, nil
}

// DeleteMeeting removes a meeting with its attendees and actions.
func (s *Service) DeleteMeeting(meetingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteMeeting(meetingID); err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	return nil
}

// AddMeetingAttendee adds a participant to a meeting.
func (s *Service) AddMeetingAttendee(req types.AddAttendeeRequest) (*types.AttendeeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attendee, err := s.store.AddMeetingAttendee(req.MeetingID, req.Name, req.Email, req.Role)
	if err != nil {
		return nil, fmt.Errorf("add attendee: %w", err)
	}
	resp := attendeeResponse(*attendee)
	return &resp, nil
}

// GetMeetingAttendees lists a meeting's attendees.
func (s *Service) GetMeetingAttendees(meetingID string) ([]types.AttendeeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attendees, err := s.store.GetMeetingAttendees(meetingID)
	if err != nil {
		return nil, fmt.Errorf("get attendees: %w", err)
	}
	result := make([]types.AttendeeResponse, 0, len(attendees))
	for _, a := range attendees {
		result = append(result, attendeeResponse(a))
	}
	return result, nil
}

// CreateMeetingAction records an action item on a meeting. An
// unparsable due date is treated as absent.
func (s *Service) CreateMeetingAction(req types.CreateActionRequest) (*types.ActionResponse, error) {
	dueDate := parseOptionalTime(req.DueDate)

	s.mu.Lock()
	defer s.mu.Unlock()

	action, err := s.store.CreateMeetingAction(req.MeetingID, req.Title, req.Description, req.Assignee, dueDate, req.Priority)
	if err != nil {
		return nil, fmt.Errorf("create action: %w", err)
	}
	resp := actionResponse(*action)
	return &resp, nil
}

// GetMeetingActions lists a meeting's actions.
func (s *Service) GetMeetingActions(meetingID string) ([]types.ActionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actions, err := s.store.GetMeetingActions(meetingID)
	if err != nil {
		return nil, fmt.Errorf("get actions: %w", err)
	}
	result := make([]types.ActionResponse, 0, len(actions))
	for _, a := range actions {
		result = append(result, actionResponse(a))
	}
	return result, nil
}

func meetingResponse(m types.Meeting) types.MeetingResponse {
	return types.MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		StartTime:   formatOptionalTime(m.StartTime),
		EndTime:     formatOptionalTime(m.EndTime),
		Location:    m.Location,
		MeetingType: m.MeetingType,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.Format(time.RFC3339),
	}
}

func attendeeResponse(a types.MeetingAttendee) types.AttendeeResponse {
	return types.AttendeeResponse{
		ID:        a.ID,
		MeetingID: a.MeetingID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		Status:    a.Status,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func actionResponse(a types.MeetingAction) types.ActionResponse {
	return types.ActionResponse{
		ID:          a.ID,
		MeetingID:   a.MeetingID,
		EntryItemID: a.EntryItemID,
		Title:       a.Title,
		Description: a.Description,
		Assignee:    a.Assignee,
		DueDate:     formatOptionalTime(a.DueDate),
		Status:      a.Status,
		Priority:    a.Priority,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}
