package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scobrodev/logbook/pkg/types"
)

func TestCreateMeeting(t *testing.T) {
	service := newTestService(t)

	start := "2024-05-02T10:00:00Z"
	resp, err := service.CreateMeeting(types.CreateMeetingRequest{
		Title:     "sprint review",
		StartTime: &start,
	})
	require.NoError(t, err)
	assert.Equal(t, "sprint review", resp.Title)
	assert.Equal(t, types.DefaultMeetingType, resp.MeetingType)
	assert.Equal(t, types.DefaultMeetingStatus, resp.Status)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, start, *resp.StartTime)
	assert.Nil(t, resp.EndTime)
}

func TestCreateMeeting_UnparsableTimeDropped(t *testing.T) {
	service := newTestService(t)

	start := "next tuesday"
	resp, err := service.CreateMeeting(types.CreateMeetingRequest{
		Title:     "planning",
		StartTime: &start,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.StartTime, "unparsable times are treated as absent")
}

func TestMeetingAttendees(t *testing.T) {
	service := newTestService(t)

	meeting, err := service.CreateMeeting(types.CreateMeetingRequest{Title: "kickoff"})
	require.NoError(t, err)

	role := "organizer"
	_, err = service.AddMeetingAttendee(types.AddAttendeeRequest{
		MeetingID: meeting.ID,
		Name:      "alice",
		Role:      &role,
	})
	require.NoError(t, err)

	attendees, err := service.GetMeetingAttendees(meeting.ID)
	require.NoError(t, err)
	require.Len(t, attendees, 1)
	assert.Equal(t, "alice", attendees[0].Name)
	assert.Equal(t, "organizer", attendees[0].Role)
}

func TestMeetingAttendee_ParentMissing(t *testing.T) {
	service := newTestService(t)

	_, err := service.AddMeetingAttendee(types.AddAttendeeRequest{
		MeetingID: "no-such-meeting",
		Name:      "alice",
	})
	assert.ErrorIs(t, err, types.ErrParentNotFound)
}

func TestMeetingActions(t *testing.T) {
	service := newTestService(t)

	meeting, err := service.CreateMeeting(types.CreateMeetingRequest{Title: "kickoff"})
	require.NoError(t, err)

	due := "2024-06-01T00:00:00Z"
	_, err = service.CreateMeetingAction(types.CreateActionRequest{
		MeetingID: meeting.ID,
		Title:     "write minutes",
		DueDate:   &due,
	})
	require.NoError(t, err)

	actions, err := service.GetMeetingActions(meeting.ID)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "write minutes", actions[0].Title)
	assert.Equal(t, types.DefaultActionStatus, actions[0].Status)
	require.NotNil(t, actions[0].DueDate)
	assert.Equal(t, due, *actions[0].DueDate)
}

func TestDeleteMeeting(t *testing.T) {
	service := newTestService(t)

	meeting, err := service.CreateMeeting(types.CreateMeetingRequest{Title: "kickoff"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteMeeting(meeting.ID))
	require.NoError(t, service.DeleteMeeting(meeting.ID), "repeat delete is a no-op")

	meetings, err := service.GetAllMeetings()
	require.NoError(t, err)
	assert.Empty(t, meetings)
}
