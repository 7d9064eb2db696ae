package api

import (
	"net/http"

	"github.com/scobrodev/logbook/pkg/types"
)

func (s *Server) createEntry(w http.ResponseWriter, r *http.Request) {
	var req types.CreateEntryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.service.CreateEntry(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	resp, err := s.service.GetAllEntries()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteEntry(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) updateEntryItem(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateEntryItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.service.UpdateEntryItem(r.PathValue("id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) deleteEntryItem(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteEntryItem(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) exportCSV(w http.ResponseWriter, r *http.Request) {
	body, err := s.service.ExportCSV()
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, http.StatusOK, body)
}

func (s *Server) exportMarkdown(w http.ResponseWriter, r *http.Request) {
	body, err := s.service.ExportMarkdown()
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, http.StatusOK, body)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProjectRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.service.CreateProject(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	resp, err := s.service.GetAllProjects()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateProjectRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.ID = r.PathValue("id")
	resp, err := s.service.UpdateProject(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteProject(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createTag(w http.ResponseWriter, r *http.Request) {
	var req types.CreateTagRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.service.CreateTag(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	resp, err := s.service.GetAllTags()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) updateTag(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateTagRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.ID = r.PathValue("id")
	resp, err := s.service.UpdateTag(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) deleteTag(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteTag(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createMeeting(w http.ResponseWriter, r *http.Request) {
	var req types.CreateMeetingRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.service.CreateMeeting(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) listMeetings(w http.ResponseWriter, r *http.Request) {
	resp, err := s.service.GetAllMeetings()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) deleteMeeting(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteMeeting(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addAttendee(w http.ResponseWriter, r *http.Request) {
	var req types.AddAttendeeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.MeetingID = r.PathValue("id")
	resp, err := s.service.AddMeetingAttendee(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) listAttendees(w http.ResponseWriter, r *http.Request) {
	resp, err := s.service.GetMeetingAttendees(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createAction(w http.ResponseWriter, r *http.Request) {
	var req types.CreateActionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.MeetingID = r.PathValue("id")
	resp, err := s.service.CreateMeetingAction(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) listActions(w http.ResponseWriter, r *http.Request) {
	resp, err := s.service.GetMeetingActions(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
