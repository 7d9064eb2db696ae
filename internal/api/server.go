// Package api exposes the command surface as a JSON HTTP API for
// external front ends. It is a thin pass-through: every handler decodes
// a request, invokes one command, and encodes the result.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/scobrodev/logbook/internal/command"
	"github.com/scobrodev/logbook/pkg/types"
)

// Server handles HTTP requests for the logbook API.
type Server struct {
	service *command.Service
	addr    string
}

// New creates a new API server around the command service.
func New(service *command.Service, addr string) *Server {
	return &Server{service: service, addr: addr}
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	fmt.Printf("Starting server on %s\n", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Handler builds the route table. Exposed separately so tests can mount
// it on httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Entries
	mux.HandleFunc("POST /entries", s.createEntry)
	mux.HandleFunc("GET /entries", s.listEntries)
	mux.HandleFunc("DELETE /entries/{id}", s.deleteEntry)
	mux.HandleFunc("PATCH /entries/items/{id}", s.updateEntryItem)
	mux.HandleFunc("DELETE /entries/items/{id}", s.deleteEntryItem)

	// Exports
	mux.HandleFunc("GET /export/csv", s.exportCSV)
	mux.HandleFunc("GET /export/markdown", s.exportMarkdown)

	// Projects and tags
	mux.HandleFunc("POST /projects", s.createProject)
	mux.HandleFunc("GET /projects", s.listProjects)
	mux.HandleFunc("PATCH /projects/{id}", s.updateProject)
	mux.HandleFunc("DELETE /projects/{id}", s.deleteProject)
	mux.HandleFunc("POST /tags", s.createTag)
	mux.HandleFunc("GET /tags", s.listTags)
	mux.HandleFunc("PATCH /tags/{id}", s.updateTag)
	mux.HandleFunc("DELETE /tags/{id}", s.deleteTag)

	// Meetings
	mux.HandleFunc("POST /meetings", s.createMeeting)
	mux.HandleFunc("GET /meetings", s.listMeetings)
	mux.HandleFunc("DELETE /meetings/{id}", s.deleteMeeting)
	mux.HandleFunc("POST /meetings/{id}/attendees", s.addAttendee)
	mux.HandleFunc("GET /meetings/{id}/attendees", s.listAttendees)
	mux.HandleFunc("POST /meetings/{id}/actions", s.createAction)
	mux.HandleFunc("GET /meetings/{id}/actions", s.listActions)

	// Health check
	mux.HandleFunc("GET /health", s.health)

	return withCORS(mux)
}

// withCORS adds CORS headers for frontend development.
func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeText sends a plain-text blob (the export formats).
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// writeError maps command errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrParentNotFound),
		errors.Is(err, types.ErrInvalidTimestamp),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidData):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// decode reads a JSON request body into v.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %s", types.ErrInvalidData, err)
	}
	return nil
}
