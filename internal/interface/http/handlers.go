package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/campus-hub/campus-event-hub/internal/application/command"
	"github.com/campus-hub/campus-event-hub/internal/application/query"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ERROR MAPPING
// One place translates the domain error taxonomy into response statuses.
// Every failure reaches the caller with code, message, and detail; nothing
// is swallowed or retried.
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var detail string
	var de *shared.DomainError
	if errors.As(err, &de) {
		detail = de.Message
	}

	switch {
	case shared.IsNotFound(err):
		writeJSONErrorWithDetails(w, http.StatusNotFound, "not_found", err.Error(), detail)
	case shared.IsPrecondition(err):
		writeJSONErrorWithDetails(w, http.StatusUnprocessableEntity, "precondition_failed", err.Error(), detail)
	case shared.IsConflict(err):
		writeJSONErrorWithDetails(w, http.StatusConflict, "conflict", err.Error(), detail)
	case shared.IsValidation(err):
		writeJSONErrorWithDetails(w, http.StatusUnprocessableEntity, "validation_error", err.Error(), detail)
	case shared.IsBadRequest(err):
		writeJSONErrorWithDetails(w, http.StatusBadRequest, "bad_request", err.Error(), detail)
	default:
		writeJSONErrorWithDetails(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred", err.Error())
	}
}

// decodeBody decodes the request body into dst, rejecting unknown fields.
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pathID parses a positive integer path segment.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, shared.WrapError("http", "ParsePath", shared.ErrValidation, name+" must be an integer", err)
	}
	return id, nil
}

// queryID parses a positive integer query parameter.
func queryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, shared.WrapError("http", "ParseQuery", shared.ErrValidation, name+" must be an integer", err)
	}
	return id, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// HEALTH & ROOT
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "campus-event-hub",
		"api":     "/api/v1",
		"health":  "/health",
		"version": "v1",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{"ok": true}

	if s.deps.HealthChecker != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := s.deps.HealthChecker.Ping(ctx); err != nil {
			resp["ok"] = false
			resp["database"] = err.Error()
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp["database"] = "up"
	}

	writeJSON(w, http.StatusOK, resp)
}

// ══════════════════════════════════════════════════════════════════════════════
// ADMIN: COLLEGES, STUDENTS, EVENTS
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleCreateCollege(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateCollegeCommand
	if err := decodeBody(r, &cmd); err != nil {
		writeJSONErrorWithDetails(w, http.StatusBadRequest, "bad_request", "invalid JSON body", err.Error())
		return
	}

	result, err := s.deps.CreateCollege.Handle(r.Context(), cmd)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateStudentCommand
	if err := decodeBody(r, &cmd); err != nil {
		writeJSONErrorWithDetails(w, http.StatusBadRequest, "bad_request", "invalid JSON body", err.Error())
		return
	}

	result, err := s.deps.CreateStudent.Handle(r.Context(), cmd)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateEventCommand
	if err := decodeBody(r, &cmd); err != nil {
		writeJSONErrorWithDetails(w, http.StatusBadRequest, "bad_request", "invalid JSON body", err.Error())
		return
	}

	result, err := s.deps.CreateEvent.Handle(r.Context(), cmd)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// handleUpdateEvent applies a partial update. Fields arrive as query
// parameters; a parameter joins the patch only when it carries a
// non-empty value, so "?venue=" is the same as omitting it and a
// request with no usable fields is a bad request.
func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	collegeID, err := pathID(r, "college_id")
	if err != nil {
		s.writeError(w, err)
		return
	}
	eventID, err := pathID(r, "event_id")
	if err != nil {
		s.writeError(w, err)
		return
	}

	cmd := command.UpdateEventCommand{
		CollegeID: collegeID,
		EventID:   eventID,
	}

	q := r.URL.Query()
	if status := q.Get("status"); status != "" {
		cmd.Status = &status
	}
	if venue := q.Get("venue"); venue != "" {
		cmd.Venue = &venue
	}

	result, err := s.deps.UpdateEvent.Handle(r.Context(), cmd)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ══════════════════════════════════════════════════════════════════════════════
// PARTICIPATION
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var cmd command.RegisterStudentCommand
	if err := decodeBody(r, &cmd); err != nil {
		writeJSONErrorWithDetails(w, http.StatusBadRequest, "bad_request", "invalid JSON body", err.Error())
		return
	}

	result, err := s.deps.RegisterStudent.Handle(r.Context(), cmd)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleMarkAttendance(w http.ResponseWriter, r *http.Request) {
	var cmd command.MarkAttendanceCommand
	if err := decodeBody(r, &cmd); err != nil {
		writeJSONErrorWithDetails(w, http.StatusBadRequest, "bad_request", "invalid JSON body", err.Error())
		return
	}

	result, err := s.deps.MarkAttendance.Handle(r.Context(), cmd)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var cmd command.SubmitFeedbackCommand
	if err := decodeBody(r, &cmd); err != nil {
		writeJSONErrorWithDetails(w, http.StatusBadRequest, "bad_request", "invalid JSON body", err.Error())
		return
	}

	result, err := s.deps.SubmitFeedback.Handle(r.Context(), cmd)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ══════════════════════════════════════════════════════════════════════════════
// REPORTS
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleEventPopularity(w http.ResponseWriter, r *http.Request) {
	collegeID, err := queryID(r, "college_id")
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.deps.EventPopularity.Handle(r.Context(), query.EventPopularityQuery{
		CollegeID: collegeID,
		Type:      r.URL.Query().Get("type"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAttendanceSummary(w http.ResponseWriter, r *http.Request) {
	collegeID, err := pathID(r, "college_id")
	if err != nil {
		s.writeError(w, err)
		return
	}
	eventID, err := pathID(r, "event_id")
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.deps.AttendanceSummary.Handle(r.Context(), query.AttendanceSummaryQuery{
		CollegeID: collegeID,
		EventID:   eventID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAvgFeedback(w http.ResponseWriter, r *http.Request) {
	collegeID, err := pathID(r, "college_id")
	if err != nil {
		s.writeError(w, err)
		return
	}
	eventID, err := pathID(r, "event_id")
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.deps.AvgFeedback.Handle(r.Context(), query.AvgFeedbackQuery{
		CollegeID: collegeID,
		EventID:   eventID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStudentParticipation(w http.ResponseWriter, r *http.Request) {
	collegeID, err := queryID(r, "college_id")
	if err != nil {
		s.writeError(w, err)
		return
	}
	studentID, err := queryID(r, "student_id")
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.deps.StudentParticipation.Handle(r.Context(), query.StudentParticipationQuery{
		CollegeID: collegeID,
		StudentID: studentID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTopActiveStudents(w http.ResponseWriter, r *http.Request) {
	collegeID, err := queryID(r, "college_id")
	if err != nil {
		s.writeError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, shared.WrapError("http", "ParseQuery", shared.ErrValidation, "limit must be an integer", err))
			return
		}
		limit = parsed
	}

	result, err := s.deps.TopActiveStudents.Handle(r.Context(), query.TopActiveStudentsQuery{
		CollegeID: collegeID,
		Limit:     limit,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
