package query

import (
	"context"

	"github.com/campus-hub/campus-event-hub/internal/domain/report"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT PARTICIPATION QUERY
// How many events one student attended. A student with nothing attended, or
// an unknown student, yields an empty list rather than an error.
// ══════════════════════════════════════════════════════════════════════════════

// StudentParticipationQuery identifies the student to report on.
type StudentParticipationQuery struct {
	CollegeID int64
	StudentID int64
}

// Validate checks the query parameters.
func (q *StudentParticipationQuery) Validate() error {
	if !shared.CollegeID(q.CollegeID).IsValid() || !shared.StudentID(q.StudentID).IsValid() {
		return shared.WrapError("report", "StudentParticipation", shared.ErrInvalidID, "college_id and student_id must be positive integers", nil)
	}
	return nil
}

// StudentParticipationResult contains the participation rows.
type StudentParticipationResult struct {
	Participation []report.ParticipationRow `json:"participation"`
}

// StudentParticipationHandler handles the StudentParticipationQuery.
type StudentParticipationHandler struct {
	reports report.Repository
}

// NewStudentParticipationHandler creates a new StudentParticipationHandler.
func NewStudentParticipationHandler(reports report.Repository) *StudentParticipationHandler {
	return &StudentParticipationHandler{reports: reports}
}

// Handle executes the participation report.
func (h *StudentParticipationHandler) Handle(ctx context.Context, q StudentParticipationQuery) (*StudentParticipationResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.reports.StudentParticipation(ctx, shared.CollegeID(q.CollegeID), shared.StudentID(q.StudentID))
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []report.ParticipationRow{}
	}
	return &StudentParticipationResult{Participation: rows}, nil
}
