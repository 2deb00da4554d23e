package query

import (
	"context"

	"github.com/campus-hub/campus-event-hub/internal/domain/report"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ATTENDANCE SUMMARY QUERY
// Registrations versus attendance for one event. The percentage is computed
// here, not in SQL, so every backend reports the same rounding.
// ══════════════════════════════════════════════════════════════════════════════

// AttendanceSummaryQuery identifies the event to summarize.
type AttendanceSummaryQuery struct {
	CollegeID int64
	EventID   int64
}

// Key returns the event key of the query.
func (q AttendanceSummaryQuery) Key() shared.EventKey {
	return shared.EventKey{
		CollegeID: shared.CollegeID(q.CollegeID),
		EventID:   shared.EventID(q.EventID),
	}
}

// Validate checks the query parameters.
func (q *AttendanceSummaryQuery) Validate() error {
	if !q.Key().IsValid() {
		return shared.WrapError("report", "AttendanceSummary", shared.ErrInvalidID, "college_id and event_id must be positive integers", nil)
	}
	return nil
}

// AttendanceSummaryHandler handles the AttendanceSummaryQuery.
type AttendanceSummaryHandler struct {
	reports report.Repository
}

// NewAttendanceSummaryHandler creates a new AttendanceSummaryHandler.
func NewAttendanceSummaryHandler(reports report.Repository) *AttendanceSummaryHandler {
	return &AttendanceSummaryHandler{reports: reports}
}

// Handle executes the summary. An event with zero registrations yields an
// attendance percentage of exactly 0.0 rather than a division error.
func (h *AttendanceSummaryHandler) Handle(ctx context.Context, q AttendanceSummaryQuery) (*report.AttendanceSummary, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	title, registered, attended, err := h.reports.AttendanceCounts(ctx, q.Key())
	if err != nil {
		return nil, err
	}

	pct := 0.0
	if registered > 0 {
		pct = round2(100 * float64(attended) / float64(registered))
	}

	return &report.AttendanceSummary{
		CollegeID:          shared.CollegeID(q.CollegeID),
		EventID:            shared.EventID(q.EventID),
		Title:              title,
		TotalRegistrations: registered,
		TotalAttended:      attended,
		AttendancePct:      pct,
	}, nil
}
