package query

import (
	"context"
	"fmt"

	"github.com/campus-hub/campus-event-hub/internal/domain/report"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// DefaultTopStudents is the ranking size when the caller does not ask for
// a specific limit.
const DefaultTopStudents = 3

// ══════════════════════════════════════════════════════════════════════════════
// TOP ACTIVE STUDENTS QUERY
// Ranks a college's students by events attended, descending, ties broken by
// name ascending. Students who never attended anything do not appear.
// ══════════════════════════════════════════════════════════════════════════════

// TopActiveStudentsQuery contains the parameters of the ranking.
type TopActiveStudentsQuery struct {
	CollegeID int64

	// Limit caps the ranking size; zero means DefaultTopStudents.
	Limit int
}

// Validate checks the query parameters and applies the default limit.
func (q *TopActiveStudentsQuery) Validate() error {
	if !shared.CollegeID(q.CollegeID).IsValid() {
		return shared.WrapError("report", "TopActiveStudents", shared.ErrInvalidID, "college_id must be a positive integer", nil)
	}
	if q.Limit < 0 {
		return shared.WrapError("report", "TopActiveStudents", shared.ErrValueOutOfRange, "limit cannot be negative", nil)
	}
	if q.Limit == 0 {
		q.Limit = DefaultTopStudents
	}
	return nil
}

// TopActiveStudentsResult contains the ranked students.
type TopActiveStudentsResult struct {
	Students []report.ActiveStudentRow `json:"students"`
}

// TopActiveStudentsHandler handles the TopActiveStudentsQuery.
type TopActiveStudentsHandler struct {
	reports report.Repository
	cache   ReportCache // optional, may be nil
}

// NewTopActiveStudentsHandler creates a new TopActiveStudentsHandler.
func NewTopActiveStudentsHandler(reports report.Repository, cache ReportCache) *TopActiveStudentsHandler {
	return &TopActiveStudentsHandler{reports: reports, cache: cache}
}

// Handle executes the ranking, consulting the cache first when one is
// configured.
func (h *TopActiveStudentsHandler) Handle(ctx context.Context, q TopActiveStudentsQuery) (*TopActiveStudentsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("top-students:%d:%d", q.CollegeID, q.Limit)
	if h.cache != nil {
		if rows, ok := h.cache.GetTopStudents(ctx, cacheKey); ok {
			return &TopActiveStudentsResult{Students: rows}, nil
		}
	}

	rows, err := h.reports.TopActiveStudents(ctx, shared.CollegeID(q.CollegeID), q.Limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []report.ActiveStudentRow{}
	}

	if h.cache != nil {
		h.cache.SetTopStudents(ctx, cacheKey, rows)
	}

	return &TopActiveStudentsResult{Students: rows}, nil
}
