package query

import (
	"context"

	"github.com/campus-hub/campus-event-hub/internal/domain/report"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// AVERAGE FEEDBACK QUERY
// Mean rating of one event. No feedback is a valid answer: the average is
// null and the count zero, never an error.
// ══════════════════════════════════════════════════════════════════════════════

// AvgFeedbackQuery identifies the event whose ratings are averaged.
type AvgFeedbackQuery struct {
	CollegeID int64
	EventID   int64
}

// Key returns the event key of the query.
func (q AvgFeedbackQuery) Key() shared.EventKey {
	return shared.EventKey{
		CollegeID: shared.CollegeID(q.CollegeID),
		EventID:   shared.EventID(q.EventID),
	}
}

// Validate checks the query parameters.
func (q *AvgFeedbackQuery) Validate() error {
	if !q.Key().IsValid() {
		return shared.WrapError("report", "AvgFeedback", shared.ErrInvalidID, "college_id and event_id must be positive integers", nil)
	}
	return nil
}

// AvgFeedbackHandler handles the AvgFeedbackQuery.
type AvgFeedbackHandler struct {
	reports report.Repository
}

// NewAvgFeedbackHandler creates a new AvgFeedbackHandler.
func NewAvgFeedbackHandler(reports report.Repository) *AvgFeedbackHandler {
	return &AvgFeedbackHandler{reports: reports}
}

// Handle executes the average, rounded to two decimals.
func (h *AvgFeedbackHandler) Handle(ctx context.Context, q AvgFeedbackQuery) (*report.FeedbackAverage, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	ratingSum, count, err := h.reports.FeedbackStats(ctx, q.Key())
	if err != nil {
		return nil, err
	}

	result := &report.FeedbackAverage{NumFeedback: count}
	if count > 0 {
		avg := round2(float64(ratingSum) / float64(count))
		result.AvgRating = &avg
	}
	return result, nil
}
