package query

import (
	"context"
	"fmt"

	"github.com/campus-hub/campus-event-hub/internal/domain/event"
	"github.com/campus-hub/campus-event-hub/internal/domain/report"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// EVENT POPULARITY QUERY
// Ranks a college's non-cancelled events by registration count. Events with
// zero registrations still appear, ranked last among ties by title.
// ══════════════════════════════════════════════════════════════════════════════

// EventPopularityQuery contains the parameters of a popularity report.
type EventPopularityQuery struct {
	CollegeID int64

	// Type narrows the report to one event type; empty means all types.
	Type string
}

// Validate checks the query parameters.
func (q *EventPopularityQuery) Validate() error {
	if !shared.CollegeID(q.CollegeID).IsValid() {
		return shared.WrapError("report", "EventPopularity", shared.ErrInvalidID, "college_id must be a positive integer", nil)
	}
	if q.Type != "" && !event.Type(q.Type).IsValid() {
		return shared.ErrInvalidEventType
	}
	return nil
}

// EventPopularityResult contains the ranked events.
type EventPopularityResult struct {
	Events []report.PopularityRow `json:"events"`
}

// EventPopularityHandler handles the EventPopularityQuery.
type EventPopularityHandler struct {
	reports report.Repository
	cache   ReportCache // optional, may be nil
}

// NewEventPopularityHandler creates a new EventPopularityHandler.
func NewEventPopularityHandler(reports report.Repository, cache ReportCache) *EventPopularityHandler {
	return &EventPopularityHandler{reports: reports, cache: cache}
}

// Handle executes the popularity report, consulting the cache first when
// one is configured.
func (h *EventPopularityHandler) Handle(ctx context.Context, q EventPopularityQuery) (*EventPopularityResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("popularity:%d:%s", q.CollegeID, q.Type)
	if h.cache != nil {
		if rows, ok := h.cache.GetPopularity(ctx, cacheKey); ok {
			return &EventPopularityResult{Events: rows}, nil
		}
	}

	rows, err := h.reports.EventPopularity(ctx, shared.CollegeID(q.CollegeID), q.Type)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []report.PopularityRow{}
	}

	if h.cache != nil {
		h.cache.SetPopularity(ctx, cacheKey, rows)
	}

	return &EventPopularityResult{Events: rows}, nil
}
