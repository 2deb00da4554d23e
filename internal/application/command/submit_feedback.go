package command

import (
	"context"
	"time"

	"github.com/campus-hub/campus-event-hub/internal/domain/participation"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
	"github.com/campus-hub/campus-event-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// SUBMIT FEEDBACK COMMAND
// The only upsert in the system: resubmitting overwrites the previous
// rating and comment and refreshes the submission time.
// ══════════════════════════════════════════════════════════════════════════════

// SubmitFeedbackCommand contains the data to submit event feedback.
type SubmitFeedbackCommand struct {
	CollegeID int64  `json:"college_id"`
	EventID   int64  `json:"event_id"`
	StudentID int64  `json:"student_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

// Key returns the participation key of the command.
func (c SubmitFeedbackCommand) Key() shared.ParticipationKey {
	return shared.ParticipationKey{
		CollegeID: shared.CollegeID(c.CollegeID),
		EventID:   shared.EventID(c.EventID),
		StudentID: shared.StudentID(c.StudentID),
	}
}

// SubmitFeedbackResult contains the result of submitting feedback.
type SubmitFeedbackResult struct {
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SubmitFeedbackHandler handles the SubmitFeedbackCommand.
type SubmitFeedbackHandler struct {
	gate     *EventGate
	feedback participation.FeedbackRepository

	// now is the clock used to stamp submissions; overridable in tests.
	now func() time.Time
}

// NewSubmitFeedbackHandler creates a new SubmitFeedbackHandler.
func NewSubmitFeedbackHandler(gate *EventGate, feedback participation.FeedbackRepository) *SubmitFeedbackHandler {
	return &SubmitFeedbackHandler{
		gate:     gate,
		feedback: feedback,
		now:      timeutil.NowUTC,
	}
}

// WithClock returns the handler with a replacement clock, for tests.
func (h *SubmitFeedbackHandler) WithClock(now func() time.Time) *SubmitFeedbackHandler {
	h.now = now
	return h
}

// Handle validates, consults the lifecycle gate, and upserts the feedback
// row stamped with the current time.
func (h *SubmitFeedbackHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) (*SubmitFeedbackResult, error) {
	fb, err := participation.NewFeedback(cmd.Key(), participation.Rating(cmd.Rating), cmd.Comment, h.now())
	if err != nil {
		return nil, err
	}

	if _, err := h.gate.CheckActionable(ctx, fb.Key.Event()); err != nil {
		return nil, err
	}

	if err := h.feedback.Upsert(ctx, fb); err != nil {
		return nil, err
	}

	return &SubmitFeedbackResult{
		Message:     "feedback saved",
		SubmittedAt: fb.SubmittedAt,
	}, nil
}
