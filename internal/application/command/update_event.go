package command

import (
	"context"

	"github.com/campus-hub/campus-event-hub/internal/domain/event"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE EVENT COMMAND
// The only mutation of an existing entity in the system: event status and
// venue. Everything else is insert-only.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateEventCommand contains the data for a partial event update. Nil
// fields are left untouched.
type UpdateEventCommand struct {
	CollegeID int64
	EventID   int64
	Status    *string
	Venue     *string
}

// UpdateEventResult contains the result of updating an event.
type UpdateEventResult struct {
	Message string `json:"message"`
}

// UpdateEventHandler handles the UpdateEventCommand.
type UpdateEventHandler struct {
	events event.Repository
}

// NewUpdateEventHandler creates a new UpdateEventHandler.
func NewUpdateEventHandler(events event.Repository) *UpdateEventHandler {
	return &UpdateEventHandler{events: events}
}

// Handle applies the partial update. Supplying neither field is a bad
// request; a nonexistent event is detected from the zero affected-row
// count inside the repository, not a pre-check.
func (h *UpdateEventHandler) Handle(ctx context.Context, cmd UpdateEventCommand) (*UpdateEventResult, error) {
	key := shared.EventKey{
		CollegeID: shared.CollegeID(cmd.CollegeID),
		EventID:   shared.EventID(cmd.EventID),
	}
	if !key.IsValid() {
		return nil, shared.WrapError("event", "Update", shared.ErrInvalidID, "college_id and event_id must be positive integers", nil)
	}

	var patch event.Patch
	if cmd.Status != nil {
		status := event.Status(*cmd.Status)
		patch.Status = &status
	}
	patch.Venue = cmd.Venue

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	if err := h.events.Update(ctx, key, patch); err != nil {
		return nil, err
	}

	return &UpdateEventResult{Message: "event updated"}, nil
}
