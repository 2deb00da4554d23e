package command

import (
	"context"

	"github.com/campus-hub/campus-event-hub/internal/domain/event"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
	"github.com/campus-hub/campus-event-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE EVENT COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// CreateEventCommand contains the data to create an event. StartTime and
// EndTime are RFC 3339 strings as they arrive on the wire.
type CreateEventCommand struct {
	CollegeID int64  `json:"college_id"`
	EventID   int64  `json:"event_id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Status    string `json:"status"` // defaults to SCHEDULED when empty
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Venue     string `json:"venue,omitempty"`
}

// CreateEventResult contains the result of creating an event.
type CreateEventResult struct {
	Message string `json:"message"`
}

// CreateEventHandler handles the CreateEventCommand.
type CreateEventHandler struct {
	events event.Repository
}

// NewCreateEventHandler creates a new CreateEventHandler.
func NewCreateEventHandler(events event.Repository) *CreateEventHandler {
	return &CreateEventHandler{events: events}
}

// Handle validates the command and performs the single insert. Validation
// fails before any persistence attempt; a duplicate key or missing college
// surfaces from the store as a conflict.
func (h *CreateEventHandler) Handle(ctx context.Context, cmd CreateEventCommand) (*CreateEventResult, error) {
	start, err := timeutil.ParseEventTime(cmd.StartTime)
	if err != nil {
		return nil, shared.WrapError("event", "Validate", shared.ErrValidation, "start_time must be an RFC 3339 timestamp", err)
	}
	end, err := timeutil.ParseEventTime(cmd.EndTime)
	if err != nil {
		return nil, shared.WrapError("event", "Validate", shared.ErrValidation, "end_time must be an RFC 3339 timestamp", err)
	}

	e, err := event.NewEvent(
		shared.CollegeID(cmd.CollegeID),
		shared.EventID(cmd.EventID),
		cmd.Title,
		event.Type(cmd.Type),
		event.Status(cmd.Status),
		start,
		end,
		cmd.Venue,
	)
	if err != nil {
		return nil, err
	}

	if err := h.events.Create(ctx, e); err != nil {
		return nil, err
	}

	return &CreateEventResult{Message: "event created"}, nil
}
