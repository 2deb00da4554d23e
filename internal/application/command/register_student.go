package command

import (
	"context"

	"github.com/campus-hub/campus-event-hub/internal/domain/participation"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER STUDENT COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// RegisterStudentCommand contains the data to register a student for an
// event.
type RegisterStudentCommand struct {
	CollegeID int64 `json:"college_id"`
	EventID   int64 `json:"event_id"`
	StudentID int64 `json:"student_id"`
}

// Key returns the participation key of the command.
func (c RegisterStudentCommand) Key() shared.ParticipationKey {
	return shared.ParticipationKey{
		CollegeID: shared.CollegeID(c.CollegeID),
		EventID:   shared.EventID(c.EventID),
		StudentID: shared.StudentID(c.StudentID),
	}
}

// RegisterStudentResult contains the result of registering a student.
type RegisterStudentResult struct {
	Message string `json:"message"`
}

// RegisterStudentHandler handles the RegisterStudentCommand.
type RegisterStudentHandler struct {
	gate          *EventGate
	registrations participation.RegistrationRepository
}

// NewRegisterStudentHandler creates a new RegisterStudentHandler.
func NewRegisterStudentHandler(gate *EventGate, registrations participation.RegistrationRepository) *RegisterStudentHandler {
	return &RegisterStudentHandler{gate: gate, registrations: registrations}
}

// Handle validates, consults the lifecycle gate, and performs the single
// insert. A duplicate triple surfaces from the store as a conflict.
func (h *RegisterStudentHandler) Handle(ctx context.Context, cmd RegisterStudentCommand) (*RegisterStudentResult, error) {
	reg := participation.Registration{Key: cmd.Key()}
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.gate.CheckActionable(ctx, reg.Key.Event()); err != nil {
		return nil, err
	}

	if err := h.registrations.Create(ctx, reg); err != nil {
		return nil, err
	}

	return &RegisterStudentResult{Message: "registered"}, nil
}
