package command

import (
	"context"

	"github.com/campus-hub/campus-event-hub/internal/domain/participation"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MARK ATTENDANCE COMMAND
// Attendance does not require a prior registration: walk-ins are recorded
// as-is. The records are independent by design.
// ══════════════════════════════════════════════════════════════════════════════

// MarkAttendanceCommand contains the data to mark a student present at an
// event.
type MarkAttendanceCommand struct {
	CollegeID int64 `json:"college_id"`
	EventID   int64 `json:"event_id"`
	StudentID int64 `json:"student_id"`
}

// Key returns the participation key of the command.
func (c MarkAttendanceCommand) Key() shared.ParticipationKey {
	return shared.ParticipationKey{
		CollegeID: shared.CollegeID(c.CollegeID),
		EventID:   shared.EventID(c.EventID),
		StudentID: shared.StudentID(c.StudentID),
	}
}

// MarkAttendanceResult contains the result of marking attendance.
type MarkAttendanceResult struct {
	Message string `json:"message"`
}

// MarkAttendanceHandler handles the MarkAttendanceCommand.
type MarkAttendanceHandler struct {
	gate       *EventGate
	attendance participation.AttendanceRepository
}

// NewMarkAttendanceHandler creates a new MarkAttendanceHandler.
func NewMarkAttendanceHandler(gate *EventGate, attendance participation.AttendanceRepository) *MarkAttendanceHandler {
	return &MarkAttendanceHandler{gate: gate, attendance: attendance}
}

// Handle validates, consults the lifecycle gate, and performs the single
// insert. A duplicate triple surfaces from the store as a conflict.
func (h *MarkAttendanceHandler) Handle(ctx context.Context, cmd MarkAttendanceCommand) (*MarkAttendanceResult, error) {
	att := participation.Attendance{Key: cmd.Key()}
	if err := att.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.gate.CheckActionable(ctx, att.Key.Event()); err != nil {
		return nil, err
	}

	if err := h.attendance.Create(ctx, att); err != nil {
		return nil, err
	}

	return &MarkAttendanceResult{Message: "attendance marked"}, nil
}
