package command

import (
	"context"

	"github.com/campus-hub/campus-event-hub/internal/domain/college"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE COLLEGE COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// CreateCollegeCommand contains the data to create a college.
type CreateCollegeCommand struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// CreateCollegeResult contains the result of creating a college.
type CreateCollegeResult struct {
	CollegeID shared.CollegeID `json:"college_id"`
	Message   string           `json:"message"`
}

// CreateCollegeHandler handles the CreateCollegeCommand.
type CreateCollegeHandler struct {
	colleges college.Repository
}

// NewCreateCollegeHandler creates a new CreateCollegeHandler.
func NewCreateCollegeHandler(colleges college.Repository) *CreateCollegeHandler {
	return &CreateCollegeHandler{colleges: colleges}
}

// Handle validates the command and performs the single insert. A duplicate
// college code surfaces from the store as a conflict; there is no pre-check.
func (h *CreateCollegeHandler) Handle(ctx context.Context, cmd CreateCollegeCommand) (*CreateCollegeResult, error) {
	c, err := college.NewCollege(cmd.Name, cmd.Code)
	if err != nil {
		return nil, err
	}

	if err := h.colleges.Create(ctx, c); err != nil {
		return nil, err
	}

	return &CreateCollegeResult{
		CollegeID: c.ID,
		Message:   "college created",
	}, nil
}
