package command

import (
	"context"

	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
	"github.com/campus-hub/campus-event-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE STUDENT COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// CreateStudentCommand contains the data to create a student.
type CreateStudentCommand struct {
	CollegeID int64  `json:"college_id"`
	StudentID int64  `json:"student_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	RollNo    string `json:"roll_no"`
}

// CreateStudentResult contains the result of creating a student.
type CreateStudentResult struct {
	Message string `json:"message"`
}

// CreateStudentHandler handles the CreateStudentCommand.
type CreateStudentHandler struct {
	students student.Repository
}

// NewCreateStudentHandler creates a new CreateStudentHandler.
func NewCreateStudentHandler(students student.Repository) *CreateStudentHandler {
	return &CreateStudentHandler{students: students}
}

// Handle validates the command and performs the single insert. A missing
// college or duplicate key surfaces from the store as a conflict.
func (h *CreateStudentHandler) Handle(ctx context.Context, cmd CreateStudentCommand) (*CreateStudentResult, error) {
	s, err := student.NewStudent(
		shared.CollegeID(cmd.CollegeID),
		shared.StudentID(cmd.StudentID),
		cmd.Name,
		cmd.Email,
		cmd.RollNo,
	)
	if err != nil {
		return nil, err
	}

	if err := h.students.Create(ctx, s); err != nil {
		return nil, err
	}

	return &CreateStudentResult{Message: "student created"}, nil
}
