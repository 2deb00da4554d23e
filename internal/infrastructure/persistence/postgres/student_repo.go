package postgres

import (
	"context"
	"fmt"

	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
	"github.com/campus-hub/campus-event-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// StudentRepository implements student.Repository for PostgreSQL.
type StudentRepository struct {
	conn *Connection
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(conn *Connection) *StudentRepository {
	return &StudentRepository{conn: conn}
}

// Create inserts a new student. A key collision surfaces as
// shared.ErrDuplicateStudent; an absent college surfaces as a conflict,
// same as any other integrity violation on create.
func (r *StudentRepository) Create(ctx context.Context, s *student.Student) error {
	query := `
		INSERT INTO students (college_id, student_id, name, email, roll_no)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.conn.Exec(ctx, query,
		s.CollegeID.Int64(),
		s.StudentID.Int64(),
		s.Name,
		s.Email,
		s.RollNo,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.ErrDuplicateStudent
		}
		if IsForeignKeyViolation(err) {
			return shared.WrapError("student", "Create", shared.ErrReferentialIntegrity, "college does not exist", err)
		}
		return fmt.Errorf("failed to create student: %w", err)
	}

	return nil
}
