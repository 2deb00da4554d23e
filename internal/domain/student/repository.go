package student

import "context"

// Repository defines the persistence contract for students.
// Implementations live in infrastructure/persistence.
type Repository interface {
	// Create inserts a new student.
	// Returns shared.ErrDuplicateStudent when the (college_id, student_id)
	// key already exists, and a referential-integrity conflict when the
	// owning college is absent.
	Create(ctx context.Context, s *Student) error
}
