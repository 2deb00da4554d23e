// Package student contains the domain model for students enrolled in a
// college. No external dependencies.
package student

import (
	"strings"

	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// Student belongs to exactly one college; (CollegeID, StudentID) is the
// natural key.
type Student struct {
	CollegeID shared.CollegeID
	StudentID shared.StudentID
	Name      string
	Email     string
	RollNo    string
}

// NewStudent creates a student from its input fields, normalizing whitespace.
func NewStudent(collegeID shared.CollegeID, studentID shared.StudentID, name, email, rollNo string) (*Student, error) {
	s := &Student{
		CollegeID: collegeID,
		StudentID: studentID,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		RollNo:    strings.TrimSpace(rollNo),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the structural constraints of the student record.
func (s *Student) Validate() error {
	if !s.CollegeID.IsValid() {
		return shared.WrapError("student", "Validate", shared.ErrInvalidID, "college_id must be a positive integer", nil)
	}
	if !s.StudentID.IsValid() {
		return shared.WrapError("student", "Validate", shared.ErrInvalidID, "student_id must be a positive integer", nil)
	}
	if s.Name == "" {
		return shared.WrapError("student", "Validate", shared.ErrEmptyValue, "name is required", nil)
	}
	if s.Email == "" {
		return shared.WrapError("student", "Validate", shared.ErrEmptyValue, "email is required", nil)
	}
	if s.RollNo == "" {
		return shared.WrapError("student", "Validate", shared.ErrEmptyValue, "roll_no is required", nil)
	}
	return nil
}
