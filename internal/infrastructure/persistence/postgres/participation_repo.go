package postgres

import (
	"context"
	"fmt"

	"github.com/campus-hub/campus-event-hub/internal/domain/participation"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// PARTICIPATION REPOSITORIES
// Registration and attendance are plain inserts; feedback is the one
// table written with an upsert.
// ══════════════════════════════════════════════════════════════════════════════

// RegistrationRepository implements participation.RegistrationRepository
// for PostgreSQL.
type RegistrationRepository struct {
	conn *Connection
}

// NewRegistrationRepository creates a new RegistrationRepository.
func NewRegistrationRepository(conn *Connection) *RegistrationRepository {
	return &RegistrationRepository{conn: conn}
}

// Create inserts a registration. A repeat surfaces as
// shared.ErrDuplicateRegistration; an absent event or student as a
// referential-integrity error.
func (r *RegistrationRepository) Create(ctx context.Context, reg participation.Registration) error {
	query := `
		INSERT INTO registrations (college_id, event_id, student_id)
		VALUES ($1, $2, $3)
	`

	_, err := r.conn.Exec(ctx, query,
		reg.Key.CollegeID.Int64(),
		reg.Key.EventID.Int64(),
		reg.Key.StudentID.Int64(),
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.ErrDuplicateRegistration
		}
		if IsForeignKeyViolation(err) {
			return shared.WrapError("registration", "Create", shared.ErrReferentialIntegrity, "event or student does not exist", err)
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}

	return nil
}

// AttendanceRepository implements participation.AttendanceRepository for
// PostgreSQL.
type AttendanceRepository struct {
	conn *Connection
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(conn *Connection) *AttendanceRepository {
	return &AttendanceRepository{conn: conn}
}

// Create inserts an attendance record. A repeat surfaces as
// shared.ErrDuplicateAttendance; an absent event or student as a
// referential-integrity error.
func (r *AttendanceRepository) Create(ctx context.Context, a participation.Attendance) error {
	query := `
		INSERT INTO attendance (college_id, event_id, student_id)
		VALUES ($1, $2, $3)
	`

	_, err := r.conn.Exec(ctx, query,
		a.Key.CollegeID.Int64(),
		a.Key.EventID.Int64(),
		a.Key.StudentID.Int64(),
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.ErrDuplicateAttendance
		}
		if IsForeignKeyViolation(err) {
			return shared.WrapError("attendance", "Create", shared.ErrReferentialIntegrity, "event or student does not exist", err)
		}
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	return nil
}

// FeedbackRepository implements participation.FeedbackRepository for
// PostgreSQL.
type FeedbackRepository struct {
	conn *Connection
}

// NewFeedbackRepository creates a new FeedbackRepository.
func NewFeedbackRepository(conn *Connection) *FeedbackRepository {
	return &FeedbackRepository{conn: conn}
}

// Upsert inserts the feedback row, or on a key conflict overwrites
// rating, comment, and submitted_at.
func (r *FeedbackRepository) Upsert(ctx context.Context, f *participation.Feedback) error {
	query := `
		INSERT INTO feedback (college_id, event_id, student_id, rating, comment, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (college_id, event_id, student_id)
		DO UPDATE SET rating = EXCLUDED.rating,
		              comment = EXCLUDED.comment,
		              submitted_at = EXCLUDED.submitted_at
	`

	_, err := r.conn.Exec(ctx, query,
		f.Key.CollegeID.Int64(),
		f.Key.EventID.Int64(),
		f.Key.StudentID.Int64(),
		f.Rating.Int(),
		f.Comment,
		f.SubmittedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return shared.WrapError("feedback", "Upsert", shared.ErrReferentialIntegrity, "event or student does not exist", err)
		}
		return fmt.Errorf("failed to upsert feedback: %w", err)
	}

	return nil
}
