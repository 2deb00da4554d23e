package participation

import "context"

// RegistrationRepository defines the persistence contract for registrations.
type RegistrationRepository interface {
	// Create inserts a registration.
	// Returns shared.ErrDuplicateRegistration when the triple already
	// exists, and a referential-integrity conflict when the event or
	// student is absent.
	Create(ctx context.Context, r Registration) error
}

// AttendanceRepository defines the persistence contract for attendance.
type AttendanceRepository interface {
	// Create inserts an attendance record.
	// Returns shared.ErrDuplicateAttendance when the triple already
	// exists, and a referential-integrity conflict when the event or
	// student is absent.
	Create(ctx context.Context, a Attendance) error
}

// FeedbackRepository defines the persistence contract for feedback.
type FeedbackRepository interface {
	// Upsert inserts the feedback row, or on a key conflict overwrites
	// rating, comment, and submitted_at with the new values.
	Upsert(ctx context.Context, f *Feedback) error
}
