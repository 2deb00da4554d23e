package report

import (
	"context"

	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// Repository defines the read-only aggregation contract backing the
// reporting engine. Implementations live in infrastructure/persistence.
// Every query is scoped by a college.
type Repository interface {
	// EventPopularity returns every non-cancelled event of the college with
	// its registration count, ordered by count descending and title
	// ascending. typeFilter narrows to one event type when non-empty.
	EventPopularity(ctx context.Context, collegeID shared.CollegeID, typeFilter string) ([]PopularityRow, error)

	// AttendanceCounts returns the event title plus total registrations and
	// total attendance for one event.
	// Returns shared.ErrEventNotFound when the event does not exist.
	AttendanceCounts(ctx context.Context, key shared.EventKey) (title string, registered, attended int, err error)

	// FeedbackStats returns the sum of ratings and the number of feedback
	// rows for one event. Zero rows is a valid result.
	FeedbackStats(ctx context.Context, key shared.EventKey) (ratingSum, count int, err error)

	// StudentParticipation returns the attendance count for one student,
	// joined with the student's name. An absent student or one with no
	// attendance yields an empty slice.
	StudentParticipation(ctx context.Context, collegeID shared.CollegeID, studentID shared.StudentID) ([]ParticipationRow, error)

	// TopActiveStudents returns students of the college ranked by attendance
	// count descending, name ascending, truncated to limit rows.
	TopActiveStudents(ctx context.Context, collegeID shared.CollegeID, limit int) ([]ActiveStudentRow, error)
}
