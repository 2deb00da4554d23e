// Package report contains the read models produced by the reporting engine.
// These are projections over registrations, attendance, and feedback; they
// are never written through this package. No external dependencies.
package report

import "github.com/campus-hub/campus-event-hub/internal/domain/shared"

// PopularityRow is one event in a popularity ranking: the event with its
// registration count (zero when nobody registered).
type PopularityRow struct {
	CollegeID     shared.CollegeID `json:"college_id"`
	EventID       shared.EventID   `json:"event_id"`
	Title         string           `json:"title"`
	Type          string           `json:"type"`
	Status        string           `json:"status"`
	Registrations int              `json:"registrations"`
}

// AttendanceSummary aggregates one event's registrations against its
// attendance. AttendancePct is 0.0 when nothing was registered.
type AttendanceSummary struct {
	CollegeID          shared.CollegeID `json:"college_id"`
	EventID            shared.EventID   `json:"event_id"`
	Title              string           `json:"title"`
	TotalRegistrations int              `json:"total_registrations"`
	TotalAttended      int              `json:"total_attended"`
	AttendancePct      float64          `json:"attendance_pct"`
}

// FeedbackAverage is the mean rating of an event. AvgRating is nil when no
// feedback exists; that case is a valid result, not an error.
type FeedbackAverage struct {
	AvgRating   *float64 `json:"avg_rating"`
	NumFeedback int      `json:"num_feedback"`
}

// ParticipationRow counts the distinct events one student attended.
type ParticipationRow struct {
	CollegeID      shared.CollegeID `json:"college_id"`
	StudentID      shared.StudentID `json:"student_id"`
	Name           string           `json:"name"`
	EventsAttended int              `json:"events_attended"`
}

// ActiveStudentRow is one student in the top-active ranking.
type ActiveStudentRow struct {
	CollegeID     shared.CollegeID `json:"college_id"`
	StudentID     shared.StudentID `json:"student_id"`
	Name          string           `json:"name"`
	AttendedCount int              `json:"attended_count"`
}
