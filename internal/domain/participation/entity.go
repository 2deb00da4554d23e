// Package participation contains the domain model for the three records
// linking a student to an event: registration, attendance, and feedback.
// No external dependencies.
package participation

import (
	"strings"
	"time"

	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// Registration records a student's intent to attend an event. At most one
// registration may exist per (college, event, student) triple.
type Registration struct {
	Key shared.ParticipationKey
}

// Validate checks the structural constraints of the registration.
func (r Registration) Validate() error {
	if !r.Key.IsValid() {
		return shared.WrapError("registration", "Validate", shared.ErrInvalidID, "college_id, event_id and student_id must be positive integers", nil)
	}
	return nil
}

// Attendance records the fact that a student was present at an event.
// A prior registration is deliberately not required; the two records are
// independent.
type Attendance struct {
	Key shared.ParticipationKey
}

// Validate checks the structural constraints of the attendance record.
func (a Attendance) Validate() error {
	if !a.Key.IsValid() {
		return shared.WrapError("attendance", "Validate", shared.ErrInvalidID, "college_id, event_id and student_id must be positive integers", nil)
	}
	return nil
}

// Rating is a student's 1-5 rating of an event.
type Rating int

// Rating bounds, inclusive.
const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

// IsValid checks that the rating is within [1, 5].
func (r Rating) IsValid() bool {
	return r >= MinRating && r <= MaxRating
}

// Int returns the underlying int value.
func (r Rating) Int() int {
	return int(r)
}

// Feedback is a student's post-event rating and optional comment. Unlike
// registration and attendance, a second submission overwrites the first
// rather than being rejected.
type Feedback struct {
	Key         shared.ParticipationKey
	Rating      Rating
	Comment     string // optional
	SubmittedAt time.Time
}

// NewFeedback creates a feedback record stamped with the given submission
// time, normalizing comment whitespace.
func NewFeedback(key shared.ParticipationKey, rating Rating, comment string, submittedAt time.Time) (*Feedback, error) {
	f := &Feedback{
		Key:         key,
		Rating:      rating,
		Comment:     strings.TrimSpace(comment),
		SubmittedAt: submittedAt,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the structural constraints of the feedback record.
func (f *Feedback) Validate() error {
	if !f.Key.IsValid() {
		return shared.WrapError("feedback", "Validate", shared.ErrInvalidID, "college_id, event_id and student_id must be positive integers", nil)
	}
	if !f.Rating.IsValid() {
		return shared.ErrInvalidRating
	}
	return nil
}
