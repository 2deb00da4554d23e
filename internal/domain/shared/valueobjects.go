// Package shared contains common domain types and errors used across all
// domain packages.
package shared

import "fmt"

// ═══════════════════════════════════════════════════════════════════════════
// ID Value Objects
// ═══════════════════════════════════════════════════════════════════════════

// CollegeID identifies a college, the top-level scope for every other entity.
type CollegeID int64

// IsValid checks if the college ID is valid (positive number).
func (c CollegeID) IsValid() bool {
	return c > 0
}

// Int64 returns the underlying int64 value.
func (c CollegeID) Int64() int64 {
	return int64(c)
}

// String returns the string representation.
func (c CollegeID) String() string {
	return fmt.Sprintf("%d", c)
}

// StudentID identifies a student within its owning college. It is only
// unique together with a CollegeID.
type StudentID int64

// IsValid checks if the student ID is valid (positive number).
func (s StudentID) IsValid() bool {
	return s > 0
}

// Int64 returns the underlying int64 value.
func (s StudentID) Int64() int64 {
	return int64(s)
}

// EventID identifies an event within its owning college. It is only
// unique together with a CollegeID.
type EventID int64

// IsValid checks if the event ID is valid (positive number).
func (e EventID) IsValid() bool {
	return e > 0
}

// Int64 returns the underlying int64 value.
func (e EventID) Int64() int64 {
	return int64(e)
}

// ═══════════════════════════════════════════════════════════════════════════
// Composite Keys
// ═══════════════════════════════════════════════════════════════════════════

// EventKey is the natural key of an event.
type EventKey struct {
	CollegeID CollegeID
	EventID   EventID
}

// IsValid checks that both components are positive.
func (k EventKey) IsValid() bool {
	return k.CollegeID.IsValid() && k.EventID.IsValid()
}

// ParticipationKey is the natural key of a registration, attendance record,
// or feedback row: one student against one event within one college.
type ParticipationKey struct {
	CollegeID CollegeID
	EventID   EventID
	StudentID StudentID
}

// IsValid checks that all three components are positive.
func (k ParticipationKey) IsValid() bool {
	return k.CollegeID.IsValid() && k.EventID.IsValid() && k.StudentID.IsValid()
}

// Event returns the event part of the key.
func (k ParticipationKey) Event() EventKey {
	return EventKey{CollegeID: k.CollegeID, EventID: k.EventID}
}
