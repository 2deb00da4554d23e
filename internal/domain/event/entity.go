// Package event contains the domain model for campus events and the
// lifecycle rule governing participation. No external dependencies.
package event

import (
	"strings"
	"time"

	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Type classifies an event.
type Type string

const (
	TypeWorkshop  Type = "Workshop"
	TypeSeminar   Type = "Seminar"
	TypeHackathon Type = "Hackathon"
	TypeFest      Type = "Fest"
	TypeTalk      Type = "Talk"
)

// Types lists every valid event type.
func Types() []Type {
	return []Type{TypeWorkshop, TypeSeminar, TypeHackathon, TypeFest, TypeTalk}
}

// IsValid checks that the type is one of the enumerated literals.
func (t Type) IsValid() bool {
	switch t {
	case TypeWorkshop, TypeSeminar, TypeHackathon, TypeFest, TypeTalk:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Type) String() string {
	return string(t)
}

// Status is the lifecycle state of an event. Transitions happen only via an
// explicit update; time passing never moves an event to COMPLETED.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// IsValid checks that the status is one of the enumerated literals.
func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// AllowsParticipation reports whether registration, attendance, and feedback
// are accepted against an event in this state. Only CANCELLED blocks;
// COMPLETED events still accept all three. The asymmetry is a business rule,
// not a storage artifact, and lives here and nowhere else.
func (s Status) AllowsParticipation() bool {
	return s != StatusCancelled
}

// String returns the string representation.
func (s Status) String() string {
	return string(s)
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: EVENT
// ══════════════════════════════════════════════════════════════════════════════

// Event belongs to a college; (CollegeID, EventID) is the natural key.
type Event struct {
	CollegeID shared.CollegeID
	EventID   shared.EventID
	Title     string
	Type      Type
	Status    Status
	StartTime time.Time
	EndTime   time.Time
	Venue     string // optional
}

// NewEvent creates an event from its input fields. An empty status defaults
// to SCHEDULED.
func NewEvent(collegeID shared.CollegeID, eventID shared.EventID, title string, typ Type, status Status, start, end time.Time, venue string) (*Event, error) {
	if status == "" {
		status = StatusScheduled
	}
	e := &Event{
		CollegeID: collegeID,
		EventID:   eventID,
		Title:     strings.TrimSpace(title),
		Type:      typ,
		Status:    status,
		StartTime: start,
		EndTime:   end,
		Venue:     strings.TrimSpace(venue),
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the structural constraints of the event record.
func (e *Event) Validate() error {
	if !e.CollegeID.IsValid() {
		return shared.WrapError("event", "Validate", shared.ErrInvalidID, "college_id must be a positive integer", nil)
	}
	if !e.EventID.IsValid() {
		return shared.WrapError("event", "Validate", shared.ErrInvalidID, "event_id must be a positive integer", nil)
	}
	if e.Title == "" {
		return shared.WrapError("event", "Validate", shared.ErrEmptyValue, "title is required", nil)
	}
	if !e.Type.IsValid() {
		return shared.WrapError("event", "Validate", shared.ErrValidation, "type must be one of Workshop, Seminar, Hackathon, Fest, Talk", nil)
	}
	if !e.Status.IsValid() {
		return shared.WrapError("event", "Validate", shared.ErrValidation, "status must be one of SCHEDULED, CANCELLED, COMPLETED", nil)
	}
	if e.StartTime.IsZero() || e.EndTime.IsZero() {
		return shared.WrapError("event", "Validate", shared.ErrEmptyValue, "start_time and end_time are required", nil)
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// PARTIAL UPDATE
// ══════════════════════════════════════════════════════════════════════════════

// Patch describes a partial update of an event. Nil fields are left
// untouched; at least one field must be supplied.
type Patch struct {
	Status *Status
	Venue  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.Venue == nil
}

// Validate checks the supplied fields of the patch.
func (p Patch) Validate() error {
	if p.IsEmpty() {
		return shared.ErrNoFieldsToUpdate
	}
	if p.Status != nil && !p.Status.IsValid() {
		return shared.ErrInvalidEventStatus
	}
	return nil
}
