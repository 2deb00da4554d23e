// Package shared contains common domain types and errors used across all
// domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidID       = errors.New("invalid ID")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrValueOutOfRange = errors.New("value out of range")

	// State errors
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrBadRequest         = errors.New("bad request")

	// Store errors
	ErrConflict             = errors.New("uniqueness or referential conflict")
	ErrStoreUnavailable     = errors.New("store unavailable")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g. "college", "event", "registration"
	Op      string // Operation that failed, e.g. "Create", "Update"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// College domain errors
var (
	ErrCollegeNotFound  = NewDomainError("college", "Find", ErrNotFound, "college not found")
	ErrDuplicateCollege = NewDomainError("college", "Create", ErrAlreadyExists, "college code already in use")
)

// Student domain errors
var (
	ErrStudentNotFound  = NewDomainError("student", "Find", ErrNotFound, "student not found")
	ErrDuplicateStudent = NewDomainError("student", "Create", ErrAlreadyExists, "student already exists in this college")
)

// Event domain errors
var (
	ErrEventNotFound      = NewDomainError("event", "Find", ErrNotFound, "event not found")
	ErrDuplicateEvent     = NewDomainError("event", "Create", ErrAlreadyExists, "event already exists in this college")
	ErrInvalidEventType   = NewDomainError("event", "Validate", ErrValidation, "invalid event type")
	ErrInvalidEventStatus = NewDomainError("event", "Validate", ErrValidation, "invalid event status")
	ErrEventCancelled     = NewDomainError("event", "CheckActionable", ErrPreconditionFailed, "operation not allowed on a cancelled event")
	ErrNoFieldsToUpdate   = NewDomainError("event", "Update", ErrBadRequest, "no fields to update")
)

// Participation domain errors
var (
	ErrDuplicateRegistration = NewDomainError("registration", "Create", ErrAlreadyExists, "student already registered for this event")
	ErrDuplicateAttendance   = NewDomainError("attendance", "Create", ErrAlreadyExists, "attendance already marked for this student")
	ErrInvalidRating         = NewDomainError("feedback", "Validate", ErrValueOutOfRange, "rating must be between 1 and 5")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if the error is a uniqueness or referential conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrReferentialIntegrity)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrValueOutOfRange)
}

// IsPrecondition checks if the error is a lifecycle precondition failure.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPreconditionFailed)
}

// IsBadRequest checks if the error is a malformed or no-op request.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}
