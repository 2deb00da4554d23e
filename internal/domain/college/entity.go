// Package college contains the domain model for colleges, the top-level
// tenant scope of Campus Event Hub. No external dependencies.
package college

import (
	"strings"

	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// College is the owning scope for students, events, and everything derived
// from them. The ID is assigned by the store on creation.
type College struct {
	ID   shared.CollegeID
	Name string
	Code string
}

// NewCollege creates a college from its input fields, normalizing whitespace.
func NewCollege(name, code string) (*College, error) {
	c := &College{
		Name: strings.TrimSpace(name),
		Code: strings.TrimSpace(code),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the structural constraints of the college record.
// Code uniqueness is intentionally not checked here: it is enforced by the
// store's UNIQUE constraint and surfaces as a conflict on insert.
func (c *College) Validate() error {
	if c.Name == "" {
		return shared.WrapError("college", "Validate", shared.ErrEmptyValue, "name is required", nil)
	}
	if c.Code == "" {
		return shared.WrapError("college", "Validate", shared.ErrEmptyValue, "code is required", nil)
	}
	return nil
}
