package event

import (
	"context"

	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// Repository defines the persistence contract for events.
// Implementations live in infrastructure/persistence.
type Repository interface {
	// Create inserts a new event.
	// Returns shared.ErrDuplicateEvent when the (college_id, event_id) key
	// already exists, and a referential-integrity conflict when the owning
	// college is absent.
	Create(ctx context.Context, e *Event) error

	// Update applies a partial update to the event identified by key.
	// Returns shared.ErrEventNotFound when no row was affected; absence is
	// detected from the affected-row count, not a prior existence check.
	Update(ctx context.Context, key shared.EventKey, patch Patch) error

	// GetStatus returns the current status of the event identified by key.
	// Returns shared.ErrEventNotFound when the event does not exist.
	GetStatus(ctx context.Context, key shared.EventKey) (Status, error)
}
