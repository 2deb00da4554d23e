package college

import "context"

// Repository defines the persistence contract for colleges.
// Implementations live in infrastructure/persistence.
type Repository interface {
	// Create inserts a new college and fills in the assigned ID.
	// Returns shared.ErrDuplicateCollege when the code is already in use.
	Create(ctx context.Context, c *College) error
}
