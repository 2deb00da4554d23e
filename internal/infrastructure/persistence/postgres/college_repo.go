package postgres

import (
	"context"
	"fmt"

	"github.com/campus-hub/campus-event-hub/internal/domain/college"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLLEGE REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// CollegeRepository implements college.Repository for PostgreSQL.
type CollegeRepository struct {
	conn *Connection
}

// NewCollegeRepository creates a new CollegeRepository.
func NewCollegeRepository(conn *Connection) *CollegeRepository {
	return &CollegeRepository{conn: conn}
}

// Create inserts a new college and fills in the database-assigned ID.
// A code collision surfaces as shared.ErrDuplicateCollege.
func (r *CollegeRepository) Create(ctx context.Context, c *college.College) error {
	query := `
		INSERT INTO colleges (name, code)
		VALUES ($1, $2)
		RETURNING college_id
	`

	var id int64
	err := r.conn.QueryRow(ctx, query, c.Name, c.Code).Scan(&id)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.ErrDuplicateCollege
		}
		return fmt.Errorf("failed to create college: %w", err)
	}

	c.ID = shared.CollegeID(id)
	return nil
}
