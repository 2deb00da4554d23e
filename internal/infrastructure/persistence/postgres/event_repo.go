package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/campus-hub/campus-event-hub/internal/domain/event"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// EVENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// EventRepository implements event.Repository for PostgreSQL.
type EventRepository struct {
	conn *Connection
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(conn *Connection) *EventRepository {
	return &EventRepository{conn: conn}
}

// Create inserts a new event. A key collision surfaces as
// shared.ErrDuplicateEvent; an absent college surfaces as a conflict,
// same as any other integrity violation on create.
func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	query := `
		INSERT INTO events (college_id, event_id, title, type, status, start_time, end_time, venue)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.conn.Exec(ctx, query,
		e.CollegeID.Int64(),
		e.EventID.Int64(),
		e.Title,
		e.Type.String(),
		e.Status.String(),
		e.StartTime,
		e.EndTime,
		e.Venue,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.ErrDuplicateEvent
		}
		if IsForeignKeyViolation(err) {
			return shared.WrapError("event", "Create", shared.ErrReferentialIntegrity, "college does not exist", err)
		}
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// Update applies a partial update, building the SET clause from the
// supplied patch fields. Absence is detected from the affected-row count
// rather than a separate existence query.
func (r *EventRepository) Update(ctx context.Context, key shared.EventKey, patch event.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	var (
		sets []string
		args []interface{}
	)
	if patch.Status != nil {
		args = append(args, patch.Status.String())
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if patch.Venue != nil {
		args = append(args, strings.TrimSpace(*patch.Venue))
		sets = append(sets, fmt.Sprintf("venue = $%d", len(args)))
	}

	args = append(args, key.CollegeID.Int64(), key.EventID.Int64())
	query := fmt.Sprintf(
		"UPDATE events SET %s WHERE college_id = $%d AND event_id = $%d",
		strings.Join(sets, ", "),
		len(args)-1,
		len(args),
	)

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrEventNotFound
	}

	return nil
}

// GetStatus returns the event's current lifecycle status.
func (r *EventRepository) GetStatus(ctx context.Context, key shared.EventKey) (event.Status, error) {
	query := `
		SELECT status FROM events
		WHERE college_id = $1 AND event_id = $2
	`

	var status string
	err := r.conn.QueryRow(ctx, query, key.CollegeID.Int64(), key.EventID.Int64()).Scan(&status)
	if err != nil {
		if IsNoRows(err) {
			return "", shared.ErrEventNotFound
		}
		return "", fmt.Errorf("failed to get event status: %w", err)
	}

	return event.Status(status), nil
}
