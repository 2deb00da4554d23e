// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"

	"github.com/campus-hub/campus-event-hub/internal/domain/event"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIFECYCLE RULES ENGINE
// The event-status gate shared by registration, attendance, and feedback.
// ══════════════════════════════════════════════════════════════════════════════

// EventGate answers the one cross-cutting question of the write side: may a
// participation record be created against this event right now?
//
// The rule: the event must exist, and must not be CANCELLED. COMPLETED does
// not block; late attendance marking and post-event feedback are expected
// traffic. Handlers consult the gate instead of re-deriving the rule.
type EventGate struct {
	events event.Repository
}

// NewEventGate creates a new EventGate.
func NewEventGate(events event.Repository) *EventGate {
	return &EventGate{events: events}
}

// CheckActionable returns the event's current status, or an error when the
// event is absent (shared.ErrEventNotFound) or cancelled
// (shared.ErrEventCancelled).
func (g *EventGate) CheckActionable(ctx context.Context, key shared.EventKey) (event.Status, error) {
	status, err := g.events.GetStatus(ctx, key)
	if err != nil {
		return "", err
	}
	if !status.AllowsParticipation() {
		return status, shared.ErrEventCancelled
	}
	return status, nil
}
