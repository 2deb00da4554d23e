package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/campus-event-hub/internal/domain/college"
	"github.com/campus-hub/campus-event-hub/internal/domain/event"
	"github.com/campus-hub/campus-event-hub/internal/domain/participation"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ─────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ─────────────────────────────────────────────────────────────────────────────

type fakeCollegeRepo struct {
	byCode map[string]*college.College
	nextID int64
}

func newFakeCollegeRepo() *fakeCollegeRepo {
	return &fakeCollegeRepo{byCode: make(map[string]*college.College), nextID: 1}
}

func (r *fakeCollegeRepo) Create(_ context.Context, c *college.College) error {
	if _, ok := r.byCode[c.Code]; ok {
		return shared.ErrDuplicateCollege
	}
	c.ID = shared.CollegeID(r.nextID)
	r.nextID++
	r.byCode[c.Code] = c
	return nil
}

type fakeEventRepo struct {
	events map[shared.EventKey]*event.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[shared.EventKey]*event.Event)}
}

func (r *fakeEventRepo) add(key shared.EventKey, status event.Status) {
	r.events[key] = &event.Event{
		CollegeID: key.CollegeID,
		EventID:   key.EventID,
		Title:     "Test Event",
		Type:      event.TypeWorkshop,
		Status:    status,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	}
}

func (r *fakeEventRepo) Create(_ context.Context, e *event.Event) error {
	key := shared.EventKey{CollegeID: e.CollegeID, EventID: e.EventID}
	if _, ok := r.events[key]; ok {
		return shared.ErrDuplicateEvent
	}
	r.events[key] = e
	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, key shared.EventKey, patch event.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	e, ok := r.events[key]
	if !ok {
		return shared.ErrEventNotFound
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	if patch.Venue != nil {
		e.Venue = *patch.Venue
	}
	return nil
}

func (r *fakeEventRepo) GetStatus(_ context.Context, key shared.EventKey) (event.Status, error) {
	e, ok := r.events[key]
	if !ok {
		return "", shared.ErrEventNotFound
	}
	return e.Status, nil
}

type fakeRegistrationRepo struct {
	rows map[shared.ParticipationKey]struct{}
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{rows: make(map[shared.ParticipationKey]struct{})}
}

func (r *fakeRegistrationRepo) Create(_ context.Context, reg participation.Registration) error {
	if _, ok := r.rows[reg.Key]; ok {
		return shared.ErrDuplicateRegistration
	}
	r.rows[reg.Key] = struct{}{}
	return nil
}

type fakeAttendanceRepo struct {
	rows map[shared.ParticipationKey]struct{}
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{rows: make(map[shared.ParticipationKey]struct{})}
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a participation.Attendance) error {
	if _, ok := r.rows[a.Key]; ok {
		return shared.ErrDuplicateAttendance
	}
	r.rows[a.Key] = struct{}{}
	return nil
}

type fakeFeedbackRepo struct {
	rows map[shared.ParticipationKey]*participation.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{rows: make(map[shared.ParticipationKey]*participation.Feedback)}
}

func (r *fakeFeedbackRepo) Upsert(_ context.Context, f *participation.Feedback) error {
	r.rows[f.Key] = f
	return nil
}

func pkey(college, evt, student int64) shared.ParticipationKey {
	return shared.ParticipationKey{
		CollegeID: shared.CollegeID(college),
		EventID:   shared.EventID(evt),
		StudentID: shared.StudentID(student),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Lifecycle gate
// ─────────────────────────────────────────────────────────────────────────────

func TestEventGate_CheckActionable(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventRepo()
	events.add(shared.EventKey{CollegeID: 1, EventID: 1}, event.StatusScheduled)
	events.add(shared.EventKey{CollegeID: 1, EventID: 2}, event.StatusCancelled)
	events.add(shared.EventKey{CollegeID: 1, EventID: 3}, event.StatusCompleted)

	gate := NewEventGate(events)

	t.Run("scheduled is actionable", func(t *testing.T) {
		status, err := gate.CheckActionable(ctx, shared.EventKey{CollegeID: 1, EventID: 1})
		require.NoError(t, err)
		assert.Equal(t, event.StatusScheduled, status)
	})

	t.Run("completed is still actionable", func(t *testing.T) {
		_, err := gate.CheckActionable(ctx, shared.EventKey{CollegeID: 1, EventID: 3})
		assert.NoError(t, err)
	})

	t.Run("cancelled is blocked", func(t *testing.T) {
		_, err := gate.CheckActionable(ctx, shared.EventKey{CollegeID: 1, EventID: 2})
		assert.ErrorIs(t, err, shared.ErrPreconditionFailed)
	})

	t.Run("missing event is not found", func(t *testing.T) {
		_, err := gate.CheckActionable(ctx, shared.EventKey{CollegeID: 1, EventID: 99})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Create commands
// ─────────────────────────────────────────────────────────────────────────────

func TestCreateCollegeHandler(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCollegeRepo()
	h := NewCreateCollegeHandler(repo)

	result, err := h.Handle(ctx, CreateCollegeCommand{Name: "Tech University", Code: "TU"})
	require.NoError(t, err)
	assert.Equal(t, shared.CollegeID(1), result.CollegeID)

	t.Run("duplicate code conflicts", func(t *testing.T) {
		_, err := h.Handle(ctx, CreateCollegeCommand{Name: "Another", Code: "TU"})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("empty name rejected before store", func(t *testing.T) {
		_, err := h.Handle(ctx, CreateCollegeCommand{Name: "  ", Code: "XX"})
		assert.ErrorIs(t, err, shared.ErrEmptyValue)
	})
}

func TestCreateEventHandler(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventRepo()
	h := NewCreateEventHandler(events)

	valid := CreateEventCommand{
		CollegeID: 1,
		EventID:   1,
		Title:     "Spring Hackathon",
		Type:      "Hackathon",
		StartTime: "2026-04-10T09:00:00Z",
		EndTime:   "2026-04-11T18:00:00Z",
	}

	t.Run("creates with SCHEDULED default", func(t *testing.T) {
		_, err := h.Handle(ctx, valid)
		require.NoError(t, err)
		status, err := events.GetStatus(ctx, shared.EventKey{CollegeID: 1, EventID: 1})
		require.NoError(t, err)
		assert.Equal(t, event.StatusScheduled, status)
	})

	t.Run("duplicate key conflicts", func(t *testing.T) {
		_, err := h.Handle(ctx, valid)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("bad type rejected", func(t *testing.T) {
		cmd := valid
		cmd.EventID = 2
		cmd.Type = "Concert"
		_, err := h.Handle(ctx, cmd)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("bad timestamp rejected", func(t *testing.T) {
		cmd := valid
		cmd.EventID = 3
		cmd.StartTime = "tomorrow"
		_, err := h.Handle(ctx, cmd)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Update event
// ─────────────────────────────────────────────────────────────────────────────

func TestUpdateEventHandler(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventRepo()
	events.add(shared.EventKey{CollegeID: 1, EventID: 1}, event.StatusScheduled)
	h := NewUpdateEventHandler(events)

	t.Run("no fields is a bad request", func(t *testing.T) {
		_, err := h.Handle(ctx, UpdateEventCommand{CollegeID: 1, EventID: 1})
		assert.ErrorIs(t, err, shared.ErrBadRequest)
	})

	t.Run("missing event is not found", func(t *testing.T) {
		status := "CANCELLED"
		_, err := h.Handle(ctx, UpdateEventCommand{CollegeID: 1, EventID: 99, Status: &status})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		status := "PENDING"
		_, err := h.Handle(ctx, UpdateEventCommand{CollegeID: 1, EventID: 1, Status: &status})
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("applies supplied fields", func(t *testing.T) {
		status := "COMPLETED"
		venue := "Main Hall"
		_, err := h.Handle(ctx, UpdateEventCommand{CollegeID: 1, EventID: 1, Status: &status, Venue: &venue})
		require.NoError(t, err)

		got, err := events.GetStatus(ctx, shared.EventKey{CollegeID: 1, EventID: 1})
		require.NoError(t, err)
		assert.Equal(t, event.StatusCompleted, got)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Participation commands against the lifecycle gate
// ─────────────────────────────────────────────────────────────────────────────

func TestParticipation_LifecycleGate(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventRepo()
	events.add(shared.EventKey{CollegeID: 1, EventID: 1}, event.StatusCancelled)
	events.add(shared.EventKey{CollegeID: 1, EventID: 2}, event.StatusCompleted)

	gate := NewEventGate(events)
	register := NewRegisterStudentHandler(gate, newFakeRegistrationRepo())
	attend := NewMarkAttendanceHandler(gate, newFakeAttendanceRepo())
	feedback := NewSubmitFeedbackHandler(gate, newFakeFeedbackRepo())

	t.Run("cancelled blocks all three", func(t *testing.T) {
		_, err := register.Handle(ctx, RegisterStudentCommand{CollegeID: 1, EventID: 1, StudentID: 7})
		assert.ErrorIs(t, err, shared.ErrPreconditionFailed)

		_, err = attend.Handle(ctx, MarkAttendanceCommand{CollegeID: 1, EventID: 1, StudentID: 7})
		assert.ErrorIs(t, err, shared.ErrPreconditionFailed)

		_, err = feedback.Handle(ctx, SubmitFeedbackCommand{CollegeID: 1, EventID: 1, StudentID: 7, Rating: 5})
		assert.ErrorIs(t, err, shared.ErrPreconditionFailed)
	})

	t.Run("completed allows all three", func(t *testing.T) {
		_, err := register.Handle(ctx, RegisterStudentCommand{CollegeID: 1, EventID: 2, StudentID: 7})
		assert.NoError(t, err)

		_, err = attend.Handle(ctx, MarkAttendanceCommand{CollegeID: 1, EventID: 2, StudentID: 7})
		assert.NoError(t, err)

		_, err = feedback.Handle(ctx, SubmitFeedbackCommand{CollegeID: 1, EventID: 2, StudentID: 7, Rating: 4})
		assert.NoError(t, err)
	})

	t.Run("missing event is not found", func(t *testing.T) {
		_, err := register.Handle(ctx, RegisterStudentCommand{CollegeID: 1, EventID: 99, StudentID: 7})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestRegisterStudentHandler_Duplicate(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventRepo()
	events.add(shared.EventKey{CollegeID: 1, EventID: 1}, event.StatusScheduled)

	h := NewRegisterStudentHandler(NewEventGate(events), newFakeRegistrationRepo())
	cmd := RegisterStudentCommand{CollegeID: 1, EventID: 1, StudentID: 42}

	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestSubmitFeedbackHandler_Upsert(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventRepo()
	events.add(shared.EventKey{CollegeID: 1, EventID: 1}, event.StatusCompleted)

	repo := newFakeFeedbackRepo()
	first := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	h := NewSubmitFeedbackHandler(NewEventGate(events), repo).
		WithClock(func() time.Time { return first })

	_, err := h.Handle(ctx, SubmitFeedbackCommand{CollegeID: 1, EventID: 1, StudentID: 7, Rating: 3, Comment: "ok"})
	require.NoError(t, err)

	h.WithClock(func() time.Time { return second })
	_, err = h.Handle(ctx, SubmitFeedbackCommand{CollegeID: 1, EventID: 1, StudentID: 7, Rating: 5, Comment: "actually great"})
	require.NoError(t, err)

	require.Len(t, repo.rows, 1, "resubmission must overwrite, not add")
	row := repo.rows[pkey(1, 1, 7)]
	require.NotNil(t, row)
	assert.Equal(t, participation.Rating(5), row.Rating)
	assert.Equal(t, "actually great", row.Comment)
	assert.Equal(t, second, row.SubmittedAt)
}

func TestSubmitFeedbackHandler_RatingOutOfRange(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventRepo()
	events.add(shared.EventKey{CollegeID: 1, EventID: 1}, event.StatusScheduled)

	h := NewSubmitFeedbackHandler(NewEventGate(events), newFakeFeedbackRepo())

	_, err := h.Handle(ctx, SubmitFeedbackCommand{CollegeID: 1, EventID: 1, StudentID: 7, Rating: 0})
	assert.ErrorIs(t, err, shared.ErrValueOutOfRange)
}
