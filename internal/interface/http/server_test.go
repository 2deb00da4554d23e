package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/campus-event-hub/internal/application/command"
	"github.com/campus-hub/campus-event-hub/internal/application/query"
	"github.com/campus-hub/campus-event-hub/internal/domain/college"
	"github.com/campus-hub/campus-event-hub/internal/domain/event"
	"github.com/campus-hub/campus-event-hub/internal/domain/participation"
	"github.com/campus-hub/campus-event-hub/internal/domain/report"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
	"github.com/campus-hub/campus-event-hub/internal/domain/student"
)

// ─────────────────────────────────────────────────────────────────────────────
// In-memory store backing the whole API for route-level tests
// ─────────────────────────────────────────────────────────────────────────────

type memStore struct {
	colleges      map[string]*college.College
	nextCollegeID int64
	students      map[shared.EventKey]*student.Student // (college, student) reuses the pair key shape
	events        map[shared.EventKey]*event.Event
	registrations map[shared.ParticipationKey]struct{}
	attendance    map[shared.ParticipationKey]struct{}
	feedback      map[shared.ParticipationKey]*participation.Feedback
}

func newMemStore() *memStore {
	return &memStore{
		colleges:      make(map[string]*college.College),
		nextCollegeID: 1,
		students:      make(map[shared.EventKey]*student.Student),
		events:        make(map[shared.EventKey]*event.Event),
		registrations: make(map[shared.ParticipationKey]struct{}),
		attendance:    make(map[shared.ParticipationKey]struct{}),
		feedback:      make(map[shared.ParticipationKey]*participation.Feedback),
	}
}

type memColleges struct{ s *memStore }

func (r memColleges) Create(_ context.Context, c *college.College) error {
	if _, ok := r.s.colleges[c.Code]; ok {
		return shared.ErrDuplicateCollege
	}
	c.ID = shared.CollegeID(r.s.nextCollegeID)
	r.s.nextCollegeID++
	r.s.colleges[c.Code] = c
	return nil
}

type memStudents struct{ s *memStore }

func (r memStudents) Create(_ context.Context, st *student.Student) error {
	known := false
	for _, c := range r.s.colleges {
		if c.ID == st.CollegeID {
			known = true
			break
		}
	}
	if !known {
		return shared.WrapError("student", "Create", shared.ErrReferentialIntegrity, "college does not exist", nil)
	}
	key := shared.EventKey{CollegeID: st.CollegeID, EventID: shared.EventID(st.StudentID)}
	if _, ok := r.s.students[key]; ok {
		return shared.ErrDuplicateStudent
	}
	r.s.students[key] = st
	return nil
}

type memEvents struct{ s *memStore }

func (r memEvents) Create(_ context.Context, e *event.Event) error {
	key := shared.EventKey{CollegeID: e.CollegeID, EventID: e.EventID}
	if _, ok := r.s.events[key]; ok {
		return shared.ErrDuplicateEvent
	}
	r.s.events[key] = e
	return nil
}

func (r memEvents) Update(_ context.Context, key shared.EventKey, patch event.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	e, ok := r.s.events[key]
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

func (r memEvents) GetStatus(_ context.Context, key shared.EventKey) (event.Status, error) {
	e, ok := r.s.events[key]
	if !ok {
		return "", shared.ErrEventNotFound
	}
	return e.Status, nil
}

type memRegistrations struct{ s *memStore }

func (r memRegistrations) Create(_ context.Context, reg participation.Registration) error {
	if _, ok := r.s.registrations[reg.Key]; ok {
		return shared.ErrDuplicateRegistration
	}
	r.s.registrations[reg.Key] = struct{}{}
	return nil
}

type memAttendance struct{ s *memStore }

func (r memAttendance) Create(_ context.Context, a participation.Attendance) error {
	if _, ok := r.s.attendance[a.Key]; ok {
		return shared.ErrDuplicateAttendance
	}
	r.s.attendance[a.Key] = struct{}{}
	return nil
}

type memFeedback struct{ s *memStore }

func (r memFeedback) Upsert(_ context.Context, f *participation.Feedback) error {
	r.s.feedback[f.Key] = f
	return nil
}

type memReports struct{ s *memStore }

func (r memReports) EventPopularity(_ context.Context, collegeID shared.CollegeID, typeFilter string) ([]report.PopularityRow, error) {
	var rows []report.PopularityRow
	for key, e := range r.s.events {
		if key.CollegeID != collegeID || e.Status == event.StatusCancelled {
			continue
		}
		if typeFilter != "" && e.Type.String() != typeFilter {
			continue
		}
		count := 0
		for pk := range r.s.registrations {
			if pk.Event() == key {
				count++
			}
		}
		rows = append(rows, report.PopularityRow{
			CollegeID:     key.CollegeID,
			EventID:       key.EventID,
			Title:         e.Title,
			Type:          e.Type.String(),
			Status:        e.Status.String(),
			Registrations: count,
		})
	}
	return rows, nil
}

func (r memReports) AttendanceCounts(_ context.Context, key shared.EventKey) (string, int, int, error) {
	e, ok := r.s.events[key]
	if !ok {
		return "", 0, 0, shared.ErrEventNotFound
	}
	registered, attended := 0, 0
	for pk := range r.s.registrations {
		if pk.Event() == key {
			registered++
		}
	}
	for pk := range r.s.attendance {
		if pk.Event() == key {
			attended++
		}
	}
	return e.Title, registered, attended, nil
}

func (r memReports) FeedbackStats(_ context.Context, key shared.EventKey) (int, int, error) {
	sum, count := 0, 0
	for pk, f := range r.s.feedback {
		if pk.Event() == key {
			sum += f.Rating.Int()
			count++
		}
	}
	return sum, count, nil
}

func (r memReports) StudentParticipation(_ context.Context, collegeID shared.CollegeID, studentID shared.StudentID) ([]report.ParticipationRow, error) {
	return nil, nil
}

func (r memReports) TopActiveStudents(_ context.Context, collegeID shared.CollegeID, limit int) ([]report.ActiveStudentRow, error) {
	return nil, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Test server wiring
// ─────────────────────────────────────────────────────────────────────────────

func newTestServer(t *testing.T) (*Server, *memStore) {
	t.Helper()

	store := newMemStore()
	events := memEvents{s: store}
	reports := memReports{s: store}
	gate := command.NewEventGate(events)

	deps := Dependencies{
		CreateCollege:   command.NewCreateCollegeHandler(memColleges{s: store}),
		CreateStudent:   command.NewCreateStudentHandler(memStudents{s: store}),
		CreateEvent:     command.NewCreateEventHandler(events),
		UpdateEvent:     command.NewUpdateEventHandler(events),
		RegisterStudent: command.NewRegisterStudentHandler(gate, memRegistrations{s: store}),
		MarkAttendance:  command.NewMarkAttendanceHandler(gate, memAttendance{s: store}),
		SubmitFeedback:  command.NewSubmitFeedbackHandler(gate, memFeedback{s: store}),

		EventPopularity:      query.NewEventPopularityHandler(reports, nil),
		AttendanceSummary:    query.NewAttendanceSummaryHandler(reports),
		AvgFeedback:          query.NewAvgFeedbackHandler(reports),
		StudentParticipation: query.NewStudentParticipationHandler(reports),
		TopActiveStudents:    query.NewTopActiveStudentsHandler(reports, nil),
	}

	return NewServer(DefaultConfig(), deps), store
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func seedEvent(t *testing.T, store *memStore, eventID int64, status event.Status) {
	t.Helper()
	key := shared.EventKey{CollegeID: 1, EventID: shared.EventID(eventID)}
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	e, err := event.NewEvent(key.CollegeID, key.EventID, "Seeded Event", event.TypeWorkshop, status,
		start, start.Add(8*time.Hour), "")
	require.NoError(t, err)
	store.events[key] = e
}

// ─────────────────────────────────────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────────────────────────────────────

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["ok"])
}

func TestCreateCollege(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/colleges", `{"name":"Tech University","code":"TU"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/colleges", `{"name":"Another","code":"TU"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/colleges", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty name is unprocessable", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/colleges", `{"name":"","code":"XX"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestCreateStudent(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/colleges", `{"name":"Tech University","code":"TU"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/students", `{"college_id":1,"student_id":7,"name":"Aibek","email":"aibek@tu.edu","roll_no":"CS-01"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	t.Run("unknown college is a conflict", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/students", `{"college_id":42,"student_id":7,"name":"Aibek","email":"aibek@tu.edu","roll_no":"CS-01"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("duplicate key is a conflict", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/students", `{"college_id":1,"student_id":7,"name":"Aibek","email":"aibek@tu.edu","roll_no":"CS-01"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRegistrationLifecycle(t *testing.T) {
	srv, store := newTestServer(t)
	h := srv.Handler()
	seedEvent(t, store, 1, event.StatusCancelled)
	seedEvent(t, store, 2, event.StatusCompleted)

	t.Run("cancelled event blocks registration", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/registrations", `{"college_id":1,"event_id":1,"student_id":7}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("completed event allows registration", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/registrations", `{"college_id":1,"event_id":2,"student_id":7}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("second registration conflicts", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/registrations", `{"college_id":1,"event_id":2,"student_id":7}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing event is not found", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/registrations", `{"college_id":1,"event_id":99,"student_id":7}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestFeedbackEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	h := srv.Handler()
	seedEvent(t, store, 1, event.StatusCompleted)

	t.Run("valid feedback accepted", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/feedback", `{"college_id":1,"event_id":1,"student_id":7,"rating":5,"comment":"great"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rating out of range is unprocessable", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/feedback", `{"college_id":1,"event_id":1,"student_id":7,"rating":9}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestUpdateEventEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	h := srv.Handler()
	seedEvent(t, store, 1, event.StatusScheduled)

	t.Run("no fields is a bad request", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPatch, "/api/v1/events/1/1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty venue value counts as absent", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPatch, "/api/v1/events/1/1?venue=", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing event is not found", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPatch, "/api/v1/events/1/99?status=CANCELLED", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("status change applied", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPatch, "/api/v1/events/1/1?status=CANCELLED", "")
		require.Equal(t, http.StatusOK, rec.Code)

		key := shared.EventKey{CollegeID: 1, EventID: 1}
		assert.Equal(t, event.StatusCancelled, store.events[key].Status)
	})

	t.Run("non-integer path id is unprocessable", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPatch, "/api/v1/events/abc/1?status=CANCELLED", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestReportEndpoints(t *testing.T) {
	srv, store := newTestServer(t)
	h := srv.Handler()
	seedEvent(t, store, 1, event.StatusScheduled)

	t.Run("event popularity", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/reports/event-popularity?college_id=1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("popularity requires integer college_id", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/reports/event-popularity?college_id=abc", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("attendance summary of empty event", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/reports/attendance-summary/1/1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data report.AttendanceSummary `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 0.0, resp.Data.AttendancePct)
	})

	t.Run("avg feedback of silent event is null", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/reports/avg-feedback/1/1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data report.FeedbackAverage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Nil(t, resp.Data.AvgRating)
	})

	t.Run("request id header set", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/v1/reports/event-popularity?college_id=1", "")
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}
