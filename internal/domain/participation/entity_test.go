package participation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

func key(college, event, student int64) shared.ParticipationKey {
	return shared.ParticipationKey{
		CollegeID: shared.CollegeID(college),
		EventID:   shared.EventID(event),
		StudentID: shared.StudentID(student),
	}
}

func TestRating_IsValid(t *testing.T) {
	for r := MinRating; r <= MaxRating; r++ {
		assert.True(t, r.IsValid(), "rating %d should be valid", r)
	}
	assert.False(t, Rating(0).IsValid())
	assert.False(t, Rating(6).IsValid())
	assert.False(t, Rating(-1).IsValid())
}

func TestNewFeedback(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("trims comment whitespace", func(t *testing.T) {
		f, err := NewFeedback(key(1, 2, 3), 4, "  great talk  ", now)
		require.NoError(t, err)
		assert.Equal(t, "great talk", f.Comment)
		assert.Equal(t, now, f.SubmittedAt)
	})

	t.Run("empty comment is allowed", func(t *testing.T) {
		f, err := NewFeedback(key(1, 2, 3), 5, "", now)
		require.NoError(t, err)
		assert.Empty(t, f.Comment)
	})

	t.Run("rating out of range", func(t *testing.T) {
		_, err := NewFeedback(key(1, 2, 3), 6, "", now)
		assert.ErrorIs(t, err, shared.ErrInvalidRating)
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := NewFeedback(key(1, 0, 3), 4, "", now)
		assert.ErrorIs(t, err, shared.ErrInvalidID)
	})
}

func TestRegistrationAndAttendance_Validate(t *testing.T) {
	assert.NoError(t, Registration{Key: key(1, 2, 3)}.Validate())
	assert.ErrorIs(t, Registration{Key: key(0, 2, 3)}.Validate(), shared.ErrInvalidID)

	assert.NoError(t, Attendance{Key: key(1, 2, 3)}.Validate())
	assert.ErrorIs(t, Attendance{Key: key(1, 2, 0)}.Validate(), shared.ErrInvalidID)
}
