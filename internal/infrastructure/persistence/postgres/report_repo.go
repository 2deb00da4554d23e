package postgres

import (
	"context"
	"fmt"

	"github.com/campus-hub/campus-event-hub/internal/domain/report"
	"github.com/campus-hub/campus-event-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPORT REPOSITORY IMPLEMENTATION
// Read-only aggregations. The SQL owns the ordering; percentage and
// average arithmetic stays in the application layer.
// ══════════════════════════════════════════════════════════════════════════════

// ReportRepository implements report.Repository for PostgreSQL.
type ReportRepository struct {
	conn *Connection
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(conn *Connection) *ReportRepository {
	return &ReportRepository{conn: conn}
}

// EventPopularity returns the college's non-cancelled events with their
// registration counts, most popular first, ties broken by title.
func (r *ReportRepository) EventPopularity(ctx context.Context, collegeID shared.CollegeID, typeFilter string) ([]report.PopularityRow, error) {
	query := `
		SELECT e.college_id, e.event_id, e.title, e.type, e.status, COUNT(reg.student_id)
		FROM events e
		LEFT JOIN registrations reg
			ON reg.college_id = e.college_id AND reg.event_id = e.event_id
		WHERE e.college_id = $1
			AND e.status <> 'CANCELLED'
			AND ($2 = '' OR e.type = $2)
		GROUP BY e.college_id, e.event_id, e.title, e.type, e.status
		ORDER BY COUNT(reg.student_id) DESC, e.title ASC
	`

	rows, err := r.conn.Query(ctx, query, collegeID.Int64(), typeFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to query event popularity: %w", err)
	}
	defer rows.Close()

	var result []report.PopularityRow
	for rows.Next() {
		var row report.PopularityRow
		var collegeID, eventID int64
		if err := rows.Scan(&collegeID, &eventID, &row.Title, &row.Type, &row.Status, &row.Registrations); err != nil {
			return nil, fmt.Errorf("failed to scan popularity row: %w", err)
		}
		row.CollegeID = shared.CollegeID(collegeID)
		row.EventID = shared.EventID(eventID)
		result = append(result, row)
	}

	return result, rows.Err()
}

// AttendanceCounts returns the event title plus its registration and
// attendance totals. The event row itself anchors the query, so an
// absent event is an error rather than a row of zeros.
func (r *ReportRepository) AttendanceCounts(ctx context.Context, key shared.EventKey) (string, int, int, error) {
	query := `
		SELECT e.title,
			(SELECT COUNT(*) FROM registrations reg
				WHERE reg.college_id = e.college_id AND reg.event_id = e.event_id),
			(SELECT COUNT(*) FROM attendance a
				WHERE a.college_id = e.college_id AND a.event_id = e.event_id)
		FROM events e
		WHERE e.college_id = $1 AND e.event_id = $2
	`

	var (
		title                string
		registered, attended int
	)
	err := r.conn.QueryRow(ctx, query, key.CollegeID.Int64(), key.EventID.Int64()).
		Scan(&title, &registered, &attended)
	if err != nil {
		if IsNoRows(err) {
			return "", 0, 0, shared.ErrEventNotFound
		}
		return "", 0, 0, fmt.Errorf("failed to query attendance counts: %w", err)
	}

	return title, registered, attended, nil
}

// FeedbackStats returns the rating sum and feedback count for one event.
// Zero rows is a valid result.
func (r *ReportRepository) FeedbackStats(ctx context.Context, key shared.EventKey) (int, int, error) {
	query := `
		SELECT COALESCE(SUM(rating), 0), COUNT(*)
		FROM feedback
		WHERE college_id = $1 AND event_id = $2
	`

	var ratingSum, count int
	err := r.conn.QueryRow(ctx, query, key.CollegeID.Int64(), key.EventID.Int64()).
		Scan(&ratingSum, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query feedback stats: %w", err)
	}

	return ratingSum, count, nil
}

// StudentParticipation returns the attendance count of one student. The
// attendance table anchors the query, so an unknown student or one with
// no attendance yields no rows, which the caller reports as an empty
// list.
func (r *ReportRepository) StudentParticipation(ctx context.Context, collegeID shared.CollegeID, studentID shared.StudentID) ([]report.ParticipationRow, error) {
	query := `
		SELECT s.college_id, s.student_id, s.name, COUNT(a.event_id)
		FROM attendance a
		JOIN students s
			ON s.college_id = a.college_id AND s.student_id = a.student_id
		WHERE a.college_id = $1 AND a.student_id = $2
		GROUP BY s.college_id, s.student_id, s.name
	`

	rows, err := r.conn.Query(ctx, query, collegeID.Int64(), studentID.Int64())
	if err != nil {
		return nil, fmt.Errorf("failed to query student participation: %w", err)
	}
	defer rows.Close()

	var result []report.ParticipationRow
	for rows.Next() {
		var row report.ParticipationRow
		var cID, sID int64
		if err := rows.Scan(&cID, &sID, &row.Name, &row.EventsAttended); err != nil {
			return nil, fmt.Errorf("failed to scan participation row: %w", err)
		}
		row.CollegeID = shared.CollegeID(cID)
		row.StudentID = shared.StudentID(sID)
		result = append(result, row)
	}

	return result, rows.Err()
}

// TopActiveStudents ranks the college's students by events attended,
// descending, ties broken by name, truncated to limit. Students with no
// attendance are excluded by the inner join.
func (r *ReportRepository) TopActiveStudents(ctx context.Context, collegeID shared.CollegeID, limit int) ([]report.ActiveStudentRow, error) {
	query := `
		SELECT s.college_id, s.student_id, s.name, COUNT(a.event_id)
		FROM students s
		JOIN attendance a
			ON a.college_id = s.college_id AND a.student_id = s.student_id
		WHERE s.college_id = $1
		GROUP BY s.college_id, s.student_id, s.name
		ORDER BY COUNT(a.event_id) DESC, s.name ASC
		LIMIT $2
	`

	rows, err := r.conn.Query(ctx, query, collegeID.Int64(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top active students: %w", err)
	}
	defer rows.Close()

	var result []report.ActiveStudentRow
	for rows.Next() {
		var row report.ActiveStudentRow
		var cID, sID int64
		if err := rows.Scan(&cID, &sID, &row.Name, &row.AttendedCount); err != nil {
			return nil, fmt.Errorf("failed to scan active student row: %w", err)
		}
		row.CollegeID = shared.CollegeID(cID)
		row.StudentID = shared.StudentID(sID)
		result = append(result, row)
	}

	return result, rows.Err()
}
