package postgres

// ══════════════════════════════════════════════════════════════════════════════
// EMBEDDED MIGRATIONS
// Six tables. Colleges own everything: students, events, and the three
// participation tables all carry college_id in their primary key, and the
// foreign keys keep a participation row from ever crossing colleges.
// ══════════════════════════════════════════════════════════════════════════════

// GetMigrations returns all embedded migrations in order.
func GetMigrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_colleges",
			UpSQL:   migration001Up,
			DownSQL: migration001Down,
		},
		{
			Version: 2,
			Name:    "create_students_and_events",
			UpSQL:   migration002Up,
			DownSQL: migration002Down,
		},
		{
			Version: 3,
			Name:    "create_participation",
			UpSQL:   migration003Up,
			DownSQL: migration003Down,
		},
	}
}

const migration001Up = `
CREATE TABLE IF NOT EXISTS colleges (
	college_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	name       TEXT NOT NULL,
	code       TEXT NOT NULL UNIQUE
);
`

const migration001Down = `
DROP TABLE IF EXISTS colleges;
`

const migration002Up = `
CREATE TABLE IF NOT EXISTS students (
	college_id BIGINT NOT NULL REFERENCES colleges(college_id),
	student_id BIGINT NOT NULL,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	roll_no    TEXT NOT NULL,
	PRIMARY KEY (college_id, student_id)
);

CREATE TABLE IF NOT EXISTS events (
	college_id BIGINT NOT NULL REFERENCES colleges(college_id),
	event_id   BIGINT NOT NULL,
	title      TEXT NOT NULL,
	type       TEXT NOT NULL CHECK (type IN ('Workshop', 'Seminar', 'Hackathon', 'Fest', 'Talk')),
	status     TEXT NOT NULL DEFAULT 'SCHEDULED' CHECK (status IN ('SCHEDULED', 'CANCELLED', 'COMPLETED')),
	start_time TIMESTAMP WITH TIME ZONE NOT NULL,
	end_time   TIMESTAMP WITH TIME ZONE NOT NULL,
	venue      TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (college_id, event_id)
);

CREATE INDEX IF NOT EXISTS idx_events_college_type ON events (college_id, type);
`

const migration002Down = `
DROP TABLE IF EXISTS events;
DROP TABLE IF EXISTS students;
`

const migration003Up = `
CREATE TABLE IF NOT EXISTS registrations (
	college_id BIGINT NOT NULL,
	event_id   BIGINT NOT NULL,
	student_id BIGINT NOT NULL,
	PRIMARY KEY (college_id, event_id, student_id),
	FOREIGN KEY (college_id, event_id) REFERENCES events (college_id, event_id),
	FOREIGN KEY (college_id, student_id) REFERENCES students (college_id, student_id)
);

CREATE TABLE IF NOT EXISTS attendance (
	college_id BIGINT NOT NULL,
	event_id   BIGINT NOT NULL,
	student_id BIGINT NOT NULL,
	PRIMARY KEY (college_id, event_id, student_id),
	FOREIGN KEY (college_id, event_id) REFERENCES events (college_id, event_id),
	FOREIGN KEY (college_id, student_id) REFERENCES students (college_id, student_id)
);

CREATE TABLE IF NOT EXISTS feedback (
	college_id   BIGINT NOT NULL,
	event_id     BIGINT NOT NULL,
	student_id   BIGINT NOT NULL,
	rating       INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
	comment      TEXT NOT NULL DEFAULT '',
	submitted_at TIMESTAMP WITH TIME ZONE NOT NULL,
	PRIMARY KEY (college_id, event_id, student_id),
	FOREIGN KEY (college_id, event_id) REFERENCES events (college_id, event_id),
	FOREIGN KEY (college_id, student_id) REFERENCES students (college_id, student_id)
);

CREATE INDEX IF NOT EXISTS idx_attendance_student ON attendance (college_id, student_id);
`

const migration003Down = `
DROP TABLE IF EXISTS feedback;
DROP TABLE IF EXISTS attendance;
DROP TABLE IF EXISTS registrations;
`
