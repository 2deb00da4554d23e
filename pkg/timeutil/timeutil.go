// Package timeutil provides time helpers for Campus Event Hub.
// Event start/end times arrive as RFC 3339 strings on the wire and are stored
// as UTC timestamps; feedback submission times are always recorded in UTC.
// No external dependencies - uses only standard library.
package timeutil

import (
	"fmt"
	"time"
)

// EventTimeLayout is the wire format for event start and end times.
const EventTimeLayout = time.RFC3339

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseEventTime parses an RFC 3339 event time string into a UTC time.
func ParseEventTime(s string) (time.Time, error) {
	t, err := time.Parse(EventTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: invalid event time %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatEventTime formats a time as an RFC 3339 string in UTC.
func FormatEventTime(t time.Time) string {
	return t.UTC().Format(EventTimeLayout)
}
