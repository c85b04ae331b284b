// ABOUTME: Completed workout session model with epoch-millis timestamps.
// ABOUTME: Rows are immutable facts; only full-account erasure removes them.
package models

import "time"

// CompletedSession records one finished execution of a routine. StartTime
// and EndTime are epoch milliseconds; EndTime >= StartTime always holds for
// rows written through the session state machine.
type CompletedSession struct {
	ID          int64
	UserID      string
	RoutineName string
	StartTime   int64
	EndTime     int64
}

// StartedAt returns the session start as a local time.
func (s CompletedSession) StartedAt() time.Time {
	return time.UnixMilli(s.StartTime)
}

// DurationMinutes returns the whole minutes between start and end.
func (s CompletedSession) DurationMinutes() int {
	return int((s.EndTime - s.StartTime) / 1000 / 60)
}
