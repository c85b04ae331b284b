// ABOUTME: Completed workout session rows: append-only inserts and history reads.
// ABOUTME: Validation happens in the session state machine before any insert.
package storage

import (
	"fmt"

	"github.com/nirvana/gymtrack/internal/models"
)

// InsertCompletedSession appends a finished session. No validation happens
// here; the session state machine gates completion before calling.
func (d *DB) InsertCompletedSession(userID, routineName string, startMillis, endMillis int64) error {
	_, err := d.db.Exec(
		"INSERT INTO completed_sessions (user_id, routine_name, start_time, end_time) VALUES (?, ?, ?, ?)",
		userID, routineName, startMillis, endMillis,
	)
	if err != nil {
		return fmt.Errorf("insert completed session: %w", err)
	}
	return nil
}

// CompletedSessions returns the user's workout history, most recent first.
func (d *DB) CompletedSessions(userID string) ([]models.CompletedSession, error) {
	rows, err := d.db.Query(
		"SELECT id, user_id, routine_name, start_time, end_time FROM completed_sessions WHERE user_id = ? ORDER BY start_time DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}
	defer rows.Close()

	var out []models.CompletedSession
	for rows.Next() {
		var s models.CompletedSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.RoutineName, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("scan completed session: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
