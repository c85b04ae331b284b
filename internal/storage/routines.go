// ABOUTME: Saved routine persistence: save-from-draft, list, show, delete.
// ABOUTME: SaveRoutine copies draft items in one transaction; the draft survives.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nirvana/gymtrack/internal/models"
)

// createdAtLayout is how database/sql stringifies the time.Time that the
// modernc/sqlite driver returns for TIMESTAMP-declared columns.
const createdAtLayout = time.RFC3339

// SaveRoutine persists the user's current draft as a named routine and
// returns the new routine id. The routine row and all item copies commit
// atomically. The draft is intentionally NOT cleared; discarding it is the
// caller's explicit follow-up. An empty draft still yields an (empty)
// persisted routine.
func (d *DB) SaveRoutine(username, name string) (int64, error) {
	items, err := d.DraftExercises(username)
	if err != nil {
		return 0, err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin save routine: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec("INSERT INTO saved_routines (username, name) VALUES (?, ?)", username, name)
	if err != nil {
		return 0, fmt.Errorf("insert routine: %w", err)
	}
	routineID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("routine id: %w", err)
	}

	for _, item := range items {
		_, err := tx.Exec(
			"INSERT INTO routine_exercise_items (routine_id, name, category) VALUES (?, ?, ?)",
			routineID, item.Name, item.Category,
		)
		if err != nil {
			return 0, fmt.Errorf("copy draft item %s: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save routine: %w", err)
	}
	return routineID, nil
}

// Routines returns the user's saved routines, most recent first.
func (d *DB) Routines(username string) ([]models.Routine, error) {
	rows, err := d.db.Query(
		"SELECT id, username, name, created_at FROM saved_routines WHERE username = ? ORDER BY created_at DESC, id DESC",
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	defer rows.Close()

	var out []models.Routine
	for rows.Next() {
		var r models.Routine
		var created string
		if err := rows.Scan(&r.ID, &r.Username, &r.Name, &created); err != nil {
			return nil, fmt.Errorf("scan routine: %w", err)
		}
		r.CreatedAt, err = time.Parse(createdAtLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parse routine %d created_at %q: %w", r.ID, created, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ExercisesForRoutine returns the items bound to a saved routine in
// insertion order.
func (d *DB) ExercisesForRoutine(routineID int64) ([]models.RoutineExercise, error) {
	rows, err := d.db.Query(
		"SELECT id, routine_id, name, category FROM routine_exercise_items WHERE routine_id = ? ORDER BY id",
		routineID,
	)
	if err != nil {
		return nil, fmt.Errorf("list routine items: %w", err)
	}
	defer rows.Close()

	var out []models.RoutineExercise
	for rows.Next() {
		var e models.RoutineExercise
		if err := rows.Scan(&e.ID, &e.RoutineID, &e.Name, &e.Category); err != nil {
			return nil, fmt.Errorf("scan routine item: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// RoutineByID returns a single saved routine.
func (d *DB) RoutineByID(routineID int64) (*models.Routine, error) {
	var r models.Routine
	var created string
	err := d.db.QueryRow(
		"SELECT id, username, name, created_at FROM saved_routines WHERE id = ?", routineID,
	).Scan(&r.ID, &r.Username, &r.Name, &created)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("routine %d: %w", routineID, ErrNotFound)
		}
		return nil, fmt.Errorf("routine %d: %w", routineID, err)
	}
	r.CreatedAt, err = time.Parse(createdAtLayout, created)
	if err != nil {
		return nil, fmt.Errorf("parse routine %d created_at %q: %w", routineID, created, err)
	}
	return &r, nil
}

// DeleteRoutine removes a saved routine and its items. Items go first to
// satisfy the foreign key.
func (d *DB) DeleteRoutine(routineID int64) error {
	if _, err := d.db.Exec("DELETE FROM routine_exercise_items WHERE routine_id = ?", routineID); err != nil {
		return fmt.Errorf("delete routine items: %w", err)
	}
	res, err := d.db.Exec("DELETE FROM saved_routines WHERE id = ?", routineID)
	if err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("routine %d: %w", routineID, ErrNotFound)
	}
	return nil
}
