// ABOUTME: Routine-draft staging: the per-user scratch list for the builder.
// ABOUTME: Drafts are scoped by username so concurrent drafts never collide.
package storage

import (
	"fmt"

	"github.com/nirvana/gymtrack/internal/models"
)

// StageExercise appends an exercise to the user's routine draft with a
// single empty default set.
func (d *DB) StageExercise(username, name, category string) error {
	_, err := d.db.Exec(
		"INSERT INTO routine_draft_items (username, name, category, sets, reps, weight) VALUES (?, ?, ?, 1, 0, 0)",
		username, name, category,
	)
	if err != nil {
		return fmt.Errorf("stage exercise: %w", err)
	}
	return nil
}

// DraftExercises returns the user's staged exercises in insertion order.
func (d *DB) DraftExercises(username string) ([]models.DraftExercise, error) {
	rows, err := d.db.Query(
		"SELECT id, username, name, category, sets, reps, weight FROM routine_draft_items WHERE username = ? ORDER BY id",
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("list draft: %w", err)
	}
	defer rows.Close()

	var out []models.DraftExercise
	for rows.Next() {
		var e models.DraftExercise
		if err := rows.Scan(&e.ID, &e.Username, &e.Name, &e.Category, &e.Sets, &e.Reps, &e.Weight); err != nil {
			return nil, fmt.Errorf("scan draft item: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ClearDraft discards the user's staged exercises. Clearing an empty draft
// is a no-op.
func (d *DB) ClearDraft(username string) error {
	_, err := d.db.Exec("DELETE FROM routine_draft_items WHERE username = ?", username)
	if err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
