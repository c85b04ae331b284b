// ABOUTME: Saved routine and routine exercise item models.
// ABOUTME: Items are bound to their routine by foreign key and immutable after save.
package models

import "time"

// Routine is a persisted, named collection of exercises owned by a user.
type Routine struct {
	ID        int64
	Username  string
	Name      string
	CreatedAt time.Time
}

// RoutineExercise is one exercise bound to a saved routine.
type RoutineExercise struct {
	ID        int64
	RoutineID int64
	Name      string
	Category  string
}
