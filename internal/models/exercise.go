// ABOUTME: Exercise catalog and routine-draft item models.
// ABOUTME: Catalog rows are seeded reference data and read-only afterwards.
package models

// CatalogExercise is one entry of the seeded exercise reference list.
type CatalogExercise struct {
	ID       int64
	Name     string
	Category string
}

// DraftExercise is one staged row of a routine under construction, scoped to
// the owning username. Sets/Reps/Weight are placeholders the builder UI may
// fill in later; the defaults mirror a single empty set.
type DraftExercise struct {
	ID       int64
	Username string
	Name     string
	Category string
	Sets     int
	Reps     int
	Weight   float64
}
