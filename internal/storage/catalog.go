// ABOUTME: Seeded exercise catalog: reference data created once at first run.
// ABOUTME: Read-only after seeding; lookups feed the routine builder.
package storage

import (
	"fmt"

	"github.com/nirvana/gymtrack/internal/models"
)

// catalogSeed is the built-in exercise list, inserted once when the catalog
// table is first created.
var catalogSeed = []models.CatalogExercise{
	{Name: "Ab Wheel Rollout", Category: "Core"},
	{Name: "Arnold Press", Category: "Shoulders"},
	{Name: "Barbell Curl", Category: "Biceps"},
	{Name: "Barbell Row", Category: "Back"},
	{Name: "Bench Press", Category: "Chest"},
	{Name: "Bent Over Row", Category: "Back"},
	{Name: "Bicep Curl (Dumbbell)", Category: "Biceps"},
	{Name: "Bodyweight Squat", Category: "Legs"},
	{Name: "Box Jump", Category: "Cardio"},
	{Name: "Bulgarian Split Squat", Category: "Legs"},
	{Name: "Cable Crossover", Category: "Chest"},
	{Name: "Cable Row", Category: "Back"},
	{Name: "Calf Raise (Standing)", Category: "Legs"},
	{Name: "Chest Fly (Machine or Dumbbell)", Category: "Chest"},
	{Name: "Chin-Up", Category: "Back"},
	{Name: "Clean and Press", Category: "Full Body"},
	{Name: "Concentration Curl", Category: "Biceps"},
	{Name: "Crunch", Category: "Core"},
	{Name: "Deadlift", Category: "Back"},
	{Name: "Decline Bench Press", Category: "Chest"},
	{Name: "Dumbbell Fly", Category: "Chest"},
	{Name: "Dumbbell Press", Category: "Chest/Shoulders"},
	{Name: "Dumbbell Pullover", Category: "Chest"},
	{Name: "Dumbbell Row", Category: "Back"},
	{Name: "Face Pull", Category: "Shoulders"},
	{Name: "Farmer’s Walk", Category: "Full Body"},
	{Name: "Front Raise", Category: "Shoulders"},
	{Name: "Front Squat", Category: "Legs"},
	{Name: "Glute Bridge", Category: "Core"},
	{Name: "Goblet Squat", Category: "Legs"},
	{Name: "Hack Squat", Category: "Legs"},
	{Name: "Hammer Curl", Category: "Biceps"},
	{Name: "Hanging Leg Raise", Category: "Core"},
	{Name: "Hip Thrust", Category: "Glutes"},
	{Name: "Incline Bench Press", Category: "Chest"},
	{Name: "Incline Dumbbell Curl", Category: "Biceps"},
	{Name: "Jump Rope", Category: "Cardio"},
	{Name: "Jump Squat", Category: "Legs"},
	{Name: "Kettlebell Swing", Category: "Full Body"},
	{Name: "Kickback (Tricep)", Category: "Triceps"},
	{Name: "Lateral Raise", Category: "Shoulders"},
	{Name: "Lat Pulldown", Category: "Back"},
	{Name: "Leg Curl (Machine)", Category: "Legs"},
	{Name: "Leg Extension (Machine)", Category: "Legs"},
	{Name: "Leg Press", Category: "Legs"},
	{Name: "Lunge", Category: "Legs"},
	{Name: "Mountain Climbers", Category: "Cardio"},
	{Name: "Overhead Press", Category: "Shoulders"},
	{Name: "Overhead Tricep Extension", Category: "Triceps"},
	{Name: "Pendlay Row", Category: "Back"},
	{Name: "Plank", Category: "Core"},
	{Name: "Power Clean", Category: "Full Body"},
	{Name: "Preacher Curl", Category: "Biceps"},
	{Name: "Pull-Up", Category: "Back"},
	{Name: "Push Press", Category: "Shoulders"},
	{Name: "Push-Up", Category: "Chest"},
	{Name: "Rear Delt Fly", Category: "Shoulders"},
	{Name: "Romanian Deadlift", Category: "Hamstrings"},
	{Name: "Rope Pushdown", Category: "Triceps"},
	{Name: "Russian Twist", Category: "Core"},
	{Name: "Seated Cable Row", Category: "Back"},
	{Name: "Seated Leg Curl", Category: "Legs"},
	{Name: "Shoulder Press", Category: "Shoulders"},
	{Name: "Side Plank", Category: "Core"},
	{Name: "Sit-Up", Category: "Core"},
	{Name: "Skull Crusher", Category: "Triceps"},
	{Name: "Smith Machine Squat", Category: "Legs"},
	{Name: "Snatch", Category: "Full Body"},
	{Name: "Split Squat", Category: "Legs"},
	{Name: "Step-Up", Category: "Legs"},
	{Name: "Sumo Deadlift", Category: "Glutes"},
	{Name: "Thruster", Category: "Full Body"},
	{Name: "Toe Touch", Category: "Core"},
	{Name: "Tricep Dip", Category: "Triceps"},
	{Name: "Tricep Kickback", Category: "Triceps"},
	{Name: "T-Bar Row", Category: "Back"},
	{Name: "Upright Row", Category: "Shoulders"},
	{Name: "Wall Sit", Category: "Legs"},
	{Name: "Walking Lunge", Category: "Legs"},
	{Name: "Weighted Crunch", Category: "Core"},
	{Name: "Windshield Wiper", Category: "Core"},
	{Name: "Woodchopper", Category: "Core"},
	{Name: "Zercher Squat", Category: "Legs"},
	{Name: "Zottman Curl", Category: "Biceps"},
}

// seedCatalog inserts the built-in exercise list if the catalog is empty.
func (d *DB) seedCatalog() error {
	var count int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM catalog_exercises").Scan(&count); err != nil {
		return fmt.Errorf("count catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare("INSERT INTO catalog_exercises (name, category) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()

	for _, e := range catalogSeed {
		if _, err := stmt.Exec(e.Name, e.Category); err != nil {
			return fmt.Errorf("seed %s: %w", e.Name, err)
		}
	}
	return tx.Commit()
}

// CatalogExercises returns the full exercise catalog ordered by name.
func (d *DB) CatalogExercises() ([]models.CatalogExercise, error) {
	rows, err := d.db.Query("SELECT id, name, category FROM catalog_exercises ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	defer rows.Close()

	var out []models.CatalogExercise
	for rows.Next() {
		var e models.CatalogExercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category); err != nil {
			return nil, fmt.Errorf("scan catalog exercise: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
