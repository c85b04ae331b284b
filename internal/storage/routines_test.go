// ABOUTME: Tests for the routine draft workflow and saved routines.
// ABOUTME: Covers staging order, draft survival after save, and delete cleanup.
package storage

import (
	"errors"
	"testing"
)

func stageDraft(t *testing.T, d *DB, username string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := d.StageExercise(username, name, "Chest"); err != nil {
			t.Fatalf("StageExercise(%q) failed: %v", name, err)
		}
	}
}

func TestDraftStagingPreservesOrder(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")
	stageDraft(t, d, "casey", "Bench Press", "Incline Press", "Chest Fly")

	items, err := d.DraftExercises("casey")
	if err != nil {
		t.Fatalf("DraftExercises() failed: %v", err)
	}
	want := []string{"Bench Press", "Incline Press", "Chest Fly"}
	if len(items) != len(want) {
		t.Fatalf("draft has %d items, want %d", len(items), len(want))
	}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("draft[%d] = %q, want %q", i, items[i].Name, name)
		}
	}
}

func TestDraftIsPerUser(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")
	addTestUser(t, d, "riley")
	stageDraft(t, d, "casey", "Bench Press")
	stageDraft(t, d, "riley", "Squats")

	items, err := d.DraftExercises("casey")
	if err != nil {
		t.Fatalf("DraftExercises() failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Bench Press" {
		t.Errorf("casey's draft = %+v, want only Bench Press", items)
	}
}

func TestClearDraftIsIdempotent(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")
	stageDraft(t, d, "casey", "Bench Press")

	for i := 0; i < 2; i++ {
		if err := d.ClearDraft("casey"); err != nil {
			t.Fatalf("ClearDraft() call %d failed: %v", i+1, err)
		}
	}

	items, err := d.DraftExercises("casey")
	if err != nil {
		t.Fatalf("DraftExercises() failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("draft has %d items after clear, want 0", len(items))
	}
}

func TestSaveRoutineCopiesDraftAndKeepsIt(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")
	stageDraft(t, d, "casey", "Bench Press", "Chest Fly")

	id, err := d.SaveRoutine("casey", "Push Day")
	if err != nil {
		t.Fatalf("SaveRoutine() failed: %v", err)
	}

	items, err := d.ExercisesForRoutine(id)
	if err != nil {
		t.Fatalf("ExercisesForRoutine() failed: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Bench Press" || items[1].Name != "Chest Fly" {
		t.Errorf("routine exercises = %+v, want Bench Press then Chest Fly", items)
	}

	// Saving copies the draft; discarding it is a separate, explicit step.
	draft, err := d.DraftExercises("casey")
	if err != nil {
		t.Fatalf("DraftExercises() failed: %v", err)
	}
	if len(draft) != 2 {
		t.Errorf("draft has %d items after save, want 2 (save must not clear)", len(draft))
	}

	// The same draft can be saved again under another name.
	id2, err := d.SaveRoutine("casey", "Push Day B")
	if err != nil {
		t.Fatalf("second SaveRoutine() failed: %v", err)
	}
	if id2 == id {
		t.Errorf("second save reused routine id %d", id)
	}
}

func TestRoutinesNewestFirst(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")
	stageDraft(t, d, "casey", "Bench Press")

	if _, err := d.SaveRoutine("casey", "First"); err != nil {
		t.Fatalf("SaveRoutine() failed: %v", err)
	}
	if _, err := d.SaveRoutine("casey", "Second"); err != nil {
		t.Fatalf("SaveRoutine() failed: %v", err)
	}

	routines, err := d.Routines("casey")
	if err != nil {
		t.Fatalf("Routines() failed: %v", err)
	}
	if len(routines) != 2 {
		t.Fatalf("Routines() returned %d, want 2", len(routines))
	}
	if routines[0].Name != "Second" || routines[1].Name != "First" {
		t.Errorf("routines = [%s, %s], want newest first", routines[0].Name, routines[1].Name)
	}
}

func TestRoutineByID(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")
	stageDraft(t, d, "casey", "Bench Press")

	id, err := d.SaveRoutine("casey", "Push Day")
	if err != nil {
		t.Fatalf("SaveRoutine() failed: %v", err)
	}

	r, err := d.RoutineByID(id)
	if err != nil {
		t.Fatalf("RoutineByID() failed: %v", err)
	}
	if r.Name != "Push Day" || r.Username != "casey" {
		t.Errorf("RoutineByID() = %+v", r)
	}

	if _, err := d.RoutineByID(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("RoutineByID(missing) = %v, want ErrNotFound", err)
	}
}

func TestRoutineByIDDistinguishesQueryFailures(t *testing.T) {
	d := setupTestDB(t)

	// A closed database is an I/O failure, not a missing row.
	if err := d.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	_, err := d.RoutineByID(1)
	if err == nil {
		t.Fatal("RoutineByID() on closed database succeeded")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("RoutineByID() reported ErrNotFound for a query failure: %v", err)
	}
}

func TestRoutinesRejectMalformedCreatedAt(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")

	var id int64
	res, err := d.db.Exec(
		"INSERT INTO saved_routines (username, name, created_at) VALUES (?, ?, ?)",
		"casey", "Broken", "not-a-timestamp")
	if err != nil {
		t.Fatalf("insert malformed routine: %v", err)
	}
	if id, err = res.LastInsertId(); err != nil {
		t.Fatalf("routine id: %v", err)
	}

	if _, err := d.Routines("casey"); err == nil {
		t.Error("Routines() silently accepted a malformed created_at")
	}
	if _, err := d.RoutineByID(id); err == nil {
		t.Error("RoutineByID() silently accepted a malformed created_at")
	}
}

func TestDeleteRoutineRemovesItems(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")
	stageDraft(t, d, "casey", "Bench Press", "Chest Fly")

	id, err := d.SaveRoutine("casey", "Push Day")
	if err != nil {
		t.Fatalf("SaveRoutine() failed: %v", err)
	}

	if err := d.DeleteRoutine(id); err != nil {
		t.Fatalf("DeleteRoutine() failed: %v", err)
	}

	if _, err := d.RoutineByID(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("RoutineByID(deleted) = %v, want ErrNotFound", err)
	}
	var n int
	if err := d.db.QueryRow(
		"SELECT COUNT(*) FROM routine_exercise_items WHERE routine_id = ?", id).Scan(&n); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if n != 0 {
		t.Errorf("%d orphaned exercise items after delete", n)
	}

	if err := d.DeleteRoutine(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteRoutine(deleted) = %v, want ErrNotFound", err)
	}
}

func TestSaveRoutineWithEmptyDraft(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")

	id, err := d.SaveRoutine("casey", "Empty")
	if err != nil {
		t.Fatalf("SaveRoutine() failed: %v", err)
	}
	items, err := d.ExercisesForRoutine(id)
	if err != nil {
		t.Fatalf("ExercisesForRoutine() failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("empty-draft routine has %d exercises, want 0", len(items))
	}
}
