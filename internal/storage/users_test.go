// ABOUTME: Tests for user accounts: creation, credentials, preferences, and
// ABOUTME: the full deletion cascade.
package storage

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/nirvana/gymtrack/internal/models"
)

func TestAddUserAndValidateCredentials(t *testing.T) {
	d := setupTestDB(t)

	if err := d.AddUser("casey", "casey@example.com", "", "secret"); err != nil {
		t.Fatalf("AddUser() failed: %v", err)
	}

	exists, err := d.UserExists("casey")
	if err != nil {
		t.Fatalf("UserExists() failed: %v", err)
	}
	if !exists {
		t.Error("UserExists() = false after AddUser")
	}

	if !d.ValidateCredentials("casey", "secret") {
		t.Error("ValidateCredentials() rejected the correct password")
	}
	if d.ValidateCredentials("casey", "wrong") {
		t.Error("ValidateCredentials() accepted a wrong password")
	}
	if d.ValidateCredentials("nobody", "secret") {
		t.Error("ValidateCredentials() accepted an unknown user")
	}
}

func TestAddUserStoresHashedPassword(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")

	var stored string
	if err := d.db.QueryRow(
		"SELECT password FROM users WHERE username = ?", "casey").Scan(&stored); err != nil {
		t.Fatalf("read password column: %v", err)
	}
	if stored == "test-password" {
		t.Error("password stored in plaintext")
	}
}

func TestAddUserDuplicateUsername(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")

	err := d.AddUser("casey", "", "", "other")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("AddUser(duplicate) = %v, want ErrUsernameTaken", err)
	}
}

func TestUpdateUserPassword(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")

	if err := d.UpdateUserPassword("casey", "new-password"); err != nil {
		t.Fatalf("UpdateUserPassword() failed: %v", err)
	}
	if d.ValidateCredentials("casey", "test-password") {
		t.Error("old password still accepted after change")
	}
	if !d.ValidateCredentials("casey", "new-password") {
		t.Error("new password rejected after change")
	}

	if err := d.UpdateUserPassword("nobody", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateUserPassword(unknown) = %v, want ErrNotFound", err)
	}
}

func TestUserDetails(t *testing.T) {
	d := setupTestDB(t)
	if err := d.AddUser("casey", "casey@example.com", "", "pw"); err != nil {
		t.Fatalf("AddUser() failed: %v", err)
	}

	email, phone, err := d.UserDetails("casey")
	if err != nil {
		t.Fatalf("UserDetails() failed: %v", err)
	}
	if email == nil || *email != "casey@example.com" {
		t.Errorf("email = %v, want casey@example.com", email)
	}
	if phone != nil {
		t.Errorf("phone = %q, want NULL", *phone)
	}

	if _, _, err := d.UserDetails("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UserDetails(unknown) = %v, want ErrNotFound", err)
	}
}

func TestSetUserUnits(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")

	if err := d.SetUserUnits("casey", models.WeightKg, models.DistanceKm, models.MeasureCm); err != nil {
		t.Fatalf("SetUserUnits() failed: %v", err)
	}

	var weight, distance, measure string
	err := d.db.QueryRow(
		"SELECT weight_unit, distance_unit, measurement_unit FROM users WHERE username = ?",
		"casey").Scan(&weight, &distance, &measure)
	if err != nil {
		t.Fatalf("read units: %v", err)
	}
	if weight != "kg" || distance != "km" || measure != "cm" {
		t.Errorf("units = %s/%s/%s, want kg/km/cm", weight, distance, measure)
	}

	if err := d.SetUserUnits("nobody", "kg", "km", "cm"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetUserUnits(unknown) = %v, want ErrNotFound", err)
	}
}

func TestProfileImage(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")

	path, err := d.ProfileImage("casey")
	if err != nil {
		t.Fatalf("ProfileImage() failed: %v", err)
	}
	if path != nil {
		t.Errorf("ProfileImage() = %q before any set, want nil", *path)
	}

	if err := d.UpdateProfileImage("casey", "/photos/me.png"); err != nil {
		t.Fatalf("UpdateProfileImage() failed: %v", err)
	}
	path, err = d.ProfileImage("casey")
	if err != nil {
		t.Fatalf("ProfileImage() failed: %v", err)
	}
	if path == nil || *path != "/photos/me.png" {
		t.Errorf("ProfileImage() = %v, want /photos/me.png", path)
	}
}

func TestDeleteUserCompletely(t *testing.T) {
	d := setupTestDB(t)
	addTestUser(t, d, "casey")
	addTestUser(t, d, "riley")

	// Routine with two exercises.
	if err := d.StageExercise("casey", "Bench Press", "Chest"); err != nil {
		t.Fatalf("StageExercise() failed: %v", err)
	}
	if err := d.StageExercise("casey", "Squats", "Legs"); err != nil {
		t.Fatalf("StageExercise() failed: %v", err)
	}
	if _, err := d.SaveRoutine("casey", "Push Day"); err != nil {
		t.Fatalf("SaveRoutine() failed: %v", err)
	}

	// Two completed sessions.
	for i := 0; i < 2; i++ {
		start := int64(i+1) * 100_000
		if err := d.InsertCompletedSession("casey", "Push Day", start, start+120_000); err != nil {
			t.Fatalf("InsertCompletedSession() failed: %v", err)
		}
	}

	// Measurement with one real photo file.
	photo, err := d.SavePhoto([]byte("png-bytes"))
	if err != nil {
		t.Fatalf("SavePhoto() failed: %v", err)
	}
	m := models.NewMeasurement("casey", time.Now(), "82", "", "", "")
	if err := d.InsertMeasurement(m); err != nil {
		t.Fatalf("InsertMeasurement() failed: %v", err)
	}
	if err := d.InsertProgressPhoto("casey", m.Timestamp, photo); err != nil {
		t.Fatalf("InsertProgressPhoto() failed: %v", err)
	}

	// An unrelated user's data must survive the cascade.
	if err := d.StageExercise("riley", "Deadlifts", "Back"); err != nil {
		t.Fatalf("StageExercise(riley) failed: %v", err)
	}

	if err := d.DeleteUserCompletely("casey"); err != nil {
		t.Fatalf("DeleteUserCompletely() failed: %v", err)
	}

	for _, table := range []string{
		"users", "routine_draft_items", "saved_routines",
		"routine_exercise_items", "completed_sessions",
		"measurements", "progress_photos",
	} {
		var n int
		query := "SELECT COUNT(*) FROM " + table + " WHERE username = ?"
		if table == "completed_sessions" {
			query = "SELECT COUNT(*) FROM completed_sessions WHERE user_id = ?"
		}
		if table == "routine_exercise_items" {
			query = `SELECT COUNT(*) FROM routine_exercise_items
				WHERE routine_id IN (SELECT id FROM saved_routines WHERE username = ?)`
		}
		if err := d.db.QueryRow(query, "casey").Scan(&n); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if n != 0 {
			t.Errorf("%s still has %d rows for the deleted user", table, n)
		}
	}

	if _, err := os.Stat(photo); !os.IsNotExist(err) {
		t.Errorf("photo file %s not removed (stat err: %v)", photo, err)
	}

	exists, err := d.UserExists("riley")
	if err != nil {
		t.Fatalf("UserExists(riley) failed: %v", err)
	}
	if !exists {
		t.Error("unrelated user deleted by cascade")
	}
	drafts, err := d.DraftExercises("riley")
	if err != nil {
		t.Fatalf("DraftExercises(riley) failed: %v", err)
	}
	if len(drafts) != 1 {
		t.Errorf("unrelated user's draft has %d items, want 1", len(drafts))
	}
}

func TestDeleteUserCompletelyUnknownUser(t *testing.T) {
	d := setupTestDB(t)

	if err := d.DeleteUserCompletely("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteUserCompletely(unknown) = %v, want ErrNotFound", err)
	}
}
