// ABOUTME: User account operations: signup, credential checks, preferences.
// ABOUTME: Includes the full-account deletion cascade across every table.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nirvana/gymtrack/internal/models"
)

// ErrUsernameTaken is returned by AddUser when the username already exists.
var ErrUsernameTaken = errors.New("username already taken")

// AddUser creates a new account. The password is bcrypt-hashed before
// storage. Existing usernames are never overwritten.
func (d *DB) AddUser(username, email, phone, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := models.NewUser(username, email, phone)
	_, err = d.db.Exec(
		"INSERT INTO users (username, email, phone, password) VALUES (?, ?, ?, ?)",
		u.Username, u.Email, u.Phone, string(hashed),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("add user: %w", err)
	}
	return nil
}

// UserExists reports whether the username is registered.
func (d *DB) UserExists(username string) (bool, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM users WHERE username = ?", username).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return n > 0, nil
}

// ValidateCredentials checks the password against the stored hash. It
// reports a plain yes/no and never distinguishes a missing user from a
// wrong password.
func (d *DB) ValidateCredentials(username, password string) bool {
	var hash string
	err := d.db.QueryRow("SELECT password FROM users WHERE username = ?", username).Scan(&hash)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// UpdateUserPassword replaces the stored credential with a new bcrypt hash.
func (d *DB) UpdateUserPassword(username, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	res, err := d.db.Exec("UPDATE users SET password = ? WHERE username = ?", string(hashed), username)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return requireAffected(res, username)
}

// UserDetails returns the optional email and phone for an account.
func (d *DB) UserDetails(username string) (email, phone *string, err error) {
	err = d.db.QueryRow("SELECT email, phone FROM users WHERE username = ?", username).Scan(&email, &phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("user details: %w", err)
	}
	return email, phone, nil
}

// SetUserUnits stores the weight, distance and measurement unit preferences.
func (d *DB) SetUserUnits(username, weight, distance, measure string) error {
	res, err := d.db.Exec(
		"UPDATE users SET weight_unit = ?, distance_unit = ?, measurement_unit = ? WHERE username = ?",
		weight, distance, measure, username,
	)
	if err != nil {
		return fmt.Errorf("set units: %w", err)
	}
	return requireAffected(res, username)
}

// UpdateProfileImage stores the profile image reference for a user.
func (d *DB) UpdateProfileImage(username, path string) error {
	res, err := d.db.Exec("UPDATE users SET profile_image = ? WHERE username = ?", path, username)
	if err != nil {
		return fmt.Errorf("update profile image: %w", err)
	}
	return requireAffected(res, username)
}

// ProfileImage returns the stored profile image reference, if any.
func (d *DB) ProfileImage(username string) (*string, error) {
	var path *string
	err := d.db.QueryRow("SELECT profile_image FROM users WHERE username = ?", username).Scan(&path)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("profile image: %w", err)
	}
	return path, nil
}

// DeleteUserCompletely erases an account and everything it owns. Progress
// photo files are removed from disk first, best-effort: a file that cannot
// be deleted is logged and skipped, never aborting the row cleanup.
func (d *DB) DeleteUserCompletely(username string) error {
	photos, err := d.userPhotoPaths(username)
	if err != nil {
		return err
	}
	for _, path := range photos {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			d.logger.Warn("failed to delete photo file", "path", path, "err", err)
		}
	}

	steps := []struct {
		query string
		arg   string
	}{
		{"DELETE FROM progress_photos WHERE username = ?", username},
		{"DELETE FROM measurements WHERE username = ?", username},
		{"DELETE FROM routine_draft_items WHERE username = ?", username},
		{"DELETE FROM completed_sessions WHERE user_id = ?", username},
	}
	for _, s := range steps {
		if _, err := d.db.Exec(s.query, s.arg); err != nil {
			return fmt.Errorf("delete user data: %w", err)
		}
	}

	// Routine items reference routines by id, so they go first.
	routineIDs, err := d.routineIDs(username)
	if err != nil {
		return err
	}
	for _, id := range routineIDs {
		if _, err := d.db.Exec("DELETE FROM routine_exercise_items WHERE routine_id = ?", id); err != nil {
			return fmt.Errorf("delete routine items: %w", err)
		}
	}
	if _, err := d.db.Exec("DELETE FROM saved_routines WHERE username = ?", username); err != nil {
		return fmt.Errorf("delete routines: %w", err)
	}

	res, err := d.db.Exec("DELETE FROM users WHERE username = ?", username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return requireAffected(res, username)
}

func (d *DB) userPhotoPaths(username string) ([]string, error) {
	rows, err := d.db.Query("SELECT photo_path FROM progress_photos WHERE username = ?", username)
	if err != nil {
		return nil, fmt.Errorf("list photo paths: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan photo path: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

func (d *DB) routineIDs(username string) ([]int64, error) {
	rows, err := d.db.Query("SELECT id FROM saved_routines WHERE username = ?", username)
	if err != nil {
		return nil, fmt.Errorf("list routine ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan routine id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func requireAffected(res sql.Result, username string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	return nil
}

// isUniqueViolation matches the sqlite UNIQUE constraint error without
// depending on driver-specific error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
