// ABOUTME: Shared test helpers for the storage package.
// ABOUTME: Each test gets a fresh migrated database in a temp directory.
package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

// setupTestDB opens a fresh, fully migrated database in a temp directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	d, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Errorf("Close() failed: %v", err)
		}
	})
	return d
}

// openUnmigrated opens a raw database with no schema so migration tests can
// stage historical versions by hand.
func openUnmigrated(t *testing.T) *DB {
	t.Helper()

	dir := t.TempDir()
	raw, err := sql.Open("sqlite", filepath.Join(dir, "gymtrack.db"))
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}

	d := &DB{
		db:      raw,
		dataDir: dir,
		logger:  log.NewWithOptions(os.Stderr, log.Options{Prefix: "storage"}),
	}
	if err := d.configurePragmas(); err != nil {
		t.Fatalf("configurePragmas() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Errorf("Close() failed: %v", err)
		}
	})
	return d
}

// addTestUser creates a user with a fixed password for tests that need one.
func addTestUser(t *testing.T, d *DB, username string) {
	t.Helper()
	if err := d.AddUser(username, "", "", "test-password"); err != nil {
		t.Fatalf("AddUser(%q) failed: %v", username, err)
	}
}

func countRows(t *testing.T, d *DB, table string) int {
	t.Helper()
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
