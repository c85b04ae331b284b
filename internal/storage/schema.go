// ABOUTME: Versioned schema definition and additive migration path.
// ABOUTME: Tracks the schema version in PRAGMA user_version, currently 8.
package storage

import (
	"fmt"
)

// currentSchemaVersion is the schema version written by a fresh create and
// reached by the upgrade path. Each released version corresponds to exactly
// one additive step below; steps never drop or rename anything.
const currentSchemaVersion = 8

// baselineSchema is the users table as first released (version 1). Later
// versions only ever added columns to it.
const baselineSchema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	email TEXT,
	phone TEXT,
	password TEXT NOT NULL
);
`

// schema is the full table set in its final shape, used on the creation path
// (fresh database, version 0).
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	email TEXT,
	phone TEXT,
	password TEXT NOT NULL,
	weight_unit TEXT,
	distance_unit TEXT,
	measurement_unit TEXT,
	profile_image TEXT
);

CREATE TABLE IF NOT EXISTS catalog_exercises (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	category TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS routine_draft_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT,
	name TEXT NOT NULL,
	category TEXT,
	sets INTEGER DEFAULT 1,
	reps INTEGER DEFAULT 0,
	weight REAL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS saved_routines (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT,
	name TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS routine_exercise_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	routine_id INTEGER,
	name TEXT,
	category TEXT,
	FOREIGN KEY (routine_id) REFERENCES saved_routines(id)
);

CREATE TABLE IF NOT EXISTS completed_sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	routine_name TEXT,
	start_time INTEGER,
	end_time INTEGER
);

CREATE TABLE IF NOT EXISTS measurements (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL,
	weight TEXT,
	chest TEXT,
	waist TEXT,
	arms TEXT,
	timestamp TEXT
);

CREATE TABLE IF NOT EXISTS progress_photos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL,
	timestamp TEXT NOT NULL,
	photo_path TEXT NOT NULL
);
`

// A migration is one released schema step. Apply must be idempotent: every
// statement is CREATE TABLE IF NOT EXISTS or a column-existence-guarded
// ALTER TABLE ADD COLUMN, so re-running against a partially upgraded
// database is safe.
type migration struct {
	version int
	apply   func(d *DB) error
}

var migrations = []migration{
	{2, func(d *DB) error {
		return d.exec(`
			CREATE TABLE IF NOT EXISTS catalog_exercises (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				category TEXT NOT NULL
			);`)
	}},
	{3, func(d *DB) error {
		return d.exec(`
			CREATE TABLE IF NOT EXISTS routine_draft_items (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT,
				name TEXT NOT NULL,
				category TEXT,
				sets INTEGER DEFAULT 1,
				reps INTEGER DEFAULT 0,
				weight REAL DEFAULT 0
			);`)
	}},
	{4, func(d *DB) error {
		return d.exec(`
			CREATE TABLE IF NOT EXISTS saved_routines (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT,
				name TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE TABLE IF NOT EXISTS routine_exercise_items (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				routine_id INTEGER,
				name TEXT,
				category TEXT,
				FOREIGN KEY (routine_id) REFERENCES saved_routines(id)
			);`)
	}},
	{5, func(d *DB) error {
		return d.exec(`
			CREATE TABLE IF NOT EXISTS completed_sessions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id TEXT NOT NULL,
				routine_name TEXT,
				start_time INTEGER,
				end_time INTEGER
			);`)
	}},
	{6, func(d *DB) error {
		for _, col := range []string{"weight_unit", "distance_unit", "measurement_unit"} {
			if err := d.addColumnIfMissing("users", col, "TEXT"); err != nil {
				return err
			}
		}
		return nil
	}},
	{7, func(d *DB) error {
		if err := d.exec(`
			CREATE TABLE IF NOT EXISTS measurements (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL,
				weight TEXT,
				chest TEXT,
				waist TEXT,
				arms TEXT,
				timestamp TEXT
			);`); err != nil {
			return err
		}
		return d.addColumnIfMissing("users", "profile_image", "TEXT")
	}},
	{8, func(d *DB) error {
		return d.exec(`
			CREATE TABLE IF NOT EXISTS progress_photos (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL,
				timestamp TEXT NOT NULL,
				photo_path TEXT NOT NULL
			);`)
	}},
}

// Migrate brings the database to the current schema version. A fresh
// database (version 0) gets all tables in their final shape directly; any
// prior released version walks the ordered, version-gated steps. Applying
// the upgrade path from any historical version converges on the same schema
// as a fresh create.
func (d *DB) Migrate() error {
	from, err := d.schemaVersion()
	if err != nil {
		return err
	}

	if from == 0 {
		if err := d.exec(schema); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	} else {
		for _, m := range migrations {
			if from >= m.version {
				continue
			}
			if err := m.apply(d); err != nil {
				return fmt.Errorf("migrate to version %d: %w", m.version, err)
			}
		}
	}

	if err := d.seedCatalog(); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	return d.setSchemaVersion(currentSchemaVersion)
}

func (d *DB) exec(stmts string) error {
	_, err := d.db.Exec(stmts)
	return err
}

func (d *DB) schemaVersion() (int, error) {
	var v int
	if err := d.db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	return v, nil
}

func (d *DB) setSchemaVersion(v int) error {
	_, err := d.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", v))
	if err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// columnExists reports whether the table already has the named column.
func (d *DB) columnExists(table, column string) (bool, error) {
	rows, err := d.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			dflt       any
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &primaryKey); err != nil {
			return false, fmt.Errorf("scan table_info: %w", err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// addColumnIfMissing makes ALTER TABLE ADD COLUMN idempotent, since SQLite
// has no IF NOT EXISTS clause for columns.
func (d *DB) addColumnIfMissing(table, column, typ string) error {
	exists, err := d.columnExists(table, column)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = d.db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, typ))
	if err != nil {
		return fmt.Errorf("add column %s.%s: %w", table, column, err)
	}
	return nil
}
