// ABOUTME: Body measurement snapshots and their progress photo records.
// ABOUTME: Photos live on disk under the data dir; rows hold the file paths.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nirvana/gymtrack/internal/models"
)

// InsertMeasurement stores one body-metric snapshot. Values are kept as the
// display strings the user entered.
func (d *DB) InsertMeasurement(m *models.Measurement) error {
	_, err := d.db.Exec(
		"INSERT INTO measurements (username, weight, chest, waist, arms, timestamp) VALUES (?, ?, ?, ?, ?, ?)",
		m.Username, m.Weight, m.Chest, m.Waist, m.Arms, m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert measurement: %w", err)
	}
	return nil
}

// Measurements returns the user's snapshots, newest first. The timestamp
// strings sort correctly because the layout is fixed-width.
func (d *DB) Measurements(username string) ([]models.Measurement, error) {
	rows, err := d.db.Query(
		"SELECT id, username, weight, chest, waist, arms, timestamp FROM measurements WHERE username = ? ORDER BY timestamp DESC",
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	var out []models.Measurement
	for rows.Next() {
		var m models.Measurement
		if err := rows.Scan(&m.ID, &m.Username, &m.Weight, &m.Chest, &m.Waist, &m.Arms, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// InsertProgressPhoto records a photo path against a measurement key.
func (d *DB) InsertProgressPhoto(username, timestamp, path string) error {
	_, err := d.db.Exec(
		"INSERT INTO progress_photos (username, timestamp, photo_path) VALUES (?, ?, ?)",
		username, timestamp, path,
	)
	if err != nil {
		return fmt.Errorf("insert progress photo: %w", err)
	}
	return nil
}

// PhotosForMeasurement returns the photo paths attached to one measurement
// entry, matched by exact (username, timestamp) string comparison.
func (d *DB) PhotosForMeasurement(username, timestamp string) ([]string, error) {
	rows, err := d.db.Query(
		"SELECT photo_path FROM progress_photos WHERE username = ? AND timestamp = ?",
		username, timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
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

// SavePhoto writes image bytes into the data dir under a generated name and
// returns the absolute path for the photo record.
func (d *DB) SavePhoto(data []byte) (string, error) {
	photoDir := filepath.Join(d.dataDir, "photos")
	if err := os.MkdirAll(photoDir, 0o750); err != nil {
		return "", fmt.Errorf("create photo dir: %w", err)
	}
	path := filepath.Join(photoDir, uuid.NewString()+".png")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return path, nil
}

// DeleteMeasurement removes a snapshot and its photos. Photo files are
// deleted best-effort: failures are logged, and the row cleanup is
// authoritative regardless.
func (d *DB) DeleteMeasurement(username, timestamp string) error {
	paths, err := d.PhotosForMeasurement(username, timestamp)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			d.logger.Warn("failed to delete photo file", "path", path, "err", err)
		}
	}

	if _, err := d.db.Exec(
		"DELETE FROM progress_photos WHERE username = ? AND timestamp = ?", username, timestamp,
	); err != nil {
		return fmt.Errorf("delete photos: %w", err)
	}
	if _, err := d.db.Exec(
		"DELETE FROM measurements WHERE username = ? AND timestamp = ?", username, timestamp,
	); err != nil {
		return fmt.Errorf("delete measurement: %w", err)
	}
	return nil
}
