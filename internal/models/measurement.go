// ABOUTME: Body measurement and progress photo models.
// ABOUTME: Timestamps are "yyyy-MM-dd HH:mm" strings used as a composite grouping key.
package models

import "time"

// MeasurementTimeLayout is the display format used as the grouping key
// between a measurement and its photos. The key is string-compared, never
// parsed, so every writer must format with exactly this layout.
const MeasurementTimeLayout = "2006-01-02 15:04"

// Measurement is a dated snapshot of body metrics. Values are stored as the
// display strings the user entered, not typed numerics.
type Measurement struct {
	ID        int64
	Username  string
	Weight    string
	Chest     string
	Waist     string
	Arms      string
	Timestamp string
}

// NewMeasurement creates a Measurement keyed to the given moment.
func NewMeasurement(username string, at time.Time, weight, chest, waist, arms string) *Measurement {
	return &Measurement{
		Username:  username,
		Weight:    weight,
		Chest:     chest,
		Waist:     waist,
		Arms:      arms,
		Timestamp: at.Format(MeasurementTimeLayout),
	}
}

// ProgressPhoto is a filesystem-path record attached to a measurement via
// the (username, timestamp) key.
type ProgressPhoto struct {
	ID        int64
	Username  string
	Timestamp string
	Path      string
}
