// ABOUTME: Repository interface for gym data storage.
// ABOUTME: Defines the contract the CLI, MCP server, and tests program against.
package storage

import "github.com/nirvana/gymtrack/internal/models"

// Repository is the sole gateway to durable state. *DB implements it; fakes
// can stand in for tests.
type Repository interface {
	// Users
	AddUser(username, email, phone, password string) error
	UserExists(username string) (bool, error)
	ValidateCredentials(username, password string) bool
	UpdateUserPassword(username, newPassword string) error
	UserDetails(username string) (email, phone *string, err error)
	SetUserUnits(username, weight, distance, measure string) error
	UpdateProfileImage(username, path string) error
	ProfileImage(username string) (*string, error)
	DeleteUserCompletely(username string) error

	// Exercise catalog
	CatalogExercises() ([]models.CatalogExercise, error)

	// Routine draft
	StageExercise(username, name, category string) error
	DraftExercises(username string) ([]models.DraftExercise, error)
	ClearDraft(username string) error

	// Saved routines
	SaveRoutine(username, name string) (int64, error)
	Routines(username string) ([]models.Routine, error)
	RoutineByID(routineID int64) (*models.Routine, error)
	ExercisesForRoutine(routineID int64) ([]models.RoutineExercise, error)
	DeleteRoutine(routineID int64) error

	// Completed sessions
	InsertCompletedSession(userID, routineName string, startMillis, endMillis int64) error
	CompletedSessions(userID string) ([]models.CompletedSession, error)

	// Measurements and photos
	InsertMeasurement(m *models.Measurement) error
	Measurements(username string) ([]models.Measurement, error)
	InsertProgressPhoto(username, timestamp, path string) error
	PhotosForMeasurement(username, timestamp string) ([]string, error)
	SavePhoto(data []byte) (string, error)
	DeleteMeasurement(username, timestamp string) error

	// Lifecycle
	Close() error
}

var _ Repository = (*DB)(nil)
