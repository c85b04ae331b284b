// ABOUTME: Tests for the MCP server and tool handlers.
// ABOUTME: Handlers run against a real temp-dir store scoped to one user.
package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/nirvana/gymtrack/internal/models"
	"github.com/nirvana/gymtrack/internal/storage"
)

// setupTestDB creates a migrated store in a temp directory with one user.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	db, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.AddUser("casey", "", "", "pw"); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	return db
}

func setupServer(t *testing.T) (*Server, *storage.DB) {
	t.Helper()
	db := setupTestDB(t)
	server, err := NewServer(db, "casey")
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server, db
}

// saveRoutine stages the named exercises and saves them as a routine.
func saveRoutine(t *testing.T, db *storage.DB, username, name string, exercises ...string) int64 {
	t.Helper()
	for _, ex := range exercises {
		if err := db.StageExercise(username, ex, "Chest"); err != nil {
			t.Fatalf("StageExercise failed: %v", err)
		}
	}
	id, err := db.SaveRoutine(username, name)
	if err != nil {
		t.Fatalf("SaveRoutine failed: %v", err)
	}
	if err := db.ClearDraft(username); err != nil {
		t.Fatalf("ClearDraft failed: %v", err)
	}
	return id
}

func TestNewServer(t *testing.T) {
	db := setupTestDB(t)

	server, err := NewServer(db, "casey")
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
	if server.username != "casey" {
		t.Errorf("username = %q, want casey", server.username)
	}
}

func TestHandleListCatalog(t *testing.T) {
	server, db := setupServer(t)
	ctx := context.Background()

	_, out, err := server.handleListCatalog(ctx, nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleListCatalog failed: %v", err)
	}

	entries, ok := out.([]catalogEntry)
	if !ok {
		t.Fatalf("output type = %T, want []catalogEntry", out)
	}
	seeded, err := db.CatalogExercises()
	if err != nil {
		t.Fatalf("CatalogExercises failed: %v", err)
	}
	if len(entries) != len(seeded) {
		t.Errorf("got %d catalog entries, want %d", len(entries), len(seeded))
	}
	for _, e := range entries {
		if e.Name == "" || e.Category == "" {
			t.Errorf("incomplete catalog entry: %+v", e)
		}
	}
}

func TestHandleListRoutines(t *testing.T) {
	server, db := setupServer(t)
	ctx := context.Background()
	saveRoutine(t, db, "casey", "Push Day", "Bench Press")

	_, out, err := server.handleListRoutines(ctx, nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleListRoutines failed: %v", err)
	}

	routines, ok := out.([]routineSummary)
	if !ok {
		t.Fatalf("output type = %T, want []routineSummary", out)
	}
	if len(routines) != 1 || routines[0].Name != "Push Day" {
		t.Errorf("routines = %+v, want one Push Day entry", routines)
	}
	if routines[0].CreatedAt == "" {
		t.Error("CreatedAt not populated")
	}
}

func TestHandleListRoutinesEmpty(t *testing.T) {
	server, _ := setupServer(t)

	_, out, err := server.handleListRoutines(context.Background(), nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleListRoutines failed: %v", err)
	}
	msg, ok := out.(map[string]any)
	if !ok || msg["message"] == "" {
		t.Errorf("empty list output = %v, want message map", out)
	}
}

func TestHandleGetRoutine(t *testing.T) {
	server, db := setupServer(t)
	ctx := context.Background()
	id := saveRoutine(t, db, "casey", "Push Day", "Bench Press", "Chest Fly")

	_, out, err := server.handleGetRoutine(ctx, nil, getRoutineInput{ID: id})
	if err != nil {
		t.Fatalf("handleGetRoutine failed: %v", err)
	}

	detail, ok := out.(routineDetail)
	if !ok {
		t.Fatalf("output type = %T, want routineDetail", out)
	}
	if detail.Name != "Push Day" || len(detail.Exercises) != 2 {
		t.Errorf("detail = %+v, want Push Day with 2 exercises", detail)
	}
}

func TestHandleGetRoutineNotFound(t *testing.T) {
	server, _ := setupServer(t)

	_, _, err := server.handleGetRoutine(context.Background(), nil, getRoutineInput{ID: 9999})
	if err == nil {
		t.Error("Expected error for missing routine")
	}
}

func TestHandleGetRoutineRejectsOtherUsers(t *testing.T) {
	server, db := setupServer(t)
	if err := db.AddUser("riley", "", "", "pw"); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	id := saveRoutine(t, db, "riley", "Riley's Day", "Squats")

	_, _, err := server.handleGetRoutine(context.Background(), nil, getRoutineInput{ID: id})
	if err == nil {
		t.Fatal("another user's routine was served")
	}
	// The rejection reads the same as a missing id.
	if !strings.HasPrefix(err.Error(), "routine not found") {
		t.Errorf("rejection error = %q, want a not-found error", err)
	}
}

func TestHandleWorkoutHistory(t *testing.T) {
	server, db := setupServer(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC).UnixMilli()
	if err := db.InsertCompletedSession("casey", "Push Day", start, start+25*60*1000); err != nil {
		t.Fatalf("InsertCompletedSession failed: %v", err)
	}

	_, out, err := server.handleWorkoutHistory(ctx, nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleWorkoutHistory failed: %v", err)
	}

	entries, ok := out.([]historyEntry)
	if !ok {
		t.Fatalf("output type = %T, want []historyEntry", out)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.RoutineName != "Push Day" || e.Minutes != 25 || e.Volume != 1250 || e.Reps != 50 {
		t.Errorf("entry = %+v, want Push Day 25 min / 1250 vol / 50 reps", e)
	}
}

func TestHandleWorkoutHistoryEmpty(t *testing.T) {
	server, _ := setupServer(t)

	_, out, err := server.handleWorkoutHistory(context.Background(), nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleWorkoutHistory failed: %v", err)
	}
	msg, ok := out.(map[string]any)
	if !ok || msg["message"] == "" {
		t.Errorf("empty history output = %v, want message map", out)
	}
}

func TestHandleDailyStats(t *testing.T) {
	server, db := setupServer(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 1, 7, 30, 0, 0, time.Local).UnixMilli()
	if err := db.InsertCompletedSession("casey", "Push Day", start, start+45*60*1000); err != nil {
		t.Fatalf("InsertCompletedSession failed: %v", err)
	}

	_, out, err := server.handleDailyStats(ctx, nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleDailyStats failed: %v", err)
	}

	stats, ok := out.(dailyStatsOutput)
	if !ok {
		t.Fatalf("output type = %T, want dailyStatsOutput", out)
	}
	if len(stats.Minutes) != 1 || stats.Minutes[0].Value != 45 {
		t.Errorf("minutes = %+v, want one 45-minute day", stats.Minutes)
	}
	if stats.Volume[0].Value != 2250 || stats.Reps[0].Value != 90 {
		t.Errorf("derived = %d vol / %d reps, want 2250/90",
			stats.Volume[0].Value, stats.Reps[0].Value)
	}
}

func TestHandleLogMeasurement(t *testing.T) {
	server, db := setupServer(t)
	ctx := context.Background()

	_, out, err := server.handleLogMeasurement(ctx, nil, logMeasurementInput{
		Weight: "82.5",
		Waist:  "84",
	})
	if err != nil {
		t.Fatalf("handleLogMeasurement failed: %v", err)
	}
	if out.Message == "" {
		t.Error("Expected confirmation message")
	}

	measurements, err := db.Measurements("casey")
	if err != nil {
		t.Fatalf("Measurements failed: %v", err)
	}
	if len(measurements) != 1 || measurements[0].Weight != "82.5" {
		t.Errorf("stored = %+v, want one 82.5 snapshot", measurements)
	}
}

func TestHandleListMeasurements(t *testing.T) {
	server, db := setupServer(t)
	ctx := context.Background()

	m := models.NewMeasurement("casey", time.Now(), "82.5", "", "", "")
	if err := db.InsertMeasurement(m); err != nil {
		t.Fatalf("InsertMeasurement failed: %v", err)
	}

	_, out, err := server.handleListMeasurements(ctx, nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleListMeasurements failed: %v", err)
	}
	measurements, ok := out.([]models.Measurement)
	if !ok {
		t.Fatalf("output type = %T, want []models.Measurement", out)
	}
	if len(measurements) != 1 || measurements[0].Weight != "82.5" {
		t.Errorf("measurements = %+v", measurements)
	}
}

func TestHandleListMeasurementsEmpty(t *testing.T) {
	server, _ := setupServer(t)

	_, out, err := server.handleListMeasurements(context.Background(), nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleListMeasurements failed: %v", err)
	}
	msg, ok := out.(map[string]any)
	if !ok || msg["message"] == "" {
		t.Errorf("empty measurements output = %v, want message map", out)
	}
}

func TestToolsScopedToConstructorUser(t *testing.T) {
	server, db := setupServer(t)
	if err := db.AddUser("riley", "", "", "pw"); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	saveRoutine(t, db, "riley", "Riley's Day", "Squats")

	_, out, err := server.handleListRoutines(context.Background(), nil, emptyInput{})
	if err != nil {
		t.Fatalf("handleListRoutines failed: %v", err)
	}
	if _, ok := out.(map[string]any); !ok {
		t.Errorf("casey's server listed another user's routines: %v", out)
	}
}
