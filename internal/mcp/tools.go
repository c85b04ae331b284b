// ABOUTME: MCP tool implementations over the gym repository.
// ABOUTME: Exposes routines, workout history, daily stats, and measurements.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nirvana/gymtrack/internal/models"
	"github.com/nirvana/gymtrack/internal/stats"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_catalog",
		Description: "List the built-in exercise catalog (name and muscle category)",
	}, s.handleListCatalog)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_routines",
		Description: "List the user's saved workout routines",
	}, s.handleListRoutines)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_routine",
		Description: "Get a saved routine with its exercises",
	}, s.handleGetRoutine)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "workout_history",
		Description: "List completed workout sessions with duration, estimated volume and reps",
	}, s.handleWorkoutHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "daily_stats",
		Description: "Per-day workout minutes, estimated volume, and estimated reps",
	}, s.handleDailyStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_measurement",
		Description: "Record a body measurement snapshot (weight, chest, waist, arms)",
	}, s.handleLogMeasurement)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_measurements",
		Description: "List recorded body measurement snapshots",
	}, s.handleListMeasurements)
}

// Tool input/output types

type emptyInput struct{}

type catalogEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type routineSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type getRoutineInput struct {
	ID int64 `json:"id" jsonschema:"Routine id from list_routines"`
}

type routineDetail struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Exercises []catalogEntry `json:"exercises"`
}

type historyEntry struct {
	RoutineName string `json:"routine_name"`
	StartedAt   string `json:"started_at"`
	Minutes     int    `json:"minutes"`
	Volume      int    `json:"estimated_volume"`
	Reps        int    `json:"estimated_reps"`
}

type dailyStatsOutput struct {
	Minutes []stats.DayPoint `json:"minutes"`
	Volume  []stats.DayPoint `json:"volume"`
	Reps    []stats.DayPoint `json:"reps"`
}

type logMeasurementInput struct {
	Weight string `json:"weight,omitempty" jsonschema:"Body weight as entered (display string)"`
	Chest  string `json:"chest,omitempty" jsonschema:"Chest measurement"`
	Waist  string `json:"waist,omitempty" jsonschema:"Waist measurement"`
	Arms   string `json:"arms,omitempty" jsonschema:"Arms measurement"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Handlers

func (s *Server) handleListCatalog(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	exercises, err := s.repo.CatalogExercises()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	out := make([]catalogEntry, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, catalogEntry{Name: e.Name, Category: e.Category})
	}
	return nil, out, nil
}

func (s *Server) handleListRoutines(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	routines, err := s.repo.Routines(s.username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list routines: %w", err)
	}

	if len(routines) == 0 {
		return nil, map[string]any{"message": "No routines found."}, nil
	}

	out := make([]routineSummary, 0, len(routines))
	for _, r := range routines {
		out = append(out, routineSummary{
			ID:        r.ID,
			Name:      r.Name,
			CreatedAt: r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetRoutine(ctx context.Context, req *mcp.CallToolRequest, input getRoutineInput) (*mcp.CallToolResult, any, error) {
	r, err := s.repo.RoutineByID(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("routine not found: %d", input.ID)
	}
	if r.Username != s.username {
		return nil, nil, fmt.Errorf("routine not found: %d", input.ID)
	}

	items, err := s.repo.ExercisesForRoutine(r.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load routine exercises: %w", err)
	}

	detail := routineDetail{ID: r.ID, Name: r.Name}
	for _, item := range items {
		detail.Exercises = append(detail.Exercises, catalogEntry{Name: item.Name, Category: item.Category})
	}
	return nil, detail, nil
}

func (s *Server) handleWorkoutHistory(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	sessions, err := s.repo.CompletedSessions(s.username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		return nil, map[string]any{"message": "No completed workouts found."}, nil
	}

	logs := stats.SessionLogs(sessions)
	out := make([]historyEntry, 0, len(logs))
	for _, l := range logs {
		out = append(out, historyEntry{
			RoutineName: l.RoutineName,
			StartedAt:   time.UnixMilli(l.StartTime).Format("2006-01-02 15:04"),
			Minutes:     l.Minutes,
			Volume:      l.Volume,
			Reps:        l.Reps,
		})
	}
	return nil, out, nil
}

func (s *Server) handleDailyStats(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	sessions, err := s.repo.CompletedSessions(s.username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	minutes := stats.DailyMinutes(sessions)
	out := dailyStatsOutput{
		Minutes: stats.Sorted(minutes),
		Volume:  stats.Sorted(stats.DailyVolume(minutes)),
		Reps:    stats.Sorted(stats.DailyReps(minutes)),
	}
	return nil, out, nil
}

func (s *Server) handleLogMeasurement(ctx context.Context, req *mcp.CallToolRequest, input logMeasurementInput) (*mcp.CallToolResult, simpleOutput, error) {
	m := models.NewMeasurement(s.username, time.Now(), input.Weight, input.Chest, input.Waist, input.Arms)
	if err := s.repo.InsertMeasurement(m); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save measurement: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded measurement at %s", m.Timestamp),
	}, nil
}

func (s *Server) handleListMeasurements(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	measurements, err := s.repo.Measurements(s.username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list measurements: %w", err)
	}

	if len(measurements) == 0 {
		return nil, map[string]any{"message": "No measurements found."}, nil
	}
	return nil, measurements, nil
}
