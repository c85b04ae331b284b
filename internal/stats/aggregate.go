// ABOUTME: Aggregation engine: day-keyed minutes, volume, and reps series.
// ABOUTME: Pure functions over completed-session rows; nothing here hits storage.
package stats

import (
	"sort"

	"github.com/nirvana/gymtrack/internal/models"
)

// dayLayout keys the aggregation maps by the calendar day of the session
// start in local time.
const dayLayout = "2006-01-02"

// Volume and reps are linear estimates from active minutes, not sums of the
// per-set weight/rep entries recorded during the session. Those inputs are
// validated at completion and then discarded with the in-memory session, so
// these multipliers preserve the historical series exactly.
const (
	volumePerMinute = 50
	repsPerMinute   = 2
)

// DayPoint is one chart-ready sample of a sorted daily series.
type DayPoint struct {
	Day   string
	Value int
}

// DailyMinutes groups sessions by the calendar day of their start time and
// sums whole minutes of duration per day.
func DailyMinutes(sessions []models.CompletedSession) map[string]int {
	out := make(map[string]int)
	for _, s := range sessions {
		day := s.StartedAt().Format(dayLayout)
		out[day] += s.DurationMinutes()
	}
	return out
}

// DailyVolume derives the estimated volume series from an aggregated
// minutes map.
func DailyVolume(minutes map[string]int) map[string]int {
	return scale(minutes, volumePerMinute)
}

// DailyReps derives the estimated reps series from an aggregated minutes
// map.
func DailyReps(minutes map[string]int) map[string]int {
	return scale(minutes, repsPerMinute)
}

func scale(m map[string]int, factor int) map[string]int {
	out := make(map[string]int, len(m))
	for day, v := range m {
		out[day] = v * factor
	}
	return out
}

// Sorted flattens a daily map into a series ordered by ascending day. A
// single day with data yields a one-point series; padding a leading zero for
// plotting is the chart consumer's job, never done here.
func Sorted(m map[string]int) []DayPoint {
	out := make([]DayPoint, 0, len(m))
	for day, v := range m {
		out = append(out, DayPoint{Day: day, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// SessionLog is one workout-history line with per-session estimates.
type SessionLog struct {
	RoutineName string
	StartTime   int64
	Minutes     int
	Volume      int
	Reps        int
}

// SessionLogs expands raw sessions into history lines, preserving the input
// order (storage returns most recent first).
func SessionLogs(sessions []models.CompletedSession) []SessionLog {
	out := make([]SessionLog, 0, len(sessions))
	for _, s := range sessions {
		mins := s.DurationMinutes()
		out = append(out, SessionLog{
			RoutineName: s.RoutineName,
			StartTime:   s.StartTime,
			Minutes:     mins,
			Volume:      mins * volumePerMinute,
			Reps:        mins * repsPerMinute,
		})
	}
	return out
}
