// ABOUTME: CLI command printing daily workout series.
// ABOUTME: Minutes by default; --volume and --reps switch the derived series.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nirvana/gymtrack/internal/stats"
)

var (
	statsVolume bool
	statsReps   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show daily workout totals",
	Long: `Show per-day totals across all completed sessions, oldest day first.

By default the series is active minutes per day. --volume and --reps
print the derived estimates instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}
		if statsVolume && statsReps {
			return fmt.Errorf("--volume and --reps are mutually exclusive")
		}

		sessions, err := repo.CompletedSessions(username)
		if err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No completed sessions yet.")
			return nil
		}

		minutes := stats.DailyMinutes(sessions)
		series := minutes
		unit := "min"
		switch {
		case statsVolume:
			series = stats.DailyVolume(minutes)
			unit = "vol"
		case statsReps:
			series = stats.DailyReps(minutes)
			unit = "reps"
		}

		faint := color.New(color.Faint)
		for _, p := range stats.Sorted(series) {
			fmt.Printf("%s  %6d %s\n", faint.Sprint(p.Day), p.Value, unit)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsVolume, "volume", false, "show estimated volume per day")
	statsCmd.Flags().BoolVar(&statsReps, "reps", false, "show estimated reps per day")
	rootCmd.AddCommand(statsCmd)
}
