// ABOUTME: CLI command listing completed workout sessions.
// ABOUTME: Most recent first, with per-session minute/volume/rep estimates.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nirvana/gymtrack/internal/stats"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed workout sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}

		sessions, err := repo.CompletedSessions(username)
		if err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No completed sessions yet.")
			return nil
		}

		logs := stats.SessionLogs(sessions)
		if historyLimit > 0 && len(logs) > historyLimit {
			logs = logs[:historyLimit]
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			when := time.UnixMilli(l.StartTime).Format("2006-01-02 15:04")
			fmt.Printf("%s  %s %s\n",
				faint.Sprint(when),
				padRight(l.RoutineName, 24),
				faint.Sprintf("%d min  ~%d vol  ~%d reps", l.Minutes, l.Volume, l.Reps))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show at most N sessions")
	rootCmd.AddCommand(historyCmd)
}
