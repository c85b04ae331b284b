// ABOUTME: Root Cobra command for the gymtrack CLI.
// ABOUTME: Opens storage in PersistentPreRunE and closes it after each command.
package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nirvana/gymtrack/internal/config"
	"github.com/nirvana/gymtrack/internal/storage"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "gymtrack",
	Short: "Personal gym workout tracker",
	Long: `Gymtrack is a CLI for building workout routines, running timed
workout sessions, and tracking body measurements.

QUICK START:

  $ gymtrack signup alice --email a@example.com   # Create an account
  $ gymtrack login alice                          # Log in
  $ gymtrack catalog                              # Browse exercises
  $ gymtrack routine add "Bench Press"            # Stage exercises
  $ gymtrack routine save "Push Day"              # Save the routine
  $ gymtrack session start 1                      # Run a live session
  $ gymtrack stats                                # Per-day training stats

MEASUREMENTS:

  $ gymtrack measure add --weight 82.5 --chest 104
  $ gymtrack measure add --weight 82.5 --photo front.png
  $ gymtrack measure ls

MCP INTEGRATION:

  Run 'gymtrack mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants.

DATA STORAGE:

  Everything lives in a local SQLite database under
  ~/.local/share/gymtrack (override with GYMTRACK_DATA_DIR).`,
	Version:      "0.1.0",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			// Migration failures land here; nothing runs against a
			// partially upgraded database.
			log.Error("failed to open storage", "err", err)
			return err
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// currentUser resolves the logged-in username or fails with a hint.
func currentUser() (string, error) {
	if cfg.CurrentUser == "" {
		return "", errors.New("not logged in; run 'gymtrack login <username>' first")
	}
	return cfg.CurrentUser, nil
}
