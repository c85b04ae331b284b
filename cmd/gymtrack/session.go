// ABOUTME: Interactive workout session command: runs the timer loop and a
// ABOUTME: line-based prompt for pausing, recording sets, and completing.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nirvana/gymtrack/internal/workout"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run a live workout session",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start <routine-id>",
	Short: "Start a timed session for a saved routine",
	Long: `Start a workout session for a saved routine. The timer ticks once per
second while running. At the prompt:

  set <exercise#> <set#> <weight> <reps>   record a set
  add <exercise#>                          add another set row
  pause / resume                           control the timer
  status                                   show elapsed time and sets
  done                                     complete and save the session
  quit                                     abandon without saving

A session saves only when it ran for at least one minute and every
exercise has at least one set with both weight and reps entered.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid routine id: %s", args[0])
		}
		r, err := repo.RoutineByID(id)
		if err != nil || r.Username != username {
			return fmt.Errorf("routine not found: %s", args[0])
		}
		items, err := repo.ExercisesForRoutine(r.ID)
		if err != nil {
			return fmt.Errorf("failed to load routine exercises: %w", err)
		}
		if len(items) == 0 {
			return fmt.Errorf("routine %q has no exercises", r.Name)
		}

		logs := make([]*workout.ExerciseLog, len(items))
		for i, item := range items {
			logs[i] = &workout.ExerciseLog{Name: item.Name, Category: item.Category}
		}

		sess := workout.NewSession(repo, username, r.Name, logs)

		// Minute markers keep the prompt readable; every-second output
		// would bury the user's own input.
		faint := color.New(color.Faint)
		sess.OnTick(func(elapsed int) {
			if elapsed%60 == 0 {
				fmt.Printf("\n%s\n", faint.Sprintf("-- %s elapsed --", workout.FormatElapsed(elapsed)))
			}
		})

		if err := sess.Start(); err != nil {
			return err
		}
		defer sess.Abandon()

		color.Green("✓ Started %q — timer is running", r.Name)
		printSessionStatus(sess)

		return runSessionPrompt(cmd, sess)
	},
}

// runSessionPrompt reads commands line by line until the session ends.
func runSessionPrompt(cmd *cobra.Command, sess *workout.Session) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Printf("[%s %s] > ", workout.FormatElapsed(sess.Elapsed()), sess.State())
		if !scanner.Scan() {
			color.Yellow("✗ Session abandoned (input closed); nothing was saved")
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "pause":
			if err := sess.Pause(); err != nil {
				color.Red("%v", err)
				continue
			}
			fmt.Println("Paused. The timer is frozen.")

		case "resume":
			if err := sess.Resume(); err != nil {
				color.Red("%v", err)
				continue
			}
			fmt.Println("Resumed.")

		case "add":
			if len(fields) != 2 {
				fmt.Println("usage: add <exercise#>")
				continue
			}
			idx, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("usage: add <exercise#>")
				continue
			}
			if err := sess.AddSet(idx - 1); err != nil {
				color.Red("%v", err)
			}

		case "set":
			if len(fields) != 5 {
				fmt.Println("usage: set <exercise#> <set#> <weight> <reps>")
				continue
			}
			exIdx, err1 := strconv.Atoi(fields[1])
			setIdx, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				fmt.Println("usage: set <exercise#> <set#> <weight> <reps>")
				continue
			}
			if err := sess.RecordSet(exIdx-1, setIdx-1, fields[3], fields[4]); err != nil {
				color.Red("%v", err)
			}

		case "status":
			printSessionStatus(sess)

		case "done", "complete":
			err := sess.Complete()
			switch {
			case err == nil:
				color.Green("✓ Session saved (%s active)", workout.FormatElapsed(sess.Elapsed()))
				return nil
			case errors.Is(err, workout.ErrSessionTooShort):
				color.Red("Session is under a minute; keep going or 'quit' to abandon.")
			default:
				var missing *workout.MissingSetError
				if errors.As(err, &missing) {
					color.Red("No set recorded for %s; use 'set' or 'quit' to abandon.", missing.Exercise)
				} else {
					color.Red("%v", err)
				}
			}

		case "quit", "abandon":
			sess.Abandon()
			color.Yellow("✗ Session abandoned; nothing was saved")
			return nil

		case "help":
			fmt.Println("commands: set, add, pause, resume, status, done, quit")

		default:
			fmt.Printf("unknown command %q (try 'help')\n", fields[0])
		}
	}
}

func printSessionStatus(sess *workout.Session) {
	fmt.Printf("Elapsed: %s (%s)\n", workout.FormatElapsed(sess.Elapsed()), sess.State())
	faint := color.New(color.Faint)
	for i, ex := range sess.Exercises() {
		fmt.Printf("  %d. %s %s\n", i+1, padRight(ex.Name, 34), faint.Sprint(ex.Category))
		for j, set := range ex.Sets {
			fmt.Printf("       set %d: %s x %s\n", j+1, set.Weight, set.Reps)
		}
	}
}

func init() {
	sessionCmd.AddCommand(sessionStartCmd)
	rootCmd.AddCommand(sessionCmd)
}
