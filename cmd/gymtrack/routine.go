// ABOUTME: CLI commands for the routine builder and saved routines.
// ABOUTME: add/draft/clear stage the draft; save/ls/show/delete manage routines.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var routineCmd = &cobra.Command{
	Use:     "routine",
	Aliases: []string{"r"},
	Short:   "Build and manage workout routines",
	Long: `Build a routine by staging exercises into a per-user draft, then
save the draft under a name.

WORKFLOW:

  1. Stage exercises:   gymtrack routine add "Bench Press"
  2. Review the draft:  gymtrack routine draft
  3. Save it:           gymtrack routine save "Push Day"
  4. Discard the draft: gymtrack routine clear

The draft is kept after saving so a variant can be saved under another
name; clear it explicitly when done.`,
}

var routineAddCmd = &cobra.Command{
	Use:   "add <exercise>",
	Short: "Stage a catalog exercise into the draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}
		name := args[0]

		// Staging takes the category from the catalog entry.
		exercises, err := repo.CatalogExercises()
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		category := ""
		for _, e := range exercises {
			if e.Name == name {
				category = e.Category
				break
			}
		}
		if category == "" {
			return fmt.Errorf("exercise %q is not in the catalog (see 'gymtrack catalog')", name)
		}

		if err := repo.StageExercise(username, name, category); err != nil {
			return fmt.Errorf("failed to stage exercise: %w", err)
		}
		color.Green("✓ Staged %s (%s)", name, category)
		return nil
	},
}

var routineDraftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Show the staged draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}

		items, err := repo.DraftExercises(username)
		if err != nil {
			return fmt.Errorf("failed to list draft: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("Draft is empty.")
			return nil
		}

		faint := color.New(color.Faint)
		for i, item := range items {
			fmt.Printf("%d. %s %s\n", i+1, padRight(item.Name, 34), faint.Sprint(item.Category))
		}
		return nil
	},
}

var routineClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the staged draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}
		if err := repo.ClearDraft(username); err != nil {
			return fmt.Errorf("failed to clear draft: %w", err)
		}
		color.Yellow("✗ Draft cleared")
		return nil
	},
}

var routineSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the draft as a named routine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}

		// Guard against saving an empty routine by accident; storage
		// itself would accept it.
		items, err := repo.DraftExercises(username)
		if err != nil {
			return fmt.Errorf("failed to read draft: %w", err)
		}
		if len(items) == 0 {
			return fmt.Errorf("draft is empty; stage exercises with 'gymtrack routine add' first")
		}

		id, err := repo.SaveRoutine(username, args[0])
		if err != nil {
			return fmt.Errorf("failed to save routine: %w", err)
		}

		color.Green("✓ Saved routine %q", args[0])
		fmt.Printf("  ID: %d (%d exercises)\n", id, len(items))
		fmt.Println("  The draft is kept; run 'gymtrack routine clear' to discard it.")
		return nil
	},
}

var routineListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List saved routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}

		routines, err := repo.Routines(username)
		if err != nil {
			return fmt.Errorf("failed to list routines: %w", err)
		}
		if len(routines) == 0 {
			fmt.Println("No routines saved.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range routines {
			fmt.Printf("%s %s\n", faint.Sprintf("%4d", r.ID), r.Name)
		}
		return nil
	},
}

var routineShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a routine's exercises",
	Args:  cobra.ExactArgs(1),
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

		fmt.Printf("Routine: %s\n", r.Name)
		faint := color.New(color.Faint)
		for i, item := range items {
			fmt.Printf("  %d. %s %s\n", i+1, padRight(item.Name, 34), faint.Sprint(item.Category))
		}
		return nil
	},
}

var routineDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved routine",
	Args:    cobra.ExactArgs(1),
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
		if err := repo.DeleteRoutine(id); err != nil {
			return fmt.Errorf("failed to delete routine: %w", err)
		}
		color.Yellow("✗ Deleted routine %d", id)
		return nil
	},
}

func init() {
	routineCmd.AddCommand(routineAddCmd)
	routineCmd.AddCommand(routineDraftCmd)
	routineCmd.AddCommand(routineClearCmd)
	routineCmd.AddCommand(routineSaveCmd)
	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineShowCmd)
	routineCmd.AddCommand(routineDeleteCmd)
	rootCmd.AddCommand(routineCmd)
}
