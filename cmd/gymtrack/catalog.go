// ABOUTME: CLI command for browsing the seeded exercise catalog.
// ABOUTME: Read-only; the catalog never changes after first run.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var catalogCategory string

var catalogCmd = &cobra.Command{
	Use:     "catalog",
	Aliases: []string{"exercises"},
	Short:   "List the exercise catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := repo.CatalogExercises()
		if err != nil {
			return fmt.Errorf("failed to list catalog: %w", err)
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			if catalogCategory != "" && e.Category != catalogCategory {
				continue
			}
			fmt.Printf("%s %s\n", padRight(e.Name, 34), faint.Sprint(e.Category))
		}
		return nil
	},
}

// padRight pads s with spaces to at least width characters.
func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", "filter by category")
	rootCmd.AddCommand(catalogCmd)
}
