// ABOUTME: CLI commands for body measurements and progress photos.
// ABOUTME: add/ls/delete plus photo attachment into the managed photos dir.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nirvana/gymtrack/internal/models"
)

var (
	measureWeight string
	measureChest  string
	measureWaist  string
	measureArms   string
	measurePhotos []string
)

var measureCmd = &cobra.Command{
	Use:     "measure",
	Aliases: []string{"m"},
	Short:   "Track body measurements",
}

var measureAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a measurement, optionally with photos",
	Long: `Record a body measurement snapshot. Any combination of the value
flags may be given; omitted ones are stored empty. Photos passed with
--photo are copied into the data directory and attached to the
measurement.`,
	Example: `  gymtrack measure add --weight 82.5 --waist 84
  gymtrack measure add --weight 82.5 --photo front.png --photo side.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}
		if measureWeight == "" && measureChest == "" && measureWaist == "" && measureArms == "" {
			return fmt.Errorf("nothing to record; pass at least one of --weight, --chest, --waist, --arms")
		}

		m := models.NewMeasurement(username, time.Now(), measureWeight, measureChest, measureWaist, measureArms)
		if err := repo.InsertMeasurement(m); err != nil {
			return fmt.Errorf("failed to record measurement: %w", err)
		}

		for _, src := range measurePhotos {
			data, err := os.ReadFile(src)
			if err != nil {
				return fmt.Errorf("failed to read photo %s: %w", src, err)
			}
			path, err := repo.SavePhoto(data)
			if err != nil {
				return fmt.Errorf("failed to store photo %s: %w", src, err)
			}
			if err := repo.InsertProgressPhoto(username, m.Timestamp, path); err != nil {
				return fmt.Errorf("failed to attach photo %s: %w", src, err)
			}
		}

		color.Green("✓ Recorded measurement at %s", m.Timestamp)
		if len(measurePhotos) > 0 {
			fmt.Printf("  %d photo(s) attached\n", len(measurePhotos))
		}
		return nil
	},
}

var measureListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List measurements, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}

		measurements, err := repo.Measurements(username)
		if err != nil {
			return fmt.Errorf("failed to list measurements: %w", err)
		}
		if len(measurements) == 0 {
			fmt.Println("No measurements recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range measurements {
			photos, err := repo.PhotosForMeasurement(username, m.Timestamp)
			if err != nil {
				return fmt.Errorf("failed to load photos: %w", err)
			}
			line := fmt.Sprintf("%s  weight=%s chest=%s waist=%s arms=%s",
				faint.Sprint(m.Timestamp),
				orDash(m.Weight), orDash(m.Chest), orDash(m.Waist), orDash(m.Arms))
			if len(photos) > 0 {
				line += faint.Sprintf("  [%d photo(s)]", len(photos))
			}
			fmt.Println(line)
		}
		return nil
	},
}

var measureDeleteCmd = &cobra.Command{
	Use:     "delete <timestamp>",
	Aliases: []string{"rm"},
	Short:   "Delete a measurement and its photos",
	Long: `Delete the measurement recorded at the given timestamp, exactly as
shown by 'gymtrack measure ls' (for example "2025-06-01 08:30"). Its
attached photo files and records are removed with it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}
		if err := repo.DeleteMeasurement(username, args[0]); err != nil {
			return fmt.Errorf("failed to delete measurement: %w", err)
		}
		color.Yellow("✗ Deleted measurement at %s", args[0])
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	measureAddCmd.Flags().StringVar(&measureWeight, "weight", "", "body weight")
	measureAddCmd.Flags().StringVar(&measureChest, "chest", "", "chest measurement")
	measureAddCmd.Flags().StringVar(&measureWaist, "waist", "", "waist measurement")
	measureAddCmd.Flags().StringVar(&measureArms, "arms", "", "arms measurement")
	measureAddCmd.Flags().StringArrayVar(&measurePhotos, "photo", nil, "photo file to attach (repeatable)")

	measureCmd.AddCommand(measureAddCmd)
	measureCmd.AddCommand(measureListCmd)
	measureCmd.AddCommand(measureDeleteCmd)
	rootCmd.AddCommand(measureCmd)
}
