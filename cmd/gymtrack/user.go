// ABOUTME: CLI commands for account settings: units, password, profile image,
// ABOUTME: and full account deletion with its data cascade.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nirvana/gymtrack/internal/models"
)

var (
	unitsWeight   string
	unitsDistance string
	unitsMeasure  string
	deleteForce   bool
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage the current account",
}

var userUnitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Set unit preferences",
	Long: `Set the account's unit preferences. All three are saved together,
so all three flags must be given.`,
	Example: `  gymtrack user units --weight kg --distance km --measure cm`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}

		if unitsWeight == "" || unitsDistance == "" || unitsMeasure == "" {
			return fmt.Errorf("all of --weight, --distance, and --measure are required")
		}
		if err := validateUnit(unitsWeight, models.WeightKg, models.WeightLbs); err != nil {
			return err
		}
		if err := validateUnit(unitsDistance, models.DistanceKm, models.DistanceMiles); err != nil {
			return err
		}
		if err := validateUnit(unitsMeasure, models.MeasureCm, models.MeasureInches); err != nil {
			return err
		}

		if err := repo.SetUserUnits(username, unitsWeight, unitsDistance, unitsMeasure); err != nil {
			return fmt.Errorf("failed to save unit preferences: %w", err)
		}
		color.Green("✓ Unit preferences saved")
		return nil
	},
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the account password",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}

		current, err := promptPassword("Current password: ")
		if err != nil {
			return err
		}
		if !repo.ValidateCredentials(username, current) {
			return fmt.Errorf("current password is incorrect")
		}

		next, err := promptPassword("New password: ")
		if err != nil {
			return err
		}
		if next == "" {
			return fmt.Errorf("new password must not be empty")
		}

		if err := repo.UpdateUserPassword(username, next); err != nil {
			return fmt.Errorf("failed to change password: %w", err)
		}
		color.Green("✓ Password changed")
		return nil
	},
}

var userImageCmd = &cobra.Command{
	Use:   "image [path]",
	Short: "Set or show the profile image",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			path, err := repo.ProfileImage(username)
			if err != nil {
				return fmt.Errorf("failed to load profile image: %w", err)
			}
			if path == nil {
				fmt.Println("No profile image set.")
				return nil
			}
			fmt.Println(*path)
			return nil
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read image %s: %w", args[0], err)
		}
		stored, err := repo.SavePhoto(data)
		if err != nil {
			return fmt.Errorf("failed to store image: %w", err)
		}
		if err := repo.UpdateProfileImage(username, stored); err != nil {
			return fmt.Errorf("failed to set profile image: %w", err)
		}
		color.Green("✓ Profile image updated")
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Permanently delete the account and all its data",
	Long: `Permanently delete the logged-in account: its routines, draft,
completed sessions, measurements, and progress photo files. This cannot
be undone. The username is typed back as confirmation unless --force is
given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}

		if !deleteForce {
			fmt.Printf("Type the username %q to confirm deletion: ", username)
			var confirm string
			if _, err := fmt.Fscanln(cmd.InOrStdin(), &confirm); err != nil || confirm != username {
				return fmt.Errorf("confirmation did not match; nothing deleted")
			}
		}

		if err := repo.DeleteUserCompletely(username); err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}

		cfg.CurrentUser = ""
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save login state: %w", err)
		}

		color.Yellow("✗ Account %s and all its data deleted", username)
		return nil
	},
}

func validateUnit(value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid unit %q (allowed: %s)", value, strings.Join(allowed, ", "))
}

func init() {
	userUnitsCmd.Flags().StringVar(&unitsWeight, "weight", "", "weight unit (kg or lbs)")
	userUnitsCmd.Flags().StringVar(&unitsDistance, "distance", "", "distance unit (km or miles)")
	userUnitsCmd.Flags().StringVar(&unitsMeasure, "measure", "", "measurement unit (cm or in)")
	userDeleteCmd.Flags().BoolVar(&deleteForce, "force", false, "skip the confirmation prompt")

	userCmd.AddCommand(userUnitsCmd)
	userCmd.AddCommand(userPasswdCmd)
	userCmd.AddCommand(userImageCmd)
	userCmd.AddCommand(userDeleteCmd)
	rootCmd.AddCommand(userCmd)
}
