// ABOUTME: CLI commands for account creation and login state.
// ABOUTME: signup, login, logout, whoami; login state lives in the config file.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nirvana/gymtrack/internal/storage"
)

var (
	signupEmail string
	signupPhone string
)

var signupCmd = &cobra.Command{
	Use:   "signup <username>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		err = repo.AddUser(username, signupEmail, signupPhone, password)
		if errors.Is(err, storage.ErrUsernameTaken) {
			return fmt.Errorf("username %q is already taken", username)
		}
		if err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		color.Green("✓ Account created for %s", username)
		fmt.Println("  Log in with: gymtrack login " + username)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in as a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		if !repo.ValidateCredentials(username, password) {
			return errors.New("invalid username or password")
		}

		cfg.CurrentUser = username
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save login state: %w", err)
		}

		color.Green("✓ Logged in as %s", username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.CurrentUser == "" {
			fmt.Println("Not logged in.")
			return nil
		}
		cfg.CurrentUser = ""
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save login state: %w", err)
		}
		color.Yellow("✗ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := currentUser()
		if err != nil {
			return err
		}

		email, phone, err := repo.UserDetails(username)
		if err != nil {
			return fmt.Errorf("load user details: %w", err)
		}

		fmt.Println(username)
		faint := color.New(color.Faint)
		if email != nil {
			fmt.Printf("  email: %s\n", faint.Sprint(*email))
		}
		if phone != nil {
			fmt.Printf("  phone: %s\n", faint.Sprint(*phone))
		}
		return nil
	},
}

// promptPassword reads a password without echo when stdin is a terminal.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	var password string
	if _, err := fmt.Fscanln(os.Stdin, &password); err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return password, nil
}

func init() {
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "email address")
	signupCmd.Flags().StringVar(&signupPhone, "phone", "", "phone number")

	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
