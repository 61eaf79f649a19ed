// ABOUTME: CLI commands for the local user profile.
// ABOUTME: Supports show, register, login, and logout subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pwojcik/gymtrack/internal/profile"
)

var (
	profileName  string
	profileEmail string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the local user profile",
	Long: `Manage the local user profile.

The profile is a small local identity record (name, email, device ID) kept
next to the config. It is independent of the Charm account used for sync.

EXAMPLES:

  gymtrack profile register --name "Piotr" --email piotr@example.com
  gymtrack profile show
  gymtrack profile logout`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.Load()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if p == nil {
			fmt.Println("No profile. Run 'gymtrack profile register' to create one.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("Name: %s\n", p.Name)
		if p.Email != "" {
			fmt.Printf("Email: %s\n", p.Email)
		}
		fmt.Printf("Profile ID: %s\n", faint.Sprint(p.ID))
		fmt.Printf("Device ID: %s\n", faint.Sprint(p.DeviceID))
		fmt.Printf("Created: %s\n", p.CreatedAt.Format("2006-01-02"))

		return nil
	},
}

var profileRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a profile on this device",
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileName == "" {
			return fmt.Errorf("--name is required")
		}

		p, err := profile.Register(profileName, profileEmail)
		if err != nil {
			return fmt.Errorf("failed to register: %w", err)
		}

		color.Green("✓ Profile created for %s", p.Name)
		return nil
	},
}

var profileLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Replace the profile on this device",
	Long: `Replace the profile on this device.

Unlike register, login overwrites an existing profile. A fresh device ID
is generated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileName == "" {
			return fmt.Errorf("--name is required")
		}

		p, err := profile.Login(profileName, profileEmail)
		if err != nil {
			return fmt.Errorf("failed to login: %w", err)
		}

		color.Green("✓ Logged in as %s", p.Name)
		return nil
	},
}

var profileLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the profile from this device",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := profile.Logout(); err != nil {
			return fmt.Errorf("failed to logout: %w", err)
		}

		color.Yellow("✗ Profile removed")
		fmt.Println("Your training data is untouched.")

		return nil
	},
}

func init() {
	profileRegisterCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileRegisterCmd.Flags().StringVar(&profileEmail, "email", "", "email address")
	profileLoginCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileLoginCmd.Flags().StringVar(&profileEmail, "email", "", "email address")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileRegisterCmd)
	profileCmd.AddCommand(profileLoginCmd)
	profileCmd.AddCommand(profileLogoutCmd)
	rootCmd.AddCommand(profileCmd)
}
