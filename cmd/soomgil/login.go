// ABOUTME: Login and logout commands for the demo account gate
// ABOUTME: Persists a boolean flag in the durable scope

package main

import (
	"github.com/fatih/color"
	"github.com/seyeon-q/soomgil/internal/auth"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in with the demo account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := auth.Login(durable, args[0], args[1]); err != nil {
			return err
		}
		color.Green("✓ Logged in")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := auth.Logout(durable); err != nil {
			return err
		}
		color.Green("✓ Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
