// ABOUTME: Status command showing the current trip selection
// ABOUTME: Includes readiness and login state

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/seyeon-q/soomgil/internal/auth"
	"github.com/seyeon-q/soomgil/internal/selection"
	"github.com/seyeon-q/soomgil/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show the current trip selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := selection.MustFromContext(cmd.Context())
		fmt.Println(ui.FormatSelection(sel))

		if auth.IsLoggedIn(durable) {
			fmt.Printf("login:    %s\n", color.GreenString("yes"))
		} else {
			fmt.Printf("login:    %s\n", color.New(color.Faint).Sprint("no"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
