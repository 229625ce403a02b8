// ABOUTME: Clear command emptying the walk history
// ABOUTME: Asks for confirmation, removes the ledger from both scopes

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/seyeon-q/soomgil/internal/history"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved walks",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("Delete every saved walk? This cannot be undone. [y/N] ")
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		ledger := history.New(session, durable)
		if err := ledger.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}

		color.Green("✓ All saved walks deleted")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}
