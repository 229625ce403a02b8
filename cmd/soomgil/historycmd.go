// ABOUTME: History command listing saved walks newest first
// ABOUTME: Shows total walk time and earned stamps

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/seyeon-q/soomgil/internal/history"
	"github.com/seyeon-q/soomgil/internal/ui"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist"},
	Short:   "List your saved walks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger := history.New(session, durable)
		records := ledger.All()

		if len(records) == 0 {
			fmt.Println("No saved walks yet. Use 'soomgil walk' and 'soomgil save' to add one.")
			return nil
		}

		for _, r := range records {
			fmt.Println(ui.FormatRecord(r))
		}

		total := history.TotalMinutes(records)
		fmt.Printf("\ntotal walk time: %s", ui.FormatMinutes(total))
		if stamps := ui.Stamps(total); stamps > 0 {
			fmt.Printf("  %s", color.YellowString("(%d stamps)", stamps))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
