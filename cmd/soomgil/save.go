// ABOUTME: Save command appending the last walk to the history ledger
// ABOUTME: Goes through the save-gate so one walk saves at most once a day

package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/seyeon-q/soomgil/internal/history"
	"github.com/seyeon-q/soomgil/internal/savegate"
	"github.com/seyeon-q/soomgil/internal/store"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the last recommended walk to your history",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := session.Get(lastWalkKey)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no walk to save: run 'soomgil walk' first")
			}
			return fmt.Errorf("failed to read last walk: %w", err)
		}

		var ws walkState
		if err := json.Unmarshal(raw, &ws); err != nil {
			return fmt.Errorf("no walk to save: run 'soomgil walk' first")
		}

		candidate := history.Candidate{
			StartAddress: ws.Address,
			DurationMin:  ws.Duration,
		}
		if ws.Result != nil && len(ws.Result.Description) > 0 {
			candidate.Title = ws.Result.Description[0].PathName
			candidate.Summary = savegate.Summarize(ws.Result.Description[0].Description)
		}

		gate := savegate.New(history.New(session, durable))
		status, err := gate.Save(candidate)
		if err != nil {
			return err
		}

		switch status {
		case savegate.AlreadySaved:
			color.Yellow("This walk is already in today's history.")
		case savegate.InFlight:
			color.Yellow("A save for this walk is already running.")
		default:
			color.Green("✓ Walk saved to history")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
