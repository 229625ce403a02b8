// ABOUTME: Personal command requesting a duration-personalized route
// ABOUTME: Derives the preference bucket from recent saved walks

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/seyeon-q/soomgil/internal/api"
	"github.com/seyeon-q/soomgil/internal/geojson"
	"github.com/seyeon-q/soomgil/internal/history"
	"github.com/seyeon-q/soomgil/internal/selection"
	"github.com/seyeon-q/soomgil/internal/ui"
	"github.com/spf13/cobra"
)

var personalCmd = &cobra.Command{
	Use:   "personal",
	Short: "Request a route tailored to your walking habits",
	Long: `Request a route tailored to how long you tend to walk: the preference
bucket (short, medium, long) comes from your five most recent saved walks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := selection.MustFromContext(cmd.Context())
		start := sel.StartLocation()
		if start == nil {
			return fmt.Errorf("no start location: run 'soomgil set location' first")
		}

		ledger := history.New(session, durable)
		pref := history.DurationPreference(ledger.All())

		client := api.NewClient(cfg.APIBaseURL, nil)
		res, err := client.GenerateDurationRoute(cmd.Context(), *start, pref)
		if err != nil {
			return fmt.Errorf("personalized route failed: %w", err)
		}
		if !res.Success {
			if res.Error != "" {
				return fmt.Errorf("personalized route failed: %s", res.Error)
			}
			return fmt.Errorf("personalized route failed")
		}

		color.Green("✓ Personalized route (%s walks)", pref)
		if res.RecommendedPlace != nil && res.RecommendedPlace.Name != "" {
			fmt.Printf("  destination: %s\n", color.CyanString(res.RecommendedPlace.Name))
		}
		if coords := geojson.RouteCoordinates(res.Geojson); coords != nil {
			fmt.Println()
			fmt.Println(ui.FormatRoute(pointsToPairs(coords)))
		}
		if res.Description != "" {
			fmt.Printf("\n%s\n", res.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(personalCmd)
}
