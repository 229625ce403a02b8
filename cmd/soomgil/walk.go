// ABOUTME: Walk command requesting a recommended route
// ABOUTME: Stashes the result in session scope for a later save

package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/seyeon-q/soomgil/internal/api"
	"github.com/seyeon-q/soomgil/internal/geojson"
	"github.com/seyeon-q/soomgil/internal/models"
	"github.com/seyeon-q/soomgil/internal/selection"
	"github.com/seyeon-q/soomgil/internal/ui"
	"github.com/spf13/cobra"
)

// lastWalkKey is the session-scope key carrying the latest walk result
// forward to the save command.
const lastWalkKey = "soomgil.lastwalk"

// walkState is the state handed from walk to save, the CLI analog of
// navigation-carried page state.
type walkState struct {
	Result        *api.Recommendation `json:"result"`
	StartLocation *models.LatLng      `json:"startLocation"`
	Duration      *int                `json:"duration"`
	Mood          string              `json:"mood"`
	Address       string              `json:"address"`
}

var walkCmd = &cobra.Command{
	Use:     "walk",
	Aliases: []string{"w"},
	Short:   "Request a recommended walking route",
	Long: `Request a walking route for the current selection. When the API is
unreachable a locally synthesized placeholder route is shown instead.

Examples:
  soomgil walk
  soomgil walk --mood "calm and quiet"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := selection.MustFromContext(cmd.Context())
		if !sel.CanProceed() {
			return fmt.Errorf("selection incomplete: set a start location and a duration of at least %d minutes first", selection.MinDuration)
		}

		mood, _ := cmd.Flags().GetString("mood")
		start := sel.StartLocation()
		duration := sel.Duration()

		client := api.NewClient(cfg.APIBaseURL, nil)
		rec, err := client.RecommendRoute(cmd.Context(), start.Lat, start.Lng, *duration)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: route generation failed, using a placeholder route: %v\n", err)
			rec = api.FallbackRecommendation(start, duration)
		}

		coords := geojson.RouteCoordinates(rec.Geojson)
		if coords == nil {
			coords = geojson.MockRoute(start, duration)
		}

		color.Green("✓ Recommended walking route")
		addr := sel.Address()
		if addr == "" {
			addr = "미지정"
		}
		fmt.Printf("  from %s, %s\n\n", addr, ui.FormatMinutes(*duration))
		fmt.Println(ui.FormatRoute(pointsToPairs(coords)))
		if len(rec.Description) > 0 {
			fmt.Println()
			fmt.Println(ui.FormatDescriptions(rec.Description))
		}

		stashLastWalk(walkState{
			Result:        rec,
			StartLocation: start,
			Duration:      duration,
			Mood:          mood,
			Address:       sel.Address(),
		})
		fmt.Printf("\n%s\n", color.New(color.Faint).Sprint("run 'soomgil save' to keep this walk in your history"))
		return nil
	},
}

func pointsToPairs(points []geojson.PointCoordinates) [][2]float64 {
	pairs := make([][2]float64, len(points))
	for i, p := range points {
		pairs[i] = p
	}
	return pairs
}

// stashLastWalk writes the carried state to the session scope. Failures are
// reported but don't fail the walk itself.
func stashLastWalk(ws walkState) {
	data, err := json.Marshal(ws)
	if err == nil {
		err = session.Set(lastWalkKey, data)
	}
	if err != nil {
		fmt.Printf("%s\n", color.YellowString("warning: could not remember this walk for saving: %v", err))
	}
}

func init() {
	walkCmd.Flags().StringP("mood", "m", "", "mood for the walk (drives music selection)")
	rootCmd.AddCommand(walkCmd)
}
