// ABOUTME: Messages command fetching personalized walk greetings
// ABOUTME: May move the start location to the latest visited spot

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/seyeon-q/soomgil/internal/api"
	"github.com/seyeon-q/soomgil/internal/geocode"
	"github.com/seyeon-q/soomgil/internal/history"
	"github.com/seyeon-q/soomgil/internal/selection"
	"github.com/spf13/cobra"
)

var messagesCmd = &cobra.Command{
	Use:     "messages",
	Aliases: []string{"msg"},
	Short:   "Show personalized walk messages",
	Long: `Send your walk history to the personalization endpoint and show the
messages it returns. When the service knows your latest visited spot, the
start location is moved there.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger := history.New(session, durable)
		records := ledger.All()

		// Without history there is nothing to personalize.
		if len(records) == 0 {
			fmt.Println(api.DefaultMessage)
			return nil
		}

		client := api.NewClient(cfg.APIBaseURL, nil)
		res, err := client.GetPersonalizedMessages(cmd.Context(), records)
		if err != nil || !res.Success || len(res.Messages) == 0 {
			fmt.Println(api.DefaultMessage)
			return nil
		}

		for _, m := range res.Messages {
			fmt.Println(m)
		}

		if res.LatestCoordinates != nil {
			sel := selection.MustFromContext(cmd.Context())
			sel.SetStartLocation(res.LatestCoordinates)

			gc := geocode.NewClient(cfg.NominatimURL, cfg.Boundary, nil)
			addr, err := gc.Reverse(cmd.Context(), res.LatestCoordinates.Lat, res.LatestCoordinates.Lng)
			if err == nil {
				sel.SetAddress(addr)
			}
			fmt.Printf("\n%s\n", color.New(color.Faint).Sprintf(
				"start location moved to your latest visited spot (%.4f, %.4f)",
				res.LatestCoordinates.Lat, res.LatestCoordinates.Lng))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(messagesCmd)
}
