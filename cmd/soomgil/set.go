// ABOUTME: Commands that edit the trip selection
// ABOUTME: Location, address search and duration setters with geocoding

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/seyeon-q/soomgil/internal/geocode"
	"github.com/seyeon-q/soomgil/internal/models"
	"github.com/seyeon-q/soomgil/internal/selection"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit the trip selection",
}

var setLocationCmd = &cobra.Command{
	Use:   "location <latitude> <longitude>",
	Short: "Set the start location by coordinates",
	Long: `Set the walk's start location. The coordinates are reverse-geocoded and
must fall inside Dongdaemun-gu.

Examples:
  soomgil set location 37.5744 127.0395`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid latitude: %w", err)
		}
		lng, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid longitude: %w", err)
		}
		if err := models.ValidateCoordinates(lat, lng); err != nil {
			return err
		}

		sel := selection.MustFromContext(cmd.Context())
		gc := geocode.NewClient(cfg.NominatimURL, cfg.Boundary, nil)

		addr, err := gc.Reverse(cmd.Context(), lat, lng)
		if err != nil {
			if errors.Is(err, geocode.ErrOutsideBoundary) {
				// Reject and drop any pending address, like the map click flow.
				sel.SetAddress("")
				return fmt.Errorf("only locations inside %s can be selected", geocode.DefaultBoundary)
			}
			// Geocoding trouble doesn't block the selection itself.
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: reverse geocoding failed: %v\n", err)
			addr = ""
		}

		sel.SetStartLocation(&models.LatLng{Lat: lat, Lng: lng})
		sel.SetAddress(addr)

		color.Green("✓ Start location set")
		if addr != "" {
			fmt.Printf("  %s (%.4f, %.4f)\n", addr, lat, lng)
		} else {
			fmt.Printf("  (%.4f, %.4f)\n", lat, lng)
		}
		return nil
	},
}

var setAddressCmd = &cobra.Command{
	Use:   "address <query>",
	Short: "Set the start location by address search",
	Long: `Search an address inside Dongdaemun-gu and use the match as the start
location.

Examples:
  soomgil set address "장안벚꽃로 121"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		for i, a := range args {
			if i > 0 {
				query += " "
			}
			query += a
		}

		sel := selection.MustFromContext(cmd.Context())
		gc := geocode.NewClient(cfg.NominatimURL, cfg.Boundary, nil)

		loc, err := gc.Search(cmd.Context(), query)
		if err != nil {
			if errors.Is(err, geocode.ErrNoResult) {
				sel.SetAddress("")
				return fmt.Errorf("address not found: %q", query)
			}
			return fmt.Errorf("address search failed: %w", err)
		}

		addr, err := gc.Reverse(cmd.Context(), loc.Lat, loc.Lng)
		if err != nil {
			if errors.Is(err, geocode.ErrOutsideBoundary) {
				sel.SetAddress("")
				return fmt.Errorf("only locations inside %s can be selected", geocode.DefaultBoundary)
			}
			addr = ""
		}

		sel.SetStartLocation(loc)
		sel.SetAddress(addr)

		color.Green("✓ Start location set")
		fmt.Printf("  %s (%.4f, %.4f)\n", addr, loc.Lat, loc.Lng)
		return nil
	},
}

var setDurationCmd = &cobra.Command{
	Use:   "duration <minutes>",
	Short: "Set the walk duration in minutes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		min, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		if min < 0 {
			return fmt.Errorf("duration cannot be negative")
		}

		sel := selection.MustFromContext(cmd.Context())
		sel.SetDuration(&min)

		color.Green("✓ Duration set to %d minutes", min)
		if !sel.CanProceed() {
			fmt.Printf("  %s\n", color.New(color.Faint).Sprintf(
				"a walk needs a start location and at least %d minutes", selection.MinDuration))
		}
		return nil
	},
}

func init() {
	setCmd.AddCommand(setLocationCmd)
	setCmd.AddCommand(setAddressCmd)
	setCmd.AddCommand(setDurationCmd)
	rootCmd.AddCommand(setCmd)
}
