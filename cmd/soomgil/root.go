// ABOUTME: Root Cobra command, global flags and store lifecycle
// ABOUTME: Opens both storage scopes and attaches the selection state

package main

import (
	"fmt"

	"github.com/seyeon-q/soomgil/internal/config"
	"github.com/seyeon-q/soomgil/internal/selection"
	"github.com/seyeon-q/soomgil/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	durable store.Store
	session store.Store
)

var rootCmd = &cobra.Command{
	Use:   "soomgil",
	Short: "Walking-route companion for Dongdaemun-gu",
	Long: `Soomgil recommends walking routes around Dongdaemun-gu, Seoul:
pick a start location and a duration, request a route, and keep a
history of the walks you saved.

Examples:
  soomgil set location 37.5744 127.0395
  soomgil set duration 40
  soomgil walk --mood calm
  soomgil save
  soomgil history`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		durable, err = cfg.OpenDurable()
		if err != nil {
			return fmt.Errorf("failed to open durable store: %w", err)
		}
		session, err = cfg.OpenSession()
		if err != nil {
			_ = durable.Close()
			return fmt.Errorf("failed to open session store: %w", err)
		}

		// Selection state travels on the command context; commands must go
		// through selection.MustFromContext so misuse fails loudly.
		sel := selection.Load(durable)
		cmd.SetContext(selection.NewContext(cmd.Context(), sel))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if session != nil {
			_ = session.Close()
		}
		if durable != nil {
			return durable.Close()
		}
		return nil
	},
}
