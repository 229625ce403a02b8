// ABOUTME: Music command fetching mood-keyed walking music
// ABOUTME: Writes the audio resource to a local file

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/seyeon-q/soomgil/internal/api"
	"github.com/spf13/cobra"
)

var musicCmd = &cobra.Command{
	Use:   "music [mood]",
	Short: "Fetch walking music for a mood",
	Long: `Fetch generated walking music for the given mood and write it to a file.

Examples:
  soomgil music "calm and quiet"
  soomgil music --out stroll.mp3 "upbeat"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mood := ""
		if len(args) > 0 {
			mood = args[0]
		}

		client := api.NewClient(cfg.APIBaseURL, nil)
		data, contentType, err := client.GenerateMusic(cmd.Context(), mood)
		if err != nil {
			return fmt.Errorf("music generation failed: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = "soomgil-walk.mp3"
			if strings.Contains(contentType, "wav") {
				out = "soomgil-walk.wav"
			}
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}

		color.Green("✓ Music saved to %s", out)
		return nil
	},
}

func init() {
	musicCmd.Flags().StringP("out", "o", "", "output file path")
	rootCmd.AddCommand(musicCmd)
}
