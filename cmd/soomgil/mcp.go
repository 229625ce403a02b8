// ABOUTME: MCP serve command
// ABOUTME: Starts the MCP server for AI agent integration

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/seyeon-q/soomgil/internal/api"
	"github.com/seyeon-q/soomgil/internal/history"
	"github.com/seyeon-q/soomgil/internal/mcp"
	"github.com/seyeon-q/soomgil/internal/selection"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := selection.MustFromContext(cmd.Context())
		ledger := history.New(session, durable)
		client := api.NewClient(cfg.APIBaseURL, nil)

		server, err := mcp.NewServer(sel, ledger, client)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
