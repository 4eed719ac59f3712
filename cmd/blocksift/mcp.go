package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tovenja/blocksift"
	"github.com/tovenja/blocksift/pkg/adapters/docfile"
	mcpAdapter "github.com/tovenja/blocksift/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the engine as an MCP Server over stdio.
This allows AI agents (like Claude Desktop) to search and rewrite a block
document as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		doc, _ := cmd.Flags().GetString("doc")

		store, err := docfile.NewStore(doc)
		if err != nil {
			log.Fatalf("Error opening document: %v", err)
		}

		engine, err := blocksift.New(store)
		if err != nil {
			log.Fatalf("Error initializing engine: %v", err)
		}

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)

		srv := mcpAdapter.NewServer(engine, store)

		slog.Info("Starting blocksift MCP server (stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP server execution failed", "error", err)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
