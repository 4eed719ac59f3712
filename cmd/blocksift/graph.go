package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tovenja/blocksift/internal/cli"
	"github.com/tovenja/blocksift/internal/presentation/graph"
	"github.com/tovenja/blocksift/pkg/adapters/docfile"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the document structure visualization",
	Long: `Reads the block document and outputs a Mermaid diagram (graph TD) of its
tree structure. With --search, runs a dry pass and highlights the blocks
that matched.`,
	Run: func(cmd *cobra.Command, args []string) {
		doc, _ := cmd.Flags().GetString("doc")
		term, _ := cmd.Flags().GetString("search")

		store, err := docfile.NewStore(doc)
		if err != nil {
			fmt.Printf("Error opening document: %v\n", err)
			os.Exit(1)
		}

		blocks, err := store.GetBlocks(cmd.Context())
		if err != nil {
			fmt.Printf("Error loading document: %v\n", err)
			os.Exit(1)
		}

		var overlay *graph.Overlay
		if term != "" {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = cli.DefaultConfigPath
			}
			cfg, err := cli.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				os.Exit(1)
			}

			matched, err := cli.MatchedBlockIDs(cmd.Context(), store, cfg, term)
			if err != nil {
				fmt.Printf("Error running search pass: %v\n", err)
				os.Exit(1)
			}
			overlay = &graph.Overlay{MatchedBlocks: matched}
		}

		fmt.Print(graph.GenerateMermaid(blocks, overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("search", "", "Highlight blocks matching this term")
}
