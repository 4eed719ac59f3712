package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blocksift",
	Short: "blocksift is a search and replace engine for block documents",
	Long: `blocksift walks a block-editor document tree, finds whole-word matches
inside the rich-text fields of each block, and optionally substitutes a
replacement. Matching is tag-safe: text inside HTML tags and attributes is
never touched.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("doc", "document.yaml", "Path to the block document (YAML or JSON)")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default: .blocksift.yaml)")
	rootCmd.PersistentFlags().Bool("case-sensitive", false, "Match case exactly")
	rootCmd.PersistentFlags().Bool("plain", false, "Print plain text instead of rendered markdown")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
