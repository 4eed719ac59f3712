package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tovenja/blocksift"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of blocksift",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blocksift version %s\n", strings.TrimSpace(blocksift.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
