package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tovenja/blocksift/internal/cli"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Count and list matches without changing the document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := runOptionsFromFlags(cmd)
		opts.Search = args[0]

		if err := cli.RunSearch(cmd.Context(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runOptionsFromFlags(cmd *cobra.Command) cli.RunOptions {
	doc, _ := cmd.Flags().GetString("doc")
	config, _ := cmd.Flags().GetString("config")
	caseSensitive, _ := cmd.Flags().GetBool("case-sensitive")
	plain, _ := cmd.Flags().GetBool("plain")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if config == "" {
		config = cli.DefaultConfigPath
	}

	return cli.RunOptions{
		DocPath:       doc,
		ConfigPath:    config,
		CaseSensitive: caseSensitive,
		Plain:         plain,
		Verbose:       verbose,
	}
}
