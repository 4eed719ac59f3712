package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tovenja/blocksift/internal/cli"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <term> <replacement>",
	Short: "Replace every match and optionally save the document",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		opts := runOptionsFromFlags(cmd)
		opts.Search = args[0]
		opts.Replace = args[1]
		opts.Write, _ = cmd.Flags().GetBool("write")

		if err := cli.RunReplace(cmd.Context(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replaceCmd)
	replaceCmd.Flags().BoolP("write", "w", false, "Write the changed document back to disk")
}
