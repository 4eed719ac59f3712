package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tovenja/blocksift/internal/cli"
	"github.com/tovenja/blocksift/internal/validator"
	"github.com/tovenja/blocksift/pkg/adapters/docfile"
	"github.com/tovenja/blocksift/pkg/registry"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the document for consistency",
	Long:  `Loads the block document and reports missing IDs, duplicate IDs and untyped blocks, plus which blocks a pass would actually visit.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Document is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	doc, _ := cmd.Flags().GetString("doc")
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = cli.DefaultConfigPath
	}

	cfg, err := cli.LoadConfig(configPath)
	if err != nil {
		return err
	}

	store, err := docfile.NewStore(doc)
	if err != nil {
		return err
	}
	blocks, err := store.GetBlocks(cmd.Context())
	if err != nil {
		return err
	}

	if err := validator.ValidateDocument(blocks); err != nil {
		return err
	}

	reg := registry.Default()
	reg.Register(cfg.ExtraTypes...)
	reg.Remove(cfg.RemoveTypes...)

	ids := validator.Searchable(blocks, reg)
	fmt.Printf("Searchable blocks: %d\n", len(ids))
	for _, id := range ids {
		fmt.Printf("  - %s\n", id)
	}
	return nil
}
