package cli

import (
	"fmt"
	"log/slog"

	"github.com/tovenja/blocksift"
	"github.com/tovenja/blocksift/pkg/ports"
	"github.com/tovenja/blocksift/pkg/registry"
)

// createEngine initializes a blocksift engine with standard CLI conventions.
func createEngine(store ports.BlockStore, cfg Config, opts RunOptions, logger *slog.Logger) (*blocksift.Engine, error) {
	reg := registry.Default()
	reg.Register(cfg.ExtraTypes...)
	reg.Remove(cfg.RemoveTypes...)

	engineOpts := []blocksift.Option{
		blocksift.WithRegistry(reg),
		blocksift.WithLogger(logger),
		blocksift.WithCaseSensitiveDefault(cfg.CaseSensitive || opts.CaseSensitive),
		blocksift.WithLiteralPatterns(cfg.LiteralPatterns),
	}
	if opts.Verbose {
		engineOpts = append(engineOpts, blocksift.WithLifecycleHooks(createDebugHooks(logger)))
	}

	engine, err := blocksift.New(store, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
