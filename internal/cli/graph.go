package cli

import (
	"context"

	"github.com/tovenja/blocksift"
	"github.com/tovenja/blocksift/pkg/domain"
	"github.com/tovenja/blocksift/pkg/ports"
	"github.com/tovenja/blocksift/pkg/registry"
)

// MatchedBlockIDs runs a dry pass and returns the IDs of the blocks it
// matched in, in visit order. The graph command uses this to highlight
// matched blocks on the diagram.
func MatchedBlockIDs(ctx context.Context, store ports.BlockStore, cfg Config, term string) ([]string, error) {
	reg := registry.Default()
	reg.Register(cfg.ExtraTypes...)
	reg.Remove(cfg.RemoveTypes...)

	var matched []string
	engine, err := blocksift.New(store,
		blocksift.WithRegistry(reg),
		blocksift.WithCaseSensitiveDefault(cfg.CaseSensitive),
		blocksift.WithLiteralPatterns(cfg.LiteralPatterns),
		blocksift.WithLifecycleHooks(domain.LifecycleHooks{
			OnBlockVisit: func(_ context.Context, e *domain.BlockEvent) {
				if e.Matches > 0 {
					matched = append(matched, e.BlockID)
				}
			},
		}),
	)
	if err != nil {
		return nil, err
	}
	if _, err := engine.Search(ctx, term); err != nil {
		return nil, err
	}
	return matched, nil
}
