package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovenja/blocksift/pkg/adapters/memory"
	"github.com/tovenja/blocksift/pkg/domain"
)

func TestCreateEngine_AppliesConfigTypes(t *testing.T) {
	store := memory.NewStore(
		domain.Block{ID: "c1", Type: "callout", Attributes: map[string]any{"content": "a fox"}},
		domain.Block{ID: "k1", Type: "code", Attributes: map[string]any{"content": "a fox"}},
	)

	cfg := Config{ExtraTypes: []string{"callout"}, RemoveTypes: []string{"code"}}
	engine, err := createEngine(store, cfg, RunOptions{}, createLogger(false))
	require.NoError(t, err)

	report, err := engine.Search(context.Background(), "fox")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count)
	assert.Equal(t, []string{"a fox"}, report.Matches)
}

func TestCreateEngine_CaseSensitiveFromFlagOrConfig(t *testing.T) {
	store := memory.NewStore(
		domain.Block{ID: "p1", Type: "paragraph", Attributes: map[string]any{"content": "Fox"}},
	)

	engine, err := createEngine(store, Config{}, RunOptions{CaseSensitive: true}, createLogger(false))
	require.NoError(t, err)

	report, err := engine.Search(context.Background(), "fox")
	require.NoError(t, err)
	assert.Equal(t, 0, report.Count)
}
