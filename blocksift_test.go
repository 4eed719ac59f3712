package blocksift_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovenja/blocksift"
	"github.com/tovenja/blocksift/pkg/adapters/memory"
	"github.com/tovenja/blocksift/pkg/domain"
	"github.com/tovenja/blocksift/pkg/ports"
	"github.com/tovenja/blocksift/pkg/registry"
)

func seedStore() *memory.Store {
	return memory.NewStore(
		domain.Block{ID: "h1", Type: "heading", Attributes: map[string]any{"content": "On Foxes"}},
		domain.Block{ID: "p1", Type: "paragraph", Attributes: map[string]any{"content": "the quick brown fox"}},
		domain.Block{ID: "g1", Type: "group", Attributes: map[string]any{}, InnerBlocks: []domain.Block{
			{ID: "q1", Type: "quote", Attributes: map[string]any{"citation": "a sly fox"}},
		}},
	)
}

func TestNew_RequiresStore(t *testing.T) {
	_, err := blocksift.New(nil)
	require.Error(t, err)
}

func TestEngine_SearchDoesNotMutate(t *testing.T) {
	store := seedStore()
	eng, err := blocksift.New(store)
	require.NoError(t, err)

	report, err := eng.Search(context.Background(), "fox")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)
	assert.Equal(t, []string{"the quick brown fox", "a sly fox"}, report.Matches)

	blocks, err := store.GetBlocks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "the quick brown fox", blocks[1].Attributes["content"])
}

func TestEngine_ReplaceWritesBack(t *testing.T) {
	store := seedStore()
	eng, err := blocksift.New(store)
	require.NoError(t, err)

	report, err := eng.Replace(context.Background(), "fox", "hare")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)

	blocks, err := store.GetBlocks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "the quick brown hare", blocks[1].Attributes["content"])
	assert.Equal(t, "a sly hare", blocks[2].InnerBlocks[0].Attributes["citation"])
}

func TestEngine_CustomRegistry(t *testing.T) {
	store := seedStore()
	eng, err := blocksift.New(store, blocksift.WithRegistry(registry.New("heading")))
	require.NoError(t, err)

	report, err := eng.Search(context.Background(), "Foxes")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count)

	eng.Registry().Register("paragraph")
	report, err = eng.Search(context.Background(), "fox")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count)
}

func TestEngine_NotifierReceivesNotice(t *testing.T) {
	store := seedStore()

	var got domain.Notice
	eng, err := blocksift.New(store, blocksift.WithNotifier(ports.NotifierFunc(func(_ context.Context, n domain.Notice) {
		got = n
	})))
	require.NoError(t, err)

	_, err = eng.Search(context.Background(), "fox")
	require.NoError(t, err)
	assert.Equal(t, "fox", got.MatchString)
	assert.True(t, got.ShowMatches)
	assert.Len(t, got.Matches, 2)
}

func TestEngine_CaseSensitiveDefault(t *testing.T) {
	store := seedStore()
	eng, err := blocksift.New(store, blocksift.WithCaseSensitiveDefault(true))
	require.NoError(t, err)

	report, err := eng.Search(context.Background(), "foxes")
	require.NoError(t, err)
	assert.Equal(t, 0, report.Count)
}

func TestEngine_BadPattern(t *testing.T) {
	eng, err := blocksift.New(seedStore())
	require.NoError(t, err)

	_, err = eng.Search(context.Background(), "fox(")
	require.ErrorIs(t, err, domain.ErrBadPattern)
}

func TestEngine_LiteralPatterns(t *testing.T) {
	store := memory.NewStore(
		domain.Block{ID: "p1", Type: "paragraph", Attributes: map[string]any{"content": "fooxbar and foo.bar"}},
	)
	eng, err := blocksift.New(store, blocksift.WithLiteralPatterns(true))
	require.NoError(t, err)

	// Raw-regex semantics would match fooxbar too; literal mode must not.
	report, err := eng.Search(context.Background(), "foo.bar")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count)
}
