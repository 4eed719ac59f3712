package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovenja/blocksift/pkg/domain"
)

// RunBlockStoreContract runs a suite of tests verifying that a BlockStore
// implementation adheres to the interface contract. The factory must return
// a store pre-seeded with exactly the given blocks.
func RunBlockStoreContract(t *testing.T, newStore func(t *testing.T, blocks []domain.Block) BlockStore) {
	ctx := context.Background()

	seed := func() []domain.Block {
		return []domain.Block{
			{ID: "p1", Type: "paragraph", Attributes: map[string]any{"content": "hello"}},
			{ID: "g1", Type: "group", InnerBlocks: []domain.Block{
				{ID: "p2", Type: "paragraph", Attributes: map[string]any{"content": "nested"}},
			}},
		}
	}

	t.Run("GetBlocks_ReturnsSeededTree", func(t *testing.T) {
		store := newStore(t, seed())

		blocks, err := store.GetBlocks(ctx)
		require.NoError(t, err)
		require.Len(t, blocks, 2)
		assert.Equal(t, "p1", blocks[0].ID)
		require.Len(t, blocks[1].InnerBlocks, 1)
		assert.Equal(t, "nested", blocks[1].InnerBlocks[0].Attributes["content"])
	})

	t.Run("UpdateAttributes_TopLevel", func(t *testing.T) {
		store := newStore(t, seed())

		err := store.UpdateAttributes(ctx, "p1", map[string]any{"content": "changed"})
		require.NoError(t, err)

		blocks, err := store.GetBlocks(ctx)
		require.NoError(t, err)
		assert.Equal(t, "changed", blocks[0].Attributes["content"])
	})

	t.Run("UpdateAttributes_Nested", func(t *testing.T) {
		store := newStore(t, seed())

		err := store.UpdateAttributes(ctx, "p2", map[string]any{"content": "deep"})
		require.NoError(t, err)

		blocks, err := store.GetBlocks(ctx)
		require.NoError(t, err)
		assert.Equal(t, "deep", blocks[1].InnerBlocks[0].Attributes["content"])
	})

	t.Run("UpdateAttributes_PartialMerge", func(t *testing.T) {
		store := newStore(t, seed())

		err := store.UpdateAttributes(ctx, "p1", map[string]any{"align": "left"})
		require.NoError(t, err)

		blocks, err := store.GetBlocks(ctx)
		require.NoError(t, err)
		assert.Equal(t, "hello", blocks[0].Attributes["content"], "untouched attributes must survive a partial update")
		assert.Equal(t, "left", blocks[0].Attributes["align"])
	})

	t.Run("UpdateAttributes_UnknownBlock", func(t *testing.T) {
		store := newStore(t, seed())

		err := store.UpdateAttributes(ctx, "missing", map[string]any{"content": "x"})
		assert.ErrorIs(t, err, domain.ErrBlockNotFound)
	})

	t.Run("GetBlocks_SnapshotIsolation", func(t *testing.T) {
		store := newStore(t, seed())

		blocks, err := store.GetBlocks(ctx)
		require.NoError(t, err)
		blocks[0].Attributes["content"] = "tampered"

		fresh, err := store.GetBlocks(ctx)
		require.NoError(t, err)
		assert.Equal(t, "hello", fresh[0].Attributes["content"], "mutating a snapshot must not affect the store")
	})
}
