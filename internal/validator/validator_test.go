package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovenja/blocksift/pkg/domain"
	"github.com/tovenja/blocksift/pkg/registry"
)

func TestValidateDocument_Valid(t *testing.T) {
	blocks := []domain.Block{
		{ID: "g1", Type: "group", InnerBlocks: []domain.Block{
			{ID: "p1", Type: "paragraph"},
		}},
	}
	require.NoError(t, ValidateDocument(blocks))
}

func TestValidateDocument_DuplicateAndMissing(t *testing.T) {
	blocks := []domain.Block{
		{ID: "p1", Type: "paragraph"},
		{ID: "p1", Type: "paragraph"},
		{ID: "", Type: "paragraph"},
		{ID: "p2", Type: ""},
	}

	err := ValidateDocument(blocks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate block ID 'p1'")
	assert.Contains(t, err.Error(), "has no ID")
	assert.Contains(t, err.Error(), "block 'p2' has no type")
}

func TestSearchable(t *testing.T) {
	blocks := []domain.Block{
		{ID: "g1", Type: "group", InnerBlocks: []domain.Block{
			{ID: "p1", Type: "paragraph"},
			{ID: "img1", Type: "image"},
		}},
		{ID: "q1", Type: "quote"},
	}

	ids := Searchable(blocks, registry.Default())
	assert.Equal(t, []string{"p1", "q1"}, ids)
}
