package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableBlock() Block {
	return Block{
		ID:   "t1",
		Type: "table",
		Attributes: map[string]any{
			"caption": "Numbers",
			"body": []any{
				map[string]any{"cells": []any{
					map[string]any{"content": "one"},
					map[string]any{"content": "two"},
				}},
			},
		},
	}
}

func TestBlock_CloneIsolation(t *testing.T) {
	orig := tableBlock()
	orig.InnerBlocks = []Block{{ID: "c1", Type: "paragraph", Attributes: map[string]any{"content": "hi"}}}

	clone := orig.Clone()
	clone.Attributes["caption"] = "changed"
	clone.Attributes["body"].([]any)[0].(map[string]any)["cells"].([]any)[0].(map[string]any)["content"] = "changed"
	clone.InnerBlocks[0].Attributes["content"] = "changed"

	assert.Equal(t, "Numbers", orig.Attributes["caption"])
	assert.Equal(t, "one", orig.Attributes["body"].([]any)[0].(map[string]any)["cells"].([]any)[0].(map[string]any)["content"])
	assert.Equal(t, "hi", orig.InnerBlocks[0].Attributes["content"])
}

func TestPatch(t *testing.T) {
	tree := []Block{
		{ID: "a", Type: "paragraph", Attributes: map[string]any{"content": "x"}},
		{ID: "b", Type: "group", InnerBlocks: []Block{
			{ID: "b1", Type: "paragraph"},
		}},
	}

	t.Run("top_level", func(t *testing.T) {
		require.True(t, Patch(tree, "a", map[string]any{"content": "y"}))
		assert.Equal(t, "y", tree[0].Attributes["content"])
	})

	t.Run("nested_with_nil_attributes", func(t *testing.T) {
		require.True(t, Patch(tree, "b1", map[string]any{"content": "deep"}))
		assert.Equal(t, "deep", tree[1].InnerBlocks[0].Attributes["content"])
	})

	t.Run("unknown_id", func(t *testing.T) {
		assert.False(t, Patch(tree, "missing", map[string]any{"content": "z"}))
	})
}

func TestEffectiveText(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   string
		wantOK bool
	}{
		{"plain_string", "hello", "hello", true},
		{"rich_text_value", RichText{Raw: "<em>hi</em>"}, "<em>hi</em>", true},
		{"rich_text_pointer", &RichText{Raw: "hi"}, "hi", true},
		{"raw_map", map[string]any{"raw": "markup"}, "markup", true},
		{"map_without_raw", map[string]any{"other": "x"}, "", false},
		{"map_with_non_string_raw", map[string]any{"raw": 42}, "", false},
		{"nil_pointer", (*RichText)(nil), "", false},
		{"unsupported", 42, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EffectiveText(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithText_PreservesShape(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "new", WithText("old", "new"))
	})

	t.Run("rich_text", func(t *testing.T) {
		assert.Equal(t, RichText{Raw: "new"}, WithText(RichText{Raw: "old"}, "new"))
	})

	t.Run("raw_map_keeps_siblings", func(t *testing.T) {
		orig := map[string]any{"raw": "old", "tag": "td"}
		got, ok := WithText(orig, "new").(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "new", got["raw"])
		assert.Equal(t, "td", got["tag"])
		assert.Equal(t, "old", orig["raw"], "original map must not be mutated")
	})
}
