package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovenja/blocksift/pkg/domain"
)

func newExecutor(t *testing.T, session domain.Session) *executor {
	t.Helper()
	rule, err := Compile(session.Search, session.CaseSensitive, false)
	require.NoError(t, err)
	return &executor{rule: rule, session: session, ledger: domain.NewLedger()}
}

func TestExecutor_SimpleField(t *testing.T) {
	t.Run("dry_run_counts_without_mutating", func(t *testing.T) {
		x := newExecutor(t, domain.Session{Search: "foo", Replace: "bar"})
		b := &domain.Block{ID: "p1", Type: "paragraph", Attributes: map[string]any{"content": "foo and foo"}}

		muts := x.run(b, SimpleField)
		assert.Empty(t, muts)
		assert.Equal(t, 2, x.ledger.Count())
		assert.Equal(t, []string{"foo and foo"}, x.ledger.Matches())
	})

	t.Run("commit_mutates_changed_field", func(t *testing.T) {
		x := newExecutor(t, domain.Session{Search: "foo", Replace: "bar", Commit: true})
		b := &domain.Block{ID: "p1", Type: "paragraph", Attributes: map[string]any{"content": "say foo"}}

		muts := x.run(b, SimpleField)
		require.Len(t, muts, 1)
		assert.Equal(t, Mutation{BlockID: "p1", Attribute: "content", Value: "say bar"}, muts[0])
	})

	t.Run("identical_replacement_counts_but_never_mutates", func(t *testing.T) {
		x := newExecutor(t, domain.Session{Search: "foo", Replace: "foo", Commit: true})
		b := &domain.Block{ID: "p1", Type: "paragraph", Attributes: map[string]any{"content": "foo"}}

		muts := x.run(b, SimpleField)
		assert.Empty(t, muts)
		assert.Equal(t, 1, x.ledger.Count())
	})

	t.Run("missing_field_is_silently_skipped", func(t *testing.T) {
		x := newExecutor(t, domain.Session{Search: "foo", Replace: "bar", Commit: true})
		b := &domain.Block{ID: "p1", Type: "paragraph", Attributes: map[string]any{}}

		assert.Empty(t, x.run(b, SimpleField))
		assert.Zero(t, x.ledger.Count())
	})

	t.Run("rich_text_value_keeps_shape", func(t *testing.T) {
		x := newExecutor(t, domain.Session{Search: "foo", Replace: "bar", Commit: true})
		b := &domain.Block{ID: "p1", Type: "paragraph", Attributes: map[string]any{
			"content": map[string]any{"raw": "<em>foo</em>", "source": "html"},
		}}

		muts := x.run(b, SimpleField)
		require.Len(t, muts, 1)
		got, ok := muts[0].Value.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "<em>bar</em>", got["raw"])
		assert.Equal(t, "html", got["source"])
	})
}

func TestExecutor_CitationWithLegacyValueMirror(t *testing.T) {
	x := newExecutor(t, domain.Session{Search: "Foo", Replace: "Bar", CaseSensitive: true, Commit: true})
	b := &domain.Block{ID: "q1", Type: "quote", Attributes: map[string]any{
		"content":  "Foo said hi", // not a citation target, must be ignored
		"citation": "Foo",
		"value":    "Foo",
	}}

	muts := x.run(b, CitationField)

	// One logical edit, two increments: the legacy mirror is counted on its
	// own. Matches dedup to a single entry because the texts are identical.
	assert.Equal(t, 2, x.ledger.Count())
	assert.Equal(t, []string{"Foo"}, x.ledger.Matches())

	require.Len(t, muts, 2)
	assert.Equal(t, Mutation{BlockID: "q1", Attribute: "citation", Value: "Bar"}, muts[0])
	assert.Equal(t, Mutation{BlockID: "q1", Attribute: "value", Value: "Bar"}, muts[1])
}

func TestExecutor_QuoteWithoutValueMirror(t *testing.T) {
	x := newExecutor(t, domain.Session{Search: "Foo", Replace: "Bar", CaseSensitive: true, Commit: true})
	b := &domain.Block{ID: "q1", Type: "quote", Attributes: map[string]any{"citation": "Foo"}}

	muts := x.run(b, CitationField)
	assert.Equal(t, 1, x.ledger.Count())
	require.Len(t, muts, 1)
	assert.Equal(t, "citation", muts[0].Attribute)
}

func TestExecutor_Table(t *testing.T) {
	makeTable := func() *domain.Block {
		return &domain.Block{ID: "t1", Type: "table", Attributes: map[string]any{
			"caption": "Foo table",
			"body": []any{
				map[string]any{"cells": []any{
					map[string]any{"content": "Foo", "tag": "td"},
					map[string]any{"content": "plain"},
				}},
			},
		}}
	}

	t.Run("caption_and_cell_count_independently", func(t *testing.T) {
		x := newExecutor(t, domain.Session{Search: "Foo", Replace: "Bar", CaseSensitive: true})
		muts := x.run(makeTable(), TableFields)

		assert.Empty(t, muts)
		assert.Equal(t, 2, x.ledger.Count())
		assert.Equal(t, []string{"Foo table", "Foo"}, x.ledger.Matches())
	})

	t.Run("commit_mutates_caption_and_owning_section", func(t *testing.T) {
		x := newExecutor(t, domain.Session{Search: "Foo", Replace: "Bar", CaseSensitive: true, Commit: true})
		muts := x.run(makeTable(), TableFields)

		require.Len(t, muts, 2)
		assert.Equal(t, "caption", muts[0].Attribute)
		assert.Equal(t, "Bar table", muts[0].Value)

		assert.Equal(t, "body", muts[1].Attribute)
		rows, ok := muts[1].Value.([]any)
		require.True(t, ok)
		cells := rows[0].(map[string]any)["cells"].([]any)
		cell := cells[0].(map[string]any)
		assert.Equal(t, "Bar", cell["content"])
		assert.Equal(t, "td", cell["tag"], "untouched cell keys must survive")
		assert.Equal(t, "plain", cells[1].(map[string]any)["content"])
	})

	t.Run("malformed_cells_are_guarded", func(t *testing.T) {
		x := newExecutor(t, domain.Session{Search: "Foo", Replace: "Bar", Commit: true})
		b := &domain.Block{ID: "t1", Type: "table", Attributes: map[string]any{
			"body": []any{
				"not a row",
				map[string]any{"nocells": true},
				map[string]any{"cells": []any{
					map[string]any{},                            // no content
					map[string]any{"content": nil},              // nil content
					map[string]any{"content": map[string]any{}}, // rich value without raw
					map[string]any{"content": "Foo"},
				}},
			},
		}}

		muts := x.run(b, TableFields)
		assert.Equal(t, 1, x.ledger.Count())
		require.Len(t, muts, 1)
		assert.Equal(t, "body", muts[0].Attribute)
	})

	t.Run("unchanged_section_not_mutated", func(t *testing.T) {
		x := newExecutor(t, domain.Session{Search: "absent", Replace: "Bar", Commit: true})
		muts := x.run(makeTable(), TableFields)
		assert.Empty(t, muts)
		assert.Zero(t, x.ledger.Count())
	})

	t.Run("original_rows_not_mutated_in_place", func(t *testing.T) {
		b := makeTable()
		x := newExecutor(t, domain.Session{Search: "Foo", Replace: "Bar", CaseSensitive: true, Commit: true})
		x.run(b, TableFields)

		cells := b.Attributes["body"].([]any)[0].(map[string]any)["cells"].([]any)
		assert.Equal(t, "Foo", cells[0].(map[string]any)["content"])
	})
}

func TestExecutor_SummaryField(t *testing.T) {
	x := newExecutor(t, domain.Session{Search: "foo", Replace: "bar", Commit: true})
	b := &domain.Block{ID: "d1", Type: "details", Attributes: map[string]any{
		"summary": "about foo",
		"content": "foo inside", // not a summary target
	}}

	muts := x.run(b, SummaryField)
	require.Len(t, muts, 1)
	assert.Equal(t, Mutation{BlockID: "d1", Attribute: "summary", Value: "about bar"}, muts[0])
	assert.Equal(t, 1, x.ledger.Count())
}
