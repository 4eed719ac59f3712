package engine

import "github.com/tovenja/blocksift/pkg/domain"

// Mutation is one pending attribute update for a block. Each changed
// top-level attribute produces its own mutation, mirroring how the editor
// store accepts partial attribute maps.
type Mutation struct {
	BlockID   string
	Attribute string
	Value     any
}

// executor applies one compiled rule to the resolved fields of a block and
// keeps the pass bookkeeping in the ledger. It never talks to the store;
// mutations are returned for the engine to dispatch.
type executor struct {
	rule    *Rule
	session domain.Session
	ledger  *domain.Ledger
}

// run processes a single block. A dry-run pass always returns nil mutations.
func (x *executor) run(b *domain.Block, kind FieldKind) []Mutation {
	switch kind {
	case CitationField:
		muts := x.field(b, "citation")
		// Legacy quote markup mirrors the citation in a value attribute.
		// When present it is updated and counted on its own, so one logical
		// edit shows up as two increments. Long-standing behavior, kept.
		return append(muts, x.field(b, "value")...)
	case SummaryField:
		return x.field(b, "summary")
	case TableFields:
		return x.table(b)
	case SimpleField:
		return x.field(b, "content")
	default:
		return nil
	}
}

// field applies the rule to one scalar or rich-text attribute. An absent or
// non-text attribute is skipped silently; absence is not an error.
func (x *executor) field(b *domain.Block, name string) []Mutation {
	v, ok := b.Attributes[name]
	if !ok || v == nil {
		return nil
	}
	text, ok := domain.EffectiveText(v)
	if !ok {
		return nil
	}

	res := x.rule.Apply(text, x.session.Replace)
	if res.Count == 0 {
		return nil
	}
	x.ledger.Record(text, res.Count)

	// Identical substitution (e.g. replacement equals the match) must not
	// produce a mutation, and dry runs never mutate.
	if !x.session.Commit || res.Text == text {
		return nil
	}
	return []Mutation{{BlockID: b.ID, Attribute: name, Value: domain.WithText(v, res.Text)}}
}

// table processes the optional caption plus every cell of the row sections.
// A changed section is mutated as a whole row collection, separate from the
// caption mutation.
func (x *executor) table(b *domain.Block) []Mutation {
	muts := x.field(b, "caption")
	for _, section := range []string{"body", "head", "foot"} {
		rows, ok := b.Attributes[section].([]any)
		if !ok || len(rows) == 0 {
			continue
		}
		rebuilt, changed := x.rows(rows)
		if changed && x.session.Commit {
			muts = append(muts, Mutation{BlockID: b.ID, Attribute: section, Value: rebuilt})
		}
	}
	return muts
}

// rows rewrites one row section, returning the rebuilt collection and
// whether any cell changed. Cells with missing or non-text content are
// skipped: the editor this replaces crashed on such cells, and the explicit
// guard is a deliberate deviation from that fault.
func (x *executor) rows(rows []any) ([]any, bool) {
	out := make([]any, len(rows))
	changed := false
	for i, rv := range rows {
		out[i] = rv
		row, ok := rv.(map[string]any)
		if !ok {
			continue
		}
		cells, ok := row["cells"].([]any)
		if !ok {
			continue
		}

		rebuilt := make([]any, len(cells))
		rowChanged := false
		for j, cv := range cells {
			rebuilt[j] = cv
			cell, ok := cv.(map[string]any)
			if !ok {
				continue
			}
			content, ok := cell["content"]
			if !ok || content == nil {
				continue
			}
			text, ok := domain.EffectiveText(content)
			if !ok {
				continue
			}

			res := x.rule.Apply(text, x.session.Replace)
			if res.Count == 0 {
				continue
			}
			x.ledger.Record(text, res.Count)
			if !x.session.Commit || res.Text == text {
				continue
			}

			next := make(map[string]any, len(cell))
			for k, v := range cell {
				next[k] = v
			}
			next["content"] = domain.WithText(content, res.Text)
			rebuilt[j] = next
			rowChanged = true
		}

		if rowChanged {
			next := make(map[string]any, len(row))
			for k, v := range row {
				next[k] = v
			}
			next["cells"] = rebuilt
			out[i] = next
			changed = true
		}
	}
	return out, changed
}
