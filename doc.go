/*
Package blocksift is a search and replace engine for block-editor documents.

It walks a tree of typed blocks (paragraphs, headings, lists, quotes, tables
and so on), finds whole-word matches inside the rich-text fields of each
block, and optionally substitutes a replacement, writing changed fields back
through a pluggable store. Matching is tag-safe: text inside HTML tags and
attributes is never touched, so formatted content survives a replace intact.

# Concept

The engine itself is deliberately small. It reads the document through a
BlockStore port, decides which fields each block type contributes through a
type registry, and reports results through a Notifier. This hexagonal split
lets the same core run against an in-memory tree, a document file on disk, a
Redis-backed document, or whatever store a host wires in.

A pass is the unit of work: one search term, one walk over the tree, one
report. Search passes are read-only. Replace passes issue one attribute
update per changed field and are idempotent, since a whole-word match for
the search term no longer exists once it has been replaced.

# Usage

Bind an engine to a store and run passes:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/tovenja/blocksift"
		"github.com/tovenja/blocksift/pkg/adapters/memory"
		"github.com/tovenja/blocksift/pkg/domain"
	)

	func main() {
		store := memory.NewStore(
			domain.Block{ID: "p1", Type: "paragraph", Attributes: map[string]any{
				"content": "the quick brown fox",
			}},
		)

		eng, err := blocksift.New(store)
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()

		// Dry run: count matches without touching the document.
		report, err := eng.Search(ctx, "fox")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("matches:", report.Count)

		// Commit: substitute and write back.
		if _, err := eng.Replace(ctx, "fox", "hare"); err != nil {
			log.Fatal(err)
		}
	}
*/
package blocksift
