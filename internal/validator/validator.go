package validator

import (
	"fmt"
	"strings"

	"github.com/tovenja/blocksift/pkg/domain"
	"github.com/tovenja/blocksift/pkg/ports"
)

// ValidateDocument checks a block tree for structural problems: blocks with
// no ID, duplicate IDs, and blocks with no type. A pass over a tree that
// fails these checks can silently skip or mis-target mutations, so the CLI
// surfaces them up front.
func ValidateDocument(blocks []domain.Block) error {
	seen := make(map[string]bool)
	var errs []string
	var walk func(b *domain.Block, path string)
	walk = func(b *domain.Block, path string) {
		label := b.ID
		if label == "" {
			label = fmt.Sprintf("(unnamed at %s)", path)
			errs = append(errs, fmt.Sprintf("block %s has no ID", label))
		} else if seen[b.ID] {
			errs = append(errs, fmt.Sprintf("duplicate block ID '%s'", b.ID))
		}
		seen[b.ID] = true

		if b.Type == "" {
			errs = append(errs, fmt.Sprintf("block '%s' has no type", label))
		}

		for i := range b.InnerBlocks {
			walk(&b.InnerBlocks[i], fmt.Sprintf("%s/%d", path, i))
		}
	}
	for i := range blocks {
		walk(&blocks[i], fmt.Sprintf("root/%d", i))
	}

	if len(errs) > 0 {
		return fmt.Errorf("document has %d problem(s):\n  - %s",
			len(errs), strings.Join(errs, "\n  - "))
	}
	return nil
}

// Searchable returns the IDs of blocks whose type a pass would visit. The
// validate command reports this so authors can see which blocks are out of
// reach before running a replace.
func Searchable(blocks []domain.Block, types ports.TypeSource) []string {
	allowed := make(map[string]bool)
	for _, t := range types.AllowedTypes() {
		allowed[t] = true
	}

	var ids []string
	var walk func(b *domain.Block)
	walk = func(b *domain.Block) {
		if allowed[b.Type] {
			ids = append(ids, b.ID)
		}
		for i := range b.InnerBlocks {
			walk(&b.InnerBlocks[i])
		}
	}
	for i := range blocks {
		walk(&blocks[i])
	}
	return ids
}
