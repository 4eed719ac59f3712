package engine

import "github.com/tovenja/blocksift/pkg/domain"

// Walk visits every block depth-first in document order, parents before
// children. Children are visited in their existing order regardless of the
// parent's type or match outcome. The tree is acyclic, so the walk is finite
// and never revisits a block within one pass.
func Walk(blocks []domain.Block, visit func(*domain.Block)) {
	for i := range blocks {
		visit(&blocks[i])
		Walk(blocks[i].InnerBlocks, visit)
	}
}
