package ports

import (
	"context"

	"github.com/tovenja/blocksift/pkg/domain"
)

// BlockStore defines how the engine reads the document tree and requests
// mutations. The store owns block lifecycle; the engine never holds on to
// blocks across passes.
type BlockStore interface {
	// GetBlocks returns a snapshot of the document tree in document order.
	GetBlocks(ctx context.Context) ([]domain.Block, error)

	// UpdateAttributes merges a partial attribute map into the block with
	// the given ID. It is a command: the engine does not require a
	// synchronous acknowledgment beyond the error.
	UpdateAttributes(ctx context.Context, blockID string, attrs map[string]any) error
}
