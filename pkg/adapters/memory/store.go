package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/tovenja/blocksift/pkg/domain"
)

// Store implements ports.BlockStore over an in-memory block tree.
// Safe for concurrent use, though the engine itself runs passes serially.
type Store struct {
	mu     sync.RWMutex
	blocks []domain.Block
}

// NewStore creates a store seeded with the given tree.
func NewStore(blocks ...domain.Block) *Store {
	return &Store{blocks: domain.CloneBlocks(blocks)}
}

// GetBlocks returns a deep copy so callers cannot mutate the stored tree
// behind the store's back.
func (s *Store) GetBlocks(ctx context.Context) ([]domain.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneBlocks(s.blocks), nil
}

// UpdateAttributes merges a partial attribute map into the identified block.
func (s *Store) UpdateAttributes(ctx context.Context, blockID string, attrs map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !domain.Patch(s.blocks, blockID, attrs) {
		return fmt.Errorf("%w: %s", domain.ErrBlockNotFound, blockID)
	}
	return nil
}

// Replace swaps the whole tree, for callers that reload documents.
func (s *Store) Replace(blocks []domain.Block) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks = domain.CloneBlocks(blocks)
}
