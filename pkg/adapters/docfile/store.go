package docfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/tovenja/blocksift/pkg/domain"
)

// Store implements ports.BlockStore backed by a YAML or JSON document file.
// Mutations apply in memory; Save writes the tree back to disk explicitly,
// so a dry run over a file never touches it.
type Store struct {
	path string

	mu     sync.Mutex
	blocks []domain.Block
	dirty  bool
}

// NewStore loads the document file into memory.
func NewStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	blocks, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}
	return &Store{path: path, blocks: blocks}, nil
}

// Decode parses a serialized block tree. YAML is a superset of JSON, so one
// decoder covers both on the way in; mapstructure turns the generic shapes
// into typed blocks while leaving attribute values untyped.
func Decode(data []byte) ([]domain.Block, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var blocks []domain.Block
	if err := mapstructure.Decode(raw, &blocks); err != nil {
		return nil, fmt.Errorf("decoding blocks: %w", err)
	}
	return blocks, nil
}

// GetBlocks returns a deep copy of the loaded tree.
func (s *Store) GetBlocks(ctx context.Context) ([]domain.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneBlocks(s.blocks), nil
}

// UpdateAttributes merges a partial attribute map into the identified block
// and marks the document dirty.
func (s *Store) UpdateAttributes(ctx context.Context, blockID string, attrs map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !domain.Patch(s.blocks, blockID, attrs) {
		return fmt.Errorf("%w: %s", domain.ErrBlockNotFound, blockID)
	}
	s.dirty = true
	return nil
}

// Dirty reports whether any mutation has been applied since loading.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes the current tree back to the document file, keeping the
// original format by extension (.json stays JSON, everything else YAML).
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(s.path), ".json") {
		data, err = json.MarshalIndent(s.blocks, "", "  ")
	} else {
		data, err = yaml.Marshal(s.blocks)
	}
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing document %s: %w", s.path, err)
	}
	s.dirty = false
	return nil
}
