package redis

import (
	"context"
	"encoding/json"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/tovenja/blocksift/pkg/domain"
)

// Store implements ports.BlockStore with the serialized block tree held
// under a single Redis key per document.
type Store struct {
	client *backend.Client
	prefix string
	doc    string
}

// Option configures the Store.
type Option func(*Store)

// WithPrefix sets the key prefix for documents.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store for one document.
func New(address, password string, db int, docID string, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, docID, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, docID string, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: "blocksift:doc:",
		doc:    docID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key() string {
	return s.prefix + s.doc
}

// Seed replaces the stored document tree.
func (s *Store) Seed(ctx context.Context, blocks []domain.Block) error {
	data, err := json.Marshal(blocks)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	if err := s.client.Set(ctx, s.key(), data, 0).Err(); err != nil {
		return fmt.Errorf("seeding document in redis: %w", err)
	}
	return nil
}

// GetBlocks loads and deserializes the document tree.
func (s *Store) GetBlocks(ctx context.Context) ([]domain.Block, error) {
	val, err := s.client.Get(ctx, s.key()).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, s.doc)
		}
		return nil, fmt.Errorf("loading document from redis: %w", err)
	}
	var blocks []domain.Block
	if err := json.Unmarshal([]byte(val), &blocks); err != nil {
		return nil, fmt.Errorf("unmarshaling document: %w", err)
	}
	return blocks, nil
}

// UpdateAttributes patches one block via read-modify-write. Passes are
// serialized by the caller, so no transactional guard is taken here.
func (s *Store) UpdateAttributes(ctx context.Context, blockID string, attrs map[string]any) error {
	blocks, err := s.GetBlocks(ctx)
	if err != nil {
		return err
	}
	if !domain.Patch(blocks, blockID, attrs) {
		return fmt.Errorf("%w: %s", domain.ErrBlockNotFound, blockID)
	}
	data, err := json.Marshal(blocks)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	if err := s.client.Set(ctx, s.key(), data, 0).Err(); err != nil {
		return fmt.Errorf("saving document to redis: %w", err)
	}
	return nil
}

// Close closes the underlying redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
