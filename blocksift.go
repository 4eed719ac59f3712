package blocksift

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tovenja/blocksift/internal/engine"
	"github.com/tovenja/blocksift/pkg/domain"
	"github.com/tovenja/blocksift/pkg/ports"
	"github.com/tovenja/blocksift/pkg/registry"
)

// Engine is the high-level entry point for the blocksift library.
// It wraps the internal pass engine and provides a simplified API for hosts.
type Engine struct {
	engine   *engine.Engine
	store    ports.BlockStore
	registry *registry.Registry
	notifier ports.Notifier
	hooks    domain.LifecycleHooks
	logger   *slog.Logger

	caseSensitiveDefault bool
	literalPatterns      bool
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithRegistry injects a custom block-type registry, bypassing the default
// core-type set.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithNotifier sets the channel that receives the post-pass notice.
func WithNotifier(n ports.Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCaseSensitiveDefault makes passes case sensitive unless the session
// says otherwise. The per-session flag can only strengthen this, not relax it.
func WithCaseSensitiveDefault(v bool) Option {
	return func(e *Engine) {
		e.caseSensitiveDefault = v
	}
}

// WithLiteralPatterns treats search terms as literal text instead of
// regular expressions.
func WithLiteralPatterns(v bool) Option {
	return func(e *Engine) {
		e.literalPatterns = v
	}
}

// New initializes a blocksift Engine bound to a block store.
// By default it searches the core text-capable block types.
func New(store ports.BlockStore, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("a block store is required")
	}

	eng := &Engine{store: store}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.registry == nil {
		eng.registry = registry.Default()
	}

	engineOpts := []engine.Option{
		engine.WithTypeSource(eng.registry),
		engine.WithLifecycleHooks(eng.hooks),
		engine.WithCaseSensitiveDefault(eng.caseSensitiveDefault),
		engine.WithLiteralPatterns(eng.literalPatterns),
	}
	if eng.notifier != nil {
		engineOpts = append(engineOpts, engine.WithNotifier(eng.notifier))
	}
	if eng.logger != nil {
		engineOpts = append(engineOpts, engine.WithLogger(eng.logger))
	}

	eng.engine = engine.New(store, engineOpts...)
	return eng, nil
}

// Evaluate runs one search or replace pass described by the session.
func (e *Engine) Evaluate(ctx context.Context, session domain.Session) (*domain.Report, error) {
	return e.engine.Evaluate(ctx, session)
}

// Search runs a dry pass: it counts and collects matches without touching
// the document.
func (e *Engine) Search(ctx context.Context, term string) (*domain.Report, error) {
	return e.engine.Evaluate(ctx, domain.Session{Search: term})
}

// Replace substitutes replacement for every match and writes the changed
// fields back through the store.
func (e *Engine) Replace(ctx context.Context, term, replacement string) (*domain.Report, error) {
	return e.engine.Evaluate(ctx, domain.Session{Search: term, Replace: replacement, Commit: true})
}

// Registry returns the block-type registry so hosts can add or remove
// searchable types at runtime.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Store returns the underlying block store used by the engine.
func (e *Engine) Store() ports.BlockStore {
	return e.store
}
