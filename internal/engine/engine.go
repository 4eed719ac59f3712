package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tovenja/blocksift/internal/logging"
	"github.com/tovenja/blocksift/pkg/domain"
	"github.com/tovenja/blocksift/pkg/ports"
	"github.com/tovenja/blocksift/pkg/registry"
)

// Engine runs search/replace passes over a block document.
//
// A pass is single-threaded and synchronous: blocks are visited strictly in
// document order and all mutation requests are issued before the caller
// observes a result. Mutations are individual fire-and-forget commands with
// no atomic grouping, and there is no cancellation mid-pass. The engine
// assumes the caller serializes passes over the same tree.
type Engine struct {
	store    ports.BlockStore
	types    ports.TypeSource
	notifier ports.Notifier
	hooks    domain.LifecycleHooks
	logger   *slog.Logger

	caseSensitiveDefault bool
	literalPatterns      bool
}

// Option configures the Engine.
type Option func(*Engine)

// WithTypeSource sets the allowed-type source (default: registry.Default).
func WithTypeSource(src ports.TypeSource) Option {
	return func(e *Engine) {
		if src != nil {
			e.types = src
		}
	}
}

// WithNotifier sets the post-pass notification channel.
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

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCaseSensitiveDefault sets the configured default that is ORed with the
// per-session flag.
func WithCaseSensitiveDefault(v bool) Option {
	return func(e *Engine) {
		e.caseSensitiveDefault = v
	}
}

// WithLiteralPatterns escapes regex metacharacters in search terms instead
// of giving them raw-regex semantics.
func WithLiteralPatterns(v bool) Option {
	return func(e *Engine) {
		e.literalPatterns = v
	}
}

// New creates an engine bound to a block store.
func New(store ports.BlockStore, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		types:  registry.Default(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs exactly one pass and returns the resulting report.
//
// An empty search is a no-op pass, not an error: zero count, empty ledger,
// and no store access at all. A failure on one block (malformed data, store
// rejection) is isolated to that block; siblings and descendants are still
// processed. The only error paths are an uncompilable pattern and a failure
// to load the tree.
func (e *Engine) Evaluate(ctx context.Context, session domain.Session) (*domain.Report, error) {
	passEv := &domain.PassEvent{
		Search:        session.Search,
		CaseSensitive: session.CaseSensitive,
		Commit:        session.Commit,
	}
	if e.hooks.OnPassStart != nil {
		e.hooks.OnPassStart(ctx, passEv)
	}

	ledger := domain.NewLedger()
	if session.Search == "" {
		return e.finish(ctx, session, ledger, passEv), nil
	}

	session.CaseSensitive = session.CaseSensitive || e.caseSensitiveDefault
	rule, err := Compile(session.Search, session.CaseSensitive, e.literalPatterns)
	if err != nil {
		e.abort(ctx, passEv)
		return nil, err
	}

	blocks, err := e.store.GetBlocks(ctx)
	if err != nil {
		e.abort(ctx, passEv)
		return nil, fmt.Errorf("loading document tree: %w", err)
	}

	allowed := make(map[string]struct{})
	for _, t := range e.types.AllowedTypes() {
		allowed[t] = struct{}{}
	}

	x := &executor{rule: rule, session: session, ledger: ledger}
	Walk(blocks, func(b *domain.Block) {
		if _, ok := allowed[b.Type]; !ok {
			return
		}
		before := ledger.Count()
		muts := x.run(b, PlanFor(b.Type))
		if e.hooks.OnBlockVisit != nil {
			e.hooks.OnBlockVisit(ctx, &domain.BlockEvent{
				BlockID:   b.ID,
				BlockType: b.Type,
				Matches:   ledger.Count() - before,
			})
		}
		for _, m := range muts {
			if err := e.store.UpdateAttributes(ctx, m.BlockID, map[string]any{m.Attribute: m.Value}); err != nil {
				// One unreachable block must not stop the rest of the pass.
				e.logger.WarnContext(ctx, "attribute update failed",
					"block", m.BlockID, "attribute", m.Attribute, "err", err)
				continue
			}
			if e.hooks.OnMutation != nil {
				e.hooks.OnMutation(ctx, &domain.MutationEvent{BlockID: m.BlockID, Attribute: m.Attribute})
			}
		}
	})

	return e.finish(ctx, session, ledger, passEv), nil
}

// abort closes the hook pair for a pass that fails before any block is
// visited, so every OnPassStart is balanced by an OnPassEnd.
func (e *Engine) abort(ctx context.Context, passEv *domain.PassEvent) {
	if e.hooks.OnPassEnd != nil {
		e.hooks.OnPassEnd(ctx, passEv)
	}
}

func (e *Engine) finish(ctx context.Context, session domain.Session, ledger *domain.Ledger, passEv *domain.PassEvent) *domain.Report {
	report := &domain.Report{Count: ledger.Count(), Matches: ledger.Matches()}
	passEv.Count = report.Count
	if e.hooks.OnPassEnd != nil {
		e.hooks.OnPassEnd(ctx, passEv)
	}
	if e.notifier != nil {
		e.notifier.Notify(ctx, domain.Notice{
			MatchString:   session.Search,
			CaseSensitive: session.CaseSensitive,
			ShowMatches:   report.Count > 0 && !session.Commit,
			Matches:       report.Matches,
		})
	}
	e.logger.DebugContext(ctx, "pass finished",
		"mode", session.Mode(), "search", session.Search, "count", report.Count)
	return report
}
