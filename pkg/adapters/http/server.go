package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tovenja/blocksift/pkg/domain"
	"github.com/tovenja/blocksift/pkg/ports"
)

// Engine defines the interface the HTTP adapter needs from the core.
type Engine interface {
	Evaluate(ctx context.Context, session domain.Session) (*domain.Report, error)
}

// Server exposes the engine over HTTP.
type Server struct {
	engine Engine
	store  ports.BlockStore
}

// Option configures the handler.
type Option func(*config)

type config struct {
	metrics http.Handler
}

// WithMetrics mounts a metrics handler (e.g. promhttp) at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(c *config) {
		c.metrics = h
	}
}

// EvaluateRequest is the body of POST /evaluate.
type EvaluateRequest struct {
	Search        string `json:"search"`
	Replace       string `json:"replace"`
	CaseSensitive bool   `json:"caseSensitive"`
	Commit        bool   `json:"commit"`
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, store ports.BlockStore, opts ...Option) http.Handler {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Server{engine: engine, store: store}
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Post("/evaluate", s.Evaluate)
	r.Get("/blocks", s.Blocks)
	if cfg.metrics != nil {
		r.Handle("/metrics", cfg.metrics)
	}

	return r
}

// Evaluate handles POST /evaluate: it runs exactly one pass.
func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	var body EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	report, err := s.engine.Evaluate(r.Context(), domain.Session{
		Search:        body.Search,
		Replace:       body.Replace,
		CaseSensitive: body.CaseSensitive,
		Commit:        body.Commit,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrBadPattern) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	writeJSON(w, report)
}

// Blocks handles GET /blocks: a snapshot of the document tree.
func (s *Server) Blocks(w http.ResponseWriter, r *http.Request) {
	blocks, err := s.store.GetBlocks(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrDocumentNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, blocks)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding response", http.StatusInternalServerError)
	}
}
