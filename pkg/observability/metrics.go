package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tovenja/blocksift/pkg/domain"
)

// Metrics exposes pass-level counters for the engine.
type Metrics struct {
	passes    *prometheus.CounterVec
	matches   prometheus.Counter
	mutations prometheus.Counter
}

// NewMetrics creates and registers the engine counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blocksift_passes_total",
			Help: "Evaluation passes run, by mode.",
		}, []string{"mode"}),
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blocksift_matches_total",
			Help: "Tag-safe matches found across all passes.",
		}),
		mutations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blocksift_mutations_total",
			Help: "Attribute mutations issued by replace passes.",
		}),
	}
	reg.MustRegister(m.passes, m.matches, m.mutations)
	return m
}

// Hooks returns lifecycle hooks that drive the counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPassEnd: func(_ context.Context, ev *domain.PassEvent) {
			mode := "search"
			if ev.Commit {
				mode = "replace"
			}
			m.passes.WithLabelValues(mode).Inc()
			m.matches.Add(float64(ev.Count))
		},
		OnMutation: func(_ context.Context, _ *domain.MutationEvent) {
			m.mutations.Inc()
		},
	}
}
