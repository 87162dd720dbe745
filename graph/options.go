package graph

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Option configures subgraph enumeration and random graph generation.
type Option func(*config)

type config struct {
	maxEdges float64
	required []int
	workers  int
	seed     *uint64
	logger   zerolog.Logger
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		workers: runtime.GOMAXPROCS(0),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaxEdges keeps only subgraphs whose total arc weight is strictly below
// k. Without it every subgraph with more than one arc is kept.
func WithMaxEdges(k int) Option {
	return func(cfg *config) {
		if k > 0 {
			cfg.maxEdges = float64(k)
		}
	}
}

// WithRequiredVertices keeps only subgraphs that contain all of the given
// vertex indices.
func WithRequiredVertices(v ...int) Option {
	return func(cfg *config) {
		cfg.required = append(cfg.required, v...)
	}
}

// WithWorkers sets the worker count used by IterateSubgraphsParallel.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithSeed makes RandomDirected reproducible.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.seed = &seed
	}
}

// WithLogger sets the logger used for enumeration progress.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}
