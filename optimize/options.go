package optimize

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Option configures Descend and MultiStart.
type Option func(*config)

type config struct {
	maxIter int
	tol     float64
	eta0    float64
	rho0    float64
	beta    float64
	gamma   float64
	epsilon float64
	argmax  bool

	starts   int
	workers  int
	rate     float64
	pin      bool
	seed     *uint64
	progress func(start int, sol Solution)
	logger   zerolog.Logger
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		maxIter: 1000,
		tol:     1e-6,
		eta0:    0.01,
		rho0:    1.0,
		beta:    1.5,
		gamma:   0.9,
		epsilon: 1e-6,
		starts:  10,
		workers: runtime.GOMAXPROCS(0),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaxIter caps the number of descent iterations. Default 1000.
func WithMaxIter(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxIter = n
		}
	}
}

// WithTolerance sets the constraint violation below which descent stops.
// Default 1e-6.
func WithTolerance(tol float64) Option {
	return func(cfg *config) {
		if tol > 0 {
			cfg.tol = tol
		}
	}
}

// WithStepSize sets the initial step size η₀. Default 0.01.
func WithStepSize(eta float64) Option {
	return func(cfg *config) {
		if eta > 0 {
			cfg.eta0 = eta
		}
	}
}

// WithPenalty sets the initial penalty ρ₀ and the factor β it grows by when
// the constraint violation stops improving. Defaults 1 and 1.5.
func WithPenalty(rho, beta float64) Option {
	return func(cfg *config) {
		if rho > 0 {
			cfg.rho0 = rho
		}
		if beta > 0 {
			cfg.beta = beta
		}
	}
}

// WithStepDecay sets the factor γ the step size is multiplied by after
// every iteration. Default 0.9.
func WithStepDecay(gamma float64) Option {
	return func(cfg *config) {
		if gamma > 0 {
			cfg.gamma = gamma
		}
	}
}

// WithEpsilon sets the forward-difference width. Default 1e-6.
func WithEpsilon(eps float64) Option {
	return func(cfg *config) {
		if eps > 0 {
			cfg.epsilon = eps
		}
	}
}

// WithArgmax maximizes the objective instead of minimizing it.
func WithArgmax() Option {
	return func(cfg *config) {
		cfg.argmax = true
	}
}

// WithStarts sets how many random starting points MultiStart uses. Default 10.
func WithStarts(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.starts = n
		}
	}
}

// WithWorkers bounds how many descents MultiStart runs at once.
// Default runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithStartRate limits MultiStart to launching at most perSecond descents
// per second.
func WithStartRate(perSecond float64) Option {
	return func(cfg *config) {
		if perSecond > 0 {
			cfg.rate = perSecond
		}
	}
}

// WithPinnedWorkers pins each MultiStart worker to its own CPU core.
func WithPinnedWorkers() Option {
	return func(cfg *config) {
		cfg.pin = true
	}
}

// WithSeed makes MultiStart's starting points reproducible.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.seed = &seed
	}
}

// WithProgress registers a callback invoked from the worker goroutines each
// time a MultiStart descent finishes. It must be safe for concurrent use.
func WithProgress(fn func(start int, sol Solution)) Option {
	return func(cfg *config) {
		cfg.progress = fn
	}
}

// WithLogger sets the logger for descent diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}
